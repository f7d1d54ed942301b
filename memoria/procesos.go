package memoria

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

const (
	EstadoExec  = "EXEC"
	EstadoReady = "READY"
)

func (p *Proceso) cambiarEstado(nuevoEstado string) {
	if p.Estado == nuevoEstado {
		return
	}
	estadoAnterior := p.Estado
	p.Estado = nuevoEstado
	utils.InfoLog.Info(fmt.Sprintf("(%d) - Pasa del estado %s al estado %s", p.PID, estadoAnterior, nuevoEstado))
}

// CambiarProceso cede la ejecución al proceso con el pid indicado. Si está en
// la cola de listos se hace un cambio de contexto; si no existe, se forkea el
// proceso actual con semántica copy-on-write y el hijo pasa a ejecutar.
func (s *Simulacion) CambiarProceso(pid int) error {
	if pid == s.ProcesoActual.PID {
		utils.InfoLog.Warn("Cambio al proceso ya en ejecución ignorado", "pid", pid)
		return nil
	}

	for i, p := range s.ColaReady {
		if p.PID == pid {
			s.ColaReady = append(s.ColaReady[:i], s.ColaReady[i+1:]...)

			anterior := s.ProcesoActual
			anterior.cambiarEstado(EstadoReady)
			s.ColaReady = append(s.ColaReady, anterior)

			p.cambiarEstado(EstadoExec)
			s.ProcesoActual = p
			s.TablaActiva = p.Tabla

			s.actualizarMetricasCambioContexto(pid)

			utils.InfoLog.Info("Cambio de contexto", "pid_saliente", anterior.PID, "pid_entrante", pid)
			return nil
		}
	}

	return s.forkearProceso(pid)
}

// forkearProceso crea un hijo del proceso actual con los mismos valores de
// PTE. Las entradas escribibles del padre se degradan a privadas de solo
// lectura y suben los contadores de los marcos, de modo que la próxima
// escritura de cualquiera de los dos dispare el camino copy-on-write.
func (s *Simulacion) forkearProceso(pid int) error {
	padre := s.ProcesoActual

	// Reservar primero la tabla del hijo: si el pool está agotado no se debe
	// haber tocado ninguna entrada del padre.
	tablaHijo, err := s.crearTabla()
	if err != nil {
		utils.ErrorLog.Error("Fork fallido, sin almacenamiento para la tabla del hijo",
			"pid_padre", padre.PID, "pid_hijo", pid)
		return err
	}

	tablaPadre := s.tablaDe(padre.Tabla)

	// Degradar las entradas del padre y registrar los nuevos compartidos
	for _, handle := range tablaPadre.Directorios {
		if handle == 0 {
			continue
		}
		directorio := s.directorioDe(handle)
		for j := range directorio.Entradas {
			entrada := &directorio.Entradas[j]
			if !entrada.Valido {
				continue
			}
			s.ContadorMarcos[entrada.Marco]++
			if entrada.Escribible {
				entrada.Escribible = false
				entrada.Privada = true
			}
		}
	}

	// Duplicar los directorios por valor: tras la degradación, los PTEs del
	// hijo son idénticos a los del padre slot a slot
	for i, handle := range tablaPadre.Directorios {
		if handle != 0 {
			s.tablaDe(tablaHijo).Directorios[i] = s.duplicarDirectorio(handle)
		}
	}

	hijo := &Proceso{PID: pid, Tabla: tablaHijo, Estado: EstadoExec}

	// El fork transfiere la ejecución al hijo de inmediato
	padre.cambiarEstado(EstadoReady)
	s.ColaReady = append(s.ColaReady, padre)
	s.ProcesoActual = hijo
	s.TablaActiva = tablaHijo

	s.actualizarMetricasCambioContexto(pid)

	utils.InfoLog.Info(fmt.Sprintf("## PID: %d - Proceso creado por fork de PID %d", pid, padre.PID))
	return nil
}

// buscarProceso localiza un proceso por pid entre el actual y la cola de listos
func (s *Simulacion) buscarProceso(pid int) *Proceso {
	if s.ProcesoActual.PID == pid {
		return s.ProcesoActual
	}
	for _, p := range s.ColaReady {
		if p.PID == pid {
			return p
		}
	}
	return nil
}
