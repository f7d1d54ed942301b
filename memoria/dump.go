package memoria

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

// CrearDump escribe en un archivo el estado de los mapeos de un proceso: cada
// página válida con su marco, sus bits y el contador de mapeos del marco.
// Los marcos no tienen contenido simulado, así que el dump es de metadatos.
func (s *Simulacion) CrearDump(pid int) error {
	proceso := s.buscarProceso(pid)
	if proceso == nil {
		utils.ErrorLog.Error("Dump solicitado para un proceso inexistente", "pid", pid)
		return fmt.Errorf("%w: pid %d", ErrProcesoInexistente, pid)
	}

	timestamp := time.Now().Format("20060102-150405")
	nombreArchivo := fmt.Sprintf("%d-%s.dmp", pid, timestamp)
	rutaCompleta := filepath.Join(s.config.DumpPath, nombreArchivo)

	if err := os.MkdirAll(s.config.DumpPath, 0755); err != nil {
		utils.ErrorLog.Error("Error creando directorio de dumps", "error", err)
		return fmt.Errorf("error al crear directorio para dumps: %v", err)
	}

	dumpFile, err := os.Create(rutaCompleta)
	if err != nil {
		utils.ErrorLog.Error("Error creando archivo de dump", "archivo", rutaCompleta, "error", err)
		return fmt.Errorf("error al crear archivo de dump: %v", err)
	}
	defer dumpFile.Close()

	fmt.Fprintf(dumpFile, "== Dump del proceso %d - %s ==\n", pid, timestamp)
	fmt.Fprintf(dumpFile, "Estado: %s\n", proceso.Estado)

	paginasValidas := 0
	tabla := s.tablaDe(proceso.Tabla)
	for indice, handle := range tabla.Directorios {
		if handle == 0 {
			continue
		}
		for posicion, entrada := range s.directorioDe(handle).Entradas {
			if !entrada.Valido {
				continue
			}
			vpn := indice*s.config.EntradasPorTabla + posicion
			fmt.Fprintf(dumpFile, "vpn=%d marco=%d escribible=%t privada=%t contador=%d\n",
				vpn, entrada.Marco, entrada.Escribible, entrada.Privada, s.ContadorMarcos[entrada.Marco])
			paginasValidas++
		}
	}
	fmt.Fprintf(dumpFile, "Total de páginas válidas: %d\n", paginasValidas)

	// Log obligatorio del enunciado
	utils.InfoLog.Info(fmt.Sprintf("## PID: %d Dump de memoria solicitado", pid))
	utils.InfoLog.Info("Dump completado", "pid", pid, "archivo", nombreArchivo, "paginas", paginasValidas)

	return nil
}
