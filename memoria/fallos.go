package memoria

import (
	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

// AtenderFallo resuelve una traducción fallida para el proceso actual.
//
// Clasifica el fallo en dos familias: mapeo faltante (directorio ausente o
// entrada inválida), que se resuelve asignando una página nueva, y fallo de
// protección (escritura sobre una entrada válida no escribible), que solo es
// resoluble cuando la entrada está marcada como privada (copy-on-write).
//
// Devuelve resuelto=false ante una violación de acceso genuina. Un
// agotamiento de marcos durante la resolución se propaga como error y nunca
// se informa como fallo resuelto. Cuando la resolución falla, el estado queda
// exactamente como estaba.
func (s *Simulacion) AtenderFallo(vpn int, rw Acceso) (bool, error) {
	pid := s.ProcesoActual.PID
	s.actualizarMetricasAccesoTabla(pid)

	estado, _ := s.Traducir(vpn)

	// Mapeo faltante: asignar una página nueva
	if estado != TraduccionValida {
		utils.InfoLog.Info("Fallo por mapeo faltante", "pid", pid, "vpn", vpn)

		if _, err := s.AsignarPagina(vpn, rw); err != nil {
			return false, err
		}

		s.actualizarMetricasFalloResuelto(pid)
		return true, nil
	}

	// Una lectura sobre una entrada válida no constituye un fallo atendible
	if !rw.EsEscritura() {
		utils.InfoLog.Warn("Fallo de lectura sobre entrada válida, nada que resolver", "pid", pid, "vpn", vpn)
		return false, nil
	}

	entrada := s.entradaActiva(vpn)
	if entrada.Escribible {
		utils.InfoLog.Warn("Fallo de escritura sobre entrada escribible, nada que resolver", "pid", pid, "vpn", vpn)
		return false, nil
	}

	// Fallo de protección sobre una página genuinamente de solo lectura
	if !entrada.Privada {
		utils.ErrorLog.Error("Violación de acceso: escritura sobre página de solo lectura",
			"pid", pid, "vpn", vpn, "marco", entrada.Marco)
		return false, nil
	}

	marco := entrada.Marco

	if s.ContadorMarcos[marco] > 1 {
		// El proceso se desliga del marco compartido y recibe uno exclusivo.
		// No se copian bytes: los marcos son unidades de contabilidad.
		s.ContadorMarcos[marco]--

		nuevoMarco, err := s.AsignarPagina(vpn, rw)
		if err != nil {
			// Revertir el desligue para no dejar estado a medias
			s.ContadorMarcos[marco]++
			return false, err
		}

		s.actualizarMetricasCopiaCOW(pid)
		s.actualizarMetricasFalloResuelto(pid)

		utils.InfoLog.Info("Copia por escritura realizada", "pid", pid, "vpn", vpn,
			"marco_anterior", marco, "marco_nuevo", nuevoMarco)
		return true, nil
	}

	// Único dueño restante: promover la entrada en el lugar
	entrada.Escribible = true
	entrada.Privada = false

	s.actualizarMetricasFalloResuelto(pid)

	utils.InfoLog.Info("Página privada promovida a escribible", "pid", pid, "vpn", vpn, "marco", marco)
	return true, nil
}
