package memoria

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

// AsignarPagina asigna el marco libre de menor índice y lo mapea al vpn en la
// tabla activa, creando el directorio intermedio si todavía no existe.
// Falla exactamente cuando ningún marco tiene contador en cero.
func (s *Simulacion) AsignarPagina(vpn int, rw Acceso) (int, error) {
	pid := s.ProcesoActual.PID

	if vpn < 0 || vpn >= s.config.TotalPaginas() {
		utils.ErrorLog.Error("VPN fuera de rango", "pid", pid, "vpn", vpn)
		return -1, fmt.Errorf("%w: vpn %d", ErrVPNFueraDeRango, vpn)
	}

	// Buscar el marco libre de menor índice
	marco := -1
	for i, cuenta := range s.ContadorMarcos {
		if cuenta == 0 {
			marco = i
			break
		}
	}
	if marco == -1 {
		utils.ErrorLog.Error("No hay marcos libres disponibles", "pid", pid, "vpn", vpn)
		return -1, ErrMarcosAgotados
	}

	indice, posicion := s.indices(vpn)
	tabla := s.tablaDe(s.TablaActiva)

	// Crear el directorio si el slot está vacío
	if tabla.Directorios[indice] == 0 {
		tabla.Directorios[indice] = s.crearDirectorio()
		utils.InfoLog.Info("Directorio creado para el proceso", "pid", pid, "directorio", indice)
	}

	directorio := s.directorioDe(tabla.Directorios[indice])
	directorio.Entradas[posicion] = EntradaTabla{
		Valido:     true,
		Escribible: rw.EsEscritura(),
		Marco:      marco,
	}
	s.ContadorMarcos[marco]++

	s.actualizarMetricasAsignacion(pid)

	utils.InfoLog.Info("Marco asignado", "pid", pid, "vpn", vpn, "marco", marco, "escribible", rw.EsEscritura())
	return marco, nil
}

// LiberarPagina desmapea un vpn de la tabla activa: decrementa el contador del
// marco (con piso en cero) y resetea la entrada por completo. Liberar una
// página no mapeada no es detectado como error, pero tampoco toca el estado.
func (s *Simulacion) LiberarPagina(vpn int) {
	pid := s.ProcesoActual.PID

	entrada := s.entradaActiva(vpn)
	if entrada == nil || !entrada.Valido {
		utils.InfoLog.Warn("Liberación de página no mapeada ignorada", "pid", pid, "vpn", vpn)
		return
	}

	marco := entrada.Marco
	if s.ContadorMarcos[marco] > 0 {
		s.ContadorMarcos[marco]--
	}

	*entrada = EntradaTabla{}

	s.actualizarMetricasLiberacion(pid)

	utils.InfoLog.Info("Página liberada", "pid", pid, "vpn", vpn, "marco", marco,
		"mapeos_restantes", s.ContadorMarcos[marco])
}
