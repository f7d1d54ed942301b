package memoria

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

// NuevaSimulacion inicializa el estado completo de la simulación y crea el
// proceso inicial con una tabla de páginas vacía.
func NuevaSimulacion(config *ConfiguracionMemoria, pidInicial int) (*Simulacion, error) {
	if err := config.Validar(); err != nil {
		return nil, err
	}

	utils.InfoLog.Info("Inicializando memoria",
		"total_marcos", config.TotalMarcos,
		"entradas_por_tabla", config.EntradasPorTabla,
		"cantidad_directorios", config.CantidadDirectorios,
		"maximo_procesos", config.MaximoProcesos)

	s := &Simulacion{
		config:         config,
		ContadorMarcos: make([]int, config.TotalMarcos),
		metricas:       make(map[int]*MetricasProceso),
	}

	tabla, err := s.crearTabla()
	if err != nil {
		return nil, fmt.Errorf("error creando la tabla del proceso inicial: %w", err)
	}

	inicial := &Proceso{PID: pidInicial, Tabla: tabla, Estado: EstadoExec}
	s.ProcesoActual = inicial
	s.TablaActiva = tabla

	utils.InfoLog.Info(fmt.Sprintf("## PID: %d - Proceso inicial creado - Estado: %s", pidInicial, EstadoExec))

	return s, nil
}

// PIDActual devuelve el PID del proceso en ejecución
func (s *Simulacion) PIDActual() int {
	return s.ProcesoActual.PID
}

// MarcosLibres cuenta los marcos con contador en cero
func (s *Simulacion) MarcosLibres() int {
	count := 0
	for _, cuenta := range s.ContadorMarcos {
		if cuenta == 0 {
			count++
		}
	}
	return count
}
