package memoria

import "errors"

// EntradaTabla representa una entrada en un directorio de páginas
type EntradaTabla struct {
	Valido     bool // Indica si la entrada mapea una página
	Escribible bool // Indica si la página admite escrituras
	Privada    bool // Marca de copy-on-write
	Marco      int  // Número de marco físico asignado
}

// DirectorioPaginas agrupa las entradas de segundo nivel
type DirectorioPaginas struct {
	Entradas []EntradaTabla
}

// TablaPaginas es la tabla de primer nivel de un proceso. Cada slot guarda
// el handle de un directorio dentro del pool de la simulación (0 = ausente).
type TablaPaginas struct {
	Directorios []int
}

// Proceso representa un proceso simulado con su tabla de páginas propia
type Proceso struct {
	PID    int
	Tabla  int // Handle de la tabla dentro del pool
	Estado string
}

// MetricasProceso almacena estadísticas sobre el uso de memoria de un proceso
type MetricasProceso struct {
	AccesosTabla    int
	FallosResueltos int
	CopiasCOW       int
	MarcosAsignados int
	MarcosLiberados int
	CambiosContexto int
}

// Acceso indica el tipo de acceso solicitado sobre una página
type Acceso int

const (
	AccesoLectura Acceso = 1 << iota
	AccesoEscritura
)

// EsEscritura indica si el acceso incluye escritura
func (a Acceso) EsEscritura() bool {
	return a&AccesoEscritura != 0
}

// Simulacion contiene todo el estado de una corrida: los pools de tablas y
// directorios, los contadores de uso de cada marco, el proceso en ejecución
// y la cola de listos. No hay estado global del paquete.
type Simulacion struct {
	config *ConfiguracionMemoria

	tablas      []TablaPaginas      // Pool de tablas de primer nivel
	directorios []DirectorioPaginas // Pool de directorios, nunca se destruyen

	ContadorMarcos []int // Cantidad de mapeos vigentes por marco físico

	ProcesoActual *Proceso
	TablaActiva   int // Handle de la tabla del proceso actual
	ColaReady     []*Proceso

	metricas map[int]*MetricasProceso
}

var (
	// ErrMarcosAgotados indica que ningún marco tiene contador en cero
	ErrMarcosAgotados = errors.New("no hay marcos libres disponibles")

	// ErrEstructurasAgotadas indica que no se pudo reservar otra tabla de páginas
	ErrEstructurasAgotadas = errors.New("no se pudo reservar almacenamiento para otra tabla de páginas")

	// ErrVPNFueraDeRango indica un número de página fuera del espacio de direcciones
	ErrVPNFueraDeRango = errors.New("número de página fuera del espacio de direcciones")

	// ErrProcesoInexistente indica un pid que no está ejecutando ni en la cola de listos
	ErrProcesoInexistente = errors.New("el proceso no existe")
)
