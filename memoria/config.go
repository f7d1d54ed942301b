package memoria

import "fmt"

// ConfiguracionMemoria representa la configuración del simulador de memoria virtual
type ConfiguracionMemoria struct {
	TotalMarcos         int    `json:"TOTAL_MARCOS"`         // Cantidad de marcos físicos simulados
	EntradasPorTabla    int    `json:"ENTRADAS_POR_TABLA"`   // Entradas por directorio de páginas
	CantidadDirectorios int    `json:"CANTIDAD_DIRECTORIOS"` // Slots de directorio en cada tabla de primer nivel
	MaximoProcesos      int    `json:"MAXIMO_PROCESOS"`      // Tope de tablas de páginas (0 = sin tope)
	LogLevel            string `json:"LOG_LEVEL"`
	ArchivoLog          string `json:"ARCHIVO_LOG"`
	RetardoMemoria      int    `json:"RETARDO_MEMORIA"` // Retardo simulado por operación, en ms
	ScriptPath          string `json:"SCRIPT_PATH"`     // Script de operaciones a ejecutar
	DumpPath            string `json:"DUMP_PATH"`       // Directorio para los archivos de dump
}

// Validar verifica que la geometría de la memoria sea utilizable
func (c *ConfiguracionMemoria) Validar() error {
	if c.TotalMarcos <= 0 {
		return fmt.Errorf("TOTAL_MARCOS debe ser positivo, se recibió %d", c.TotalMarcos)
	}
	if c.EntradasPorTabla <= 0 {
		return fmt.Errorf("ENTRADAS_POR_TABLA debe ser positivo, se recibió %d", c.EntradasPorTabla)
	}
	if c.CantidadDirectorios <= 0 {
		return fmt.Errorf("CANTIDAD_DIRECTORIOS debe ser positivo, se recibió %d", c.CantidadDirectorios)
	}
	if c.MaximoProcesos < 0 {
		return fmt.Errorf("MAXIMO_PROCESOS no puede ser negativo, se recibió %d", c.MaximoProcesos)
	}
	return nil
}

// TotalPaginas devuelve el tamaño del espacio de direcciones en páginas
func (c *ConfiguracionMemoria) TotalPaginas() int {
	return c.CantidadDirectorios * c.EntradasPorTabla
}
