package memoria

import (
	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

// EstadoTraduccion clasifica el resultado de traducir un vpn
type EstadoTraduccion int

const (
	TraduccionSinDirectorio EstadoTraduccion = iota
	TraduccionEntradaInvalida
	TraduccionValida
)

// Traducir busca el mapeo de un vpn en la tabla activa. Es una función pura
// sobre el estado: clasifica el resultado sin modificar nada.
func (s *Simulacion) Traducir(vpn int) (EstadoTraduccion, EntradaTabla) {
	if s.TablaActiva == 0 || vpn < 0 || vpn >= s.config.TotalPaginas() {
		return TraduccionSinDirectorio, EntradaTabla{}
	}

	indice, posicion := s.indices(vpn)
	tabla := s.tablaDe(s.TablaActiva)

	handle := tabla.Directorios[indice]
	if handle == 0 {
		return TraduccionSinDirectorio, EntradaTabla{}
	}

	entrada := s.directorioDe(handle).Entradas[posicion]
	if !entrada.Valido {
		return TraduccionEntradaInvalida, EntradaTabla{}
	}

	return TraduccionValida, entrada
}

// indices calcula las componentes de un vpn dentro de la estructura de dos niveles
func (s *Simulacion) indices(vpn int) (directorio int, posicion int) {
	return vpn / s.config.EntradasPorTabla, vpn % s.config.EntradasPorTabla
}

// entradaActiva devuelve un puntero a la entrada de un vpn en la tabla activa,
// o nil si el directorio no existe. Uso interno de los módulos que mutan PTEs.
func (s *Simulacion) entradaActiva(vpn int) *EntradaTabla {
	if s.TablaActiva == 0 || vpn < 0 || vpn >= s.config.TotalPaginas() {
		return nil
	}

	indice, posicion := s.indices(vpn)
	handle := s.tablaDe(s.TablaActiva).Directorios[indice]
	if handle == 0 {
		return nil
	}

	return &s.directorioDe(handle).Entradas[posicion]
}

//
// Pools de almacenamiento: tablas y directorios se referencian por handles
// enteros (base 1) para que "existe" sea "índice poblado". Los directorios,
// una vez creados, nunca se destruyen.
//

// crearTabla reserva una tabla de primer nivel vacía y devuelve su handle
func (s *Simulacion) crearTabla() (int, error) {
	if s.config.MaximoProcesos > 0 && len(s.tablas) >= s.config.MaximoProcesos {
		utils.ErrorLog.Error("Pool de tablas agotado", "maximo_procesos", s.config.MaximoProcesos)
		return 0, ErrEstructurasAgotadas
	}

	s.tablas = append(s.tablas, TablaPaginas{
		Directorios: make([]int, s.config.CantidadDirectorios),
	})

	handle := len(s.tablas)
	utils.InfoLog.Debug("Tabla de páginas creada", "handle", handle)
	return handle, nil
}

// crearDirectorio reserva un directorio con todas sus entradas inválidas
func (s *Simulacion) crearDirectorio() int {
	s.directorios = append(s.directorios, DirectorioPaginas{
		Entradas: make([]EntradaTabla, s.config.EntradasPorTabla),
	})

	handle := len(s.directorios)
	utils.InfoLog.Debug("Directorio creado", "handle", handle)
	return handle
}

// duplicarDirectorio crea una copia por valor de un directorio existente
func (s *Simulacion) duplicarDirectorio(handle int) int {
	origen := s.directorioDe(handle)

	copia := DirectorioPaginas{Entradas: make([]EntradaTabla, len(origen.Entradas))}
	copy(copia.Entradas, origen.Entradas)

	s.directorios = append(s.directorios, copia)
	return len(s.directorios)
}

func (s *Simulacion) tablaDe(handle int) *TablaPaginas {
	return &s.tablas[handle-1]
}

func (s *Simulacion) directorioDe(handle int) *DirectorioPaginas {
	return &s.directorios[handle-1]
}
