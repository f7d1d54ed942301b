package memoria

import (
	"fmt"
	"sort"
	"strings"
)

// Funciones para actualizar métricas

func (s *Simulacion) metricasDe(pid int) *MetricasProceso {
	if _, existe := s.metricas[pid]; !existe {
		s.metricas[pid] = &MetricasProceso{}
	}
	return s.metricas[pid]
}

func (s *Simulacion) actualizarMetricasAccesoTabla(pid int) {
	s.metricasDe(pid).AccesosTabla++
}

func (s *Simulacion) actualizarMetricasFalloResuelto(pid int) {
	s.metricasDe(pid).FallosResueltos++
}

func (s *Simulacion) actualizarMetricasCopiaCOW(pid int) {
	s.metricasDe(pid).CopiasCOW++
}

func (s *Simulacion) actualizarMetricasAsignacion(pid int) {
	s.metricasDe(pid).MarcosAsignados++
}

func (s *Simulacion) actualizarMetricasLiberacion(pid int) {
	s.metricasDe(pid).MarcosLiberados++
}

func (s *Simulacion) actualizarMetricasCambioContexto(pid int) {
	s.metricasDe(pid).CambiosContexto++
}

// Metricas devuelve una copia de las métricas acumuladas de un proceso
func (s *Simulacion) Metricas(pid int) MetricasProceso {
	return *s.metricasDe(pid)
}

// ResumenMetricas arma un resumen legible de las métricas de todos los procesos
func (s *Simulacion) ResumenMetricas() string {
	pids := make([]int, 0, len(s.metricas))
	for pid := range s.metricas {
		pids = append(pids, pid)
	}
	sort.Ints(pids)

	var b strings.Builder
	for _, pid := range pids {
		m := s.metricas[pid]
		fmt.Fprintf(&b, "PID %d: accesos_tabla=%d fallos_resueltos=%d copias_cow=%d marcos_asignados=%d marcos_liberados=%d cambios_contexto=%d\n",
			pid, m.AccesosTabla, m.FallosResueltos, m.CopiasCOW, m.MarcosAsignados, m.MarcosLiberados, m.CambiosContexto)
	}
	return b.String()
}
