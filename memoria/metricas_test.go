package memoria

import (
	"strings"
	"testing"
)

func TestMetricasPorProceso(t *testing.T) {
	sim := nuevaSimulacionPrueba(t, 3)

	// Asignación del padre, fork, copia por escritura del hijo y liberación
	sim.AsignarPagina(0, AccesoLectura|AccesoEscritura)
	if err := sim.CambiarProceso(1); err != nil {
		t.Fatalf("fork: %v", err)
	}
	if resuelto, err := sim.AtenderFallo(0, AccesoLectura|AccesoEscritura); err != nil || !resuelto {
		t.Fatalf("fallo COW: resuelto=%t err=%v", resuelto, err)
	}
	sim.LiberarPagina(0)

	padre := sim.Metricas(0)
	if padre != (MetricasProceso{MarcosAsignados: 1}) {
		t.Errorf("métricas del padre: %+v, se esperaba solo un marco asignado", padre)
	}

	esperadoHijo := MetricasProceso{
		AccesosTabla:    1,
		FallosResueltos: 1,
		CopiasCOW:       1,
		MarcosAsignados: 1,
		MarcosLiberados: 1,
		CambiosContexto: 1,
	}
	if hijo := sim.Metricas(1); hijo != esperadoHijo {
		t.Errorf("métricas del hijo: %+v, se esperaba %+v", hijo, esperadoHijo)
	}

	verificarInvariantes(t, sim)
}

func TestResumenMetricas(t *testing.T) {
	sim := nuevaSimulacionPrueba(t, 2)

	sim.AsignarPagina(0, AccesoLectura)
	if err := sim.CambiarProceso(1); err != nil {
		t.Fatalf("fork: %v", err)
	}

	resumen := sim.ResumenMetricas()
	for _, fragmento := range []string{"PID 0:", "PID 1:", "marcos_asignados=1", "cambios_contexto=1"} {
		if !strings.Contains(resumen, fragmento) {
			t.Errorf("el resumen no contiene %q:\n%s", fragmento, resumen)
		}
	}
}
