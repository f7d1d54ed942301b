package memoria

import (
	"errors"
	"testing"
)

func TestAsignarDevuelveMarcoMasChico(t *testing.T) {
	sim := nuevaSimulacionPrueba(t, 3)

	for vpn, esperado := range []int{0, 1, 2} {
		marco, err := sim.AsignarPagina(vpn, AccesoLectura|AccesoEscritura)
		if err != nil {
			t.Fatalf("AsignarPagina(%d): %v", vpn, err)
		}
		if marco != esperado {
			t.Errorf("AsignarPagina(%d) devolvió el marco %d, se esperaba %d", vpn, marco, esperado)
		}
	}

	verificarInvariantes(t, sim)
}

func TestAsignarTrasLiberarReutilizaElMenor(t *testing.T) {
	sim := nuevaSimulacionPrueba(t, 3)

	if marco, _ := sim.AsignarPagina(0, AccesoLectura); marco != 0 {
		t.Fatalf("primera asignación devolvió %d, se esperaba 0", marco)
	}
	sim.LiberarPagina(0)

	marco, err := sim.AsignarPagina(1, AccesoLectura)
	if err != nil {
		t.Fatalf("AsignarPagina tras liberar: %v", err)
	}
	if marco != 0 {
		t.Errorf("se esperaba reutilizar el marco 0, se obtuvo %d", marco)
	}

	verificarInvariantes(t, sim)
}

func TestAsignarAgotaMarcos(t *testing.T) {
	const totalMarcos = 2
	sim := nuevaSimulacionPrueba(t, totalMarcos)

	for vpn := 0; vpn < totalMarcos; vpn++ {
		if _, err := sim.AsignarPagina(vpn, AccesoLectura); err != nil {
			t.Fatalf("AsignarPagina(%d): %v", vpn, err)
		}
	}

	_, err := sim.AsignarPagina(totalMarcos, AccesoLectura)
	if !errors.Is(err, ErrMarcosAgotados) {
		t.Fatalf("se esperaba ErrMarcosAgotados, se obtuvo %v", err)
	}

	// El fallo no debe haber tocado la tabla
	if estado, _ := sim.Traducir(totalMarcos); estado == TraduccionValida {
		t.Errorf("la asignación fallida dejó una entrada válida para vpn %d", totalMarcos)
	}
	verificarInvariantes(t, sim)
}

func TestAsignarRespetaModoDeAcceso(t *testing.T) {
	sim := nuevaSimulacionPrueba(t, 4)

	sim.AsignarPagina(0, AccesoLectura)
	sim.AsignarPagina(1, AccesoLectura|AccesoEscritura)

	if _, entrada := sim.Traducir(0); entrada.Escribible {
		t.Error("una página asignada solo para lectura quedó escribible")
	}
	if _, entrada := sim.Traducir(1); !entrada.Escribible {
		t.Error("una página asignada para escritura quedó de solo lectura")
	}
	for _, vpn := range []int{0, 1} {
		if _, entrada := sim.Traducir(vpn); entrada.Privada {
			t.Errorf("vpn %d quedó marcada como privada al asignarse", vpn)
		}
	}
}

func TestLiberarReseteaLaEntrada(t *testing.T) {
	sim := nuevaSimulacionPrueba(t, 2)

	marco, _ := sim.AsignarPagina(5, AccesoLectura|AccesoEscritura)
	sim.LiberarPagina(5)

	if estado, _ := sim.Traducir(5); estado != TraduccionEntradaInvalida {
		t.Errorf("tras liberar, la traducción devolvió %v, se esperaba entrada inválida", estado)
	}
	if sim.ContadorMarcos[marco] != 0 {
		t.Errorf("el contador del marco %d quedó en %d tras liberar", marco, sim.ContadorMarcos[marco])
	}
	verificarInvariantes(t, sim)
}

func TestLiberarPaginaNoMapeada(t *testing.T) {
	sim := nuevaSimulacionPrueba(t, 2)
	sim.AsignarPagina(0, AccesoLectura)

	// Ni el vpn sin directorio ni el vpn inválido deben alterar el estado
	sim.LiberarPagina(9)
	sim.LiberarPagina(1)
	sim.LiberarPagina(-1)

	if sim.ContadorMarcos[0] != 1 {
		t.Errorf("liberaciones inválidas alteraron el contador: %d", sim.ContadorMarcos[0])
	}
	verificarInvariantes(t, sim)
}

func TestAsignarVPNFueraDeRango(t *testing.T) {
	sim := nuevaSimulacionPrueba(t, 2)

	if _, err := sim.AsignarPagina(sim.config.TotalPaginas(), AccesoLectura); !errors.Is(err, ErrVPNFueraDeRango) {
		t.Fatalf("se esperaba ErrVPNFueraDeRango, se obtuvo %v", err)
	}
	verificarInvariantes(t, sim)
}
