package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/memoria"
	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

// ejecutarScript lee el script de operaciones línea por línea y las aplica
// sobre la simulación. Las líneas vacías y los comentarios con # se ignoran.
func ejecutarScript(sim *memoria.Simulacion, config *memoria.ConfiguracionMemoria) error {
	archivo, err := os.Open(config.ScriptPath)
	if err != nil {
		return fmt.Errorf("error al abrir el script %s: %v", config.ScriptPath, err)
	}
	defer archivo.Close()

	utils.InfoLog.Info("Ejecutando script de operaciones", "archivo", config.ScriptPath)

	scanner := bufio.NewScanner(archivo)
	numeroLinea := 0
	for scanner.Scan() {
		numeroLinea++
		linea := strings.TrimSpace(scanner.Text())
		if linea == "" || strings.HasPrefix(linea, "#") {
			continue
		}

		if err := ejecutarOperacion(sim, linea); err != nil {
			return fmt.Errorf("línea %d (%q): %w", numeroLinea, linea, err)
		}

		utils.AplicarRetardo("operación de memoria", config.RetardoMemoria)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error leyendo el script: %v", err)
	}

	utils.InfoLog.Info("Script completado", "operaciones_leidas", numeroLinea)
	return nil
}

func ejecutarOperacion(sim *memoria.Simulacion, linea string) error {
	campos := strings.Fields(linea)
	comando := strings.ToUpper(campos[0])

	switch comando {
	case "ALLOC":
		if len(campos) != 3 {
			return fmt.Errorf("ALLOC requiere vpn y modo (r|w|rw)")
		}
		vpn, err := strconv.Atoi(campos[1])
		if err != nil {
			return fmt.Errorf("vpn inválido: %v", err)
		}
		rw, err := accesoDesdeString(campos[2])
		if err != nil {
			return err
		}
		marco, err := sim.AsignarPagina(vpn, rw)
		if errors.Is(err, memoria.ErrMarcosAgotados) {
			// Sin memoria no es fatal para la simulación: el proceso queda sin la página
			utils.ErrorLog.Error("Proceso sin memoria", "pid", sim.PIDActual(), "vpn", vpn)
			return nil
		}
		if err != nil {
			return err
		}
		utils.InfoLog.Info("ALLOC resuelto", "pid", sim.PIDActual(), "vpn", vpn, "marco", marco)
		return nil

	case "FREE":
		if len(campos) != 2 {
			return fmt.Errorf("FREE requiere vpn")
		}
		vpn, err := strconv.Atoi(campos[1])
		if err != nil {
			return fmt.Errorf("vpn inválido: %v", err)
		}
		sim.LiberarPagina(vpn)
		return nil

	case "READ", "WRITE":
		if len(campos) != 2 {
			return fmt.Errorf("%s requiere vpn", comando)
		}
		vpn, err := strconv.Atoi(campos[1])
		if err != nil {
			return fmt.Errorf("vpn inválido: %v", err)
		}
		rw := memoria.AccesoLectura
		if comando == "WRITE" {
			rw = memoria.AccesoLectura | memoria.AccesoEscritura
		}
		return accederPagina(sim, vpn, rw)

	case "SWITCH":
		if len(campos) != 2 {
			return fmt.Errorf("SWITCH requiere pid")
		}
		pid, err := strconv.Atoi(campos[1])
		if err != nil {
			return fmt.Errorf("pid inválido: %v", err)
		}
		// Un fork sin almacenamiento para la tabla es irrecuperable
		return sim.CambiarProceso(pid)

	case "DUMP":
		return sim.CrearDump(sim.PIDActual())

	case "METRICAS":
		utils.InfoLog.Info("Métricas acumuladas\n" + sim.ResumenMetricas())
		return nil

	default:
		return fmt.Errorf("comando desconocido: %s", comando)
	}
}

// accederPagina simula el acceso de la CPU: traduce y, si la traducción falla
// o es insuficiente, pide la resolución del fallo y reintenta.
func accederPagina(sim *memoria.Simulacion, vpn int, rw memoria.Acceso) error {
	estado, entrada := sim.Traducir(vpn)
	if estado == memoria.TraduccionValida && (!rw.EsEscritura() || entrada.Escribible) {
		utils.InfoLog.Info("Acceso resuelto por traducción directa",
			"pid", sim.PIDActual(), "vpn", vpn, "marco", entrada.Marco)
		return nil
	}

	resuelto, err := sim.AtenderFallo(vpn, rw)
	if errors.Is(err, memoria.ErrMarcosAgotados) {
		utils.ErrorLog.Error("Proceso sin memoria durante un fallo de página",
			"pid", sim.PIDActual(), "vpn", vpn)
		return nil
	}
	if err != nil {
		return err
	}
	if !resuelto {
		// Violación de acceso genuina: en un sistema completo el proceso termina acá
		utils.ErrorLog.Error("Fallo de segmentación", "pid", sim.PIDActual(), "vpn", vpn)
		return nil
	}

	_, entrada = sim.Traducir(vpn)
	utils.InfoLog.Info("Acceso resuelto tras fallo de página",
		"pid", sim.PIDActual(), "vpn", vpn, "marco", entrada.Marco)
	return nil
}

func accesoDesdeString(modo string) (memoria.Acceso, error) {
	switch strings.ToLower(modo) {
	case "r":
		return memoria.AccesoLectura, nil
	case "w", "rw":
		return memoria.AccesoLectura | memoria.AccesoEscritura, nil
	default:
		return 0, fmt.Errorf("modo de acceso desconocido: %s", modo)
	}
}
