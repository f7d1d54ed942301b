package main

import (
	"fmt"
	"os"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/memoria"
	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

func main() {
	// Verificar argumentos
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Uso: %s <archivo_configuracion>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ejemplo: %s configs/memoria-config.json\n", os.Args[0])
		os.Exit(1)
	}

	// Inicializar logger ANTES de usarlo
	utils.InicializarLogger("INFO", "Memoria")

	utils.InfoLog.Info("Iniciando módulo Memoria")

	rutaConfig := os.Args[1]
	config, err := utils.CargarConfiguracion[memoria.ConfiguracionMemoria](rutaConfig)
	if err != nil {
		utils.ErrorLog.Error("Error cargando configuración", "error", err)
		os.Exit(1)
	}

	// Actualizar logger con configuración del archivo
	if config.ArchivoLog != "" {
		if err := utils.InicializarLoggerConArchivo(config.LogLevel, "Memoria", config.ArchivoLog); err != nil {
			utils.ErrorLog.Error("Error configurando archivo de log", "error", err)
			os.Exit(1)
		}
	} else {
		utils.InicializarLogger(config.LogLevel, "Memoria")
	}
	utils.InfoLog.Info("Configuración cargada", "nivel_log", config.LogLevel, "config_path", rutaConfig)

	// Verificar directorio de dumps
	if config.DumpPath != "" {
		if err := os.MkdirAll(config.DumpPath, 0755); err != nil {
			utils.InfoLog.Warn("No se pudo crear directorio para dumps", "error", err)
		}
	}

	// Crear la simulación con el proceso inicial
	sim, err := memoria.NuevaSimulacion(config, 0)
	if err != nil {
		utils.ErrorLog.Error("Error inicializando la simulación", "error", err)
		os.Exit(1)
	}

	utils.InfoLog.Info("Memoria inicializada correctamente", "marcos_libres", sim.MarcosLibres())

	// Ejecutar el script de operaciones
	if err := ejecutarScript(sim, config); err != nil {
		utils.ErrorLog.Error("Ejecución abortada", "error", err)
		os.Exit(1)
	}

	utils.InfoLog.Info("Simulación finalizada",
		"pid_actual", sim.PIDActual(),
		"marcos_libres", sim.MarcosLibres())
}
