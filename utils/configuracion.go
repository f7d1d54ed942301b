package utils

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// CargarConfiguracion lee y decodifica un archivo de configuración JSON
func CargarConfiguracion[T any](ruta string) (*T, error) {
	slog.Info("Cargando configuración", "ruta", ruta)

	// Obtener ruta absoluta
	absPath, err := filepath.Abs(ruta)
	if err != nil {
		return nil, fmt.Errorf("error obteniendo ruta absoluta de %s: %v", ruta, err)
	}

	// Abrir archivo
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("error abriendo archivo de configuración %s: %v", absPath, err)
	}
	defer file.Close()

	// Decodificar JSON directamente al tipo genérico
	var config T
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("error decodificando configuración %s: %v", absPath, err)
	}

	slog.Info("Configuración cargada correctamente", "archivo", absPath)
	return &config, nil
}
