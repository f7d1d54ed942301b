package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

var (
	InfoLog  = slog.Default()
	ErrorLog = slog.Default()
)

// NivelDesdeString convierte el nivel de log de la configuración a slog.Level
func NivelDesdeString(nivel string) slog.Level {
	switch nivel {
	case "debug", "DEBUG":
		return slog.LevelDebug
	case "info", "INFO":
		return slog.LevelInfo
	case "warn", "WARN":
		return slog.LevelWarn
	case "error", "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InicializarLogger configura los loggers globales sobre stdout
func InicializarLogger(logLevel string, moduleName string) {
	configurarLoggers(os.Stdout, logLevel, moduleName)
}

// InicializarLoggerConArchivo configura los loggers globales duplicando
// la salida en un archivo de log
func InicializarLoggerConArchivo(logLevel string, moduleName string, ruta string) error {
	logFile, err := os.OpenFile(ruta, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error al abrir archivo de log %s: %v", ruta, err)
	}

	configurarLoggers(io.MultiWriter(os.Stdout, logFile), logLevel, moduleName)
	return nil
}

func configurarLoggers(salida io.Writer, logLevel string, moduleName string) {
	handler := slog.NewTextHandler(salida, &slog.HandlerOptions{
		Level: NivelDesdeString(logLevel),
	})

	logger := slog.New(handler).With("modulo", moduleName)

	InfoLog = logger
	ErrorLog = logger
	slog.SetDefault(logger)
}
