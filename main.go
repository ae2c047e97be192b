package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"warships/app"
	"warships/config"
)

func main() {
	if err := config.Load("."); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// The terminal belongs to the TUI, so the log goes to a file.
	logFile, err := os.OpenFile(config.GetString("logFile"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error opening log file:", err)
		os.Exit(1)
	}
	defer logFile.Close()

	var logLevel zerolog.Level
	switch config.GetString("logLevel") {
	case "trace":
		logLevel = zerolog.TraceLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(logFile).With().Timestamp().Logger().Level(logLevel)

	app.New(logger).Start()
}
