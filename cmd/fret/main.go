// cmd/fret/main.go
package main

import (
	"flag"
	"fmt"
	stlog "log" // for fatal errors before the logger is ready
	"os"

	"github.com/bethropolis/fret/internal/app"
	"github.com/bethropolis/fret/internal/config"
	"github.com/bethropolis/fret/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	flags := config.NewFlags(flag.CommandLine)
	args, err := flags.Parse(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}

	var filePath string
	if len(args) > 0 {
		filePath = args[0]
	}

	cfg, cfgErr := config.LoadConfig(*flags.ConfigFilePath, flags)
	if cfg == nil {
		stlog.Fatalf("Failed to load configuration: %v", cfgErr)
	}

	// stderr belongs to the terminal UI, so default to a log file.
	if cfg.Logger.LogFilePath == "" {
		cfg.Logger.LogFilePath = config.DefaultLogFileName
	}
	output, closeLog, err := logger.OpenOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("%v", err)
	}
	defer closeLog()

	logger.SetDebugFilter(*flags.DebugLog)
	logger.Init(cfg.Logger, output)
	if cfgErr != nil {
		logger.Warnf("Config file problem, using defaults: %v", cfgErr)
	}

	logger.Infof("Starting %s %s...", config.AppName, version)
	logger.Debugf("Log file: %s", cfg.Logger.LogFilePath)
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	fretApp, err := app.NewApp(cfg, filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		closeLog()
		os.Exit(1)
	}

	if err := fretApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		closeLog()
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
