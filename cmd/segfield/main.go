// cmd/segfield/main.go
package main

import (
	"flag"
	"fmt"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"
	"path/filepath"

	"github.com/bethropolis/segfield/internal/app"
	"github.com/bethropolis/segfield/internal/config"
	"github.com/bethropolis/segfield/internal/logger"
)

func main() {
	// --- Argument & Flag Parsing ---
	flags := &config.Flags{}
	if _, err := flags.ParseFlags(flag.CommandLine, os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return
	}

	// --- Configuration ---
	cfg, cfgErr := config.LoadConfig(*flags.ConfigFilePath, flags)
	if cfg == nil {
		stlog.Fatalf("Failed to load configuration: %v", cfgErr)
	}

	// --- Logger Initialization ---
	logCloser, err := logger.Setup(cfg.Logger)
	if err != nil {
		stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.LogFilePath, err)
	}
	defer logCloser.Close()

	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	if cfgErr != nil {
		logger.Errorf("Configuration error, continuing with defaults where needed: %v", cfgErr)
	}
	logger.Debugf("Config file: %s", cfg.Path)
	if len(cfg.UnknownKeys) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", cfg.Path, cfg.UnknownKeys)
	}
	if len(cfg.FlagsApplied) > 0 {
		logger.DebugTagf("config", "Flag overrides applied: %v", cfg.FlagsApplied)
	}

	opts := app.Options{}
	if configDir, err := os.UserConfigDir(); err == nil {
		opts.ThemesDir = filepath.Join(configDir, config.AppName, config.ThemesDirName)
	}

	// --- Create and Run App ---
	formApp, err := app.NewApp(cfg.Config, opts)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		logCloser.Close()
		stlog.Fatalf("Error initializing application: %v", err)
	}

	if err := formApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		logCloser.Close()
		os.Exit(1)
	}

	// The screen is restored by now; results go to stdout.
	for _, v := range formApp.Values() {
		fmt.Printf("%s=%s\n", v.Label, v.Clean)
	}
	logger.Infof("%s finished.", config.AppName)
}
