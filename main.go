package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"m3search/internal/config"
	"m3search/internal/domain"
	"m3search/internal/landing"
	"m3search/internal/ui"
)

func main() {
	os.Exit(run())
}

// run owns every deferred cleanup so main can exit with its code
func run() int {
	// Parse command line arguments
	var configPath, logPath string
	var noAltScreen bool
	flag.StringVar(&configPath, "config", "", "Path to the TOML config file (default: user config dir)")
	flag.StringVar(&configPath, "c", "", "Path to the TOML config file (shorthand)")
	flag.StringVar(&logPath, "log", "m3search.log", "Path to the log file")
	flag.BoolVar(&noAltScreen, "no-alt-screen", false, "Render inline instead of on the alternate screen")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n\nA people search screen with Recent and Followed tabs.\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// Set up logging; the terminal belongs to the UI
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	cfg := loadOrCreateConfig(configSvc)

	// One state container per screen session
	store := landing.New()
	defer store.Close()

	uiModel := ui.NewModel(store, cfg)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UISettings.AltScreen && !noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Forward every published snapshot to the UI
	stopForwarding := store.Forward(func(s domain.State) {
		p.Send(ui.SnapshotMsg{State: s})
	})
	defer stopForwarding()

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		return 1
	}
	log.Printf("UI exited normally")
	return 0
}

// loadOrCreateConfig loads the config file, writing defaults when none exists.
// A broken file is left untouched and the defaults are used for this run.
func loadOrCreateConfig(configSvc config.ConfigService) *config.Config {
	path := configSvc.Path()

	if _, err := os.Stat(path); err == nil {
		cfg, err := configSvc.Load()
		if err != nil {
			log.Printf("Failed to load config from %s, using defaults: %v", path, err)
			return config.DefaultConfig()
		}
		log.Printf("Loaded config from %s", path)
		return cfg
	}

	log.Printf("Creating new config at %s", path)
	cfg := config.DefaultConfig()
	if err := configSvc.Save(cfg); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
	return cfg
}
