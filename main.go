package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"nbnav/internal/config"
	"nbnav/internal/eventbus"
	"nbnav/internal/kernel"
	"nbnav/internal/logging"
	"nbnav/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		logLevel   string
		logFile    string
		noInput    bool
	)
	flag.StringVarP(&configPath, "config", "c", "", "Path to the config file (default "+config.DefaultPath()+")")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.StringVar(&logFile, "log-file", "", "Log file path")
	flag.BoolVar(&noInput, "no-input", false, "Do not focus the input cell on startup")
	flag.Parse()

	// Logging comes before the event bus, so its settings are read up front
	logSettings := config.DefaultConfig().Logging
	if boot, err := config.NewConfigService(configPath).Load(); err == nil {
		logSettings = boot.Logging
	}
	if logLevel != "" {
		logSettings.Level = logLevel
	}
	if logFile != "" {
		logSettings.File = logFile
	}

	// Set up logging
	log := logging.Nop()
	if logSettings.File != "" {
		fileLog, closeLog, err := logging.OpenFile(logSettings.File, logging.ParseLevel(logSettings.Level))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		} else {
			defer closeLog()
			log = fileLog
		}
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create event bus
	bus := eventbus.New(log)
	defer bus.Close()

	// Events for the UI are buffered until the program runs
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			// Channel full, drop event
			log.Warn("event channel full, dropping event", logging.F("type", e.Type()))
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventExecutionStarted,
		eventbus.EventCellExecuted,
		eventbus.EventError,
		eventbus.EventConfigLoaded,
		eventbus.EventConfigSaved,
	} {
		unsubscribe := bus.Subscribe(t, forward)
		defer unsubscribe()
	}
	for _, unsubscribe := range subscribeDocumentLog(bus, log) {
		defer unsubscribe()
	}
	if os.Getenv("NBNAV_E2E_TEST") == "1" {
		unsubscribe := bus.Subscribe(eventbus.EventAppReady, func(eventbus.DomainEvent) {
			fmt.Println("__READY__")
		})
		defer unsubscribe()
	}

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	} else if _, statErr := os.Stat(configSvc.Path()); os.IsNotExist(statErr) {
		// First run: write the defaults so they can be edited
		if err := configSvc.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Could not save config: %v\n", err)
		}
	}
	cfg.Logging = logSettings
	if noInput {
		cfg.UISettings.AllowInput = false
	}

	// The kernel subscribes to submissions automatically
	k := kernel.New(bus, cfg.Kernel, log)
	defer k.Close()

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, log)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			p.Quit()
		case <-ctx.Done():
		}
	}()

	// Start forwarding events to UI in background
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Info("starting ui", logging.F("config", configSvc.Path()))

	// Run the UI
	if _, err := p.Run(); err != nil && err != tea.ErrProgramKilled {
		log.Error("error running program", logging.F("err", err))
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		cancel()
		os.Exit(1)
	}
	log.Info("ui exited normally")
}

// subscribeDocumentLog records document changes in the debug log
func subscribeDocumentLog(bus eventbus.EventBus, log logging.Logger) []func() {
	log = log.With(logging.F("component", "document"))
	return []func(){
		bus.Subscribe(eventbus.EventCellAdded, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.CellAddedEvent); ok {
				log.Debug("cell added", logging.F("cell", ev.Cell.ID), logging.F("index", ev.Index))
			}
		}),
		bus.Subscribe(eventbus.EventCellRemoved, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.CellRemovedEvent); ok {
				log.Debug("cell removed", logging.F("cell", ev.ID))
			}
		}),
		bus.Subscribe(eventbus.EventCellsCleared, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.CellsClearedEvent); ok {
				log.Debug("cells cleared", logging.F("count", ev.Count))
			}
		}),
		bus.Subscribe(eventbus.EventCellMoved, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.CellMovedEvent); ok {
				log.Debug("cell moved", logging.F("cell", ev.ID), logging.F("from", ev.From), logging.F("to", ev.To))
			}
		}),
	}
}
