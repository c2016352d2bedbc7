package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"opsdeck/internal/api"
	"opsdeck/internal/config"
	"opsdeck/internal/eventbus"
	"opsdeck/internal/manager"
	"opsdeck/internal/ui"
)

func main() {
	serverFlag := flag.String("server", "", "backend base URL (overrides config)")
	tokenFlag := flag.String("token", "", "API token (overrides config and OPSDECK_TOKEN)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("opsdeck.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
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

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	if *serverFlag != "" {
		cfg.ServerURL = *serverFlag
	}
	if *tokenFlag != "" {
		cfg.APIToken = *tokenFlag
	} else if cfg.APIToken == "" {
		cfg.APIToken = os.Getenv("OPSDECK_TOKEN")
	}

	// Initialize services
	client := api.NewClient(cfg.ServerURL, cfg.APIToken, time.Duration(cfg.UISettings.RequestTimeout)*time.Second)
	repos := api.NewRepositories(client)
	mgrs := manager.NewManagers(repos, bus)
	profile := manager.NewProfileManager(client, bus)

	// Load the profile in the background; the UI picks it up as an event
	go func() {
		if err := profile.Load(ctx); err != nil {
			log.Printf("Error loading profile: %v", err)
			bus.Publish(eventbus.ErrorEvent{Message: "Could not load profile", Err: err})
		}
	}()

	// Create UI model
	debounce := time.Duration(cfg.UISettings.DebounceMs) * time.Millisecond
	uiModel := ui.NewModel(mgrs, profile, debounce)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventEntityCreated, forward)
	bus.Subscribe(eventbus.EventEntityUpdated, forward)
	bus.Subscribe(eventbus.EventEntityDeleted, forward)
	bus.Subscribe(eventbus.EventError, forward)
	bus.Subscribe(eventbus.EventProfileLoaded, forward)
	bus.Subscribe(eventbus.EventConfigLoaded, forward)
	bus.Subscribe(eventbus.EventRefreshRequested, forward)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	close(eventChan)
	cancel()
}
