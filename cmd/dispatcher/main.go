package main

import (
	"chat-dispatch/auth"
	"chat-dispatch/dispatch"
	"chat-dispatch/domain/chat"
	"chat-dispatch/domain/event"
	"chat-dispatch/infrastructure/gateway"
	"chat-dispatch/infrastructure/storage"
	"chat-dispatch/infrastructure/world"
	"chat-dispatch/internal"
	"chat-dispatch/localization"
	"chat-dispatch/moderation"
	"chat-dispatch/observability"
	"chat-dispatch/runtime"
	"chat-dispatch/runtime/workers"
	"chat-dispatch/sink"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const (
	timelineCapacity = 100
	shutdownTimeout  = 5 * time.Second
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Dispatcher terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Returning instead of exiting lets every defer (database close included) run first.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	mutes := storage.NewMuteRepository(db, logger)
	blacklist := storage.NewBlacklistRepository(db, logger)

	// 3. Moderation & localization
	words, err := blacklist.Words()
	if err != nil {
		return exitRuntime, fmt.Errorf("blacklist loading failed: %w", err)
	}
	moderator, err := runtime.LoadModerator(logger, words, charReplacement)
	if err != nil {
		return exitRuntime, fmt.Errorf("moderator init failed: %w", err)
	}
	policy := config.Policy()
	filter := moderation.NewFilter(policy, moderator, logger)

	catalog, err := localization.LoadEmbedded()
	if err != nil {
		return exitRuntime, fmt.Errorf("locale catalog loading failed: %w", err)
	}

	// 4. World
	registry := runtime.NewRegistry(logger)
	w := world.New(logger, policy.ListenRangeSay)
	skills := world.NewSkills()
	animator := world.NewAnimator(logger)
	commands := world.NewCommands(logger, w, registry, mutes)
	emotes, err := world.LoadEmotes()
	if err != nil {
		return exitRuntime, fmt.Errorf("text emote table loading failed: %w", err)
	}
	channels := map[chat.Team]*world.ChannelManager{
		chat.TeamHorde:    world.NewChannelManager(logger, registry, w),
		chat.TeamAlliance: world.NewChannelManager(logger, registry, w),
	}
	for team, manager := range channels {
		w.SetChannels(team, manager)
	}
	roster, err := world.LoadRoster()
	if err != nil {
		return exitRuntime, fmt.Errorf("roster loading failed: %w", err)
	}
	if err := roster.Apply(w, skills, channels); err != nil {
		return exitRuntime, fmt.Errorf("roster apply failed: %w", err)
	}
	logger.Info("World ready", "players", len(roster.Tiers()), "text_emotes", emotes.Len())

	// 5. Setup Supervision & Orchestration
	telemetryChan := make(chan event.Event, config.BufferSize)
	eventChan := make(chan event.Event, config.BufferSize)
	engine := dispatch.NewEngine(dispatch.Deps{
		Directory: w,
		Transport: registry,
		Spatial:   w,
		Skills:    skills,
		Commands:  commands,
		Animator:  animator,
		Units:     w,
		Emotes:    emotes,
	}, policy, filter, catalog, eventChan, logger)

	sup := workers.NewSupervisor(logger).
		WithTelemetry(telemetryChan).
		WithRestartInterval(config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(logger, sup, engine, registry,
		eventChan, telemetryChan,
		config.NumberOfWorkers, config.BufferSize,
		config.MetricInterval, config.SinkTimeout)

	monitor := observability.NewProcessMonitor(logger, config.MetricInterval, registry)
	orchestrator.AddWorkers(monitor)

	timeline := sink.NewTimeline(timelineCapacity)
	censored := event.NewCensoredHandler(logger)
	orchestrator.AddSinks(sink.NewMuteSink(mutes, logger), timeline)
	orchestrator.AddHandlers(
		censored,
		event.NewLatencyHandler(logger, config.LatencyThreshold),
		event.NewChannelCapacityHandler(logger, config.LowCapacityThreshold),
		event.NewWorkerRestartedAfterPanicHandler(logger, orchestrator.Counter()),
	)

	if logger.Enabled(ctx, slog.LevelDebug) {
		stats := func() map[string]any {
			return map[string]any{
				"sessions":           registry.Len(),
				"moderation_actions": len(timeline.Recent()),
				"counters":           orchestrator.Counter().Snapshot(),
				"process":            monitor.Latest(),
			}
		}
		debugServer := &http.Server{
			Addr:              config.DebugAddr,
			Handler:           internal.NewDebugServer(db, logger, storage.InspectRow, stats),
			ReadHeaderTimeout: 5 * time.Second,
		}
		logger.Info("Debug Badger inspector available", "url", "http://localhost"+config.DebugAddr+"/inspect")
		go func() { _ = debugServer.ListenAndServe() }()
		defer func() { _ = debugServer.Close() }()
	}

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 2)

	go func() {
		logger.Info("Starting orchestrator...")
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	// 7. Websocket gateway
	mux := http.NewServeMux()
	var authenticator gateway.Authenticator = gateway.NewQueryAuthenticator(w, roster.Tiers())
	if config.AuthSecret != "" {
		issuer := auth.NewIssuer(config.AuthSecret, config.AuthTokenDuration)
		accounts := storage.NewAccountRepository(db, logger)
		auth.Routes(mux, auth.NewService(logger, accounts, w, roster.Tiers(), issuer), logger)
		authenticator = auth.NewTokenAuthenticator(issuer, w)
		logger.Info("Token authentication enabled", "token_duration", config.AuthTokenDuration)
	} else {
		logger.Warn("AUTH_SECRET is empty, players connect with a bare guid")
	}
	gw := gateway.New(logger, orchestrator, authenticator, w, mutes, config.BufferSize)
	mux.Handle("/ws", gw)
	server := &http.Server{
		Addr:              config.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Starting websocket gateway", "address", config.ListenAddr, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("gateway error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		orchestrator.Stop()
		return exitRuntime, err
	}

	// 9. Final Cleanup (Graceful Shutdown)
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Gateway shutdown incomplete", "error", err)
	}
	orchestrator.Stop()
	logger.Info("Program stopped cleanly", "censored_hits", censored.Total())

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}
