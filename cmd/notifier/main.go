package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"notification-hub/auth"
	"notification-hub/contract"
	"notification-hub/infrastructure/gateway"
	"notification-hub/infrastructure/rest"
	"notification-hub/internal"
	"notification-hub/repositories"
	"notification-hub/runtime"
	"notification-hub/runtime/workers"
	"notification-hub/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes reported to the service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Notifier terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal stops the process.
// Deferred cleanups (the badger lock mostly) run before main exits.
func run() (int, error) {
	// 1. Configuration & Logger
	// A missing .env file is fine, the environment alone may be complete.
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Notification store (optional)
	var repository contract.INotificationRepository
	if config.PersistNotifications {
		db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
		if err != nil {
			return exitRuntime, fmt.Errorf("database opening failed: %w", err)
		}
		defer func() {
			logger.Info("Closing BadgerDB...")
			_ = db.Close()
		}()

		if config.DebugPort != nil {
			endpoint := "/inspect"
			url := fmt.Sprintf("http://localhost:%d%s?prefix=notif:", *config.DebugPort, endpoint)
			logger.Info("Debug Badger inspector available", "url", url)
			database.StartDebugServer(db, *config.DebugPort, endpoint, NotificationMapper)
		}
		repository = repositories.NewNotificationRepository(db, logger)
	} else {
		logger.Warn("Notification store disabled, read-state operations are unavailable")
	}

	// 3. Presence & fan-out
	registry := runtime.NewRegistry(logger)
	dispatcher := runtime.NewDispatcher(logger, registry, config.SinkTimeout)
	service := services.NewNotificationService(logger, dispatcher, repository)
	tokens := auth.NewTokenManager(config.JWTSecret, config.AuthTokenDuration)
	origins := config.Origins()

	// 4. Transport
	socket := gateway.NewHandler(logger, registry, service, tokens, gateway.Options{
		AllowedOrigins: origins,
		AuthRequired:   config.AuthRequired,
		BufferSize:     config.ConnectionBufferSize,
		IdleTimeout:    config.IdleTimeout,
	})
	router := rest.NewRouter(logger, service, registry, tokens, rest.RouterOptions{
		AllowedOrigins: origins,
		Websocket:      socket,
		WebsocketPath:  gateway.Path,
	})
	server := &http.Server{
		Addr:    config.Address(),
		Handler: router,
		// Open sessions end with the process context.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	// 5. Supervision
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	sup.Add(
		workers.NewHTTPServerWorker(logger, server),
		workers.NewPresenceReporter(logger, registry, config.ReportInterval),
	)
	if config.PersistNotifications {
		sup.Add(workers.NewRetentionWorker(logger, service, config.RetentionPeriod, config.RetentionInterval))
	}

	logger.Info("Starting notifier",
		"addr", server.Addr,
		"websocket", gateway.Path,
		"auth_required", config.AuthRequired,
		"persist", config.PersistNotifications,
	)
	sup.Run(ctx)

	logger.Info("Program stopped cleanly")
	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	return options.WithLoggingLevel(badger.WARNING)
}

// NotificationMapper renders a stored notification in the debug inspector.
func NotificationMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	rec, err := repositories.DecodeRecord(val)
	if err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}
	n := rec.Notification
	row.Type = string(n.Kind)
	row.Detail = n.Title + ": " + n.Body
	row.Scores = string(n.Priority)
	if rec.IsRead() {
		row.Scores += " read"
	}
	return row
}
