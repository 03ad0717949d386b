package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"face-chat/auth"
	"face-chat/infrastructure/api"
	"face-chat/infrastructure/storage"
	"face-chat/infrastructure/ws"
	"face-chat/internal"
	"face-chat/moderation"
	"face-chat/observability"
	"face-chat/presence"
	"face-chat/services"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so every defer (database close, shutdown)
// executes before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	replacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Profile image store (BadgerDB)
	// Presence state is volatile by design; only profile images persist.
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLogger(nil))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Presence core
	registry := presence.NewRegistry()
	coordinator := presence.NewCoordinator(logger, registry)

	censor, err := moderation.NewCensor(config.Words(), replacement)
	if err != nil {
		return exitConfig, fmt.Errorf("building censor: %w", err)
	}
	chatService := services.NewChatService(logger, registry, censor)

	// 4. Auth bridge
	profileRepository := storage.NewProfileRepository(db, logger)
	faceClient := auth.NewFaceClient(config.FaceRecognitionURL, config.VerifyTimeout)
	authService := services.NewAuthService(logger, faceClient, profileRepository, coordinator)

	// 5. Transport
	hub := ws.NewHub(logger, registry)
	router := ws.NewRouter(logger, coordinator, chatService, hub)
	websocketHandler := ws.NewHandler(logger, hub, router, config.Origins(), config.ConnectionBufferSize)

	monitor := observability.NewMonitor(logger)
	handlers := api.NewHandlers(logger, authService, profileRepository, monitor)
	server := api.NewServer(config.Host, config.Port, handlers.Routes(websocketHandler))

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down...")
		hub.Shutdown()
		if err := api.Shutdown(server, config.ShutdownTimeout); err != nil {
			return exitRuntime, fmt.Errorf("shutdown error: %w", err)
		}
		return exitOK, nil
	case err := <-errChan:
		return exitRuntime, err
	}
}
