package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/notesync/internal/server/handlers"
	"github.com/iudanet/notesync/internal/server/middleware"
	"github.com/iudanet/notesync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "Listen address")
	dbPath := flag.String("db", "notesync-server.db", "Path to SQLite database")
	baseURL := flag.String("base-url", "http://localhost:8080", "Externally visible base URL for blob links")
	nodeID := flag.String("node-id", "server", "HLC node id of this authority")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := run(logger, *addr, *dbPath, *baseURL, *nodeID); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, addr, dbPath, baseURL, nodeID string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	syncHandler := handlers.NewSyncHandler(logger, store, nodeID)
	uploadHandler := handlers.NewUploadHandler(logger, store, baseURL)
	presenceHandler := handlers.NewPresenceHandler(logger, syncHandler)
	healthHandler := handlers.NewHealthHandler(logger, store)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/sync", syncHandler.HandleSync)
	mux.HandleFunc("/api/v1/uploads", uploadHandler.HandleUpload)
	mux.HandleFunc("/files/", uploadHandler.HandleDownload)
	mux.HandleFunc("/api/v1/presence", presenceHandler.HandlePresence)
	mux.HandleFunc("/api/v1/health", healthHandler.Health)

	// Бинарные загрузки дороже обычных запросов и лимитируются жестче
	limits := []middleware.PathRateLimit{
		{Path: "/api/v1/uploads", Rate: 30, Window: time.Minute},
	}

	var handler http.Handler = mux
	handler = middleware.RateLimitMiddleware(limits, 600, time.Minute, logger)(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health", "/api/v1/presence"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening", "addr", addr, "version", Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func printVersion() {
	fmt.Printf("NoteSync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
