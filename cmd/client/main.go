package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	httpClient "github.com/iudanet/notesync/internal/client/api"
	"github.com/iudanet/notesync/internal/client/clock"
	"github.com/iudanet/notesync/internal/client/data"
	"github.com/iudanet/notesync/internal/client/mutate"
	"github.com/iudanet/notesync/internal/client/retention"
	"github.com/iudanet/notesync/internal/client/storage/boltdb"
	syncsvc "github.com/iudanet/notesync/internal/client/sync"
	"github.com/iudanet/notesync/internal/client/upload"
	"github.com/iudanet/notesync/internal/models"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "notesync-client.db", "Path to local database")
	quota := flag.Int64("quota", 1<<30, "Local storage quota in bytes")
	syncEvery := flag.Duration("sync-interval", 30*time.Second, "Sync period in agent mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApp(ctx, logger, *serverURL, *dbPath, *quota)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer app.close()

	if err := app.run(ctx, args, *syncEvery); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app связывает все клиентские сервисы над одним bolt хранилищем
type app struct {
	store       *boltdb.Storage
	clocks      *clock.Service
	mutators    mutate.Service
	sync        syncsvc.Service
	coordinator *upload.Coordinator
	collector   *retention.Collector
	attachments data.Service
	logger      *slog.Logger
}

func newApp(ctx context.Context, logger *slog.Logger, serverURL, dbPath string, quota int64) (*app, error) {
	store, err := boltdb.New(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	clocks, err := clock.NewService(ctx, store, logger)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to init clock: %w", err)
	}

	apiClient := httpClient.NewClient(serverURL)
	mutators := mutate.NewService(store, store, clocks, logger)

	pressure, err := retention.NewBoltPressure(store, quota)
	if err != nil {
		clocks.Close()
		store.Close()
		return nil, fmt.Errorf("failed to init pressure estimator: %w", err)
	}

	return &app{
		store:       store,
		clocks:      clocks,
		mutators:    mutators,
		sync:        syncsvc.NewService(apiClient, store, store, store, clocks, logger),
		coordinator: upload.NewCoordinator(store, apiClient, mutators, logger, upload.DefaultConfig()),
		collector:   retention.NewCollector(store, pressure, logger, retention.DefaultConfig()),
		attachments: data.NewService(store, logger),
		logger:      logger,
	}, nil
}

func (a *app) close() {
	a.clocks.Close()
	if err := a.store.Close(); err != nil {
		a.logger.Error("failed to close database", "error", err)
	}
}

func (a *app) run(ctx context.Context, args []string, syncEvery time.Duration) error {
	command := args[0]

	switch command {
	case "agent":
		return a.runAgent(ctx, syncEvery)
	case "sync":
		return a.runSync(ctx)
	case "add-note":
		if len(args) < 2 {
			return fmt.Errorf("usage: add-note <title>")
		}
		doc, err := a.mutators.CreateNote(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Created note %s (entity %s)\n", doc.ID, doc.Root.Attrs.EntityID)
		return nil
	case "add-task":
		if len(args) < 3 {
			return fmt.Errorf("usage: add-task <parent-entity-id> <text>")
		}
		entityID, err := a.mutators.CreateTask(ctx, args[1], map[string]any{
			"text":   args[2],
			"status": "todo",
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created task %s\n", entityID)
		return nil
	case "attach":
		if len(args) < 3 {
			return fmt.Errorf("usage: attach <owner-entity-id> <file>")
		}
		return a.runAttach(ctx, args[1], args[2])
	case "cat-attachment":
		if len(args) < 2 {
			return fmt.Errorf("usage: cat-attachment <upload-id>")
		}
		payload, _, err := a.attachments.GetAttachment(ctx, args[1])
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(payload)
		return err
	case "status":
		return a.runStatus(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		return fmt.Errorf("unknown command")
	}
}

// runAgent запускает долгоживущий фоновый режим: периодический sync,
// пул загрузок и retention sweep до сигнала останова
func (a *app) runAgent(ctx context.Context, syncEvery time.Duration) error {
	a.coordinator.Start(ctx)
	defer a.coordinator.Close()

	// Прерванные прошлым запуском загрузки возвращаются в очередь
	if err := a.coordinator.Recover(ctx); err != nil {
		a.logger.Warn("upload recovery failed", "error", err)
	}

	go a.collector.Run(ctx)

	ticker := time.NewTicker(syncEvery)
	defer ticker.Stop()

	a.logger.Info("agent started", "sync_interval", syncEvery)

	for {
		if err := a.runSync(ctx); err != nil {
			a.logger.Warn("sync failed", "error", err)
		} else {
			// Прогреваем кэш вложений, пришедших с других устройств
			a.attachments.Prefetch(ctx, a.attachmentURLs(ctx))
		}

		select {
		case <-ctx.Done():
			a.logger.Info("agent stopping")
			return nil
		case <-ticker.C:
		}
	}
}

// attachmentURLs собирает удаленные URL вложений из всех документов
func (a *app) attachmentURLs(ctx context.Context) []string {
	docs, err := a.store.GetAllDocuments(ctx)
	if err != nil {
		a.logger.Warn("failed to list documents", "error", err)
		return nil
	}

	var urls []string
	for _, doc := range docs {
		doc.Root.Walk(func(n *models.Node) bool {
			if url, ok := n.Attrs.Fields["url"].(string); ok && url != "" {
				urls = append(urls, url)
			}
			return true
		})
	}
	return urls
}

func (a *app) runSync(ctx context.Context) error {
	result, err := a.sync.Sync(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Synced: pushed %d, pulled %d, applied %d, conflicts %d\n",
		result.Pushed, result.Pulled, result.Applied, result.Conflicts)
	return nil
}

func (a *app) runAttach(ctx context.Context, ownerEntityID, path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	id, err := a.coordinator.Submit(ctx, ownerEntityID, detectMimeType(path), payload)
	if err != nil {
		return err
	}
	fmt.Printf("Queued upload %s (%d bytes); run the agent to push it\n", id, len(payload))
	return nil
}

func (a *app) runStatus(ctx context.Context) error {
	pending, err := a.sync.PendingCount(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Node:              %s\n", a.clocks.NodeID())
	fmt.Printf("Pending mutations: %d\n", pending)
	fmt.Printf("Queued uploads:    %d\n", a.coordinator.QueueDepth())
	return nil
}

// detectMimeType определяет MIME тип по расширению файла
func detectMimeType(path string) string {
	switch filepath.Ext(path) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".pdf":
		return "application/pdf"
	case ".txt", ".md":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: notesync-client [flags] <command>

Commands:
  agent                               Run the background sync agent
  sync                                Run a single sync round
  add-note <title>                    Create a new note
  add-task <parent-entity-id> <text>  Add a task under an entity
  attach <owner-entity-id> <file>     Queue a binary attachment for upload
  cat-attachment <upload-id>          Print a cached attachment to stdout
  status                              Show pending work

Flags:
  -server   Server URL (default http://localhost:8080)
  -db       Path to local database
  -quota    Local storage quota in bytes
  -version  Show version information`)
}

func printVersion() {
	fmt.Printf("NoteSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
