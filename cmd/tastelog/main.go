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

	"github.com/erazemk/tastelog/internal/api"
	"github.com/erazemk/tastelog/internal/config"
	"github.com/erazemk/tastelog/internal/db"
	"github.com/erazemk/tastelog/internal/imagestore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fs := flag.NewFlagSet("tastelog", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseURL, "db", cfg.DatabaseURL, "")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "")

	fs.StringVar(&cfg.ListenAddr, "addr", cfg.ListenAddr, "")
	fs.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "")

	fs.StringVar(&cfg.UploadDir, "uploads", cfg.UploadDir, "")
	fs.StringVar(&cfg.UploadDir, "u", cfg.UploadDir, "")

	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "")

	fs.Usage = func() {
		fmt.Fprint(os.Stdout, `Usage: tastelog [flags]

Flags:
  -d, -db <dsn>           database: SQLite path or postgres:// URL (env DATABASE_URL)
  -a, -addr <host:port>   listen address (env LISTEN_ADDR, default :8080)
  -u, -uploads <dir>      image upload directory (env UPLOAD_DIR)
  -l, -log <path>         log file path (env LOG_FILE, default: stdout/stderr only)
  -h, -help               show this help and exit

Environment:
  LOG_LEVEL               debug, info, warn or error (default: info)
  SHUTDOWN_TIMEOUT        graceful shutdown timeout (default: 10s)
`)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		os.Exit(1)
	}

	closeLog, err := setupLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if closeLog != nil {
		defer closeLog()
	}

	if err := run(cfg); err != nil {
		slog.Error("server error", "error", err)
		if closeLog != nil {
			closeLog()
		}
		os.Exit(1)
	}
}

// run owns the database handle for the lifetime of the server. It returns
// after a graceful shutdown.
func run(cfg *config.Config) error {
	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		slog.Info("closing database")
		database.Close()
	}()

	if err := db.Migrate(database); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}
	slog.Info("database ready", "dialect", database.Dialect().String())

	images, err := imagestore.New(cfg.UploadDir)
	if err != nil {
		return err
	}
	slog.Info("image store ready", "root", images.Root())

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.NewRouter(database, images),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", "addr", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server stopped")
	return nil
}
