package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/frscoding-sono/personal-stylist/catalog"
	"github.com/frscoding-sono/personal-stylist/cliparse"
	"github.com/frscoding-sono/personal-stylist/db"
	"github.com/frscoding-sono/personal-stylist/middleware"
	"github.com/frscoding-sono/personal-stylist/router"
	"github.com/frscoding-sono/personal-stylist/session"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Text logs on a terminal, JSON everywhere else
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, opts)
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))

	// Connect to the catalog database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", dbConn.Dialect.Name())

	// Seed and load reference data
	ctx := context.Background()
	repo := catalog.NewRepository(dbConn)
	seeded, err := repo.Seed(ctx, catalog.Default())
	if err != nil {
		slog.Error("catalog seed failed", "error", err)
		os.Exit(1)
	}
	cat, err := repo.Load(ctx)
	if err != nil {
		slog.Error("catalog load failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Catalog ready", "seeded", seeded, "days", len(cat.Week), "week", cat.WeekLabel())

	manager := session.NewManager(cat, session.ManagerOptions{
		TTL:        cfg.SessionTTL,
		StrictFlow: cfg.StrictFlow,
		Seed:       cfg.Seed,
	})

	// Create router
	mux := router.NewRouter(manager, cat, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "strict_flow", cfg.StrictFlow, "session_ttl", cfg.SessionTTL)
	err = server.ListenAndServe()
	manager.Close()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
