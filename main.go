package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/lmittmann/tint"
	"libdb.so/hserve"

	"github.com/danielhkuo/popular-query/auth"
	"github.com/danielhkuo/popular-query/cliparse"
	"github.com/danielhkuo/popular-query/db"
	"github.com/danielhkuo/popular-query/period"
	"github.com/danielhkuo/popular-query/router"
)

func main() {
	if err := cliparse.LoadDotEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseServerFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	minLevel := slog.LevelInfo
	if cfg.Verbose {
		minLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: minLevel,
	})))

	if cfg.PrintKeys {
		for _, p := range period.All() {
			fmt.Printf("%s\t%s\n", p, auth.GeneratePublishKey(p, cfg.PublishKeySalt))
		}
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.PingContext(ctx); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	handler := router.NewRouter(dbConn, cfg)

	// Start server; returns once ctx is cancelled and connections drain
	slog.Info("Listening", "port", cfg.Port)
	if err := hserve.ListenAndServe(ctx, ":"+strconv.Itoa(cfg.Port), handler); err != nil {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}
