// Command popular-tui is a terminal client for the popular query API.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmittmann/tint"

	"github.com/danielhkuo/popular-query/client"
	"github.com/danielhkuo/popular-query/cliparse"
	"github.com/danielhkuo/popular-query/controller"
	"github.com/danielhkuo/popular-query/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "popular-tui:", err)
		os.Exit(1)
	}
}

func run() error {
	if err := cliparse.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := cliparse.ParseClientFlags(os.Args[1:])
	if err != nil {
		return err
	}

	// The terminal belongs to the renderer, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	minLevel := slog.LevelInfo
	if cfg.Verbose {
		minLevel = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(logOut, &tint.Options{
		Level:   minLevel,
		NoColor: true,
	}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	page, err := controller.NewPage(controller.PageConfig{
		Fetcher:    client.NewPopularClient(cfg.APIURL, logger),
		Fragment:   controller.NewMemoryFragment(cfg.Fragment),
		Clipboard:  tui.SystemClipboard{},
		Opener:     tui.SystemBrowser{},
		SearchHost: cfg.SearchHost,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	logger.Info("starting", "api", cfg.APIURL, "fragment", cfg.Fragment)

	p := tea.NewProgram(tui.NewModel(ctx, page, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
