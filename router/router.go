// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"

	"github.com/danielhkuo/popular-query/cliparse"
	"github.com/danielhkuo/popular-query/handlers"
	"github.com/danielhkuo/popular-query/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.ServerConfig) http.Handler {
	r := chi.NewMux()
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS)

	// Initialize handlers
	popularHandler := handlers.NewPopularHandler(db, cfg)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Popular results
	r.Route("/api/popular", func(r chi.Router) {
		if cfg.Verbose {
			r.Use(httplog.Handler(&httplog.Logger{
				Logger:  slog.Default().With("component", "http"),
				Options: httplog.Options{LogLevel: slog.LevelDebug},
			}))
		}

		r.Get("/", middleware.WithLogging(popularHandler.ListPopular))
		r.Get("/{period}", middleware.WithLogging(popularHandler.GetPopular))
		r.Put("/{period}", middleware.WithLogging(popularHandler.PublishPopular))
	})

	// Root endpoint, tagged with the build so clients can revalidate cheaply
	r.Group(func(r chi.Router) {
		if tag := middleware.BinaryTag(); tag != "" {
			r.Use(middleware.WithETag(tag, true))
		} else {
			r.Use(chimw.NoCache)
		}

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("popular-query API v1"))
		})
	})

	return r
}
