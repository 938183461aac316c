// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/danielhkuo/popular-query/auth"
	"github.com/danielhkuo/popular-query/cliparse"
	"github.com/danielhkuo/popular-query/middleware"
	"github.com/danielhkuo/popular-query/models"
	"github.com/danielhkuo/popular-query/period"
)

// Request and response headers
const (
	PublishKeyHeader = "X-Publish-Key"
	ComputedAtHeader = "X-Computed-At"
)

// MaxResultBytes caps the size of a published result.
const MaxResultBytes = 64 << 10

type PopularHandler struct {
	db    *sql.DB
	cfg   cliparse.ServerConfig
	cache *cache.Cache
}

func NewPopularHandler(db *sql.DB, cfg cliparse.ServerConfig) *PopularHandler {
	return &PopularHandler{
		db:    db,
		cfg:   cfg,
		cache: cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
	}
}

// GetPopular handles GET /api/popular/{period}
// Returns the latest published query as plain text
func (h *PopularHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	p, err := period.Parse(chi.URLParam(r, "period"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown period")
		return
	}

	result, err := h.latest(r.Context(), p)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No result published yet")
		return
	}
	if err != nil {
		slog.Error("failed to query popular result", "period", p, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	etag := `"` + result.ID + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Last-Modified", result.ComputedAt.UTC().Format(http.TimeFormat))
	w.Header().Set(ComputedAtHeader, result.ComputedAt.UTC().Format(time.RFC3339))

	if middleware.MatchesETag(r, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	middleware.TextResponse(w, http.StatusOK, result.Query)
}

// PublishPopular handles PUT /api/popular/{period}
// Stores a new result; requires X-Publish-Key for the period
func (h *PopularHandler) PublishPopular(w http.ResponseWriter, r *http.Request) {
	p, err := period.Parse(chi.URLParam(r, "period"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown period")
		return
	}

	if err := auth.ValidatePublishKey(p, r.Header.Get(PublishKeyHeader), h.cfg.PublishKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		return
	}

	computedAt := time.Now().UTC()
	if ts := r.Header.Get(ComputedAtHeader); ts != "" {
		computedAt, err = time.Parse(time.RFC3339, ts)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "X-Computed-At must be RFC 3339")
			return
		}
		computedAt = computedAt.UTC()
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxResultBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "result text too large")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read body")
		return
	}
	if len(body) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "result text is required")
		return
	}

	id := uuid.NewString()
	_, err = h.db.ExecContext(r.Context(), `
		INSERT INTO popular_result (id, period, query, computed_at, published_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, p.String(), string(body), computedAt, time.Now().UTC())
	if err != nil {
		slog.Error("failed to insert popular result", "period", p, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.cache.Delete(p.String())

	slog.Info("published popular result",
		"period", p,
		"id", id,
		"size", humanize.Bytes(uint64(len(body))),
		"computed", humanize.Time(computedAt),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.PublishResultResponse{
		ID:         id,
		Period:     p.String(),
		ComputedAt: computedAt,
	})
}

// ListPopular handles GET /api/popular
// Returns the latest result of every period that has one
func (h *PopularHandler) ListPopular(w http.ResponseWriter, r *http.Request) {
	results := []models.PopularResult{}
	for _, p := range period.All() {
		result, err := h.latest(r.Context(), p)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			slog.Error("failed to query popular result", "period", p, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		results = append(results, result)
	}

	middleware.JSONResponse(w, http.StatusOK, models.PopularListResponse{Results: results})
}

// latest returns the most recently computed result for p, cached.
func (h *PopularHandler) latest(ctx context.Context, p period.Period) (models.PopularResult, error) {
	if cached, ok := h.cache.Get(p.String()); ok {
		return cached.(models.PopularResult), nil
	}

	var result models.PopularResult
	err := h.db.QueryRowContext(ctx, `
		SELECT id, period, query, computed_at, published_at
		FROM popular_result
		WHERE period = $1
		ORDER BY computed_at DESC, published_at DESC
		LIMIT 1
	`, p.String()).Scan(
		&result.ID, &result.Period, &result.Query,
		&result.ComputedAt, &result.PublishedAt,
	)
	if err != nil {
		return models.PopularResult{}, err
	}

	h.cache.SetDefault(p.String(), result)
	return result, nil
}
