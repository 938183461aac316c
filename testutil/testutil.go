// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/danielhkuo/popular-query/cliparse"
	"github.com/danielhkuo/popular-query/db"
	"github.com/danielhkuo/popular-query/period"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.ServerConfig {
	return cliparse.ServerConfig{
		Port:           8080,
		DatabaseURL:    ":memory:",
		DatabaseType:   "sqlite",
		PublishKeySalt: "test-publish-salt",
		CacheTTL:       time.Minute,
	}
}

// PublishTestResult inserts a result row directly and returns its ID
func PublishTestResult(t *testing.T, conn *sql.DB, p period.Period, query string, computedAt time.Time) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO popular_result (id, period, query, computed_at, published_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, p.String(), query, computedAt.UTC(), time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test result: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request with a plain text body
func MakeRequest(method, path, body string, headers map[string]string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// WithURLParam attaches a chi route parameter, for calling handlers
// without going through the router
func WithURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
