// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andybalholm/brotli"

	"github.com/danielhkuo/popular-query/period"
)

func TestFetch_Success(t *testing.T) {
	computedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/popular/weekly" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set(ComputedAtHeader, computedAt.Format(time.RFC3339))
		w.Write([]byte(" tag1 tag2\n"))
	}))
	defer server.Close()

	c := NewPopularClient(server.URL, nil)
	res, err := c.Fetch(context.Background(), period.Weekly)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	// Body is opaque, whitespace included
	if res.Text != " tag1 tag2\n" {
		t.Errorf("Text = %q", res.Text)
	}
	if !res.ComputedAt.Equal(computedAt) {
		t.Errorf("ComputedAt = %v, want %v", res.ComputedAt, computedAt)
	}
}

func TestFetch_HTTPError(t *testing.T) {
	tests := []struct {
		status  int
		message string
	}{
		{http.StatusInternalServerError, "HTTP 500"},
		{http.StatusNotFound, "HTTP 404"},
		{http.StatusServiceUnavailable, "HTTP 503"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			calls := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				http.Error(w, "nope", tt.status)
			}))
			defer server.Close()

			_, err := NewPopularClient(server.URL, nil).Fetch(context.Background(), period.Daily)

			var httpErr *HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("expected *HTTPError, got %v", err)
			}
			if err.Error() != tt.message {
				t.Errorf("message = %q, want %q", err.Error(), tt.message)
			}
			if calls != 1 {
				t.Errorf("expected 1 request (no retries), got %d", calls)
			}
		})
	}
}

func TestFetch_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewPopularClient(url, nil).Fetch(context.Background(), period.Monthly)
	if err == nil {
		t.Fatal("expected a transport error")
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		t.Errorf("transport failure reported as HTTP error: %v", err)
	}
	if err.Error() == "" {
		t.Error("transport error has no description")
	}
}

func TestFetch_Brotli(t *testing.T) {
	var buf bytes.Buffer
	bw := brotli.NewWriter(&buf)
	bw.Write([]byte("compressed tags"))
	bw.Close()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "br")
		w.Write(buf.Bytes())
	}))
	defer server.Close()

	res, err := NewPopularClient(server.URL, nil).Fetch(context.Background(), period.Daily)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if res.Text != "compressed tags" {
		t.Errorf("Text = %q, want %q", res.Text, "compressed tags")
	}
}
