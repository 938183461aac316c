// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/danielhkuo/popular-query/period"
)

// ComputedAtHeader carries the time the backend computed a result.
const ComputedAtHeader = "X-Computed-At"

// Result is a successful response from the popular query API.
type Result struct {
	Text       string
	ComputedAt time.Time
}

// HTTPError is returned for any non-2xx response.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// PopularClient talks to the popular query API.
type PopularClient struct {
	resty  *resty.Client
	logger *slog.Logger
}

// NewPopularClient creates a client for the API rooted at baseURL.
// No timeout is set; failures are whatever the network stack reports.
func NewPopularClient(baseURL string, logger *slog.Logger) *PopularClient {
	if logger == nil {
		logger = slog.Default()
	}

	c := &PopularClient{logger: logger}
	c.resty = resty.New().
		SetBaseURL(baseURL).
		SetHeaders(map[string]string{
			"Accept":          "text/plain",
			"Accept-Encoding": "br, gzip",
		}).
		OnAfterResponse(DecompressMiddleware).
		OnAfterResponse(c.logResponse).
		OnError(c.logError)

	return c
}

// Fetch issues exactly one GET /api/popular/{period}. The body is returned
// verbatim.
func (c *PopularClient) Fetch(ctx context.Context, p period.Period) (Result, error) {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetPathParam("period", p.String()).
		Get("/api/popular/{period}")
	if err != nil {
		return Result{}, err
	}
	if !resp.IsSuccess() {
		return Result{}, &HTTPError{StatusCode: resp.StatusCode()}
	}

	// resp.String() trims whitespace; the payload is opaque.
	res := Result{Text: string(resp.Body())}
	if ts := resp.Header().Get(ComputedAtHeader); ts != "" {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			res.ComputedAt = t
		} else {
			c.logger.Debug("ignoring malformed computed-at header", "value", ts, "error", err)
		}
	}
	return res, nil
}

func (c *PopularClient) logResponse(_ *resty.Client, resp *resty.Response) error {
	level := slog.LevelDebug
	if resp.StatusCode() >= 400 {
		level = slog.LevelError
	}
	c.logger.Log(resp.Request.Context(), level, "outgoing response",
		"method", resp.Request.Method,
		"url", resp.Request.URL,
		"status", resp.Status(),
		"duration_ms", resp.Time().Milliseconds(),
	)
	return nil
}

func (c *PopularClient) logError(req *resty.Request, err error) {
	c.logger.Error("outgoing request failed",
		"method", req.Method,
		"url", req.URL,
		"error", err,
	)
}
