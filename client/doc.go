// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package client is an HTTP client for the popular query API.
//
//	c := client.NewPopularClient("http://localhost:8080", logger)
//	res, err := c.Fetch(ctx, period.Daily)
//
// Non-2xx responses return *HTTPError, whose message is "HTTP <status>".
// Transport failures are returned unchanged.
package client
