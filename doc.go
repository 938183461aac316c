// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the popular query API server.

The server hands out precomputed "popular query" strings, one per
reporting period (daily, weekly, monthly). It does not compute them:
an external job publishes each result with an authenticated PUT, and
clients such as cmd/popular-tui fetch the latest one with a GET.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:popular.db PUBLISH_KEY_SALT=... go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..." --publish-salt ...

A .env file in the working directory is loaded first.

# Configuration

Required settings:

  - DATABASE_URL (-d): Database connection string
  - PUBLISH_KEY_SALT (--publish-salt): Secret for publish key HMAC

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - CACHE_TTL (--cache-ttl): Result cache lifetime (default: 5m)

Print the publish key of every period and exit:

	go run . --print-keys

# Architecture

  - handlers: HTTP request handlers (popular results)
  - router: Route definitions using chi
  - middleware: CORS, logging, response helpers, ETags
  - models: Response types
  - auth: Publish key generation and validation
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing
  - period: The closed set of reporting periods

The client side lives in controller (interaction logic), client (HTTP
client) and tui (terminal host).

See package documentation for each component.
*/
package main
