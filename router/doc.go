// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the popular query API.

# Route Registration

NewRouter creates a configured chi router with all endpoints:

	handler := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Popular results:

	GET /api/popular           - Latest result of every period (JSON)
	GET /api/popular/{period}  - Latest result of one period (text)
	PUT /api/popular/{period}  - Publish a result (requires X-Publish-Key)

Root:

	GET / - Version banner, ETag-tagged with the build

# Middleware

Every route is wrapped in chi's Recoverer and CORS. Popular routes log
each request; with cfg.Verbose they also get httplog's structured request
logs.
*/
package router
