// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	r.Get("/health", middleware.WithLogging(handler))

Logs request start (method, path, client IP) and completion (duration_ms).

# CORS Middleware

Enable cross-origin requests for browser clients:

	r.Use(middleware.CORS)

Allows methods GET, PUT, OPTIONS with headers Content-Type,
X-Publish-Key, X-Computed-At and If-None-Match.

# Response Helpers

	middleware.TextResponse(w, http.StatusOK, result)
	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

TextResponse writes the body unchanged; results are opaque.

# ETags

WithETag tags static responses with a build-derived tag and answers 304
when the client already has it:

	if tag := middleware.BinaryTag(); tag != "" {
		r.Use(middleware.WithETag(tag, true))
	}

MatchesETag compares If-None-Match against a tag, ignoring weak prefixes.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
