// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the popular query API.

# Popular Results

PopularHandler serves precomputed popular queries, one per period:

	h := handlers.NewPopularHandler(db, cfg)

	GET /api/popular           → ListPopular (JSON, latest per period)
	GET /api/popular/{period}  → GetPopular (plain text)
	PUT /api/popular/{period}  → PublishPopular (requires X-Publish-Key)

The text served by GetPopular is whatever was published, byte for byte.
The handler never looks inside it.

# Caching

The latest result per period is kept in an in-memory cache for
cfg.CacheTTL and dropped when a new result is published. GetPopular also
sets an ETag (the result ID) and answers If-None-Match with 304.

# Publishing

Results are computed elsewhere and pushed in:

	curl -X PUT \
	  -H "X-Publish-Key: $(popular-query --print-keys | grep daily | cut -f2)" \
	  -H "X-Computed-At: 2025-03-01T00:00:00Z" \
	  --data-binary "tag1 tag2" \
	  http://localhost:8080/api/popular/daily

X-Computed-At is optional and defaults to the time of the request.
*/
package handlers
