// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines response and domain types for the API.

# Domain Types

  - PopularResult: a published query for one period, with the time it was
    computed and the time it was published

# Response Types

Types for JSON responses:

  - PublishResultResponse: id, period, computed_at
  - PopularListResponse: results (latest per period)
  - ErrorResponse: error, message

GET /api/popular/{period} itself answers in plain text, not JSON.
*/
package models
