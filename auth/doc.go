// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides publish key generation and validation.

# Publish Keys

Results are computed outside the server and pushed in with
PUT /api/popular/{period}. Each period has its own key, derived with
HMAC-SHA256 from the period and a server-side salt:

	key := auth.GeneratePublishKey(period.Daily, salt)
	err := auth.ValidatePublishKey(period.Daily, key, salt)

The key is URL-safe base64 encoded without padding. Since it's
deterministic, the same period and salt always produce the same key, so
nothing has to be stored to validate it.
*/
package auth
