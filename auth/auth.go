// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/danielhkuo/popular-query/period"
)

var (
	ErrInvalidPublishKey = errors.New("invalid publish key")
	ErrMissingPublishKey = errors.New("missing publish key")
)

// GeneratePublishKey creates an HMAC-based key that allows publishing
// results for one period.
// This is deterministic and verifiable
func GeneratePublishKey(p period.Period, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte("publish:" + p.String()))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidatePublishKey checks if the provided key may publish results for p
func ValidatePublishKey(p period.Period, key, salt string) error {
	if key == "" {
		return ErrMissingPublishKey
	}
	expected := GeneratePublishKey(p, salt)
	if !hmac.Equal([]byte(key), []byte(expected)) {
		return ErrInvalidPublishKey
	}
	return nil
}
