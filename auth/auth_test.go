// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/danielhkuo/popular-query/period"
)

func TestGeneratePublishKey(t *testing.T) {
	tests := []struct {
		name   string
		period period.Period
		salt   string
	}{
		{"daily", period.Daily, "secret-salt"},
		{"weekly", period.Weekly, "secret-salt"},
		{"empty salt", period.Monthly, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GeneratePublishKey(tt.period, tt.salt)

			// Should not be empty
			if key == "" {
				t.Error("GeneratePublishKey() returned empty string")
			}

			// Should be deterministic
			if key != GeneratePublishKey(tt.period, tt.salt) {
				t.Error("GeneratePublishKey() is not deterministic")
			}

			// Should be URL-safe (no padding, no +/)
			if strings.ContainsAny(key, "+/=") {
				t.Errorf("GeneratePublishKey() contains non-URL-safe chars: %s", key)
			}

			// Different salts should produce different keys
			if key == GeneratePublishKey(tt.period, tt.salt+"x") {
				t.Error("GeneratePublishKey() produced same key for different salts")
			}
		})
	}

	// Keys are scoped to their period
	if GeneratePublishKey(period.Daily, "s") == GeneratePublishKey(period.Weekly, "s") {
		t.Error("daily and weekly keys should differ")
	}
}

func TestValidatePublishKey(t *testing.T) {
	salt := "test-salt"
	validKey := GeneratePublishKey(period.Daily, salt)

	tests := []struct {
		name    string
		period  period.Period
		key     string
		salt    string
		wantErr error
	}{
		{"valid key", period.Daily, validKey, salt, nil},
		{"wrong period", period.Weekly, validKey, salt, ErrInvalidPublishKey},
		{"wrong salt", period.Daily, validKey, "other", ErrInvalidPublishKey},
		{"garbage key", period.Daily, "not-a-key", salt, ErrInvalidPublishKey},
		{"empty key", period.Daily, "", salt, ErrMissingPublishKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePublishKey(tt.period, tt.key, tt.salt)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePublishKey() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
