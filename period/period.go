// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package period

import (
	"errors"
	"fmt"
)

// Period is a reporting window that selects which precomputed popular
// query to fetch.
type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
)

var ErrUnknownPeriod = errors.New("unknown period")

// all is ordered; All hands out copies.
var all = [...]Period{Daily, Weekly, Monthly}

// All returns every selectable period in display order.
func All() []Period {
	out := make([]Period, len(all))
	copy(out, all[:])
	return out
}

// Valid reports whether p is one of the selectable periods.
func (p Period) Valid() bool {
	for _, known := range all {
		if p == known {
			return true
		}
	}
	return false
}

func (p Period) String() string {
	return string(p)
}

// Parse converts an identifier into a Period.
// Identifiers are case-sensitive, matching the API paths.
func Parse(s string) (Period, error) {
	p := Period(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
	}
	return p, nil
}
