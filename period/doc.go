// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package period defines the closed set of reporting periods.

# Periods

	period.Daily   = "daily"
	period.Weekly  = "weekly"
	period.Monthly = "monthly"

The identifiers double as API path segments (/api/popular/{period}),
control identifiers in the client and address fragment values.

# Validation

Parse rejects anything outside the set with ErrUnknownPeriod:

	p, err := period.Parse("weekly")
	if errors.Is(err, period.ErrUnknownPeriod) {
		// configuration error
	}

All returns the periods in display order (daily, weekly, monthly).
*/
package period
