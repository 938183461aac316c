// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package controller implements the interaction logic of the popular query
client, independent of any particular UI.

# Page

A Page is built once at startup and holds every component:

	page, err := controller.NewPage(controller.PageConfig{
		Fetcher:   client.NewPopularClient(apiURL, logger),
		Fragment:  controller.NewMemoryFragment(""),
		Clipboard: clip,
		Opener:    browser,
	})

Button identifiers are checked against the period set before anything is
wired; a mismatch returns ErrInvalidControl.

# Dispatch

Controls are pressed through a dispatch table keyed by control id:

	daily, weekly, monthly → generate
	copy-query-result      → copy the result field
	open-hypnohub          → open the search page for the result
	help-button            → toggle the help view

Synchronous hosts call Press. Hosts with their own event loop call
Dispatch, run Requests.Fetch off the loop when Effect.Pending is set, and
hand the outcome back to Requests.Settle on the loop.

# Request Lifecycle

	Idle ──press──▶ InFlight ──success──▶ Settled (result, chosen, fragment)
	                         └─failure──▶ Settled (error message)

While a request is in flight every period button and the result field are
disabled, so a second request cannot start. Failures are never retried.
An HTTP failure reads "HTTP <status>"; a transport failure carries the
underlying error text.

# Fragment

The fragment is owned by the host. The page only writes it after a
successful request (the period name) and when the help view is closed
while open ("about" → "").
*/
package controller
