// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package controller

import (
	"context"
	"log/slog"
	"time"

	"github.com/danielhkuo/popular-query/client"
	"github.com/danielhkuo/popular-query/period"
)

// Fetcher retrieves the precomputed result for a period.
// *client.PopularClient implements it.
type Fetcher interface {
	Fetch(ctx context.Context, p period.Period) (client.Result, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, p period.Period) (client.Result, error)

func (f FetcherFunc) Fetch(ctx context.Context, p period.Period) (client.Result, error) {
	return f(ctx, p)
}

// Phase is the coarse request state.
type Phase int

const (
	Idle Phase = iota
	InFlight
	Settled
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case InFlight:
		return "in-flight"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// Outcome is how a request settled. Err is nil on success.
type Outcome struct {
	Period     period.Period
	Text       string
	ComputedAt time.Time
	Err        error
}

func (o Outcome) Failed() bool {
	return o.Err != nil
}

// RequestState is the page-wide request state. Outcome is only meaningful
// once Phase is Settled.
type RequestState struct {
	Phase   Phase
	Period  period.Period
	Outcome Outcome
}

// RequestCoordinator runs the generate cycle for a period:
//
//	Begin  -> clear result and error, disable controls
//	Fetch  -> one network call, no page mutation
//	Settle -> show result or error, re-enable controls
//
// Begin and Settle mutate the page and must run on the host's UI loop.
// Fetch may run anywhere.
type RequestCoordinator struct {
	fetcher Fetcher
	buttons *ButtonController
	results *ResultStore
	errors  *ErrorReporter
	router  *HashRouter
	logger  *slog.Logger

	state RequestState
}

// State returns the current request state.
func (c *RequestCoordinator) State() RequestState {
	return c.state
}

// Begin starts a request for p. It fails with ErrRequestInFlight while
// another request has not settled, leaving the page untouched.
func (c *RequestCoordinator) Begin(p period.Period) error {
	if c.state.Phase == InFlight {
		return ErrRequestInFlight
	}

	c.results.clear()
	c.errors.clear()
	c.state = RequestState{Phase: InFlight, Period: p}
	c.buttons.SetBusy(true)
	return nil
}

// Fetch performs the network call for p and converts the response into an
// Outcome. It never retries.
func (c *RequestCoordinator) Fetch(ctx context.Context, p period.Period) Outcome {
	res, err := c.fetcher.Fetch(ctx, p)
	if err != nil {
		return Outcome{Period: p, Err: err}
	}
	return Outcome{Period: p, Text: res.Text, ComputedAt: res.ComputedAt}
}

// Settle applies the outcome of the in-flight request. Outcomes for any
// other period, or arriving when nothing is in flight, are dropped.
func (c *RequestCoordinator) Settle(o Outcome) {
	if c.state.Phase != InFlight || c.state.Period != o.Period {
		c.logger.Warn("dropping stale outcome",
			"period", o.Period,
			"phase", c.state.Phase,
			"in_flight", c.state.Period,
		)
		return
	}

	c.buttons.SetBusy(false)
	if o.Failed() {
		c.logger.Error("popular query request failed", "period", o.Period, "error", o.Err)
		c.errors.report(o.Err)
	} else {
		c.results.set(o.Text, o.ComputedAt)
		c.buttons.MarkChosen(o.Period)
		c.router.SetPeriod(o.Period)
	}

	c.state = RequestState{Phase: Settled, Period: o.Period, Outcome: o}
}

// Generate runs a whole cycle synchronously and returns its outcome.
func (c *RequestCoordinator) Generate(ctx context.Context, p period.Period) Outcome {
	if err := c.Begin(p); err != nil {
		return Outcome{Period: p, Err: err}
	}
	o := c.Fetch(ctx, p)
	c.Settle(o)
	return o
}
