// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/popular-query/period"
)

// Effect tells the host what a dispatched control did and what is left
// for the host to do.
type Effect struct {
	// Pending is set when a request was started. The host completes it
	// with Requests.Fetch followed by Requests.Settle.
	Pending period.Period
	// PreventDefault is set when the host must skip its default action.
	PreventDefault bool
	Copied         bool
	Opened         string
}

type handler func() (Effect, error)

// PageConfig lists the collaborators a Page is wired to.
type PageConfig struct {
	// ButtonIDs are the period button identifiers in display order.
	// Nil means one button per period.
	ButtonIDs  []string
	Fetcher    Fetcher
	Fragment   Fragment
	Clipboard  Clipboard
	Opener     Opener
	SearchHost string
	Logger     *slog.Logger
}

// Page is the single context object holding every component of the
// client. It is not safe for concurrent use; hosts drive it from one loop.
type Page struct {
	Buttons   *ButtonController
	Results   *ResultStore
	Errors    *ErrorReporter
	Router    *HashRouter
	Requests  *RequestCoordinator
	Clipboard *ClipboardHelper
	Links     LinkBuilder

	opener   Opener
	controls map[string]*Control
	handlers map[string]handler
}

// NewPage validates the configuration and wires the dispatch table.
// An unknown button identifier fails with ErrInvalidControl before any
// handler is registered.
func NewPage(cfg PageConfig) (*Page, error) {
	ids := cfg.ButtonIDs
	if ids == nil {
		for _, p := range period.All() {
			ids = append(ids, p.String())
		}
	}

	result := &Control{ID: ResultControlID}
	buttons, err := NewButtonController(ids, result)
	if err != nil {
		return nil, err
	}

	switch {
	case cfg.Fetcher == nil:
		return nil, errors.New("page requires a fetcher")
	case cfg.Clipboard == nil:
		return nil, errors.New("page requires a clipboard")
	case cfg.Opener == nil:
		return nil, errors.New("page requires an opener")
	}

	fragment := cfg.Fragment
	if fragment == nil {
		fragment = NewMemoryFragment("")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	p := &Page{
		Buttons: buttons,
		Results: newResultStore(result),
		Errors:  &ErrorReporter{},
		Router:  NewHashRouter(fragment),
		Links:   LinkBuilder{Host: cfg.SearchHost},
		opener:  cfg.Opener,
		controls: map[string]*Control{
			ResultControlID: result,
			CopyControlID:   {ID: CopyControlID},
			OpenControlID:   {ID: OpenControlID},
			HelpControlID:   {ID: HelpControlID},
		},
	}
	p.Requests = &RequestCoordinator{
		fetcher: cfg.Fetcher,
		buttons: p.Buttons,
		results: p.Results,
		errors:  p.Errors,
		router:  p.Router,
		logger:  logger,
	}
	p.Clipboard = &ClipboardHelper{
		lookup:    p.Control,
		clipboard: cfg.Clipboard,
	}

	p.handlers = map[string]handler{
		CopyControlID: p.copyResult,
		OpenControlID: p.openSearch,
		HelpControlID: p.toggleHelp,
	}
	for _, button := range buttons.Buttons() {
		p.controls[button.ID] = button
		p.handlers[button.ID] = p.generate(period.Period(button.ID))
	}

	return p, nil
}

// Control returns the control with the given id, or nil.
func (p *Page) Control(id string) *Control {
	return p.controls[id]
}

// Handles reports whether id has a registered handler.
func (p *Page) Handles(id string) bool {
	_, ok := p.handlers[id]
	return ok
}

// Dispatch runs the handler registered for a pressed control. Pressing a
// disabled control does nothing.
func (p *Page) Dispatch(id string) (Effect, error) {
	h, ok := p.handlers[id]
	if !ok {
		return Effect{}, fmt.Errorf("%w: %q", ErrUnknownControl, id)
	}
	if p.controls[id].Disabled {
		return Effect{}, nil
	}
	return h()
}

// Press dispatches id and, if that started a request, runs it to
// completion before returning.
func (p *Page) Press(ctx context.Context, id string) (Effect, error) {
	effect, err := p.Dispatch(id)
	if err != nil || effect.Pending == "" {
		return effect, err
	}

	p.Requests.Settle(p.Requests.Fetch(ctx, effect.Pending))
	return effect, nil
}

func (p *Page) generate(per period.Period) handler {
	return func() (Effect, error) {
		if err := p.Requests.Begin(per); err != nil {
			return Effect{}, err
		}
		return Effect{Pending: per}, nil
	}
}

func (p *Page) copyResult() (Effect, error) {
	copied, err := p.Clipboard.Copy(ResultControlID)
	return Effect{Copied: copied}, err
}

func (p *Page) openSearch() (Effect, error) {
	u, ok := p.Links.BuildHypnohubQuery(p.Results.Text())
	if !ok {
		return Effect{}, nil
	}
	if err := p.opener.Open(u.String()); err != nil {
		return Effect{}, fmt.Errorf("failed to open search page: %w", err)
	}
	return Effect{Opened: u.String()}, nil
}

func (p *Page) toggleHelp() (Effect, error) {
	return Effect{PreventDefault: p.Router.ToggleHelp()}, nil
}
