// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package controller

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/popular-query/period"
)

// Identifiers of the controls that are not period buttons.
const (
	ResultControlID = "query-result"
	CopyControlID   = "copy-query-result"
	OpenControlID   = "open-hypnohub"
	HelpControlID   = "help-button"
)

var (
	ErrInvalidControl  = errors.New("invalid control identifier")
	ErrUnknownControl  = errors.New("no handler registered for control")
	ErrRequestInFlight = errors.New("request already in flight")
)

// Control is the state of one interactive element on the page.
type Control struct {
	ID       string
	Disabled bool
	Chosen   bool

	value    string
	selected bool
}

// Value returns the control's current text.
func (c *Control) Value() string {
	return c.value
}

// SetValue replaces the text and drops any selection.
func (c *Control) SetValue(v string) {
	c.value = v
	c.selected = false
}

// Select marks the whole value as the current selection.
func (c *Control) Select() {
	c.selected = true
}

// Selection returns the selected text, or "" when nothing is selected.
func (c *Control) Selection() string {
	if !c.selected {
		return ""
	}
	return c.value
}

// ButtonController owns the disabled and chosen state of the period
// buttons and the result field.
type ButtonController struct {
	buttons  []*Control
	byPeriod map[period.Period]*Control
	result   *Control
}

// NewButtonController creates one button per identifier, in order.
// Every identifier must name a period; anything else is a configuration
// error.
func NewButtonController(ids []string, result *Control) (*ButtonController, error) {
	b := &ButtonController{
		byPeriod: make(map[period.Period]*Control, len(ids)),
		result:   result,
	}

	for _, id := range ids {
		p, err := period.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidControl, id)
		}
		if _, dup := b.byPeriod[p]; dup {
			return nil, fmt.Errorf("%w: duplicate %q", ErrInvalidControl, id)
		}

		button := &Control{ID: id}
		b.buttons = append(b.buttons, button)
		b.byPeriod[p] = button
	}

	return b, nil
}

// SetBusy disables (or re-enables) every button and the result field.
// Going busy also clears every chosen marker.
func (b *ButtonController) SetBusy(busy bool) {
	for _, button := range b.buttons {
		button.Disabled = busy
		if busy {
			button.Chosen = false
		}
	}
	b.result.Disabled = busy
}

// Busy reports whether the controls are currently disabled.
func (b *ButtonController) Busy() bool {
	return b.result.Disabled
}

// MarkChosen flags the button for p as chosen and clears the rest.
func (b *ButtonController) MarkChosen(p period.Period) {
	for _, button := range b.buttons {
		button.Chosen = button == b.byPeriod[p]
	}
}

// Chosen returns the period whose button is marked chosen.
func (b *ButtonController) Chosen() (period.Period, bool) {
	for p, button := range b.byPeriod {
		if button.Chosen {
			return p, true
		}
	}
	return "", false
}

// Buttons returns the period buttons in construction order.
func (b *ButtonController) Buttons() []*Control {
	return b.buttons
}

// Button returns the button for p, or nil if the page has none.
func (b *ButtonController) Button(p period.Period) *Control {
	return b.byPeriod[p]
}
