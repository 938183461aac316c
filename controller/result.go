// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package controller

import "time"

// ResultStore holds the result text currently shown in the result field.
type ResultStore struct {
	control    *Control
	computedAt time.Time
}

func newResultStore(control *Control) *ResultStore {
	return &ResultStore{control: control}
}

// Text returns the displayed result, "" when there is none.
func (s *ResultStore) Text() string {
	return s.control.Value()
}

// ComputedAt returns when the backend computed the displayed result.
// Zero if unknown or if there is no result.
func (s *ResultStore) ComputedAt() time.Time {
	return s.computedAt
}

func (s *ResultStore) set(text string, computedAt time.Time) {
	s.control.SetValue(text)
	s.computedAt = computedAt
}

func (s *ResultStore) clear() {
	s.set("", time.Time{})
}

// ErrorReporter keeps the message of the latest failure.
type ErrorReporter struct {
	message string
}

// Text returns the current error message, "" when there is none.
func (r *ErrorReporter) Text() string {
	return r.message
}

func (r *ErrorReporter) report(err error) {
	r.message = err.Error()
}

func (r *ErrorReporter) clear() {
	r.message = ""
}
