// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package controller

import "github.com/danielhkuo/popular-query/period"

// HelpMarker is the fragment value that shows the help view.
const HelpMarker = "about"

// Fragment is the host's address fragment, without the leading '#'.
// The host may change it at any time (history navigation, manual edits).
type Fragment interface {
	Get() string
	Set(value string)
}

// MemoryFragment is a Fragment kept in memory.
type MemoryFragment struct {
	value string
}

func NewMemoryFragment(initial string) *MemoryFragment {
	return &MemoryFragment{value: initial}
}

func (f *MemoryFragment) Get() string {
	return f.value
}

func (f *MemoryFragment) Set(value string) {
	f.value = value
}

// HashRouter writes the fragment on the transitions that own it and
// leaves every other value alone.
type HashRouter struct {
	fragment Fragment
}

func NewHashRouter(fragment Fragment) *HashRouter {
	return &HashRouter{fragment: fragment}
}

// Fragment returns the current fragment value.
func (h *HashRouter) Fragment() string {
	return h.fragment.Get()
}

// SetPeriod points the fragment at p so the result is linkable.
func (h *HashRouter) SetPeriod(p period.Period) {
	h.fragment.Set(p.String())
}

// ToggleHelp closes the help view if it is open. It reports whether the
// host must skip its default navigation; when false, the fragment was not
// touched and the host is expected to open the help view itself.
func (h *HashRouter) ToggleHelp() (preventDefault bool) {
	if h.fragment.Get() != HelpMarker {
		return false
	}
	h.fragment.Set("")
	return true
}

// OpenHelp is the default navigation of the help control.
func (h *HashRouter) OpenHelp() {
	h.fragment.Set(HelpMarker)
}

// HelpOpen reports whether the fragment selects the help view.
func (h *HashRouter) HelpOpen() bool {
	return h.fragment.Get() == HelpMarker
}
