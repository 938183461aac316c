// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package controller

import (
	"net/url"
	"strings"
)

// DefaultSearchHost is the external site the open action links to.
const DefaultSearchHost = "hypnohub.net"

// Clipboard is the host's copy primitive.
type Clipboard interface {
	WriteText(text string) error
}

// Opener opens a URL in a new browsing context that shares no navigation
// state with this page.
type Opener interface {
	Open(rawURL string) error
}

// ClipboardHelper copies a control's content through the host clipboard.
type ClipboardHelper struct {
	lookup    func(id string) *Control
	clipboard Clipboard
}

// Copy selects the content of the control with the given id and copies it.
// It does nothing when the control is missing, disabled or empty. Errors
// from the host clipboard are returned as is.
func (h *ClipboardHelper) Copy(controlID string) (bool, error) {
	control := h.lookup(controlID)
	if control == nil || control.Disabled || control.Value() == "" {
		return false, nil
	}

	control.Select()
	if err := h.clipboard.WriteText(control.Selection()); err != nil {
		return false, err
	}
	return true, nil
}

// LinkBuilder builds search page URLs for a result.
type LinkBuilder struct {
	Host string
}

// BuildHypnohubQuery returns the search URL for resultText, or false when
// there is nothing to search for.
func (b LinkBuilder) BuildHypnohubQuery(resultText string) (*url.URL, bool) {
	if resultText == "" {
		return nil, false
	}

	host := b.Host
	if host == "" {
		host = DefaultSearchHost
	}

	// url.Values.Encode sorts keys; keep the site's parameter order.
	var query strings.Builder
	query.WriteString("page=post")
	query.WriteString("&tags=")
	query.WriteString(url.QueryEscape(resultText))
	query.WriteString("&s=list")

	return &url.URL{
		Scheme:   "https",
		Host:     host,
		Path:     "/index.php",
		RawQuery: query.String(),
	}, true
}
