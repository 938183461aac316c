// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"io"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

func init() {
	// The browser launcher writes to the terminal the renderer owns.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// SystemBrowser opens URLs in the default web browser.
type SystemBrowser struct{}

func (SystemBrowser) Open(url string) error {
	return browser.OpenURL(url)
}
