// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/go-resty/resty/v2"
)

// DecompressMiddleware decodes brotli response bodies. gzip is already
// decoded by resty before response middleware runs.
func DecompressMiddleware(_ *resty.Client, resp *resty.Response) error {
	if resp.Header().Get("Content-Encoding") != "br" {
		return nil
	}

	decompressed, err := io.ReadAll(brotli.NewReader(bytes.NewReader(resp.Body())))
	if err != nil {
		return fmt.Errorf("failed to decode brotli body: %w", err)
	}

	resp.SetBody(decompressed)
	resp.Header().Del("Content-Encoding")
	return nil
}
