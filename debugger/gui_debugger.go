// CLASSIFICATION: COMMUNITY
// Filename: gui_debugger.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package debugger

import (
	"context"
	"net/http"

	debughttp "guidebug/debugger/http"
)

// Controller defines the methods the GUI debugger server exposes.
type Controller interface {
	Start(context.Context) error
	Router() http.Handler
	Addr() string
	Close() error
}

// New returns a Controller backed by the HTTP server implementation.
func New(cfg debughttp.Config) (Controller, error) {
	return debughttp.New(cfg)
}
