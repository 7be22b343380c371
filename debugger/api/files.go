// CLASSIFICATION: COMMUNITY
// Filename: files.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"guidebug/debugger/files"
	"guidebug/internal/logger"
)

// Lister returns the current set of debugger files.
type Lister interface {
	List(ctx context.Context) ([]files.Record, error)
}

// Files handles GET /api/files. Any failure collapses into a 500 carrying
// the error text; the error kind only goes to the log.
func Files(lister Lister, m *Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.filesRequest()
		if lister == nil {
			m.filesError()
			http.Error(w, "file listing unavailable", http.StatusInternalServerError)
			return
		}
		records, err := lister.List(r.Context())
		if err != nil {
			m.filesError()
			logger.From(r.Context()).Error("list debugger files",
				slog.String("kind", files.Kind(err)),
				slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if records == nil {
			records = []files.Record{}
		}
		m.filesServed(len(records))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	}
}
