// CLASSIFICATION: COMMUNITY
// Filename: status.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package api

import (
	"encoding/json"
	"net/http"
	"time"
)

// StatusResponse describes the running service.
type StatusResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
	Dir    string `json:"dir"`
	Suffix string `json:"suffix"`
}

// Status reports uptime and the directory being served.
func Status(start time.Time, dir, suffix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := StatusResponse{
			Status: "ok",
			Uptime: time.Since(start).Round(time.Second).String(),
			Dir:    dir,
			Suffix: suffix,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
