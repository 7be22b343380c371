// CLASSIFICATION: COMMUNITY
// Filename: metrics.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package api

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Metrics counts requests served by the API. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	start    time.Time
	limiter  *rate.Limiter
	requests atomic.Uint64

	filesRequests atomic.Uint64
	filesErrors   atomic.Uint64
	filesRecords  atomic.Uint64

	rateAllowed atomic.Uint64
	rateDenied  atomic.Uint64
}

// NewMetrics returns counters starting at start. limiter may be nil.
func NewMetrics(start time.Time, limiter *rate.Limiter) *Metrics {
	return &Metrics{start: start, limiter: limiter}
}

// MetricsResponse is the JSON shape of GET /api/metrics.
type MetricsResponse struct {
	RequestsTotal       uint64  `json:"requests_total"`
	StartTimeSeconds    int64   `json:"start_time_seconds"`
	FilesRequestsTotal  uint64  `json:"files_requests_total"`
	FilesErrorsTotal    uint64  `json:"files_errors_total"`
	FilesServedTotal    uint64  `json:"files_served_total"`
	RateLimitPerSecond  float64 `json:"rate_limit_per_second"`
	RateBurstTokens     int     `json:"rate_burst_tokens"`
	RateTokensAvailable float64 `json:"rate_tokens_available"`
	RateAllowedTotal    uint64  `json:"rate_allowed_total"`
	RateDeniedTotal     uint64  `json:"rate_denied_total"`
}

// Request counts one HTTP request.
func (m *Metrics) Request() {
	if m != nil {
		m.requests.Add(1)
	}
}

// RateDecision records the outcome of a limiter check.
func (m *Metrics) RateDecision(allowed bool) {
	if m == nil {
		return
	}
	if allowed {
		m.rateAllowed.Add(1)
	} else {
		m.rateDenied.Add(1)
	}
}

func (m *Metrics) filesRequest() {
	if m != nil {
		m.filesRequests.Add(1)
	}
}

func (m *Metrics) filesError() {
	if m != nil {
		m.filesErrors.Add(1)
	}
}

func (m *Metrics) filesServed(n int) {
	if m != nil {
		m.filesRecords.Add(uint64(n))
	}
}

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() MetricsResponse {
	if m == nil {
		return MetricsResponse{}
	}
	resp := MetricsResponse{
		RequestsTotal:      m.requests.Load(),
		StartTimeSeconds:   m.start.Unix(),
		FilesRequestsTotal: m.filesRequests.Load(),
		FilesErrorsTotal:   m.filesErrors.Load(),
		FilesServedTotal:   m.filesRecords.Load(),
		RateAllowedTotal:   m.rateAllowed.Load(),
		RateDeniedTotal:    m.rateDenied.Load(),
	}
	if m.limiter != nil {
		resp.RateLimitPerSecond = float64(m.limiter.Limit())
		resp.RateBurstTokens = m.limiter.Burst()
		resp.RateTokensAvailable = m.limiter.Tokens()
	}
	return resp
}

// MetricsHandler serves the counters as JSON.
func MetricsHandler(m *Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(m.Snapshot())
	}
}
