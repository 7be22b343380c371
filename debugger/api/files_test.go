// CLASSIFICATION: COMMUNITY
// Filename: files_test.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"guidebug/debugger/files"
)

type listerFunc func(context.Context) ([]files.Record, error)

func (fn listerFunc) List(ctx context.Context) ([]files.Record, error) { return fn(ctx) }

func TestFilesReturnsRecords(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a_svelte"), []byte("<h1>a</h1>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	m := NewMetrics(time.Now(), nil)
	req := httptest.NewRequest(http.MethodGet, "/api/files", nil)
	recorder := httptest.NewRecorder()
	Files(files.NewLister(dir, ""), m).ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if ct := recorder.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	var got []files.Record
	if err := json.NewDecoder(recorder.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Name != "a_svelte" || got[0].Content != "<h1>a</h1>" {
		t.Fatalf("unexpected records: %+v", got)
	}
	snap := m.Snapshot()
	if snap.FilesRequestsTotal != 1 || snap.FilesServedTotal != 1 || snap.FilesErrorsTotal != 0 {
		t.Fatalf("unexpected metrics: %+v", snap)
	}
}

func TestFilesEmptyIsArray(t *testing.T) {
	nilLister := listerFunc(func(context.Context) ([]files.Record, error) { return nil, nil })
	req := httptest.NewRequest(http.MethodGet, "/api/files", nil)
	recorder := httptest.NewRecorder()
	Files(nilLister, nil).ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if body := strings.TrimSpace(recorder.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestFilesErrorIsPlainText(t *testing.T) {
	failing := listerFunc(func(context.Context) ([]files.Record, error) {
		return nil, &files.ReadError{Name: "x_svelte", Err: errors.New("boom")}
	})
	m := NewMetrics(time.Now(), nil)
	req := httptest.NewRequest(http.MethodGet, "/api/files", nil)
	recorder := httptest.NewRecorder()
	Files(failing, m).ServeHTTP(recorder, req)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", recorder.Code)
	}
	if ct := recorder.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if body := strings.TrimSpace(recorder.Body.String()); body != "read x_svelte: boom" {
		t.Fatalf("unexpected body %q", body)
	}
	if m.Snapshot().FilesErrorsTotal != 1 {
		t.Fatalf("error not counted")
	}
}

func TestFilesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	req := httptest.NewRequest(http.MethodGet, "/api/files", nil)
	recorder := httptest.NewRecorder()
	Files(files.NewLister(dir, ""), nil).ServeHTTP(recorder, req)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), dir) {
		t.Fatalf("body should describe the failure: %q", recorder.Body.String())
	}
}

func TestFilesNilLister(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/files", nil)
	recorder := httptest.NewRecorder()
	Files(nil, nil).ServeHTTP(recorder, req)
	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", recorder.Code)
	}
}

func TestStatusReportsDirectory(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	recorder := httptest.NewRecorder()
	Status(time.Now().Add(-time.Minute), "/srv/debug", "_svelte").ServeHTTP(recorder, req)

	var resp StatusResponse
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" || resp.Dir != "/srv/debug" || resp.Suffix != "_svelte" || resp.Uptime != "1m0s" {
		t.Fatalf("unexpected status: %+v", resp)
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.Request()
	m.RateDecision(false)
	if snap := m.Snapshot(); snap.RequestsTotal != 0 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}
