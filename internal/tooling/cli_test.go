// CLASSIFICATION: COMMUNITY
// Filename: cli_test.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package tooling

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"guidebug/debugger/files"
)

func run(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	cmd := NewRootCommand(ctx, &out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, context.Background(), "version")
	require.NoError(t, err)
	require.Equal(t, "guidebug "+Version+"\n", out)
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_svelte"), []byte("A"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("B"), 0o644))

	out, err := run(t, context.Background(), "list", "--dir", dir)
	require.NoError(t, err)
	var records []files.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Equal(t, []files.Record{{Name: "a_svelte", Content: "A"}}, records)
}

func TestListCommandCustomSuffixFromEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x_debug"), []byte("X"), 0o644))
	t.Setenv("GUIDEBUG_SUFFIX", "_debug")

	out, err := run(t, context.Background(), "list", "--dir", dir)
	require.NoError(t, err)
	require.Contains(t, out, `"x_debug"`)
}

func TestListCommandEmpty(t *testing.T) {
	out, err := run(t, context.Background(), "list", "--dir", t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "[]", strings.TrimSpace(out))
}

func TestListCommandMissingDirectory(t *testing.T) {
	_, err := run(t, context.Background(), "list", "--dir", filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, files.ErrDirNotFound)
}

func TestServeCommandStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(150 * time.Millisecond)
		cancel()
	}()
	_, err := run(t, ctx, "serve", "--dir", t.TempDir(), "--port", "0", "--log-format", "none")
	require.NoError(t, err)
}

func TestServeCommandWithHealth(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(150 * time.Millisecond)
		cancel()
	}()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := lis.Addr().(*net.TCPAddr).Port
	require.NoError(t, lis.Close())

	_, err = run(t, ctx, "serve", "--dir", t.TempDir(), "--port", "0", "--grpc-port", strconv.Itoa(port), "--log-format", "none")
	require.NoError(t, err)
}

func TestServeCommandRejectsBadConfig(t *testing.T) {
	_, err := run(t, context.Background(), "serve", "--dir", t.TempDir(), "--log-level", "loud")
	require.Error(t, err)
}
