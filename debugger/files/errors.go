// CLASSIFICATION: COMMUNITY
// Filename: errors.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package files

import (
	"errors"
	"fmt"
)

// ErrDirNotFound signals that the base directory does not exist.
var ErrDirNotFound = errors.New("directory not found")

// ListError reports a failure listing the base directory.
type ListError struct {
	Dir string
	Err error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("list %s: %v", e.Dir, e.Err)
}

func (e *ListError) Unwrap() error { return e.Err }

// ReadError reports a failure reading a matching entry.
type ReadError struct {
	Name string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Name, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// DecodeError reports a matching entry that is not UTF-8 text.
type DecodeError struct {
	Name string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: invalid utf-8", e.Name)
}

// Kind names the error category for logs and metrics.
func Kind(err error) string {
	var (
		listErr   *ListError
		readErr   *ReadError
		decodeErr *DecodeError
	)
	switch {
	case errors.Is(err, ErrDirNotFound):
		return "dir_not_found"
	case errors.As(err, &listErr):
		return "list"
	case errors.As(err, &readErr):
		return "read"
	case errors.As(err, &decodeErr):
		return "decode"
	default:
		return "unknown"
	}
}
