// CLASSIFICATION: COMMUNITY
// Filename: files.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

// Package files reads the GUI debugger scratch directory and returns every
// matching file as a name/content record.
package files

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// DefaultSuffix selects the files exported by the front-end builder. The
// underscore is part of the name, not an extension separator.
const DefaultSuffix = "_svelte"

var defaultSegments = []string{"470", "gui_debugger"}

// Record is a single matched file.
type Record struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// DefaultDir returns <home>/470/gui_debugger for the current user.
func DefaultDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("retrieving home directory: %w", err)
	}
	return filepath.Join(append([]string{home}, defaultSegments...)...), nil
}

// Matches reports whether name ends with the literal suffix.
func Matches(name, suffix string) bool {
	return strings.HasSuffix(name, suffix)
}

// Lister lists Dir and reads every entry whose name ends with Suffix.
type Lister struct {
	Dir    string
	Suffix string
	Fs     afero.Fs
}

// NewLister returns a Lister over the OS filesystem. An empty suffix
// selects DefaultSuffix.
func NewLister(dir, suffix string) *Lister {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return &Lister{Dir: dir, Suffix: suffix, Fs: afero.NewOsFs()}
}

// List returns one Record per matching top-level entry, in listing order.
// Reads run concurrently; the first failure aborts the batch and no partial
// result is returned.
func (l *Lister) List(ctx context.Context) ([]Record, error) {
	fsys := l.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	names, err := readDirNames(fsys, l.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ListError{Dir: l.Dir, Err: errors.Join(ErrDirNotFound, err)}
		}
		return nil, &ListError{Dir: l.Dir, Err: err}
	}

	var matched []string
	for _, name := range names {
		if Matches(name, l.Suffix) {
			matched = append(matched, name)
		}
	}

	records := make([]Record, len(matched))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range matched {
		i, name := i, name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := afero.ReadFile(fsys, filepath.Join(l.Dir, name))
			if err != nil {
				return &ReadError{Name: name, Err: err}
			}
			if !utf8.Valid(data) {
				return &DecodeError{Name: name}
			}
			records[i] = Record{Name: name, Content: string(data)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// readDirNames returns the entry names of dir without sorting or stat calls.
func readDirNames(fsys afero.Fs, dir string) ([]string, error) {
	f, err := fsys.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Readdirnames(-1)
}
