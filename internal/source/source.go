// Copyright 2026 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package source locates and reads the inputs of a scan.
//
// Inputs are named by paths or by doublestar glob patterns (e.g.
// "testdata/**/*.src"). Compressed files are decompressed transparently
// according to their extension: .xz, .gz and .bz2 are supported.
package source

import (
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/EngFlow/longest_match/internal/collections"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/ulikunitz/xz"
)

// Stdin is the argument naming the standard input.
const Stdin = "-"

var (
	ErrInvalidGlob = errors.New("invalid glob pattern")
	ErrNoInputs    = errors.New("no files match")
)

// Replaced in tests.
var stdin io.Reader = os.Stdin

// Expand resolves every argument to a list of files. An argument is kept as is
// when it is Stdin or an existing path, otherwise it is expanded as a glob
// pattern whose matches are sorted. The result keeps argument order and lists
// every file once.
func Expand(args []string) ([]string, error) {
	var result []string
	seen := make(collections.Set[string])
	add := func(path string) {
		if !seen.Contains(path) {
			seen.Add(path)
			result = append(result, path)
		}
	}

	for _, arg := range args {
		if arg == Stdin {
			add(arg)
			continue
		}
		if _, err := os.Stat(arg); err == nil {
			add(arg)
			continue
		}
		if !doublestar.ValidatePattern(filepath.ToSlash(arg)) {
			return nil, fmt.Errorf("%q: %w", arg, ErrInvalidGlob)
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%q: %w", arg, ErrNoInputs)
		}
		slices.Sort(matches)
		for _, match := range matches {
			add(match)
		}
	}
	return result, nil
}

// Read returns the whole content of the file at path, decompressed if needed.
func Read(path string) (string, error) {
	if path == Stdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading standard input: %w", err)
		}
		return string(data), nil
	}

	var data []byte
	err := withFile(path, func(f *os.File) error {
		r, err := decompressed(path, f)
		if err != nil {
			return err
		}
		data, err = io.ReadAll(r)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func withFile(path string, fn func(*os.File) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(f)
}

func decompressed(path string, r io.Reader) (io.Reader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		return xzr, nil
	case ".gz":
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return gzr, nil
	case ".bz2":
		return bzip2.NewReader(r), nil
	default:
		return r, nil
	}
}
