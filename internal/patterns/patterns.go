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

// Package patterns reads pattern definition files.
//
// A pattern file uses Starlark syntax, the same as a BUILD file. Every
// statement is a call of the form
//
//	token(name = "PLUSPLUS", literal = "++")
//	token(name = "BRACES", literals = ["{", "}"])
//
// that registers one or more literal symbol sequences under a token name.
// Starlark escapes ("\t", "\n", "\"") are decoded before the literal is compiled;
// the literal itself has no further syntax.
package patterns

import (
	"errors"
	"fmt"
	"log"

	"github.com/EngFlow/longest_match/internal/automaton"
	"github.com/EngFlow/longest_match/internal/collections"
	"github.com/bazelbuild/bazel-gazelle/rule"
	bzl "github.com/bazelbuild/buildtools/build"
)

const (
	tokenKind       = "token"
	nameAttr        = "name"
	literalAttr     = "literal"
	literalListAttr = "literals"
)

var knownAttrs = collections.SetOf(nameAttr, literalAttr, literalListAttr)

var (
	ErrUnknownKind    = errors.New(`unknown rule kind, expected "token"`)
	ErrMissingName    = errors.New("missing token name")
	ErrMissingLiteral = errors.New(`exactly one of "literal" or "literals" is required`)
	ErrNotAString     = errors.New("expected a string")
	ErrNotAList       = errors.New("expected a list of strings")
)

// Parse returns the patterns defined in data, in file order. The path is only
// used in error messages.
func Parse(path string, data []byte) ([]automaton.Pattern, error) {
	f, err := rule.LoadData(path, "", data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	calls := newCallPositions(path, f.File)
	var result []automaton.Pattern
	for _, r := range f.Rules {
		where := calls.next(r.Kind())
		if r.Kind() != tokenKind {
			return nil, fmt.Errorf("%s: %q: %w", where, r.Kind(), ErrUnknownKind)
		}

		name, err := stringAttr(path, r, nameAttr)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, fmt.Errorf("%s: %w", where, ErrMissingName)
		}

		literals, err := literalsOf(path, r)
		if err != nil {
			return nil, err
		}
		if len(literals) == 0 {
			return nil, fmt.Errorf("%s (%s): %w", where, name, ErrMissingLiteral)
		}

		for _, key := range r.AttrKeys() {
			if !knownAttrs.Contains(key) {
				log.Printf("%s (%s): ignoring unknown attribute %q", where, name, key)
			}
		}
		for _, literal := range literals {
			if literal == "" {
				log.Printf("%s (%s): empty literal is accepted but never matched by a scan", where, name)
			}
			result = append(result, automaton.Pattern{Literal: literal, Token: name})
		}
	}
	return result, nil
}

// Top-level calls of a pattern file not yet matched to a rule. The rules of a
// rule.File keep the order of their calls, so each rule is matched to the next
// call of the same kind.
type callPositions struct {
	path  string
	calls []*bzl.CallExpr
}

func newCallPositions(path string, f *bzl.File) *callPositions {
	p := &callPositions{path: path}
	for _, stmt := range f.Stmt {
		if call, ok := stmt.(*bzl.CallExpr); ok {
			p.calls = append(p.calls, call)
		}
	}
	return p
}

// Returns the position of the next call of the given kind, or just the path
// when there is none.
func (p *callPositions) next(kind string) string {
	for len(p.calls) > 0 {
		call := p.calls[0]
		p.calls = p.calls[1:]
		if bzl.FormatString(call.X) == kind {
			return position(p.path, call)
		}
	}
	return p.path
}

func position(path string, expr bzl.Expr) string {
	start, _ := expr.Span()
	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.LineRune)
}

// Returns the value of a string attribute, or "" when the attribute is absent.
func stringAttr(path string, r *rule.Rule, key string) (string, error) {
	expr := r.Attr(key)
	if expr == nil {
		return "", nil
	}
	str, ok := expr.(*bzl.StringExpr)
	if !ok {
		return "", fmt.Errorf("%s: attribute %q: %w", position(path, expr), key, ErrNotAString)
	}
	return str.Value, nil
}

// Collects the literals of a token rule. Returns nil when neither or both of
// the literal attributes are set.
func literalsOf(path string, r *rule.Rule) ([]string, error) {
	single, list := r.Attr(literalAttr), r.Attr(literalListAttr)
	switch {
	case single != nil && list == nil:
		literal, err := stringAttr(path, r, literalAttr)
		if err != nil {
			return nil, err
		}
		return []string{literal}, nil
	case single == nil && list != nil:
		listExpr, ok := list.(*bzl.ListExpr)
		if !ok {
			return nil, fmt.Errorf("%s: attribute %q: %w", position(path, list), literalListAttr, ErrNotAList)
		}
		literals := make([]string, 0, len(listExpr.List))
		for _, elem := range listExpr.List {
			str, ok := elem.(*bzl.StringExpr)
			if !ok {
				return nil, fmt.Errorf("%s: attribute %q: %w", position(path, elem), literalListAttr, ErrNotAString)
			}
			literals = append(literals, str.Value)
		}
		return literals, nil
	default:
		return nil, nil
	}
}
