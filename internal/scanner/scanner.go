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

// Package scanner splits input into tokens with the first-longest-match rule.
//
// Starting at the first symbol, the scanner follows the automaton as far as the
// input allows and remembers the last accepting state it passed. That longest
// accepted prefix is emitted together with all token names of its state, and
// the next attempt starts after it.
//
// There is no error recovery: when an attempt passes no accepting state at all,
// the scan stops and the input left is reported by Remaining. A single
// unrecognized symbol thus truncates the result to the matches before it.
package scanner

import (
	"iter"
	"slices"
	"unicode/utf8"

	"github.com/EngFlow/longest_match/internal/automaton"
	"github.com/EngFlow/longest_match/internal/collections"
)

type (
	// Automaton is the read-only view of a compiled automaton used for scanning.
	Automaton interface {
		Start() automaton.State
		// Step returns false when there is no edge for symbol.
		Step(from automaton.State, symbol rune) (automaton.State, bool)
		// Tokens returns nil for states that do not accept.
		Tokens(s automaton.State) collections.Set[string]
	}

	Options struct {
		// An attempt may consume symbols past its last accepting state before it
		// gets stuck, e.g. "abc" in "123abc" which runs into the sink of the
		// number class. By default those symbols are dropped together with the
		// match. With Backtrack the next attempt starts right after the match and
		// scans them again.
		Backtrack bool
	}

	// Scanner holds the progress of one scan. The automaton is only read, so any
	// number of scanners may share it.
	Scanner struct {
		automaton Automaton
		opts      Options
		dataLeft  string
		cursor    Cursor
		truncated bool
	}
)

var _ Automaton = (*automaton.Automaton)(nil)

func NewScanner(a Automaton, input string, opts Options) *Scanner {
	return &Scanner{automaton: a, opts: opts, dataLeft: input, cursor: CursorInit}
}

// Update the scanner state after an attempt consumed the given number of bytes.
func (sc *Scanner) consume(length int) {
	sc.cursor = sc.cursor.AdvancedBy(sc.dataLeft[:length])
	sc.dataLeft = sc.dataLeft[length:]
}

// Run one attempt from the start state. Returns false and marks the scan as
// truncated when the attempt reaches no accepting state.
func (sc *Scanner) next() (Match, bool) {
	state := sc.automaton.Start()
	consumed := 0
	matched := 0
	var accepted collections.Set[string]

	for consumed < len(sc.dataLeft) {
		symbol, width := utf8.DecodeRuneInString(sc.dataLeft[consumed:])
		if symbol == utf8.RuneError && width == 1 {
			// Bytes that are not valid UTF-8 are no symbol at all, so they
			// never match a U+FFFD literal.
			break
		}
		next, ok := sc.automaton.Step(state, symbol)
		if !ok {
			// The symbol stays in the input for the next attempt.
			break
		}
		state = next
		consumed += width
		if tokens := sc.automaton.Tokens(state); len(tokens) > 0 {
			matched = consumed
			accepted = tokens
		}
	}

	if matched == 0 {
		sc.truncated = true
		return Match{}, false
	}

	result := Match{Text: sc.dataLeft[:matched], Tokens: accepted.Clone(), Location: sc.cursor}
	if sc.opts.Backtrack {
		consumed = matched
	}
	sc.consume(consumed)
	return result, true
}

// Iterate through the matches until the input is exhausted or an attempt
// fails.
func (sc *Scanner) All() iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for len(sc.dataLeft) > 0 && !sc.truncated {
			match, ok := sc.next()
			if !ok || !yield(match) {
				return
			}
		}
	}
}

// Truncated reports whether the scan stopped at input no pattern matches.
func (sc *Scanner) Truncated() bool {
	return sc.truncated
}

// Remaining returns the input not consumed yet. After a truncated scan it
// starts with the symbol where the failed attempt began.
func (sc *Scanner) Remaining() string {
	return sc.dataLeft
}

// Location returns the position of the first unconsumed symbol.
func (sc *Scanner) Location() Cursor {
	return sc.cursor
}

// Scan returns all matches of input against a. The result ends early when
// some position of the input has no accepted prefix; there is no separate
// error value. Use a Scanner to find out how much was consumed.
func Scan(a Automaton, input string) []Match {
	return slices.Collect(NewScanner(a, input, Options{}).All())
}

// Simulate builds an automaton with the default classes and the given
// patterns and scans input with it.
func Simulate(patterns []automaton.Pattern, input string) []Match {
	return Scan(automaton.Build(patterns), input)
}
