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

// Package automaton compiles literal patterns and two built-in lexical classes
// (numbers and identifiers) into one shared deterministic transition table.
//
// The table is sparse: a missing (state, symbol) pair means "no move", there is
// no implicit reject state. States reached at the end of a pattern are accepting
// and carry the set of token names registered for them.
//
// An Automaton is built by sequential calls (InstallDefaultClasses, Extend) and
// is read-only afterwards; a finished Automaton may be scanned concurrently.
package automaton

import (
	"github.com/EngFlow/longest_match/internal/collections"
)

// Automaton owns a transition table, an accept table and a start state.
type Automaton struct {
	alloc *Allocator
	start State
	// All states owned by this automaton in allocation order.
	states      []State
	transitions map[State]map[rune]State
	accepts     map[State]collections.Set[string]
	// Number of edges entering each state. The builder relies on it to tell
	// private pattern states from states shared by a lexical class.
	incoming map[State]int
}

// New creates an empty automaton whose states are drawn from alloc. The start
// state is allocated immediately and is not accepting.
func New(alloc *Allocator) *Automaton {
	a := &Automaton{
		alloc:       alloc,
		transitions: make(map[State]map[rune]State),
		accepts:     make(map[State]collections.Set[string]),
		incoming:    make(map[State]int),
	}
	a.start = a.NewState()
	return a
}

func (a *Automaton) Start() State {
	return a.start
}

// NewState allocates a state owned by this automaton.
func (a *Automaton) NewState() State {
	s := a.alloc.Next()
	a.states = append(a.states, s)
	return s
}

// States returns the states owned by this automaton in allocation order.
func (a *Automaton) States() []State {
	return append([]State(nil), a.states...)
}

// AddTransition installs the edge from --symbol--> to, replacing any previous
// destination for the same (from, symbol) pair.
func (a *Automaton) AddTransition(from State, symbol rune, to State) {
	edges, ok := a.transitions[from]
	if !ok {
		edges = make(map[rune]State)
		a.transitions[from] = edges
	}
	if previous, ok := edges[symbol]; ok {
		a.incoming[previous]--
	}
	edges[symbol] = to
	a.incoming[to]++
}

// Step returns the destination of the edge leaving from on symbol. The boolean
// is false when no such edge exists.
func (a *Automaton) Step(from State, symbol rune) (State, bool) {
	to, ok := a.transitions[from][symbol]
	return to, ok
}

// MarkAccepting adds token to the names accepted at s. Earlier registrations
// are kept.
func (a *Automaton) MarkAccepting(s State, token string) {
	tokens, ok := a.accepts[s]
	if !ok {
		tokens = make(collections.Set[string])
		a.accepts[s] = tokens
	}
	tokens.Add(token)
}

// Tokens returns the token names accepted at s, or nil when s is not accepting.
// The returned set belongs to the automaton and must not be modified.
func (a *Automaton) Tokens(s State) collections.Set[string] {
	return a.accepts[s]
}

func (a *Automaton) IsAccepting(s State) bool {
	return len(a.accepts[s]) > 0
}

// outgoing returns the edges leaving s; the map belongs to the automaton.
func (a *Automaton) outgoing(s State) map[rune]State {
	return a.transitions[s]
}
