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

package automaton

// Pattern is a literal symbol sequence recognized as Token. Every rune of
// Literal is one symbol; there is no escaping and no special syntax.
type Pattern struct {
	Literal string
	Token   string
}

// Extend merges literal into the automaton so that reading it from the start
// state ends in a state accepting token. The final state is returned.
//
// The walk follows existing transitions as long as possible and allocates new
// states where none exist, so patterns with a common prefix share it. The empty
// literal marks the start state itself.
//
// States entered by more than one edge belong to a lexical class (see
// InstallDefaultClasses). Marking such a state would make the token accepted
// for every word of the class, so the walk gives the pattern a private copy of
// it instead and continues there.
func (a *Automaton) Extend(literal, token string) State {
	current := a.start
	for _, symbol := range literal {
		next, ok := a.Step(current, symbol)
		switch {
		case !ok:
			next = a.NewState()
			a.AddTransition(current, symbol, next)
		case a.incoming[next] > 1:
			next = a.splitEdge(current, symbol, next)
		}
		current = next
	}
	a.MarkAccepting(current, token)
	return current
}

// splitEdge redirects the edge from --symbol--> shared to a new copy of shared
// with the same outgoing edges and accepted tokens, and returns the copy.
func (a *Automaton) splitEdge(from State, symbol rune, shared State) State {
	copied := a.NewState()
	for s, to := range a.outgoing(shared) {
		a.AddTransition(copied, s, to)
	}
	if tokens := a.accepts[shared]; tokens != nil {
		a.accepts[copied] = tokens.Clone()
	}
	a.AddTransition(from, symbol, copied)
	return copied
}
