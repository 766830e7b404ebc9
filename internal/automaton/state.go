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

import "sync/atomic"

// State identifies an automaton state. It carries no payload; two states are
// the same state exactly when they compare equal. Values must only come from
// an Allocator.
type State uint64

// Allocator issues unique State values. Every call to Next returns a value
// never returned before by the same Allocator, also when called concurrently.
//
// Automata built against one Allocator may be combined freely; mixing states
// from different allocators in one Automaton is undefined.
type Allocator struct {
	next atomic.Uint64
}

func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns a fresh State.
func (a *Allocator) Next() State {
	return State(a.next.Add(1) - 1)
}

// Reset rewinds the allocator so that it issues the same sequence again.
// Only meant for tests: states issued before the reset become ambiguous.
func (a *Allocator) Reset() {
	a.next.Store(0)
}
