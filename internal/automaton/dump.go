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

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/EngFlow/longest_match/internal/collections"
)

// String returns a canonical description of the part of the automaton that is
// reachable from the start state.
//
// States are numbered in breadth-first order starting with (0) for the start
// state, visiting edges by ascending symbol. Allocator values do not appear in
// the output, so automata with the same structure print identically no matter
// in which order they were built.
func (a *Automaton) String() string {
	var sb strings.Builder
	ids := map[State]int{a.start: 0}
	queue := []State{a.start}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		fmt.Fprintf(&sb, "(%d)", ids[s])
		if tokens := a.Tokens(s); len(tokens) > 0 {
			fmt.Fprintf(&sb, " accepts %v", collections.Sorted(tokens))
		}
		sb.WriteByte('\n')

		edges := a.outgoing(s)
		for _, symbol := range slices.Sorted(maps.Keys(edges)) {
			to := edges[symbol]
			id, seen := ids[to]
			if !seen {
				id = len(ids)
				ids[to] = id
				queue = append(queue, to)
			}
			fmt.Fprintf(&sb, "  %q -> (%d)\n", symbol, id)
		}
	}
	return sb.String()
}

// WriteTo writes the description returned by String.
func (a *Automaton) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, a.String())
	return int64(n), err
}
