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

package scanner

import (
	"fmt"

	"github.com/EngFlow/longest_match/internal/collections"
)

// Match is one token recognized by the scanner: the exact input text and every
// token name accepted for it.
type Match struct {
	Text string
	// Owned by the receiver of the match, never shared with the automaton.
	Tokens   collections.Set[string]
	Location Cursor
}

func (m Match) String() string {
	return fmt.Sprintf("%v %q %v", m.Location, m.Text, collections.Sorted(m.Tokens))
}
