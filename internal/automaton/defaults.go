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

// Token names of the built-in lexical classes.
const (
	// One or more decimal digits.
	TokenNumber = "NUM"
	// A lowercase letter followed by lowercase letters or digits.
	TokenIdentifier = "ID"
)

// InstallDefaultClasses adds the number and identifier classes to the
// automaton. It has to run before any Extend call.
//
// A digit run directly followed by a letter ("123abc") falls into a sink state
// that loops on letters and digits and never accepts. The scan of such input
// therefore keeps consuming without reporting the letters as an identifier, and
// the digit run stays the longest accepted prefix. Identifiers never reach the
// sink since trailing digits are legal there.
func (a *Automaton) InstallDefaultClasses() {
	inNumber := a.NewState()
	inIdentifier := a.NewState()
	sink := a.NewState()

	for digit := '0'; digit <= '9'; digit++ {
		a.AddTransition(a.start, digit, inNumber)
		a.AddTransition(inNumber, digit, inNumber)
		a.AddTransition(inIdentifier, digit, inIdentifier)
		a.AddTransition(sink, digit, sink)
	}
	for letter := 'a'; letter <= 'z'; letter++ {
		a.AddTransition(a.start, letter, inIdentifier)
		a.AddTransition(inIdentifier, letter, inIdentifier)
		a.AddTransition(inNumber, letter, sink)
		a.AddTransition(sink, letter, sink)
	}

	a.MarkAccepting(inNumber, TokenNumber)
	a.MarkAccepting(inIdentifier, TokenIdentifier)
}
