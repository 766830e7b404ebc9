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

type BuildOptions struct {
	// States are drawn from this allocator. A fresh one is used when nil.
	Allocator *Allocator
	// Compile only the given patterns, without the number and identifier
	// classes.
	WithoutDefaultClasses bool
}

// Build compiles the built-in lexical classes and all patterns, in order, into
// one automaton.
func Build(patterns []Pattern) *Automaton {
	return BuildWithOptions(patterns, BuildOptions{})
}

func BuildWithOptions(patterns []Pattern, opts BuildOptions) *Automaton {
	alloc := opts.Allocator
	if alloc == nil {
		alloc = NewAllocator()
	}

	a := New(alloc)
	if !opts.WithoutDefaultClasses {
		a.InstallDefaultClasses()
	}
	for _, p := range patterns {
		a.Extend(p.Literal, p.Token)
	}
	return a
}
