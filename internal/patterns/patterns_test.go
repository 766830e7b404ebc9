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

package patterns

import (
	"testing"

	"github.com/EngFlow/longest_match/internal/automaton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	const data = `
# Operators of the toy language.
token(name = "PLUS", literal = "+")
token(name = "PLUSPLUS", literal = "++")

token(
    name = "BRACES",
    literals = ["{", "}"],
)
token(name = "TAB", literal = "\t")
token(name = "QUOTE", literal = "\"")
`

	expected := []automaton.Pattern{
		{Literal: "+", Token: "PLUS"},
		{Literal: "++", Token: "PLUSPLUS"},
		{Literal: "{", Token: "BRACES"},
		{Literal: "}", Token: "BRACES"},
		{Literal: "\t", Token: "TAB"},
		{Literal: `"`, Token: "QUOTE"},
	}

	actual, err := Parse("lang.tokens", []byte(data))
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestParseEmptyFile(t *testing.T) {
	actual, err := Parse("empty.tokens", nil)
	require.NoError(t, err)
	assert.Empty(t, actual)
}

func TestParseKeepsEmptyLiteral(t *testing.T) {
	actual, err := Parse("lang.tokens", []byte(`token(name = "EMPTY", literal = "")`))
	require.NoError(t, err)
	assert.Equal(t, []automaton.Pattern{{Literal: "", Token: "EMPTY"}}, actual)
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		data     string
		expected error
		where    string
	}{
		{
			data:     `cc_library(name = "x", literal = "x")`,
			expected: ErrUnknownKind,
			where:    "lang.tokens:1:1:",
		},
		{
			data:     "token(name = \"A\", literal = \"a\")\n\ncc_library(name = \"x\")",
			expected: ErrUnknownKind,
			where:    "lang.tokens:3:1:",
		},
		{
			data:     `token(literal = "x")`,
			expected: ErrMissingName,
			where:    "lang.tokens:1:1:",
		},
		{
			data:     "token(name = \"A\", literal = \"a\")\ntoken(name = \"B\")",
			expected: ErrMissingLiteral,
			where:    "lang.tokens:2:1:",
		},
		{
			data:     `token(name = "A", literal = "a", literals = ["b"])`,
			expected: ErrMissingLiteral,
			where:    "lang.tokens:1:1:",
		},
		{
			data:     `token(name = "A", literals = [])`,
			expected: ErrMissingLiteral,
			where:    "lang.tokens:1:1:",
		},
		{
			data:     "\ntoken(name = \"A\", literal = 1)",
			expected: ErrNotAString,
			where:    "lang.tokens:2:",
		},
		{
			data:     `token(name = A, literal = "a")`,
			expected: ErrNotAString,
			where:    "lang.tokens:1:",
		},
		{
			data:     `token(name = "A", literals = "a")`,
			expected: ErrNotAList,
			where:    "lang.tokens:1:",
		},
		{
			data:     `token(name = "A", literals = ["a", 2])`,
			expected: ErrNotAString,
			where:    "lang.tokens:1:",
		},
	}

	for _, tc := range testCases {
		_, err := Parse("lang.tokens", []byte(tc.data))
		require.Error(t, err, "data: %s", tc.data)
		assert.ErrorIs(t, err, tc.expected, "data: %s", tc.data)
		assert.Contains(t, err.Error(), tc.where, "data: %s", tc.data)
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("broken.tokens", []byte(`token(name = "A", literal = `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing broken.tokens")
}

func TestParsedPatternsBuild(t *testing.T) {
	actual, err := Parse("lang.tokens", []byte(`token(name = "SMALLER", literals = ["<", "<<"])`))
	require.NoError(t, err)

	a := automaton.BuildWithOptions(actual, automaton.BuildOptions{WithoutDefaultClasses: true})
	assert.Equal(t, "(0)\n  '<' -> (1)\n(1) accepts [SMALLER]\n  '<' -> (2)\n(2) accepts [SMALLER]\n", a.String())
}
