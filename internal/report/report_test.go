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

package report

import (
	"bytes"
	"encoding/json"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/EngFlow/longest_match/internal/automaton"
	"github.com/EngFlow/longest_match/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

func scan(t *testing.T, src, input string) Result {
	t.Helper()
	a := automaton.Build([]automaton.Pattern{
		{Literal: "abc", Token: "ABC"},
		{Literal: "<", Token: "SMALLER"},
		{Literal: "<<", Token: "DOUBLE_SMALLER"},
	})
	sc := scanner.NewScanner(a, input, scanner.Options{})
	return NewResult(src, slices.Collect(sc.All()), sc)
}

const expectedJSON = `[
  {
    "source": "first.src",
    "truncated": false,
    "matches": [
      {"text": "abc", "tokens": ["ABC", "ID"], "location": {"line": 1, "column": 1}},
      {"text": "<<", "tokens": ["DOUBLE_SMALLER"], "location": {"line": 1, "column": 4}}
    ]
  },
  {
    "source": "second.src",
    "truncated": true,
    "remaining": "#dd",
    "stopped_at": {"line": 1, "column": 2},
    "matches": [
      {"text": "<", "tokens": ["SMALLER"], "location": {"line": 1, "column": 1}}
    ]
  }
]`

func results(t *testing.T) []Result {
	return []Result{scan(t, "first.src", "abc<<"), scan(t, "second.src", "<#dd")}
}

func TestNewResult(t *testing.T) {
	complete := scan(t, "first.src", "abc<<")
	assert.False(t, complete.Truncated)
	assert.Empty(t, complete.Remaining)
	assert.Len(t, complete.Matches, 2)

	truncated := scan(t, "second.src", "<#dd")
	assert.True(t, truncated.Truncated)
	assert.Equal(t, "#dd", truncated.Remaining)
	assert.Equal(t, scanner.Cursor{Line: 1, Column: 2}, truncated.StoppedAt)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, results(t)))
	assert.JSONEq(t, expectedJSON, buf.String())
}

func TestWriteProtoJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatProtoJSON, results(t)))

	var actual structpb.ListValue
	require.NoError(t, protojson.Unmarshal(buf.Bytes(), &actual))

	var expected []any
	require.NoError(t, json.Unmarshal([]byte(expectedJSON), &expected))
	assert.Equal(t, expected, actual.AsSlice())
}

const expectedInvalidUTF8JSON = `[
  {
    "source": "bytes.src",
    "truncated": true,
    "remaining": " \ufffd",
    "remaining_quoted": "\" \\xff\"",
    "stopped_at": {"line": 1, "column": 4},
    "matches": [
      {"text": "abc", "tokens": ["ABC", "ID"], "location": {"line": 1, "column": 1}}
    ]
  }
]`

func TestWriteInvalidUTF8(t *testing.T) {
	invalid := []Result{scan(t, "bytes.src", "abc \xff")}
	require.Equal(t, " \xff", invalid[0].Remaining)

	var expected []any
	require.NoError(t, json.Unmarshal([]byte(expectedInvalidUTF8JSON), &expected))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, invalid))
	assert.JSONEq(t, expectedInvalidUTF8JSON, buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, FormatProtoJSON, invalid))
	var actual structpb.ListValue
	require.NoError(t, protojson.Unmarshal(buf.Bytes(), &actual))
	assert.Equal(t, expected, actual.AsSlice())

	// the quoted form keeps the original bytes
	quoted := expected[0].(map[string]any)["remaining_quoted"].(string)
	unquoted, err := strconv.Unquote(quoted)
	require.NoError(t, err)
	assert.Equal(t, invalid[0].Remaining, unquoted)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, results(t)))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "first.src (2 matches):", lines[0])
	assert.Regexp(t, `^  1:1 +"abc" +ABC, ID$`, lines[1])
	assert.Regexp(t, `^  1:4 +"<<" +DOUBLE_SMALLER$`, lines[2])
	assert.Equal(t, "second.src (1 matches):", lines[3])
	assert.Regexp(t, `^  1:1 +"<" +SMALLER$`, lines[4])
	assert.Equal(t, `  stopped at 1:2, no token matches "#dd"`, lines[5])
}

func TestSummaryShortensRemainingInput(t *testing.T) {
	result := scan(t, "long.src", "#"+strings.Repeat("x", 100))
	assert.Contains(t, Summary([]Result{result}), `no token matches "#xxxxxxxxxxxxxxxxxxx..."`)
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		parsed, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	_, err := ParseFormat("yaml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.ErrorIs(t, Write(&bytes.Buffer{}, Format("yaml"), nil), ErrUnknownFormat)
}
