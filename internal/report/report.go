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

// Package report renders scan results for humans and for other tools.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/EngFlow/longest_match/internal/collections"
	"github.com/EngFlow/longest_match/internal/scanner"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

type (
	// Result of scanning one input.
	Result struct {
		Source  string
		Matches []scanner.Match
		// Set when the scan stopped at input no pattern matches.
		Truncated bool
		// Input left after the last match of a truncated scan.
		Remaining string
		StoppedAt scanner.Cursor
	}

	Format string
)

const (
	FormatText      Format = "text"
	FormatJSON      Format = "json"
	FormatProtoJSON Format = "protojson"
)

// Longest excerpt of the remaining input quoted in text reports, in runes.
const excerptLength = 20

var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatProtoJSON}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// NewResult collects the outcome of a finished scan.
func NewResult(src string, matches []scanner.Match, sc *scanner.Scanner) Result {
	result := Result{Source: src, Matches: matches}
	if sc.Truncated() {
		result.Truncated = true
		result.Remaining = sc.Remaining()
		result.StoppedAt = sc.Location()
	}
	return result
}

func Write(w io.Writer, format Format, results []Result) error {
	switch format {
	case FormatText:
		_, err := io.WriteString(w, Summary(results))
		return err
	case FormatJSON:
		data, err := json.MarshalIndent(document(results), "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case FormatProtoJSON:
		list, err := structpb.NewList(document(results))
		if err != nil {
			return err
		}
		data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(list)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// Summary renders results as text, one match per line.
func Summary(results []Result) string {
	var sb strings.Builder
	for _, result := range results {
		fmt.Fprintf(&sb, "%s (%d matches):\n", result.Source, len(result.Matches))
		for _, m := range result.Matches {
			fmt.Fprintf(&sb, "  %-8v %-24q %s\n", m.Location, m.Text, strings.Join(collections.Sorted(m.Tokens), ", "))
		}
		if result.Truncated {
			fmt.Fprintf(&sb, "  stopped at %v, no token matches %q\n", result.StoppedAt, excerpt(result.Remaining))
		}
	}
	return sb.String()
}

func excerpt(s string) string {
	if utf8.RuneCountInString(s) <= excerptLength {
		return s
	}
	return string([]rune(s)[:excerptLength]) + "..."
}

func cursorValue(c scanner.Cursor) map[string]any {
	return map[string]any{"line": c.Line, "column": c.Column}
}

// Stores input text under key. Protobuf strings must be valid UTF-8, so text
// that is not gets its invalid bytes replaced by U+FFFD and is kept verbatim,
// Go-quoted, under key + "_quoted".
func putText(doc map[string]any, key, text string) {
	if utf8.ValidString(text) {
		doc[key] = text
		return
	}
	doc[key] = strings.ToValidUTF8(text, "\uFFFD")
	doc[key+"_quoted"] = strconv.Quote(text)
}

// Generic representation shared by the JSON and protobuf JSON formats. Only
// types accepted by structpb.NewValue are used.
func document(results []Result) []any {
	return collections.MapSlice(results, func(result Result) any {
		matches := collections.MapSlice(result.Matches, func(m scanner.Match) any {
			doc := map[string]any{
				"tokens":   collections.MapSlice(collections.Sorted(m.Tokens), func(t string) any { return t }),
				"location": cursorValue(m.Location),
			}
			putText(doc, "text", m.Text)
			return doc
		})
		doc := map[string]any{
			"source":    result.Source,
			"matches":   matches,
			"truncated": result.Truncated,
		}
		if result.Truncated {
			putText(doc, "remaining", result.Remaining)
			doc["stopped_at"] = cursorValue(result.StoppedAt)
		}
		return doc
	})
}
