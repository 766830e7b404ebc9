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

// Command flm tokenizes inputs with the first-longest-match rule.
//
// Literal patterns are read from pattern definition files (see package
// patterns) and compiled, together with the built-in number and identifier
// classes, into one automaton. Every input is then scanned against it:
//
//	flm -patterns=lang.tokens -format=json 'src/**/*.src' extra.src.xz
//
// A scan stops at the first position where no pattern matches; the report
// shows where. With -strict such a stop makes the command fail.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/EngFlow/longest_match/internal/automaton"
	"github.com/EngFlow/longest_match/internal/patterns"
	"github.com/EngFlow/longest_match/internal/report"
	"github.com/EngFlow/longest_match/internal/scanner"
	"github.com/EngFlow/longest_match/internal/source"
)

// Name of the source reported for text given with -text.
const textSource = "<text>"

var errTruncated = errors.New("some inputs were not scanned completely")

type config struct {
	patternArgs []string
	inputArgs   []string
	text        *string
	format      report.Format
	backtrack   bool
	noDefaults  bool
	strict      bool
	dump        io.Writer
	verbose     bool
}

func main() {
	patternsFlag := flag.String("patterns", "", "Comma-separated paths or glob patterns of pattern definition files")
	text := flag.String("text", "", "Scan the given text in addition to the input files")
	format := flag.String("format", string(report.FormatText), "Output format: text, json or protojson")
	output := flag.String("output", "", "Write the report to this file instead of the standard output")
	backtrack := flag.Bool("backtrack", false, "Scan symbols consumed past the end of a match again instead of dropping them")
	noDefaults := flag.Bool("no_defaults", false, "Do not compile the built-in number and identifier classes")
	strict := flag.Bool("strict", false, "Exit with status 1 when some input could not be scanned completely")
	dump := flag.Bool("dump", false, "Print the compiled automaton to the standard error")
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	flag.Parse()

	cfg := config{
		inputArgs:  flag.Args(),
		backtrack:  *backtrack,
		noDefaults: *noDefaults,
		strict:     *strict,
		verbose:    *verbose,
	}
	if *patternsFlag != "" {
		cfg.patternArgs = strings.Split(*patternsFlag, ",")
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "text" {
			cfg.text = text
		}
	})
	if *dump {
		cfg.dump = os.Stderr
	}

	var err error
	if cfg.format, err = report.ParseFormat(*format); err != nil {
		flag.Usage()
		log.Fatal(err)
	}
	if len(cfg.inputArgs) == 0 && cfg.text == nil {
		flag.Usage()
		log.Fatalf("Program requires at least one input file or the -text flag")
	}

	if err := runTo(*output, cfg); err != nil {
		if errors.Is(err, errTruncated) {
			log.Print(err)
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

// runTo runs cfg with the report written to the file at path, or to the
// standard output when path is empty. The file is closed before returning and
// a failed close is reported with the error of run.
func runTo(path string, cfg config) (err error) {
	if path == "" {
		return run(cfg, os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return run(cfg, f)
}

func loadPatterns(args []string) ([]automaton.Pattern, error) {
	if len(args) == 0 {
		return nil, nil
	}
	paths, err := source.Expand(args)
	if err != nil {
		return nil, err
	}

	var result []automaton.Pattern
	for _, path := range paths {
		data, err := source.Read(path)
		if err != nil {
			return nil, err
		}
		loaded, err := patterns.Parse(path, []byte(data))
		if err != nil {
			return nil, err
		}
		result = append(result, loaded...)
	}
	return result, nil
}

// run builds the automaton, scans every input and writes the report to out.
// Returns errTruncated after writing the report when cfg.strict is set and some
// scan stopped early.
func run(cfg config, out io.Writer) error {
	loaded, err := loadPatterns(cfg.patternArgs)
	if err != nil {
		return fmt.Errorf("loading patterns: %w", err)
	}
	a := automaton.BuildWithOptions(loaded, automaton.BuildOptions{WithoutDefaultClasses: cfg.noDefaults})
	if cfg.verbose {
		log.Printf("Compiled %d patterns into %d states", len(loaded), len(a.States()))
	}
	if cfg.dump != nil {
		if _, err := a.WriteTo(cfg.dump); err != nil {
			return err
		}
	}

	var inputs []string
	if len(cfg.inputArgs) > 0 {
		if inputs, err = source.Expand(cfg.inputArgs); err != nil {
			return err
		}
	}

	var results []report.Result
	scanOne := func(src, input string) {
		sc := scanner.NewScanner(a, input, scanner.Options{Backtrack: cfg.backtrack})
		result := report.NewResult(src, slices.Collect(sc.All()), sc)
		if cfg.verbose {
			log.Printf("Scanned %s: %d matches", src, len(result.Matches))
		}
		if result.Truncated {
			log.Printf("Scan of %s stopped at %v", src, result.StoppedAt)
		}
		results = append(results, result)
	}

	if cfg.text != nil {
		scanOne(textSource, *cfg.text)
	}
	for _, path := range inputs {
		input, err := source.Read(path)
		if err != nil {
			return err
		}
		scanOne(path, input)
	}

	if err := report.Write(out, cfg.format, results); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if cfg.strict && slices.ContainsFunc(results, func(r report.Result) bool { return r.Truncated }) {
		return errTruncated
	}
	return nil
}
