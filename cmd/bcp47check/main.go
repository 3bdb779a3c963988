/*
Copyright 2025 BCP47 Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command bcp47check parses, validates, and canonicalizes BCP 47 language
// tags given as command-line arguments, against either the embedded IANA
// registry snapshot or one loaded from a file.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jplu/bcp47/ianareg"
	"github.com/jplu/bcp47/langtag"
)

type config struct {
	registryPath string
	jsonOutput   bool
	checkReg     bool
	warnAsError  bool
}

func loadConfig() *config {
	cfg := &config{}
	flag.StringVar(&cfg.registryPath, "registry", "", "Path to an IANA Language Subtag Registry file. If empty, uses the embedded snapshot.")
	flag.BoolVar(&cfg.jsonOutput, "json", false, "Print results as JSON, one object per line, instead of plain text.")
	flag.BoolVar(&cfg.checkReg, "check-registry", true, "Run the registry cross-check (disable for well-formedness-only checking).")
	flag.BoolVar(&cfg.warnAsError, "warn-as-error", false, "Treat warnings as invalidating.")
	flag.Parse()
	return cfg
}

type tagReport struct {
	Tag          string                    `json:"tag"`
	IsWellFormed bool                      `json:"isWellFormed"`
	IsValid      bool                      `json:"isValid"`
	Canonical    string                    `json:"canonical,omitempty"`
	Errors       []langtag.StructuredError `json:"errors,omitempty"`
	Warnings     []langtag.StructuredError `json:"warnings,omitempty"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := loadConfig()

	tags, err := gatherTags()
	if err != nil {
		logger.Error("failed to read tags from stdin", "error", err)
		os.Exit(1)
	}
	if len(tags) == 0 {
		logger.Error("no language tags given; pass one or more as arguments, or pipe them on stdin")
		os.Exit(2)
	}

	registry, err := buildRegistry(cfg.registryPath)
	if err != nil {
		logger.Error("failed to build registry", "error", err)
		os.Exit(1)
	}

	parser := langtag.NewParser(registry)

	exitCode := 0
	for _, tag := range tags {
		report := runOne(parser, tag, cfg)
		if !report.IsValid {
			exitCode = 1
		}
		printReport(report, cfg.jsonOutput)
	}
	os.Exit(exitCode)
}

// gatherTags returns the tags to check: flag.Args() when any were given,
// otherwise one tag per non-blank line read from stdin.
func gatherTags() ([]string, error) {
	if flag.NArg() > 0 {
		return flag.Args(), nil
	}

	var tags []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tags = append(tags, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return tags, nil
}

func buildRegistry(path string) (langtag.Registry, error) {
	if path == "" {
		return ianareg.NewEmbeddedRegistry()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening registry file: %w", err)
	}
	defer f.Close()
	return ianareg.NewRegistryFromReader(f)
}

func runOne(parser *langtag.Parser, tag string, cfg *config) tagReport {
	var opts []langtag.Option
	opts = append(opts, langtag.WithCheckRegistry(cfg.checkReg))
	opts = append(opts, langtag.WithWarnAsError(cfg.warnAsError))

	result := parser.ValidateLanguageTag(tag, opts...)
	report := tagReport{
		Tag:          tag,
		IsWellFormed: result.IsWellFormed,
		IsValid:      result.IsValid,
		Errors:       result.Errors,
		Warnings:     result.Warnings,
	}
	if result.IsWellFormed {
		if canon, ok := parser.CanonicalizeTag(tag); ok {
			report.Canonical = canon
		}
	}
	return report
}

func printReport(r tagReport, asJSON bool) {
	if asJSON {
		data, err := json.Marshal(r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode report for %q: %v\n", r.Tag, err)
			return
		}
		fmt.Println(string(data))
		return
	}

	status := "valid"
	switch {
	case !r.IsWellFormed:
		status = "malformed"
	case !r.IsValid:
		status = "invalid"
	}
	fmt.Printf("%s: %s", r.Tag, status)
	if r.Canonical != "" && r.Canonical != r.Tag {
		fmt.Printf(" (canonical: %s)", r.Canonical)
	}
	fmt.Println()
	for _, e := range r.Errors {
		fmt.Printf("  error: %s\n", e.Error())
	}
	for _, w := range r.Warnings {
		fmt.Printf("  warning: %s\n", w.Error())
	}
}
