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

package langtag

import (
	"encoding/json"
	"fmt"
)

// Parser is the entry point for every operation this package exposes. It
// binds a Registry once so callers don't thread one through every call; the
// zero value is not usable, construct one with NewParser.
//
// A *Parser holds no mutable state beyond its Registry reference, so it is
// safe for concurrent use by multiple goroutines as long as the Registry is.
type Parser struct {
	registry Registry
}

// NewParser builds a Parser backed by registry. registry must not be nil.
func NewParser(registry Registry) *Parser {
	if registry == nil {
		panic("langtag: NewParser called with a nil Registry")
	}
	return &Parser{registry: registry}
}

// IsWellFormed reports whether input satisfies the Sec 4.1/4.2 grammar,
// without consulting the registry beyond recognizing a whole-tag
// grandfathered or redundant entry.
func (p *Parser) IsWellFormed(input string) bool {
	_, _, err := parseWellFormed(input, p.registry)
	return err == nil
}

// ParseTag parses input and returns its structured decomposition, or nil if
// input is not well-formed. The returned Tag field joins the parsed subtags
// with hyphens in the case they had in input (see renderParsedTag); neither
// case normalization nor preferred-value substitution nor any other
// canonicalization rule is applied. Use CanonicalizeTag for that.
func (p *Parser) ParseTag(input string) *ParsedTag {
	tag, _, err := parseWellFormed(input, p.registry)
	if err != nil {
		return nil
	}
	return tag
}

// IsValid reports whether input is both well-formed and passes the Sec 4.4
// registry cross-check under the default Options.
func (p *Parser) IsValid(input string) bool {
	return p.ValidateLanguageTag(input).IsValid
}

// CanonicalizeTag parses and canonicalizes input per Sec 4.5, returning the
// canonical string form and true, or ("", false) if input is not
// well-formed. Canonicalization proceeds even for a tag that fails the
// registry cross-check: an unknown subtag is canonicalized in place (case
// folded) rather than rejected, since canonical form and validity are
// independent questions.
func (p *Parser) CanonicalizeTag(input string) (string, bool) {
	tag, _, err := parseWellFormed(input, p.registry)
	if err != nil {
		return "", false
	}
	return canonicalize(tag, p.registry).Tag, true
}

// ValidateLanguageTag runs the full pipeline — lexing, parsing, and
// (unless disabled) the registry cross-check — and returns every error and
// warning collected along the way.
func (p *Parser) ValidateLanguageTag(input string, opts ...Option) *Result {
	options := resolveOptions(opts)

	tag, parseWarnings, err := parseWellFormed(input, p.registry)
	if err != nil {
		return &Result{
			IsWellFormed: false,
			IsValid:      false,
			Errors:       []StructuredError{*err},
		}
	}

	res := &Result{
		IsWellFormed: true,
		IsValid:      true,
		Tag:          tag,
		Warnings:     append([]StructuredError(nil), parseWarnings...),
	}

	if !options.CheckRegistry {
		return res
	}

	errs, warnings := validate(tag, p.registry)
	res.Errors = append(res.Errors, errs...)
	res.Warnings = append(res.Warnings, warnings...)

	if len(res.Errors) > 0 {
		res.IsValid = false
	}
	if options.WarnAsError && len(res.Warnings) > 0 {
		res.Errors = append(res.Errors, res.Warnings...)
		res.IsValid = false
	}

	return res
}

// ToExtlangForm rewrites tag into its extlang-prefixed equivalent where the
// registry records one: the inverse of canonicalize's extlang collapse. A
// registered language subtag that is also registered as an extlang whose
// PreferredValue is that same subtag is expanded to "<prefix>-<extlang>",
// using the extlang's first Prefix. Other extlang records are not searched;
// tags with no such mapping are returned unchanged (as a copy).
func (p *Parser) ToExtlangForm(tag *ParsedTag) *ParsedTag {
	if tag == nil || tag.Grandfathered || tag.Language == "" || len(tag.Extlang) > 0 {
		return tag.clone()
	}

	out := tag.clone()
	lang := lowerASCII(out.Language)
	rec, ok := p.registry.LookupLanguage(lang)
	if !ok {
		return out
	}
	extlang, prefix, found := findExtlangFor(p.registry, lang, rec)
	if !found {
		return out
	}
	out.Language = prefix
	out.Extlang = []string{extlang}
	out.Tag = renderParsedTag(out)
	return out
}

// findExtlangFor looks for a registered extlang whose PreferredValue equals
// lang, returning its subtag and first prefix language. The Registry
// interface has no "list all extlangs" operation, so only the extlang record
// keyed by lang itself is checked (e.g. extlang "yue", prefix "zh", for
// language "yue"); an extlang filed under a different subtag, or one with no
// Prefix, yields found=false.
func findExtlangFor(registry Registry, lang string, langRec Record) (extlang, prefix string, found bool) {
	if extRec, ok := registry.LookupExtlang(lang); ok && extRec.PreferredValue == lang {
		for _, p := range extRec.Prefix {
			return lang, p, true
		}
	}
	return "", "", false
}

// MarshalJSON renders a ParsedTag as its canonical Tag string, so a
// ParsedTag embedded in a larger JSON document reads as a plain BCP 47
// string rather than an object exposing internal field names.
func (p *ParsedTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Tag)
}

// UnmarshalJSON parses a JSON string into a ParsedTag using package-default,
// registry-free well-formedness rules (grandfathered recognition is
// unavailable without a bound Registry). Callers that need registry-aware
// decoding should use Parser.ParseTag directly instead.
func (p *ParsedTag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	tag, _, parseErr := parseWellFormed(s, nil)
	if parseErr != nil {
		return fmt.Errorf("langtag: %w", *parseErr)
	}
	*p = *tag
	return nil
}
