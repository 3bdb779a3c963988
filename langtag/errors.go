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

import "fmt"

// ErrorKind is the closed set of diagnostic codes the pipeline can produce.
// Every value is either a well-formedness/registry error or a warning; see
// Level.
type ErrorKind string

// Lexer- and parser-level well-formedness errors.
const (
	EmptyTag           ErrorKind = "EMPTY_TAG"
	EmptySubtag        ErrorKind = "EMPTY_SUBTAG"
	InvalidCharacter   ErrorKind = "INVALID_CHARACTER"
	SubtagTooLong      ErrorKind = "SUBTAG_TOO_LONG"
	TagTooLong         ErrorKind = "TAG_TOO_LONG"
	MalformedLanguage  ErrorKind = "MALFORMED_LANGUAGE"
	UnexpectedSubtag   ErrorKind = "UNEXPECTED_SUBTAG"
	DuplicateVariant   ErrorKind = "DUPLICATE_VARIANT"
	DuplicateSingleton ErrorKind = "DUPLICATE_SINGLETON"
	EmptyExtension     ErrorKind = "EMPTY_EXTENSION"
	EmptyPrivateUse    ErrorKind = "EMPTY_PRIVATEUSE"
)

// Registry/validation errors.
const (
	UnknownLanguage  ErrorKind = "UNKNOWN_LANGUAGE"
	UnknownScript    ErrorKind = "UNKNOWN_SCRIPT"
	UnknownRegion    ErrorKind = "UNKNOWN_REGION"
	UnknownVariant   ErrorKind = "UNKNOWN_VARIANT"
	BadExtlangPrefix ErrorKind = "BAD_EXTLANG_PREFIX"
)

// Warnings: they never flip IsWellFormed or IsValid unless Options.WarnAsError
// is set. The one exception is DEPRECATED_SUBTAG for a deprecated grandfathered
// tag with no PreferredValue, which the validator reports in Errors.
const (
	DeprecatedSubtag      ErrorKind = "DEPRECATED_SUBTAG"
	VariantPrefixMismatch ErrorKind = "VARIANT_PREFIX_MISMATCH"
	UnknownSingleton      ErrorKind = "UNKNOWN_SINGLETON"
	ReservedLanguage      ErrorKind = "RESERVED_LANGUAGE"
)

// ErrorLevel distinguishes an ErrorKind that invalidates a tag from one that
// is merely informational.
type ErrorLevel int

const (
	LevelError ErrorLevel = iota
	LevelWarning
)

// Level reports whether k is an error-level or warning-level kind.
func (k ErrorKind) Level() ErrorLevel {
	switch k {
	case DeprecatedSubtag, VariantPrefixMismatch, UnknownSingleton, ReservedLanguage:
		return LevelWarning
	default:
		return LevelError
	}
}

// StructuredError is a single diagnostic produced by the pipeline: a kind, a
// human-readable message, and, where applicable, the offending subtag, its
// byte offset in the original input, and a suggested fix. It implements the
// error interface so it can be used anywhere a plain error is expected, but
// the pipeline itself never raises these as Go panics/exceptions — they are
// always values collected into a Result.
type StructuredError struct {
	Kind                 ErrorKind
	Message              string
	Subtag               string
	Offset               int
	HasOffset            bool
	SuggestedReplacement string
}

// Error renders a single-line description, satisfying the error interface.
func (e StructuredError) Error() string {
	if e.Subtag == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	if e.HasOffset {
		return fmt.Sprintf("%s: %s (subtag %q at offset %d)", e.Kind, e.Message, e.Subtag, e.Offset)
	}
	return fmt.Sprintf("%s: %s (subtag %q)", e.Kind, e.Message, e.Subtag)
}

func newError(kind ErrorKind, message string) StructuredError {
	return StructuredError{Kind: kind, Message: message}
}

func newSubtagError(kind ErrorKind, message, subtag string) StructuredError {
	return StructuredError{Kind: kind, Message: message, Subtag: subtag}
}

func newOffsetError(kind ErrorKind, message, subtag string, offset int) StructuredError {
	return StructuredError{Kind: kind, Message: message, Subtag: subtag, Offset: offset, HasOffset: true}
}

// Result is the outcome of running the full pipeline on one input tag.
type Result struct {
	IsWellFormed bool
	IsValid      bool
	// Tag is populated iff IsWellFormed.
	Tag      *ParsedTag
	Errors   []StructuredError
	Warnings []StructuredError
}

// Options configures ValidateLanguageTag.
type Options struct {
	// CheckRegistry enables the registry cross-check (Sec 4.4). Disabling
	// it yields a well-formedness-only result with IsValid mirroring
	// IsWellFormed.
	CheckRegistry bool
	// WarnAsError promotes every warning into Errors (without removing it
	// from Warnings) and causes IsValid to become false if any warning
	// fired, even though the warning's Kind.Level() remains LevelWarning.
	WarnAsError bool
}

// DefaultOptions returns the pipeline's default configuration:
// registry checking on, warnings not promoted to errors.
func DefaultOptions() Options {
	return Options{CheckRegistry: true, WarnAsError: false}
}

// Option mutates an Options value. Functional options keep the common case
// (ValidateLanguageTag(tag)) call-free of configuration noise while still
// allowing callers to opt into non-default behavior explicitly.
type Option func(*Options)

// WithCheckRegistry overrides Options.CheckRegistry.
func WithCheckRegistry(check bool) Option {
	return func(o *Options) { o.CheckRegistry = check }
}

// WithWarnAsError overrides Options.WarnAsError.
func WithWarnAsError(warnAsError bool) Option {
	return func(o *Options) { o.WarnAsError = warnAsError }
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
