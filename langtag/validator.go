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

import "strings"

// knownSingletons are the extension singletons with an IANA-registered
// meaning as of this writing (RFC 6067 "u", RFC 6497 "t"). The registry
// snapshot format has no singleton-level record type, so this set is
// maintained by hand rather than looked up.
var knownSingletons = map[byte]struct{}{
	'u': {},
	't': {},
}

// validate runs the Sec 4.4 registry cross-check over an already
// well-formed tag, returning the errors and warnings it collects. It never
// mutates tag.
func validate(tag *ParsedTag, registry Registry) (errs, warnings []StructuredError) {
	if tag.Grandfathered {
		validateGrandfathered(tag, registry, &errs, &warnings)
		return errs, warnings
	}
	if tag.Language == "" {
		// Private-use-only tag: nothing in the registry applies.
		return errs, warnings
	}

	validateLanguage(tag, registry, &errs, &warnings)
	validateExtlangs(tag, registry, &errs, &warnings)
	validateScript(tag, registry, &errs, &warnings)
	validateRegion(tag, registry, &errs, &warnings)
	validateVariants(tag, registry, &errs, &warnings)
	validateSingletons(tag, &warnings)

	return errs, warnings
}

func validateGrandfathered(tag *ParsedTag, registry Registry, errs, warnings *[]StructuredError) {
	rec, ok := lookupWholeTag(lowerASCII(tag.Tag), registry)
	if !ok {
		return
	}
	if !rec.Deprecated {
		return
	}
	if rec.PreferredValue == "" {
		// Deprecated with no replacement: the specification treats this as
		// invalid rather than a mere warning, even though DEPRECATED_SUBTAG
		// is ordinarily warning-level.
		*errs = append(*errs, newSubtagError(DeprecatedSubtag, "grandfathered tag is deprecated with no replacement", tag.Tag))
		return
	}
	*warnings = append(*warnings, StructuredError{
		Kind:                 DeprecatedSubtag,
		Message:              "grandfathered tag is deprecated",
		Subtag:               tag.Tag,
		SuggestedReplacement: rec.PreferredValue,
	})
}

func lookupWholeTag(tag string, registry Registry) (Record, bool) {
	if rec, ok := registry.LookupGrandfathered(tag); ok {
		return rec, true
	}
	return registry.LookupRedundant(tag)
}

func validateLanguage(tag *ParsedTag, registry Registry, errs, warnings *[]StructuredError) {
	if len(tag.Language) == reservedLangLen {
		// Already warned RESERVED_LANGUAGE by the parser; no registered
		// 4-letter primary languages exist yet, so there is nothing left to
		// check here.
		return
	}

	rec, ok := registry.LookupLanguage(lowerASCII(tag.Language))
	if !ok {
		*errs = append(*errs, StructuredError{
			Kind:                 UnknownLanguage,
			Message:              "primary language subtag is not in the registry",
			Subtag:               tag.Language,
			SuggestedReplacement: suggestForUnknownLanguage(tag, registry),
		})
		return
	}
	if rec.Deprecated {
		*warnings = append(*warnings, StructuredError{
			Kind:                 DeprecatedSubtag,
			Message:              "primary language subtag is deprecated",
			Subtag:               tag.Language,
			SuggestedReplacement: rec.PreferredValue,
		})
	}
}

func validateExtlangs(tag *ParsedTag, registry Registry, errs, warnings *[]StructuredError) {
	for _, e := range tag.Extlang {
		rec, ok := registry.LookupExtlang(lowerASCII(e))
		if !ok || !extlangPrefixMatches(rec, tag.Language) {
			*errs = append(*errs, newSubtagError(BadExtlangPrefix, "extlang subtag is unregistered or its prefix does not match the primary language", e))
			continue
		}
		if rec.Deprecated {
			*warnings = append(*warnings, StructuredError{
				Kind:                 DeprecatedSubtag,
				Message:              "extlang subtag is deprecated",
				Subtag:               e,
				SuggestedReplacement: rec.PreferredValue,
			})
		}
	}
}

func extlangPrefixMatches(rec Record, language string) bool {
	if len(rec.Prefix) == 0 {
		return true
	}
	for _, p := range rec.Prefix {
		if strings.EqualFold(p, language) {
			return true
		}
	}
	return false
}

func validateScript(tag *ParsedTag, registry Registry, errs, warnings *[]StructuredError) {
	if tag.Script == "" {
		return
	}
	rec, ok := registry.LookupScript(lowerASCII(tag.Script))
	if !ok {
		*errs = append(*errs, newSubtagError(UnknownScript, "script subtag is not in the registry", tag.Script))
		return
	}
	if rec.Deprecated {
		*warnings = append(*warnings, StructuredError{
			Kind:                 DeprecatedSubtag,
			Message:              "script subtag is deprecated",
			Subtag:               tag.Script,
			SuggestedReplacement: rec.PreferredValue,
		})
	}
}

func validateRegion(tag *ParsedTag, registry Registry, errs, warnings *[]StructuredError) {
	if tag.Region == "" {
		return
	}
	rec, ok := registry.LookupRegion(lowerASCII(tag.Region))
	if !ok {
		*errs = append(*errs, newSubtagError(UnknownRegion, "region subtag is not in the registry", tag.Region))
		return
	}
	if rec.Deprecated {
		*warnings = append(*warnings, StructuredError{
			Kind:                 DeprecatedSubtag,
			Message:              "region subtag is deprecated",
			Subtag:               tag.Region,
			SuggestedReplacement: rec.PreferredValue,
		})
	}
}

func validateVariants(tag *ParsedTag, registry Registry, errs, warnings *[]StructuredError) {
	composed := composedPrefix(tag)
	for _, v := range tag.Variants {
		rec, ok := registry.LookupVariant(lowerASCII(v))
		if !ok {
			*errs = append(*errs, newSubtagError(UnknownVariant, "variant subtag is not in the registry", v))
			composed = appendSubtag(composed, v)
			continue
		}
		if rec.Deprecated {
			*warnings = append(*warnings, StructuredError{
				Kind:                 DeprecatedSubtag,
				Message:              "variant subtag is deprecated",
				Subtag:               v,
				SuggestedReplacement: rec.PreferredValue,
			})
		}
		if len(rec.Prefix) > 0 && !prefixListMatches(rec.Prefix, composed) {
			*warnings = append(*warnings, StructuredError{
				Kind:    VariantPrefixMismatch,
				Message: "variant does not follow one of its registered prefixes",
				Subtag:  v,
			})
		}
		composed = appendSubtag(composed, v)
	}
}

// composedPrefix builds the language[-extlang][-script][-region] portion of
// tag, the basis a variant's registered Prefix is checked against (Sec
// 4.4, item 6), before any variants have been appended.
func composedPrefix(tag *ParsedTag) string {
	var b strings.Builder
	b.WriteString(tag.Language)
	for _, e := range tag.Extlang {
		b.WriteByte('-')
		b.WriteString(e)
	}
	if tag.Script != "" {
		b.WriteByte('-')
		b.WriteString(tag.Script)
	}
	if tag.Region != "" {
		b.WriteByte('-')
		b.WriteString(tag.Region)
	}
	return b.String()
}

func appendSubtag(composed, subtag string) string {
	return composed + "-" + subtag
}

func prefixListMatches(prefixes []string, composed string) bool {
	for _, p := range prefixes {
		if strings.EqualFold(p, composed) {
			return true
		}
	}
	return false
}

func validateSingletons(tag *ParsedTag, warnings *[]StructuredError) {
	for _, ext := range tag.Extensions {
		if _, ok := knownSingletons[lowerASCII(string(ext.Singleton))[0]]; !ok {
			*warnings = append(*warnings, StructuredError{
				Kind:    UnknownSingleton,
				Message: "extension singleton is not a registered extension",
				Subtag:  string(ext.Singleton),
			})
		}
	}
}
