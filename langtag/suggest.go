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

// commonLanguageMistakes maps a handful of well-known non-subtag spellings
// to the short registered code a user probably meant (Sec 4.4.1: "english",
// "eng" where "en" exists). This is intentionally small and static — the
// suggestion feature is heuristic and informational only, never a source of
// automatic correction.
var commonLanguageMistakes = map[string]string{
	"english": "en",
	"eng":     "en",
	"german":  "de",
	"deu":     "de",
	"french":  "fr",
	"fra":     "fr",
}

// suggestForUnknownLanguage implements the Sec 4.4.1 suggestion strategy for
// an UNKNOWN_LANGUAGE error. It never returns an error of its own: a failed
// guess is simply an empty suggestion.
func suggestForUnknownLanguage(tag *ParsedTag, registry Registry) string {
	lowerLang := lowerASCII(tag.Language)

	if repl, ok := commonLanguageMistakes[lowerLang]; ok {
		if _, ok := registry.LookupLanguage(repl); ok {
			return repl
		}
	}

	// "ch-DE" style mistake: the primary language slot holds what is
	// actually a region code, and the true region slot holds what is
	// actually a language code (the tag's author swapped the two). This
	// is purely structural: it falls out of the actual tag, no hardcoded
	// region-to-language table is needed.
	if tag.Region != "" {
		if _, regionLooksLikeLanguage := registry.LookupRegion(lowerLang); regionLooksLikeLanguage {
			if _, languageLooksLikeRegion := registry.LookupLanguage(lowerASCII(tag.Region)); languageLooksLikeRegion {
				return lowerASCII(tag.Region) + "-" + upperASCII(lowerLang)
			}
		}
	}

	return ""
}
