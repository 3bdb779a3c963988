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
	"sort"
	"strings"
)

// maxPreferredChainSteps bounds how many times canonicalize follows a
// PreferredValue chain (deprecated subtag whose replacement is itself
// deprecated). The registry has no such chains today; the cap only guards
// against a future malformed snapshot looping forever.
const maxPreferredChainSteps = 5

// canonicalize applies the Sec 4.5 rules to tag and returns a new,
// independent ParsedTag. It does not mutate tag. canonicalize is idempotent:
// canonicalizing its own output reproduces the same Tag string.
//
// Per the redesign recorded in the design notes, canonicalization never
// reorders variant subtags: a variant whose registered Prefix does not match
// is left in place and only ever surfaces as a VARIANT_PREFIX_MISMATCH
// warning from the validator.
func canonicalize(tag *ParsedTag, registry Registry) *ParsedTag {
	c := tag.clone()

	if c.Grandfathered {
		return canonicalizeGrandfathered(c, registry)
	}
	if c.Language == "" {
		for i, s := range c.PrivateUse {
			c.PrivateUse[i] = lowerASCII(s)
		}
		c.Tag = renderParsedTag(c)
		return c
	}

	c.Language = lowerASCII(c.Language)
	for i := range c.Extlang {
		c.Extlang[i] = lowerASCII(c.Extlang[i])
	}
	if c.Script != "" {
		c.Script = titleCaseSubtag(c.Script)
	}
	if c.Region != "" {
		c.Region = canonicalRegionCase(c.Region)
	}
	for i := range c.Variants {
		c.Variants[i] = lowerASCII(c.Variants[i])
	}
	for i := range c.Extensions {
		c.Extensions[i].Singleton = lowerASCII(string(c.Extensions[i].Singleton))[0]
		for j := range c.Extensions[i].Values {
			c.Extensions[i].Values[j] = lowerASCII(c.Extensions[i].Values[j])
		}
	}
	for i := range c.PrivateUse {
		c.PrivateUse[i] = lowerASCII(c.PrivateUse[i])
	}

	c.Language = resolvePreferred(c.Language, registry.LookupLanguage)
	if c.Script != "" {
		c.Script = titleCaseSubtag(resolvePreferred(lowerASCII(c.Script), registry.LookupScript))
	}
	if c.Region != "" {
		c.Region = canonicalRegionCase(resolvePreferred(lowerASCII(c.Region), registry.LookupRegion))
	}
	for i := range c.Variants {
		c.Variants[i] = resolvePreferred(c.Variants[i], registry.LookupVariant)
	}

	collapseExtlang(c, registry)
	removeSuppressedScript(c, registry)

	sort.SliceStable(c.Extensions, func(i, j int) bool {
		return c.Extensions[i].Singleton < c.Extensions[j].Singleton
	})

	c.Tag = renderParsedTag(c)
	return c
}

func canonicalizeGrandfathered(c *ParsedTag, registry Registry) *ParsedTag {
	lower := lowerASCII(c.Tag)
	rec, ok := lookupWholeTag(lower, registry)
	if !ok {
		c.Tag = lower
		return c
	}
	if rec.PreferredValue == "" {
		c.Tag = lower
		return c
	}

	reparsed, _, err := parseWellFormed(rec.PreferredValue, registry)
	if err != nil || reparsed == nil {
		c.Tag = lower
		return c
	}
	return canonicalize(reparsed, registry)
}

// resolvePreferred follows subtag's PreferredValue chain, stopping once a
// lookup fails, a record has no PreferredValue, or the step cap is reached.
func resolvePreferred(subtag string, lookup func(string) (Record, bool)) string {
	current := subtag
	for i := 0; i < maxPreferredChainSteps; i++ {
		rec, ok := lookup(lowerASCII(current))
		if !ok || rec.PreferredValue == "" {
			return current
		}
		current = rec.PreferredValue
	}
	return current
}

// collapseExtlang drops a redundant primary language in favor of its
// extlang's own preferred value, e.g. "zh-yue" -> "yue" (Sec 4.5, extlang
// collapse). Only the leading extlang is eligible, matching how the
// registry's existing extlang records are all single-prefix.
func collapseExtlang(c *ParsedTag, registry Registry) {
	if len(c.Extlang) == 0 {
		return
	}
	e := c.Extlang[0]
	rec, ok := registry.LookupExtlang(lowerASCII(e))
	if !ok || rec.PreferredValue == "" {
		return
	}
	if !extlangPrefixMatches(rec, c.Language) {
		return
	}
	c.Language = rec.PreferredValue
	c.Extlang = c.Extlang[1:]
}

// removeSuppressedScript drops Script when it equals the primary language's
// Suppress-Script (Sec 4.5): "en-Latn" canonicalizes to "en".
func removeSuppressedScript(c *ParsedTag, registry Registry) {
	if c.Script == "" {
		return
	}
	rec, ok := registry.LookupLanguage(lowerASCII(c.Language))
	if !ok || rec.SuppressScript == "" {
		return
	}
	if strings.EqualFold(rec.SuppressScript, c.Script) {
		c.Script = ""
	}
}

// canonicalRegionCase upper-cases an alphabetic region and leaves a numeric
// region (e.g. "419") untouched.
func canonicalRegionCase(region string) string {
	if isNumeric(region) {
		return region
	}
	return upperASCII(region)
}

// titleCaseSubtag renders a 4-letter script subtag in title case ("Latn"),
// ASCII-only.
func titleCaseSubtag(s string) string {
	var b strings.Builder
	writeTitleCase(&b, s)
	return b.String()
}
