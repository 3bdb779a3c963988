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

// isAlpha checks if a byte is an ASCII letter.
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

// isDigit checks if a byte is an ASCII digit.
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// isAlphanum checks if a byte is an ASCII letter or digit.
func isAlphanum(b byte) bool { return isAlpha(b) || isDigit(b) }

// isLangtagByte reports whether b is a valid BCP 47 tag character: an ASCII
// letter, digit, or hyphen. Anything else is INVALID_CHARACTER.
func isLangtagByte(b byte) bool {
	return isAlphanum(b) || b == '-'
}

// isAlphabetic checks if a string contains only ASCII letters.
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for i := range s {
		if !isAlpha(s[i]) {
			return false
		}
	}
	return true
}

// isNumeric checks if a string contains only ASCII digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := range s {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isAlphanumeric checks if a string contains only ASCII letters and digits.
func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := range s {
		if !isAlphanum(s[i]) {
			return false
		}
	}
	return true
}

// lowerASCII lowercases a over the ASCII range only, leaving every other byte
// untouched. Subtags are guaranteed ASCII by the time this is called, but the
// narrow ASCII-only behavior is the point: it must never consult the active
// locale or apply Unicode case folding rules.
func lowerASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// upperASCII is the ASCII-only counterpart of lowerASCII.
func upperASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// writeTitleCase writes s to b in title case (first byte upper, rest lower),
// e.g. "hans" -> "Hans". Used for script subtags.
func writeTitleCase(b *strings.Builder, s string) {
	if len(s) == 0 {
		return
	}
	first := s[0]
	if first >= 'a' && first <= 'z' {
		first -= 'a' - 'A'
	}
	b.WriteByte(first)
	b.WriteString(lowerASCII(s[1:]))
}
