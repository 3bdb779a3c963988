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
	"strings"
	"testing"
)

func TestLexValid(t *testing.T) {
	tokens, err := lex("de-DE-u-co-phonebk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"de", "DE", "u", "co", "phonebk"}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].text != w {
			t.Errorf("token %d = %q, want %q", i, tokens[i].text, w)
		}
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"empty", "", EmptyTag},
		{"leading hyphen", "-en", EmptySubtag},
		{"trailing hyphen", "en-", EmptySubtag},
		{"double hyphen", "en--US", EmptySubtag},
		{"bad character", "en_US", InvalidCharacter},
		{"subtag too long", "en-abcdefghi", SubtagTooLong},
		{"tag too long", strings.Repeat("a-", 2000) + "a", TagTooLong},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lex(tc.input)
			if err == nil {
				t.Fatalf("expected error %s, got none", tc.kind)
			}
			if err.Kind != tc.kind {
				t.Errorf("got kind %s, want %s", err.Kind, tc.kind)
			}
		})
	}
}

func TestLexOffsets(t *testing.T) {
	tokens, err := lex("en-GB-u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantOffsets := []int{0, 3, 6}
	for i, want := range wantOffsets {
		if tokens[i].offset != want {
			t.Errorf("token %d offset = %d, want %d", i, tokens[i].offset, want)
		}
	}
}
