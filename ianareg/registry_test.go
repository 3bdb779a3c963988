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

package ianareg

import (
	"strings"
	"testing"

	"github.com/jplu/bcp47/langtag"
)

func TestNewRegistryFromReaderBasicFields(t *testing.T) {
	const src = `File-Date: 2024-01-16
%%
Type: language
Subtag: en
Description: English
Added: 1951-01-01
Suppress-Script: Latn
%%
Type: variant
Subtag: 1996
Description: German orthography of 1996
Description: continued on
 a folded line
Prefix: de
Deprecated: 2020-01-01
Preferred-Value: new-val
%%
`
	reg, err := NewRegistryFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.FileDate() != "2024-01-16" {
		t.Errorf("got file date %q", reg.FileDate())
	}

	en, ok := reg.LookupLanguage("en")
	if !ok {
		t.Fatal("expected to find language 'en'")
	}
	if en.SuppressScript != "Latn" {
		t.Errorf("got suppress-script %q", en.SuppressScript)
	}

	v, ok := reg.LookupVariant("1996")
	if !ok {
		t.Fatal("expected to find variant '1996'")
	}
	if !v.Deprecated || v.PreferredValue != "new-val" || len(v.Prefix) != 1 || v.Prefix[0] != "de" {
		t.Errorf("got variant record %+v", v)
	}
}

func TestNewRegistryFromReaderNumericRange(t *testing.T) {
	const src = `Type: region
Subtag: 001..003
Description: grouping placeholder
%%
`
	reg, err := NewRegistryFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"001", "002", "003"} {
		if _, ok := reg.LookupRegion(want); !ok {
			t.Errorf("expected expanded region %q", want)
		}
	}
}

func TestNewRegistryFromReaderAlphabeticRange(t *testing.T) {
	const src = `Type: region
Subtag: qaa..qac
Description: private use placeholder
%%
`
	reg, err := NewRegistryFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"qaa", "qab", "qac"} {
		if _, ok := reg.LookupRegion(want); !ok {
			t.Errorf("expected expanded region %q", want)
		}
	}
}

func TestNewRegistryFromReaderGrandfatheredAndRedundant(t *testing.T) {
	const src = `Type: grandfathered
Tag: i-klingon
Deprecated: 2001-09-13
Preferred-Value: tlh
%%
Type: redundant
Tag: zh-cmn-Hans
Preferred-Value: cmn-Hans
%%
`
	reg, err := NewRegistryFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := reg.LookupGrandfathered("i-klingon"); !ok {
		t.Error("expected grandfathered 'i-klingon'")
	}
	if _, ok := reg.LookupRedundant("zh-cmn-hans"); !ok {
		t.Error("expected redundant 'zh-cmn-hans' (lowercased key)")
	}
}

func TestNewRegistryFromReaderInvalidRange(t *testing.T) {
	const src = `Type: region
Subtag: qaa..aa
Description: mismatched length
%%
`
	_, err := NewRegistryFromReader(strings.NewReader(src))
	if err == nil {
		t.Fatal("expected an error for a malformed range")
	}
}

func TestEmbeddedRegistrySatisfiesCorePipeline(t *testing.T) {
	reg, err := NewEmbeddedRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.Len() == 0 {
		t.Fatal("expected the embedded registry to contain records")
	}

	p := langtag.NewParser(reg)
	res := p.ValidateLanguageTag("de-DE-u-co-phonebk")
	if !res.IsWellFormed || !res.IsValid {
		t.Fatalf("expected de-DE-u-co-phonebk to be valid, got %+v", res)
	}

	canon, ok := p.CanonicalizeTag("i-klingon")
	if !ok || canon != "tlh" {
		t.Fatalf("got canon=%q ok=%v, want tlh/true", canon, ok)
	}
}
