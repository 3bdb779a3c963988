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

// mapRegistry is a small, hand-built Registry fixture covering just the
// subtags this package's own tests exercise. The real, IANA-derived
// Registry implementation lives in the sibling ianareg package; these tests
// stay independent of it so they can pin down exact field values.
type mapRegistry struct {
	languages     map[string]Record
	extlangs      map[string]Record
	scripts       map[string]Record
	regions       map[string]Record
	variants      map[string]Record
	grandfathered map[string]Record
	redundant     map[string]Record
}

func (m *mapRegistry) LookupLanguage(s string) (Record, bool)     { r, ok := m.languages[s]; return r, ok }
func (m *mapRegistry) LookupExtlang(s string) (Record, bool)      { r, ok := m.extlangs[s]; return r, ok }
func (m *mapRegistry) LookupScript(s string) (Record, bool)       { r, ok := m.scripts[s]; return r, ok }
func (m *mapRegistry) LookupRegion(s string) (Record, bool)       { r, ok := m.regions[s]; return r, ok }
func (m *mapRegistry) LookupVariant(s string) (Record, bool)      { r, ok := m.variants[s]; return r, ok }
func (m *mapRegistry) LookupGrandfathered(s string) (Record, bool) { r, ok := m.grandfathered[s]; return r, ok }
func (m *mapRegistry) LookupRedundant(s string) (Record, bool)    { r, ok := m.redundant[s]; return r, ok }

// newTestRegistry builds the fixture shared by this package's tests.
func newTestRegistry() *mapRegistry {
	return &mapRegistry{
		languages: map[string]Record{
			"en":   {Type: TypeLanguage, Subtag: "en"},
			"de":   {Type: TypeLanguage, Subtag: "de"},
			"fr":   {Type: TypeLanguage, Subtag: "fr"},
			"zh":   {Type: TypeLanguage, Subtag: "zh"},
			"yue":  {Type: TypeLanguage, Subtag: "yue"},
			"in":   {Type: TypeLanguage, Subtag: "in", Deprecated: true, PreferredValue: "id"},
			"tlh":  {Type: TypeLanguage, Subtag: "tlh"},
			"sl":   {Type: TypeLanguage, Subtag: "sl"},
			"nb":   {Type: TypeLanguage, Subtag: "nb", SuppressScript: "Latn"},
		},
		extlangs: map[string]Record{
			"yue": {Type: TypeExtlang, Subtag: "yue", Prefix: []string{"zh"}, PreferredValue: "yue"},
			"cmn": {Type: TypeExtlang, Subtag: "cmn", Prefix: []string{"zh"}, PreferredValue: "cmn"},
		},
		scripts: map[string]Record{
			"latn": {Type: TypeScript, Subtag: "Latn"},
			"hans": {Type: TypeScript, Subtag: "Hans"},
			"hant": {Type: TypeScript, Subtag: "Hant"},
			"hani": {Type: TypeScript, Subtag: "Hani", Deprecated: true, PreferredValue: "Hans"},
		},
		regions: map[string]Record{
			"de": {Type: TypeRegion, Subtag: "DE"},
			"gb": {Type: TypeRegion, Subtag: "GB"},
			"us": {Type: TypeRegion, Subtag: "US"},
			"cn": {Type: TypeRegion, Subtag: "CN"},
			"ch": {Type: TypeRegion, Subtag: "CH"},
			"uk": {Type: TypeRegion, Subtag: "UK", Deprecated: true, PreferredValue: "GB"},
		},
		variants: map[string]Record{
			"1901":    {Type: TypeVariant, Subtag: "1901"},
			"1996":    {Type: TypeVariant, Subtag: "1996"},
			"rozaj":   {Type: TypeVariant, Subtag: "rozaj"},
			"biske":   {Type: TypeVariant, Subtag: "biske", Prefix: []string{"sl-rozaj"}},
		},
		grandfathered: map[string]Record{
			"i-klingon":  {Type: TypeGrandfathered, Tag: "i-klingon", Deprecated: true, PreferredValue: "tlh"},
			"art-lojban": {Type: TypeGrandfathered, Tag: "art-lojban", PreferredValue: "jbo"},
			"cel-gaulish": {Type: TypeGrandfathered, Tag: "cel-gaulish", Deprecated: true},
		},
		redundant: map[string]Record{
			"zh-hans": {Type: TypeRedundant, Tag: "zh-hans"},
		},
	}
}

func newTestParser() *Parser {
	return NewParser(newTestRegistry())
}
