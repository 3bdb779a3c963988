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
	"fmt"
	"io"
	"strings"

	"github.com/jplu/bcp47/langtag"
)

// Registry is an in-memory langtag.Registry built from a parsed IANA
// Language Subtag Registry file. It is read-only once constructed and safe
// for concurrent use by multiple goroutines.
type Registry struct {
	fileDate      string
	languages     map[string]langtag.Record
	extlangs      map[string]langtag.Record
	scripts       map[string]langtag.Record
	regions       map[string]langtag.Record
	variants      map[string]langtag.Record
	grandfathered map[string]langtag.Record
	redundant     map[string]langtag.Record
}

var _ langtag.Registry = (*Registry)(nil)

// FileDate returns the registry snapshot's File-Date header, e.g.
// "2024-01-16", or "" if the source had none.
func (r *Registry) FileDate() string { return r.fileDate }

func (r *Registry) LookupLanguage(subtag string) (langtag.Record, bool) {
	rec, ok := r.languages[strings.ToLower(subtag)]
	return rec, ok
}

func (r *Registry) LookupExtlang(subtag string) (langtag.Record, bool) {
	rec, ok := r.extlangs[strings.ToLower(subtag)]
	return rec, ok
}

func (r *Registry) LookupScript(subtag string) (langtag.Record, bool) {
	rec, ok := r.scripts[strings.ToLower(subtag)]
	return rec, ok
}

func (r *Registry) LookupRegion(subtag string) (langtag.Record, bool) {
	rec, ok := r.regions[strings.ToLower(subtag)]
	return rec, ok
}

func (r *Registry) LookupVariant(subtag string) (langtag.Record, bool) {
	rec, ok := r.variants[strings.ToLower(subtag)]
	return rec, ok
}

func (r *Registry) LookupGrandfathered(tag string) (langtag.Record, bool) {
	rec, ok := r.grandfathered[strings.ToLower(tag)]
	return rec, ok
}

func (r *Registry) LookupRedundant(tag string) (langtag.Record, bool) {
	rec, ok := r.redundant[strings.ToLower(tag)]
	return rec, ok
}

// Len reports the total number of records the registry holds, across all
// record types, after range expansion.
func (r *Registry) Len() int {
	return len(r.languages) + len(r.extlangs) + len(r.scripts) + len(r.regions) +
		len(r.variants) + len(r.grandfathered) + len(r.redundant)
}

// NewRegistryFromReader builds a Registry by parsing an IANA Language
// Subtag Registry file read from r.
func NewRegistryFromReader(r io.Reader) (*Registry, error) {
	reg := &Registry{
		languages:     make(map[string]langtag.Record),
		extlangs:      make(map[string]langtag.Record),
		scripts:       make(map[string]langtag.Record),
		regions:       make(map[string]langtag.Record),
		variants:      make(map[string]langtag.Record),
		grandfathered: make(map[string]langtag.Record),
		redundant:     make(map[string]langtag.Record),
	}

	fileDate, err := parseRegistryFile(r, func(raw rawRecord) error {
		keys, recs, err := expandAndConvert(raw)
		if err != nil {
			return err
		}
		bucket, err := bucketFor(reg, langtag.RecordType(raw.recordType))
		if err != nil {
			return err
		}
		for i, key := range keys {
			bucket[key] = recs[i]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	reg.fileDate = fileDate
	return reg, nil
}

func bucketFor(reg *Registry, t langtag.RecordType) (map[string]langtag.Record, error) {
	switch t {
	case langtag.TypeLanguage:
		return reg.languages, nil
	case langtag.TypeExtlang:
		return reg.extlangs, nil
	case langtag.TypeScript:
		return reg.scripts, nil
	case langtag.TypeRegion:
		return reg.regions, nil
	case langtag.TypeVariant:
		return reg.variants, nil
	case langtag.TypeGrandfathered:
		return reg.grandfathered, nil
	case langtag.TypeRedundant:
		return reg.redundant, nil
	default:
		return nil, fmt.Errorf("ianareg: unknown record type %q", t)
	}
}
