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

// Package langtag parses, validates, and canonicalizes BCP 47 language tags
// (RFC 5646) against a pluggable IANA Language Subtag Registry.
//
// Three questions are kept deliberately separate: whether a tag is
// well-formed (matches the grammar), whether it is valid (every subtag is
// registered and used correctly), and what its canonical form is. Parser
// exposes all three through IsWellFormed, IsValid/ValidateLanguageTag, and
// CanonicalizeTag respectively.
//
// Registry is the only external dependency: a Parser is constructed from
// one and never reaches outside it. See the ianareg package for an embedded
// snapshot of the IANA registry.
package langtag
