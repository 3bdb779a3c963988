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
	"bytes"
	_ "embed"
	"errors"
)

//go:embed language-subtag-registry
var embeddedRegistryData []byte

// NewEmbeddedRegistry builds a Registry from the snapshot bundled into the
// binary at compile time (see testdata/README.md for its provenance and
// limits).
//
// Parsing runs in full on every call; callers should build one Registry at
// startup and share it, the same way a *langtag.Parser is meant to be built
// once and reused.
func NewEmbeddedRegistry() (*Registry, error) {
	if len(embeddedRegistryData) == 0 {
		return nil, errors.New("ianareg: embedded language-subtag-registry is empty")
	}
	return NewRegistryFromReader(bytes.NewReader(embeddedRegistryData))
}
