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

// Package ianareg parses the IANA Language Subtag Registry's record-stanza
// text format (RFC 5646 Sec 3.1) into langtag.Record values, and builds an
// in-memory langtag.Registry from the result.
package ianareg

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jplu/bcp47/langtag"
)

const (
	keyValParts         = 2
	rangeParts          = 2
	maxNumericExpansion = 20000
	maxAlphaExpansion   = 40000
)

// rawRecord accumulates one stanza's fields before it is converted into a
// langtag.Record. Only the fields the core pipeline consults are kept;
// Description, Added, Comments, Macrolanguage, and Scope are read and
// discarded, since they carry no weight in parsing, validation, or
// canonicalization.
type rawRecord struct {
	recordType     string
	subtag         string
	tag            string
	preferredValue string
	suppressScript string
	prefix         []string
	deprecated     bool
}

// stanzaParser holds the state of one pass over a registry file.
type stanzaParser struct {
	fileDate      string
	onRecord      func(rawRecord) error
	current       map[string][]string
	lastFieldName string
	sawRecord     bool
}

func (p *stanzaParser) processLine(line string) error {
	if line == "%%" {
		if err := p.flush(); err != nil {
			return err
		}
		return nil
	}

	if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') {
		if p.lastFieldName != "" && len(p.current[p.lastFieldName]) > 0 {
			lastIdx := len(p.current[p.lastFieldName]) - 1
			p.current[p.lastFieldName][lastIdx] += " " + strings.TrimSpace(line)
		}
		return nil
	}

	parts := strings.SplitN(line, ":", keyValParts)
	if len(parts) != keyValParts {
		return nil
	}

	fieldName, fieldBody := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if strings.EqualFold(fieldName, "File-Date") && !p.sawRecord {
		p.fileDate = fieldBody
		return nil
	}

	fieldNameLower := strings.ToLower(fieldName)
	p.current[fieldNameLower] = append(p.current[fieldNameLower], fieldBody)
	p.lastFieldName = fieldNameLower
	return nil
}

func (p *stanzaParser) flush() error {
	if len(p.current) == 0 {
		return nil
	}
	p.sawRecord = true
	rec := buildRawRecord(p.current)
	p.current = make(map[string][]string)
	p.lastFieldName = ""
	if rec.recordType == "" {
		return nil
	}
	return p.onRecord(rec)
}

// parseRegistryFile scans r in the IANA record-stanza format, calling
// onRecord once per stanza with its raw fields (a "start..end" range is
// passed through unexpanded; expandAndConvert expands it), and returns the
// File-Date header if present.
func parseRegistryFile(r io.Reader, onRecord func(rawRecord) error) (fileDate string, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	p := &stanzaParser{onRecord: onRecord, current: make(map[string][]string)}
	for scanner.Scan() {
		if err := p.processLine(scanner.Text()); err != nil {
			return "", err
		}
	}
	if err := p.flush(); err != nil {
		return "", err
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return p.fileDate, nil
}

func buildRawRecord(fields map[string][]string) rawRecord {
	getString := func(key string) string {
		if v, ok := fields[key]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}
	return rawRecord{
		recordType:     getString("type"),
		subtag:         getString("subtag"),
		tag:            getString("tag"),
		preferredValue: getString("preferred-value"),
		suppressScript: getString("suppress-script"),
		prefix:         fields["prefix"],
		deprecated:     getString("deprecated") != "",
	}
}

// expandAndConvert turns one rawRecord into one or more langtag.Record
// values plus the normalized key(s) they should be stored under, expanding
// "start..end" range notation on Subtag or Tag (Sec 3.1.5) into one record
// per value in the range.
func expandAndConvert(raw rawRecord) ([]string, []langtag.Record, error) {
	base := langtag.Record{
		Type:           langtag.RecordType(raw.recordType),
		PreferredValue: raw.preferredValue,
		SuppressScript: raw.suppressScript,
		Prefix:         raw.prefix,
		Deprecated:     raw.deprecated,
	}

	switch {
	case strings.Contains(raw.subtag, ".."):
		subtags, err := expandRange(raw.subtag)
		if err != nil {
			return nil, nil, fmt.Errorf("ianareg: expanding subtag range %q: %w", raw.subtag, err)
		}
		keys := make([]string, len(subtags))
		recs := make([]langtag.Record, len(subtags))
		for i, s := range subtags {
			rec := base
			rec.Subtag = s
			keys[i] = strings.ToLower(s)
			recs[i] = rec
		}
		return keys, recs, nil

	case strings.Contains(raw.tag, ".."):
		tags, err := expandRange(raw.tag)
		if err != nil {
			return nil, nil, fmt.Errorf("ianareg: expanding tag range %q: %w", raw.tag, err)
		}
		keys := make([]string, len(tags))
		recs := make([]langtag.Record, len(tags))
		for i, tg := range tags {
			rec := base
			rec.Tag = strings.ToLower(tg)
			keys[i] = rec.Tag
			recs[i] = rec
		}
		return keys, recs, nil

	case raw.subtag != "":
		rec := base
		rec.Subtag = strings.ToLower(raw.subtag)
		return []string{rec.Subtag}, []langtag.Record{rec}, nil

	case raw.tag != "":
		rec := base
		rec.Tag = strings.ToLower(raw.tag)
		return []string{rec.Tag}, []langtag.Record{rec}, nil

	default:
		return nil, nil, nil
	}
}

func expandRange(rangeStr string) ([]string, error) {
	parts := strings.Split(rangeStr, "..")
	if len(parts) != rangeParts {
		return nil, fmt.Errorf("invalid range format: %s", rangeStr)
	}
	start, end := parts[0], parts[1]

	if len(start) != len(end) || len(start) == 0 {
		return nil, fmt.Errorf("range start/end must have same, non-zero length: %s", rangeStr)
	}

	if isNumeric(start) && isNumeric(end) {
		return expandNumericRange(start, end)
	}
	if isAlphabetic(start) && isAlphabetic(end) {
		return expandAlphabeticRange(start, end)
	}
	return nil, fmt.Errorf("range must be purely alphabetic or purely numeric: %s", rangeStr)
}

func expandNumericRange(start, end string) ([]string, error) {
	startNum, err1 := strconv.Atoi(start)
	endNum, err2 := strconv.Atoi(end)
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("invalid numeric range: %s..%s", start, end)
	}
	if startNum > endNum {
		return nil, fmt.Errorf("start of range cannot be greater than end: %s..%s", start, end)
	}
	if endNum-startNum > maxNumericExpansion {
		return nil, fmt.Errorf("numeric range is too large to expand: %s..%s", start, end)
	}

	format := fmt.Sprintf("%%0%dd", len(start))
	result := make([]string, 0, endNum-startNum+1)
	for i := startNum; i <= endNum; i++ {
		result = append(result, fmt.Sprintf(format, i))
	}
	return result, nil
}

func expandAlphabeticRange(start, end string) ([]string, error) {
	current := []byte(strings.ToLower(start))
	endBytes := []byte(strings.ToLower(end))

	if bytes.Compare(current, endBytes) > 0 {
		return nil, fmt.Errorf("start of alphabetic range cannot be greater than end: %s..%s", start, end)
	}

	var result []string
	for {
		result = append(result, string(current))
		if bytes.Equal(current, endBytes) {
			break
		}
		if len(result) > maxAlphaExpansion {
			return nil, fmt.Errorf("alphabetic range is too large to expand: %s..%s", start, end)
		}

		i := len(current) - 1
		for {
			current[i]++
			if current[i] <= 'z' {
				break
			}
			current[i] = 'a'
			i--
		}
	}
	return result, nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
			return false
		}
	}
	return true
}
