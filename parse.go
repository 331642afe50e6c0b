// Copyright 2021 Harald Albrecht.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dockertools

import (
	"strings"
)

// GoTemplate returns a Go template for the docker CLI "--format" flag that
// renders the specified fields tab-separated, such as "{{.ID}}\t{{.Name}}".
func GoTemplate(fields ...string) string {
	if len(fields) == 0 {
		return ""
	}
	return "{{." + strings.Join(fields, "}}\t{{.") + "}}"
}

// TableStats describes a parsed table.
type TableStats struct {
	MaxIDLen int // length of the longest ID seen.
	Skipped  int // number of non-empty lines with the wrong column count.
}

// ParseTable parses tab-separated lines as rendered by GoTemplate for the
// same fields into records keyed by their IDs. Empty lines and lines not
// having exactly as many columns as there are fields are skipped; these are
// artefacts of the docker CLI output, such as continuation lines. The
// returned TableStats count the skipped non-empty lines.
//
// The fields must include an "ID" field (in any letter case), otherwise
// ParseTable returns a ConfigError without looking at the lines at all.
func ParseTable(lines []string, fields []string) (Records, TableStats, error) {
	names := make([]string, len(fields))
	idcol := -1
	for idx, field := range fields {
		names[idx] = strings.ToLower(field)
		if names[idx] == FieldID {
			idcol = idx
		}
	}
	if idcol < 0 {
		return nil, TableStats{}, &ConfigError{Msg: "table fields lack mandatory " + FieldID + " field"}
	}

	records := Records{}
	stats := TableStats{}
	for _, line := range lines {
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) != len(names) {
			stats.Skipped++
			continue
		}
		rec := &Record{
			ID:     cols[idcol],
			Fields: make(map[string]string, len(names)),
		}
		for idx, name := range names {
			rec.Fields[name] = cols[idx]
		}
		if image, ok := rec.Fields[FieldImage]; ok {
			rec.Image = image
			rec.RepoHost, rec.Repo = SplitImage(image)
		}
		if l := len(rec.ID); l > stats.MaxIDLen {
			stats.MaxIDLen = l
		}
		records[rec.ID] = rec
	}
	return records, stats, nil
}

// ParseLines parses the output lines of a docker CLI command formatted using
// GoTemplate for the specified fields, returning the records with their short
// IDs already annotated.
func ParseLines(lines []string, fields []string) (Records, TableStats, error) {
	records, stats, err := ParseTable(lines, fields)
	if err != nil {
		return nil, stats, err
	}
	AnnotateShortIDs(records, stats.MaxIDLen)
	return records, stats, nil
}

// ParseOutput is like ParseLines, but takes the complete output as a single
// string.
func ParseOutput(output string, fields []string) (Records, error) {
	records, _, err := ParseLines(strings.Split(output, "\n"), fields)
	return records, err
}
