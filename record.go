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
	"fmt"
	"sort"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Well-known record field names. Templated fields are always stored under
// their lower-cased name.
const (
	FieldID       = "id"
	FieldShortID  = "shid"
	FieldImage    = "image"
	FieldRepo     = "repo"
	FieldRepoHost = "repohost"
)

// Record is a single row of templated docker CLI output, such as a service,
// a service task, or a container. The primary key as well as the image
// related fields are kept as typed fields; all templated fields additionally
// are passed through in Fields under their lower-cased names.
type Record struct {
	ID       string            // primary key, unique within one listing.
	ShortID  string            // shortest unique ID prefix, or zero if none.
	Image    string            // image reference, if templated.
	Repo     string            // repository part of Image.
	RepoHost string            // registry host part of Image.
	Fields   map[string]string // all templated fields by lower-cased name.
}

// Get returns the value of the named field, or "" if this record has no
// such field.
func (r *Record) Get(name string) string {
	switch name {
	case FieldID:
		return r.ID
	case FieldShortID:
		return r.ShortID
	case FieldImage:
		return r.Image
	case FieldRepo:
		return r.Repo
	case FieldRepoHost:
		return r.RepoHost
	}
	return r.Fields[name]
}

// String renders a record in a terse form, using the short ID if available.
func (r *Record) String() string {
	id := r.ShortID
	if id == "" {
		id = r.ID
	}
	if r.Image != "" {
		return fmt.Sprintf("record %s from image %s", id, r.Image)
	}
	return fmt.Sprintf("record %s", id)
}

// Records maps record IDs to their records. The iteration order is
// undefined; use IDs for a stable order.
type Records map[string]*Record

// IDs returns the record IDs in lexicographic order.
func (rs Records) IDs() []string {
	ids := maps.Keys(rs)
	slices.Sort(ids)
	return ids
}

// Sorted returns the records ordered by the specified field, falling back to
// the record ID for records with equal field values.
func (rs Records) Sorted(field string) []*Record {
	recs := make([]*Record, 0, len(rs))
	for _, id := range rs.IDs() {
		recs = append(recs, rs[id])
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Get(field) < recs[j].Get(field)
	})
	return recs
}
