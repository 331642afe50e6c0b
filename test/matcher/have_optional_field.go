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


package matcher

import (
	"reflect"
	"strings"

	"github.com/onsi/gomega/matchers"
	"github.com/onsi/gomega/types"
)

// HaveOptionalField succeeds if actual is a struct, or a pointer to a struct,
// having the specified field and the field's value matches expected. Unlike
// Gomega's HaveField, a missing field is no error: the matcher then simply
// doesn't succeed. This allows using the same matchers on records and
// containers, which only share some of their fields.
//
// Dotted field paths, such as "Details.Config", are supported; method names
// are not.
func HaveOptionalField(field string, expected interface{}) types.GomegaMatcher {
	return &haveOptionalFieldMatcher{
		HaveFieldMatcher: matchers.HaveFieldMatcher{
			Field:    field,
			Expected: expected,
		},
	}
}

type haveOptionalFieldMatcher struct {
	matchers.HaveFieldMatcher
}

func (m *haveOptionalFieldMatcher) Match(actual interface{}) (bool, error) {
	if !hasFieldPath(reflect.TypeOf(actual), m.Field) {
		return false, nil
	}
	return m.HaveFieldMatcher.Match(actual)
}

// hasFieldPath returns true if the (pointer to) struct type has the fields
// along the dotted path.
func hasFieldPath(typ reflect.Type, path string) bool {
	for _, name := range strings.Split(path, ".") {
		for typ != nil && typ.Kind() == reflect.Pointer {
			typ = typ.Elem()
		}
		if typ == nil || typ.Kind() != reflect.Struct {
			return false
		}
		field, ok := typ.FieldByName(name)
		if !ok {
			return false
		}
		typ = field.Type
	}
	return true
}
