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

// MinShortIDLen is the shortest ID prefix length ever considered.
const MinShortIDLen = 2

// ShortestUniqueLen returns the shortest prefix length n in [2, maxlen) for
// which truncating all keys to their first n characters still leaves all keys
// distinct. If there is no such length, ShortestUniqueLen returns 0. Keys
// shorter than n are taken as they are. Less than two keys never have a
// shortest unique length.
func ShortestUniqueLen(keys []string, maxlen int) int {
	if len(keys) < 2 {
		return 0
	}
	for n := MinShortIDLen; n < maxlen; n++ {
		prefixes := make(map[string]struct{}, len(keys))
		for _, key := range keys {
			prefixes[truncate(key, n)] = struct{}{}
		}
		if len(prefixes) == len(keys) {
			return n
		}
	}
	return 0
}

// AnnotateShortIDs sets the ShortID of all records to the shortest unique
// prefix of their IDs, see ShortestUniqueLen. In case there is no unique
// prefix shorter than maxlen the short IDs are left untouched.
func AnnotateShortIDs(records Records, maxlen int) {
	keys := make([]string, 0, len(records))
	for id := range records {
		keys = append(keys, id)
	}
	n := ShortestUniqueLen(keys, maxlen)
	if n == 0 {
		return
	}
	for id, rec := range records {
		rec.ShortID = truncate(id, n)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
