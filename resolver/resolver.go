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

package resolver

import (
	"log/slog"
	"sort"
	"strings"

	dockertools "github.com/srevenant/practical-docker-tools"
)

// Stage is a resolution stage, matching identifiers against a particular
// namespace of container identifiers.
type Stage struct {
	Name string                               // human-readable namespace name.
	Key  func(*dockertools.Container) string // returns the namespace value.
}

// Stages lists the resolution stages in the order they are tried.
var Stages = []Stage{
	{Name: "service ID", Key: func(c *dockertools.Container) string { return c.ServiceID }},
	{Name: "service name", Key: func(c *dockertools.Container) string { return c.ServiceName }},
	{Name: "container ID", Key: func(c *dockertools.Container) string { return c.ID }},
}

// Match returns the containers whose stage namespace value starts with the
// target, mapping container IDs to the matched values. The target is taken
// literally and not as a pattern. An empty target never matches.
func (s Stage) Match(target string, inv dockertools.Inventory) map[string]string {
	matches := map[string]string{}
	if target == "" {
		return matches
	}
	for id, cntr := range inv {
		if value := s.Key(cntr); value != "" && strings.HasPrefix(value, target) {
			matches[id] = value
		}
	}
	return matches
}

// Resolve resolves the target identifier to the ID of exactly one running
// container in the inventory. The target is matched as a prefix of swarm
// service IDs first, then of swarm service names, and finally of container
// IDs; later stages are only tried when all earlier stages didn't match any
// container at all.
//
// Resolve returns a *dockertools.AmbiguousError if the first stage matching
// any containers matches more than one container; in this case later stages
// are not tried. When no stage matches, it returns a
// *dockertools.NoMatchError.
func Resolve(target string, inv dockertools.Inventory) (string, error) {
	for _, stage := range Stages {
		matches := stage.Match(target, inv)
		switch len(matches) {
		case 0:
			continue
		case 1:
			for id := range matches {
				slog.Debug("resolved identifier",
					slog.String("target", target),
					slog.String("stage", stage.Name),
					slog.String("id", dockertools.ShortID(id)))
				return id, nil
			}
		}
		candidates := make([]string, 0, len(matches))
		for id := range matches {
			candidates = append(candidates, dockertools.ShortID(id))
		}
		sort.Strings(candidates)
		return "", &dockertools.AmbiguousError{
			Target:     target,
			Stage:      stage.Name,
			Candidates: candidates,
		}
	}
	return "", &dockertools.NoMatchError{Target: target}
}
