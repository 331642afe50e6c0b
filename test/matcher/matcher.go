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
	o "github.com/onsi/gomega"
	"github.com/onsi/gomega/types"

	dockertools "github.com/srevenant/practical-docker-tools"
)

// HaveID succeeds if the actual value has an "ID" field with the specified
// value.
func HaveID(id string) types.GomegaMatcher {
	return o.HaveField("ID", id)
}

// HaveShortID succeeds if the actual value has a "ShortID" field with the
// specified value. It does not succeed for values without such a field, such
// as containers with their ShortID method.
func HaveShortID(shid string) types.GomegaMatcher {
	return HaveOptionalField("ShortID", shid)
}

// HaveRepo succeeds if the actual value has "RepoHost" and "Repo" fields with
// the specified values.
func HaveRepo(repohost, repo string) types.GomegaMatcher {
	return o.And(
		HaveOptionalField("RepoHost", repohost),
		HaveOptionalField("Repo", repo))
}

// HaveService succeeds if the actual value has "ServiceID" and "ServiceName"
// fields with the specified values.
func HaveService(id, name string) types.GomegaMatcher {
	return o.And(
		HaveOptionalField("ServiceID", id),
		HaveOptionalField("ServiceName", name))
}

// BeAContainer succeeds when the actual value is a *dockertools.Container and
// additionally all passed matchers also succeed.
func BeAContainer(matchers ...types.GomegaMatcher) types.GomegaMatcher {
	return o.WithTransform(func(actual *dockertools.Container) *dockertools.Container {
		return actual // Gomega already did the type checking for us ;)
	}, o.SatisfyAll(matchers...))
}

// HaveRecordField succeeds if the actual *dockertools.Record has a templated field
// of the specified (lower-case) name with the specified value.
func HaveRecordField(name string, value string) types.GomegaMatcher {
	return o.WithTransform(func(actual *dockertools.Record) string {
		return actual.Get(name)
	}, o.Equal(value))
}
