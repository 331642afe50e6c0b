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
	dockertools "github.com/srevenant/practical-docker-tools"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("docker tools matchers", func() {

	rec := &dockertools.Record{
		ID:       "abcdef",
		ShortID:  "ab",
		Image:    "nginx",
		RepoHost: "docker.io",
		Repo:     "nginx",
		Fields:   map[string]string{"id": "abcdef", "name": "web", "image": "nginx"},
	}
	cntr := &dockertools.Container{
		ID:          "0123456789abcdef",
		ServiceID:   "svc1",
		ServiceName: "web",
	}

	It("matches IDs", func() {
		Expect(rec).To(HaveID("abcdef"))
		Expect(rec).NotTo(HaveID("ab"))
		Expect(cntr).To(HaveID(cntr.ID))
	})

	It("matches short IDs only on records", func() {
		Expect(rec).To(HaveShortID("ab"))
		Expect(rec).NotTo(HaveShortID("abc"))
		Expect(cntr).NotTo(HaveShortID(cntr.ShortID()))
	})

	It("matches repositories", func() {
		Expect(rec).To(HaveRepo("docker.io", "nginx"))
		Expect(rec).NotTo(HaveRepo("quay.io", "nginx"))
	})

	It("matches record fields", func() {
		Expect(rec).To(HaveRecordField("name", "web"))
		Expect(rec).To(HaveRecordField("shid", "ab"))
		Expect(rec).NotTo(HaveRecordField("ports", "80"))
	})

	It("matches containers with services", func() {
		Expect(cntr).To(BeAContainer(HaveService("svc1", "web")))
		Expect(cntr).NotTo(BeAContainer(HaveService("svc1", "db")))
		Expect(BeAContainer().Match(rec)).Error().To(HaveOccurred())
	})

})
