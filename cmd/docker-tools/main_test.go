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


package main

import (
	"bytes"
	"context"
	"strings"

	dockertools "github.com/srevenant/practical-docker-tools"
	"github.com/srevenant/practical-docker-tools/config"
	"github.com/srevenant/practical-docker-tools/engineclient"
	"github.com/srevenant/practical-docker-tools/engineclient/moby"
	"github.com/srevenant/practical-docker-tools/test/mockingmoby"
	"github.com/srevenant/practical-docker-tools/tool"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type cannedLister map[string][]string

func (l cannedLister) Table(ctx context.Context, q engineclient.Query) ([]string, error) {
	return l[strings.Join(q.Args, " ")], nil
}

var _ = Describe("docker-tools command", func() {

	var a *app
	var mm *mockingmoby.MockingMoby

	// run executes the root command with the specified arguments, returning
	// its stdout output.
	run := func(ctx context.Context, args ...string) (string, error) {
		var out bytes.Buffer
		root := newRootCmd(a)
		root.SetArgs(args)
		root.SetOut(&out)
		root.SetErr(GinkgoWriter)
		err := root.ExecuteContext(ctx)
		return out.String(), err
	}

	BeforeEach(func() {
		mm = mockingmoby.NewMockingMoby()
		mm.AddContainer(mockingmoby.MockedContainer{
			ID:     "aaaaaa111111bbbbbb",
			Name:   "web.1.xyz",
			Status: mockingmoby.MockedRunning,
			Labels: mockingmoby.SwarmLabels("svc1", "web", nil),
		})
		mm.AddContainer(mockingmoby.MockedContainer{
			ID:     "aaaaaa222222bbbbbb",
			Name:   "web.2.xyz",
			Status: mockingmoby.MockedRunning,
			Labels: mockingmoby.SwarmLabels("svc1", "web", nil),
		})
		mm.AddContainer(mockingmoby.MockedContainer{
			ID:     "cccccc333333dddddd",
			Name:   "db.1.abc",
			Status: mockingmoby.MockedRunning,
			Labels: mockingmoby.SwarmLabels("svc2", "db", nil),
		})
		lister := cannedLister{
			"service ls": {
				"svc1xxxxxx\tweb\treplicated\t2/2\tnginx:latest\t*:80->80/tcp",
				"svc2xxxxxx\tdb\treplicated\t1/1\tquay.io/coreos/etcd:v3\t",
			},
			"ps": {
				"aaaaaa111111\tnginx:latest\t\"nginx\"\tUp 2 hours\t80/tcp\tweb.1.xyz",
				"cccccc333333\tetcd:v3\t\"etcd\"\tUp 2 hours\t\tdb.1.abc",
			},
		}
		engine := moby.NewMobyEngine(mm)
		a = &app{engine: engine}
		a.tool = tool.New(lister, engine, config.Default())
	})

	It("prints its version", func(ctx context.Context) {
		Expect(run(ctx, "version")).To(HavePrefix("docker-tools version dev"))
	})

	It("lists services", func(ctx context.Context) {
		out, err := run(ctx, "services")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("svc1"))
		Expect(out).To(ContainSubstring("coreos/etcd:v3"))
		Expect(out).To(ContainSubstring("quay.io"))
		Expect(strings.Index(out, "db")).To(BeNumerically("<", strings.Index(out, "web")))
		Expect(mm.Closed()).To(BeTrue())
	})

	It("lists containers", func(ctx context.Context) {
		out, err := run(ctx, "ps")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("web.1.xyz"))
		Expect(out).To(ContainSubstring("Up 2 hours"))
	})

	It("resolves targets", func(ctx context.Context) {
		Expect(run(ctx, "resolve", "db")).To(Equal("cccccc333333dddddd\n"))

		_, err := run(ctx, "resolve", "web")
		Expect(dockertools.IsAmbiguous(err)).To(BeTrue())
		Expect(err).To(MatchError(ContainSubstring("aaaaaa111111, aaaaaa222222")))
	})

	It("shows the matches of all stages", func(ctx context.Context) {
		out, err := run(ctx, "resolve", "--all", "svc2")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("service ID\tcccccc333333\tsvc2\ncccccc333333dddddd\n"))
	})

	It("prints resolved command lines", func(ctx context.Context) {
		Expect(run(ctx, "exec", "--dry-run", "db", "docker", "exec", "-it", "{}", "sh")).
			To(Equal("docker exec -it cccccc333333dddddd sh\n"))
		Expect(run(ctx, "exec", "-n", "cccccc", "docker", "logs", "-f")).
			To(Equal("docker logs -f cccccc333333dddddd\n"))
	})

	It("separates the command line using --", func(ctx context.Context) {
		Expect(run(ctx, "exec", "-n", "db", "--", "docker", "exec", "-it", "{}", "sh")).
			To(Equal("docker exec -it cccccc333333dddddd sh\n"))
		Expect(run(ctx, "exec", "-n", "--", "db", "docker", "logs")).
			To(Equal("docker logs cccccc333333dddddd\n"))

		_, err := run(ctx, "exec", "-n", "db", "--")
		Expect(dockertools.IsConfigError(err)).To(BeTrue())
	})

	It("never resolves empty targets", func(ctx context.Context) {
		_, err := run(ctx, "resolve", "")
		Expect(dockertools.IsNoMatch(err)).To(BeTrue())

		help, err := run(ctx, "resolve", "--help")
		Expect(err).NotTo(HaveOccurred())
		Expect(help).To(ContainSubstring("An empty TARGET never matches"))
	})

	It("rejects invalid configurations", func(ctx context.Context) {
		_, err := run(ctx, "--engine", "podman", "ps")
		Expect(err).To(MatchError(ContainSubstring("invalid configuration")))

		_, err = run(ctx, "--log-level", "chatty", "ps")
		Expect(err).To(MatchError(ContainSubstring(`unknown log level "chatty"`)))
	})

	It("renders records sorted and with short IDs", func() {
		records := dockertools.Records{
			"bbb": {ID: "bbb", ShortID: "b", Fields: map[string]string{"name": "alpha"}},
			"aaa": {ID: "aaa", Fields: map[string]string{"name": "beta"}},
		}
		var out bytes.Buffer
		renderRecords(&out, records, "name", []column{
			{"ID", dockertools.FieldShortID},
			{"Name", "name"},
		})
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		Expect(lines).To(HaveLen(3))
		Expect(strings.Fields(lines[1])).To(Equal([]string{"b", "alpha"}))
		Expect(strings.Fields(lines[2])).To(Equal([]string{"aaa", "beta"}))
	})

	It("echoes commands", func() {
		var out bytes.Buffer
		echoCommand(&out, false, []string{"docker", "exec", "abc", "sh", "-c", "echo hi"})
		Expect(out.String()).To(Equal(">>> docker exec abc sh -c \"echo hi\"\n"))
	})

})
