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


package moby

import (
	"context"
	"os"

	"github.com/ory/dockertest/v3"
	dockertools "github.com/srevenant/practical-docker-tools"
	"github.com/srevenant/practical-docker-tools/engineclient"
	"github.com/srevenant/practical-docker-tools/inventory"
	"github.com/srevenant/practical-docker-tools/resolver"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

const (
	dockerSocket = "unix:///var/run/docker.sock"
	canaryName   = "docker-tools-canary"
)

var _ = Describe("live Docker engine", Ordered, func() {

	var canary *dockertest.Resource

	BeforeAll(func() {
		if _, err := os.Stat("/var/run/docker.sock"); err != nil {
			Skip("needs Docker engine")
		}
		By("creating a canary container")
		pool := Successful(dockertest.NewPool(dockerSocket))
		_ = pool.RemoveContainerByName(canaryName)
		canary = Successful(pool.RunWithOptions(
			&dockertest.RunOptions{
				Name:       canaryName,
				Repository: "busybox",
				Labels: map[string]string{
					dockertools.ServiceNameLabel: canaryName,
				},
				Cmd: []string{"/bin/sleep", "120s"},
			}))
		DeferCleanup(func() {
			By("removing the canary container")
			Expect(pool.Purge(canary)).To(Succeed())
		})
	})

	It("inventories and resolves the canary", func(ctx context.Context) {
		ec := Successful(New(ctx, dockerSocket))
		defer ec.Close()

		inv := Successful(inventory.Build(ctx, ec))
		Expect(inv).To(HaveKeyWithValue(canary.Container.ID,
			HaveField("ServiceName", canaryName)))

		Expect(resolver.Resolve(canaryName[:10], inv)).To(Equal(canary.Container.ID))

		_, err := ec.Inspect(ctx, canaryName+"-nonexisting")
		Expect(engineclient.IsNotFound(err)).To(BeTrue())
	})

})
