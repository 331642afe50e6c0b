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

package mockingmoby

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var (
	mockingMoby = MockedContainer{
		ID:     "1234567890",
		Name:   "mocking_moby",
		Image:  "busybox",
		Status: MockedCreated,
		PID:    0,
		Labels: map[string]string{"motto": "I'm not dead yet"},
	}

	furiousFuruncle = MockedContainer{
		ID:     "6666666666",
		Name:   "furious_furuncle",
		Image:  "registry.example.org/furuncle:1.0",
		Status: MockedRunning,
		PID:    666,
		Labels: SwarmLabels("svc666", "furuncles", map[string]string{"foo": "bar"}),
	}

	pausingPm = MockedContainer{
		ID:     "10",
		Name:   "pausing_pm",
		Status: MockedPaused,
		PID:    10,
		Labels: map[string]string{"motto": "pifflepaffle"},
	}
)

var _ = Describe("mockingmoby", func() {

	It("looks up container by name or ID", func() {
		mm := NewMockingMoby()
		Expect(mm.DaemonHost()).NotTo(BeEmpty())

		defer mm.Close()
		mm.AddContainer(mockingMoby)

		_, ok := mm.lookup("foo")
		Expect(ok).To(BeFalse())

		c, ok := mm.lookup(mockingMoby.ID)
		Expect(ok).To(BeTrue())
		Expect(c.ID).To(Equal(mockingMoby.ID))

		c, ok = mm.lookup(mockingMoby.Name)
		Expect(ok).To(BeTrue())
		Expect(c.ID).To(Equal(mockingMoby.ID))
	})

	It("removes containers by name", func() {
		mm := NewMockingMoby()
		defer mm.Close()
		mm.AddContainer(furiousFuruncle)
		mm.RemoveContainer(furiousFuruncle.Name)
		_, ok := mm.lookup(furiousFuruncle.ID)
		Expect(ok).To(BeFalse())
		_, ok = mm.lookup(furiousFuruncle.Name)
		Expect(ok).To(BeFalse())
	})

	It("pings and fails pinging", func(ctx context.Context) {
		mm := NewMockingMoby()
		defer mm.Close()
		Expect(Successful(mm.Ping(ctx)).APIVersion).NotTo(BeEmpty())

		doh := errors.New("doh!")
		mm.SetPingError(doh)
		Expect(mm.Ping(ctx)).Error().To(MatchError(doh))
		Expect(mm.Pings()).To(Equal(2))

		mm.SetPingError(nil)
		Expect(mm.Ping(ctx)).Error().NotTo(HaveOccurred())
	})

	It("tracks being closed", func() {
		mm := NewMockingMoby()
		Expect(mm.Closed()).To(BeFalse())
		Expect(mm.Close()).To(Succeed())
		Expect(mm.Closed()).To(BeTrue())
	})

	It("generates swarm labels", func() {
		Expect(SwarmLabels("id1", "name1", map[string]string{"foo": "bar"})).To(And(
			HaveKeyWithValue("com.docker.swarm.service.id", "id1"),
			HaveKeyWithValue("com.docker.swarm.service.name", "name1"),
			HaveKeyWithValue("foo", "bar"),
		))
	})

})
