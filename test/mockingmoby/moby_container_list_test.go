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

	"github.com/docker/docker/api/types/container"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
	. "github.com/thediveo/success"
)

var _ = Describe("lists mocked containers", func() {

	It("lists containers", func(ctx context.Context) {
		mm := NewMockingMoby()
		defer mm.Close()

		Expect(Successful(mm.ContainerList(ctx, container.ListOptions{}))).To(BeEmpty())

		mm.AddContainer(furiousFuruncle)
		cntrs := Successful(mm.ContainerList(ctx, container.ListOptions{}))
		Expect(cntrs).To(HaveLen(1))
		c := cntrs[0]
		Expect(c.ID).To(Equal(furiousFuruncle.ID))
		Expect(c.Names).To(Equal([]string{"/" + furiousFuruncle.Name}))
		Expect(c.Image).To(Equal(furiousFuruncle.Image))
		Expect(c.Labels).To(Equal(furiousFuruncle.Labels))
		Expect(c.State).To(Equal("running"))

		mm.AddContainer(pausingPm)
		mm.AddContainer(mockingMoby)
		Expect(Successful(mm.ContainerList(ctx, container.ListOptions{}))).To(ConsistOf(
			MatchFields(IgnoreExtras, Fields{
				"ID": Equal(furiousFuruncle.ID),
			}),
			MatchFields(IgnoreExtras, Fields{
				"ID": Equal(pausingPm.ID),
			}),
		))
		Expect(Successful(mm.ContainerList(ctx, container.ListOptions{All: true}))).To(HaveLen(3))
	})

	It("recognizes cancelled context", func(ctx context.Context) {
		mm := NewMockingMoby()
		defer mm.Close()

		ctx, cancel := context.WithCancel(ctx)
		cancel()

		Expect(mm.ContainerList(ctx, container.ListOptions{})).Error().To(HaveOccurred())
	})

	It("registers and calls hooks", func(ctx context.Context) {
		mm := NewMockingMoby()
		defer mm.Close()
		doh := errors.New("doh!")

		cntrs, err := mm.ContainerList(
			WithHook(ctx, ContainerListPost, func(key HookKey) error {
				Expect(key).To(Equal(ContainerListPost))
				return doh
			}), container.ListOptions{})
		Expect(err).To(Equal(doh))
		Expect(cntrs).To(BeNil())

		_, err = mm.ContainerList(
			WithHook(ctx, ContainerListPre, func(HookKey) error {
				return doh
			}), container.ListOptions{})
		Expect(err).To(Equal(doh))
	})

})
