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

	"github.com/docker/docker/api/types"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Swarm labels attached by the Docker engine to containers that are tasks
// of a swarm service.
const (
	ServiceIDLabel   = "com.docker.swarm.service.id"
	ServiceNameLabel = "com.docker.swarm.service.name"
)

// ShortIDLen is the length of container IDs when shown to operators, the
// same as used by the docker CLI.
const ShortIDLen = 12

// Container is a running container together with the swarm service it
// belongs to, if any.
type Container struct {
	ID          string            // full container ID.
	Name        string            // container name without leading slash.
	Image       string            // image reference the container was created from.
	State       string            // runtime state, such as "running".
	Labels      map[string]string // labels assigned to this container.
	ServiceID   string            // swarm service ID, or zero.
	ServiceName string            // swarm service name, or zero.

	Details *types.ContainerJSON // full inspection information.
}

// NewContainer returns a Container for the specified inspection details,
// deriving the swarm service ownership from its labels.
func NewContainer(details *types.ContainerJSON) *Container {
	c := &Container{
		Details: details,
	}
	if details.ContainerJSONBase != nil {
		c.ID = details.ID
		if len(details.Name) > 0 && details.Name[0] == '/' {
			c.Name = details.Name[1:]
		} else {
			c.Name = details.Name
		}
		if details.State != nil {
			c.State = details.State.Status
		}
	}
	if details.Config != nil {
		c.Image = details.Config.Image
		c.Labels = details.Config.Labels
		c.ServiceID = details.Config.Labels[ServiceIDLabel]
		c.ServiceName = details.Config.Labels[ServiceNameLabel]
	}
	return c
}

// ShortID returns the container ID abbreviated in the same way as the
// docker CLI does.
func (c *Container) ShortID() string {
	return ShortID(c.ID)
}

// String renders a textual representation of a container, such as its name,
// ID, and service.
func (c *Container) String() string {
	var sinfo string
	if c.ServiceName != "" {
		sinfo = fmt.Sprintf(" of service '%s'", c.ServiceName)
	}
	return fmt.Sprintf("container '%s'/%s%s", c.Name, c.ShortID(), sinfo)
}

// ShortID returns the first ShortIDLen characters of an ID.
func ShortID(id string) string {
	return truncate(id, ShortIDLen)
}

// Inventory maps container IDs to running containers.
type Inventory map[string]*Container

// IDs returns the container IDs of this inventory in lexicographic order.
func (inv Inventory) IDs() []string {
	ids := maps.Keys(inv)
	slices.Sort(ids)
	return ids
}
