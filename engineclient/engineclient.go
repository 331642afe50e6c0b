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

package engineclient

import (
	"context"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/errdefs"
)

// Inspector defines the generic methods needed in order to take an inventory
// of the containers of a Docker engine, regardless of whether the engine is
// talked to via its API or the docker CLI.
type Inspector interface {
	// ContainerIDs lists the IDs of the currently running containers. As
	// containers come and go, some of the listed containers might not exist
	// anymore when inspecting them later.
	ContainerIDs(ctx context.Context) ([]string, error)
	// Inspect returns the full details of the container with the given name or
	// ID. If the container doesn't exist (anymore), then the error returned is
	// a not-found error, see IsNotFound.
	Inspect(ctx context.Context, nameorid string) (*types.ContainerJSON, error)
	// Clean up and release any engine client resources, if necessary.
	Close()
}

// TableLister renders engine objects, such as services or containers, as
// tab-separated lines using the docker CLI's Go template formatting.
type TableLister interface {
	// Table runs the query and returns the output lines, without trailing
	// empty lines.
	Table(ctx context.Context, q Query) ([]string, error)
}

// Query describes a docker CLI listing command, such as "service ls", that
// supports the "--format" flag.
type Query struct {
	Args     []string // command and flags, such as "service", "ls".
	Fields   []string // fields to render, such as "ID", "Name".
	Trailing []string // positional arguments following the format flag.
}

// IsNotFound returns true if the error indicates a container that doesn't
// exist, regardless of the engine client that returned the error.
func IsNotFound(err error) bool {
	return errdefs.IsNotFound(err)
}
