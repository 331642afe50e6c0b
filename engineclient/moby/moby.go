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
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/pkg/errors"

	dockertools "github.com/srevenant/practical-docker-tools"
	"github.com/srevenant/practical-docker-tools/engineclient"
)

// Type specifies this container engine's type identifier.
const Type = "docker.com"

// MobyAPIClient is a Docker client offering the container API as well as
// pinging the daemon. For production, Docker's client.Client is a compatible
// implementation, for unit testing our very own mockingmoby.MockingMoby.
type MobyAPIClient interface {
	client.ContainerAPIClient
	Ping(ctx context.Context) (types.Ping, error)
	DaemonHost() string
	Close() error
}

// MobyEngine is a Docker-engine Inspector talking to the Docker engine API.
type MobyEngine struct {
	moby      MobyAPIClient // (minimal) moby engine API client.
	buggeroff backoff.BackOff
}

// Make sure that the Inspector interface is fully implemented
var _ (engineclient.Inspector) = (*MobyEngine)(nil)

// NewOption represents options to New and NewMobyEngine.
type NewOption func(*MobyEngine)

// WithBackOff sets the backoff to use when initially contacting the engine.
// If not set, New tries only a single time.
func WithBackOff(buggeroff backoff.BackOff) NewOption {
	return func(me *MobyEngine) {
		me.buggeroff = buggeroff
	}
}

// New returns a new MobyEngine talking to the Docker engine at the specified
// API endpoint, such as "unix:///var/run/docker.sock". If the endpoint is
// zero, the usual DOCKER_HOST et cetera environment variables apply. New
// pings the engine and fails if the engine cannot be reached.
func New(ctx context.Context, dockerhost string, opts ...NewOption) (*MobyEngine, error) {
	clientopts := []client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}
	if dockerhost != "" {
		clientopts = append(clientopts, client.WithHost(dockerhost))
	}
	moby, err := client.NewClientWithOpts(clientopts...)
	if err != nil {
		return nil, &dockertools.EngineError{
			Op:       "connecting to Docker engine",
			ExitCode: -1,
			Err:      err,
		}
	}
	me := NewMobyEngine(moby, opts...)
	if err := me.ping(ctx); err != nil {
		me.Close()
		return nil, err
	}
	return me, nil
}

// NewMobyEngine returns a new MobyEngine using the specified Docker engine
// client; typically, you would want to use this lower-level constructor only
// in unit tests and instead use New in most use cases.
func NewMobyEngine(moby MobyAPIClient, opts ...NewOption) *MobyEngine {
	me := &MobyEngine{
		moby: moby,
	}
	for _, opt := range opts {
		opt(me)
	}
	if me.buggeroff == nil {
		me.buggeroff = &backoff.StopBackOff{}
	}
	return me
}

// ping the engine, retrying according to the configured backoff.
func (me *MobyEngine) ping(ctx context.Context) error {
	err := backoff.Retry(func() error {
		pingctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_, err := me.moby.Ping(pingctx)
		if ctxerr := ctx.Err(); ctxerr != nil {
			return backoff.Permanent(ctxerr)
		}
		return err
	}, backoff.WithContext(me.buggeroff, ctx))
	if err != nil {
		return &dockertools.EngineError{
			Op:       "pinging Docker engine at " + me.API(),
			ExitCode: -1,
			Err:      err,
		}
	}
	return nil
}

// Type returns the type identifier for this container engine.
func (me *MobyEngine) Type() string { return Type }

// API returns the container engine API path.
func (me *MobyEngine) API() string { return me.moby.DaemonHost() }

// Client returns the underlying engine client.
func (me *MobyEngine) Client() MobyAPIClient { return me.moby }

// Close cleans up and release any engine client resources, if necessary.
func (me *MobyEngine) Close() {
	_ = me.moby.Close()
}

// ContainerIDs returns the IDs of the currently running containers.
func (me *MobyEngine) ContainerIDs(ctx context.Context) ([]string, error) {
	containers, err := me.moby.ContainerList(ctx, container.ListOptions{})
	if err != nil {
		return nil, &dockertools.EngineError{
			Op:       "listing containers",
			ExitCode: -1,
			Err:      err,
		}
	}
	ids := make([]string, 0, len(containers))
	for _, cntr := range containers {
		ids = append(ids, cntr.ID)
	}
	return ids, nil
}

// Inspect returns the full details of the container with the specified name
// or ID. Not-found errors are passed on as such, so that callers can skip
// containers that have vanished in the meantime.
func (me *MobyEngine) Inspect(ctx context.Context, nameorid string) (*types.ContainerJSON, error) {
	details, err := me.moby.ContainerInspect(ctx, nameorid)
	if err != nil {
		if engineclient.IsNotFound(err) {
			return nil, errors.Wrapf(err, "container %q gone", nameorid)
		}
		return nil, &dockertools.EngineError{
			Op:       "inspecting container " + nameorid,
			ExitCode: -1,
			Err:      err,
		}
	}
	return &details, nil
}
