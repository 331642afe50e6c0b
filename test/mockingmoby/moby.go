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
	"sync"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"
)

// MockingMoby is a mock Docker client implementing only listing all containers,
// inspecting them (limited information only), and pinging. All other service
// API methods will panic when tried, as they are not implemented.
type MockingMoby struct {
	client.ContainerAPIClient

	mux        sync.RWMutex
	containers map[string]MockedContainer // mocked containers by ID
	names      map[string]string          // maps names to IDs
	pingErr    error                      // error to return from Ping, if any
	pings      int                        // number of pings so far
	closed     bool
}

// Ensure that all needed service API methods have been implemented.
var _ client.ContainerAPIClient = (*MockingMoby)(nil)

// NewMockingMoby returns a new instance of a mock Docker client.
func NewMockingMoby() *MockingMoby {
	return &MockingMoby{
		containers: map[string]MockedContainer{},
		names:      map[string]string{},
	}
}

// DaemonHost returns the host address used by the client
func (mm *MockingMoby) DaemonHost() string { return "mock://mocked" }

// Close closes the mock client, releasing its internal resources.
func (mm *MockingMoby) Close() error {
	mm.mux.Lock()
	defer mm.mux.Unlock()
	mm.closed = true
	return nil
}

// Closed returns true if the mock client has been closed.
func (mm *MockingMoby) Closed() bool {
	mm.mux.RLock()
	defer mm.mux.RUnlock()
	return mm.closed
}

// Ping returns the error set using SetPingError, if any.
func (mm *MockingMoby) Ping(ctx context.Context) (types.Ping, error) {
	if err := isCtxCancelled(ctx); err != nil {
		return types.Ping{}, err
	}
	mm.mux.Lock()
	defer mm.mux.Unlock()
	mm.pings++
	if mm.pingErr != nil {
		return types.Ping{}, mm.pingErr
	}
	return types.Ping{APIVersion: "1.44", OSType: "linux"}, nil
}

// SetPingError makes future pings fail with the specified error; a nil error
// makes pings succeed again.
func (mm *MockingMoby) SetPingError(err error) {
	mm.mux.Lock()
	defer mm.mux.Unlock()
	mm.pingErr = err
}

// Pings returns the number of pings so far.
func (mm *MockingMoby) Pings() int {
	mm.mux.RLock()
	defer mm.mux.RUnlock()
	return mm.pings
}

// isCtxCancelled returns an error if the specified Context is done, either
// having been cancelled our reached its deadline. Otherwise, returns nil.
func isCtxCancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// AddContainer adds a mocked container, replacing any existing container with
// the same ID.
func (mm *MockingMoby) AddContainer(c MockedContainer) {
	mm.mux.Lock()
	defer mm.mux.Unlock()
	mm.containers[c.ID] = c
	mm.names[c.Name] = c.ID
}

// StopContainer stops a mocked container, but does not remove it yet.
func (mm *MockingMoby) StopContainer(nameorid string) {
	if c, ok := mm.lookup(nameorid); ok {
		mm.mux.Lock()
		defer mm.mux.Unlock()
		c.Status = MockedExited
		c.PID = 0
		mm.containers[c.ID] = c
	}
}

// RemoveContainer removes a mocked container.
func (mm *MockingMoby) RemoveContainer(nameorid string) {
	if c, ok := mm.lookup(nameorid); ok {
		mm.mux.Lock()
		defer mm.mux.Unlock()
		delete(mm.containers, c.ID)
		delete(mm.names, c.Name)
	}
}

// lookup returns a mocked container identified either by ID or name. If not
// found, returns false.
func (mm *MockingMoby) lookup(nameorid string) (MockedContainer, bool) {
	mm.mux.RLock()
	defer mm.mux.RUnlock()
	c, ok := mm.containers[nameorid]
	if !ok {
		if nameorid, ok = mm.names[nameorid]; ok {
			c, ok = mm.containers[nameorid]
		}
	}
	return c, ok
}
