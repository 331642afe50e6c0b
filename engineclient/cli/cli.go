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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/errdefs"
	perrors "github.com/pkg/errors"

	dockertools "github.com/srevenant/practical-docker-tools"
	"github.com/srevenant/practical-docker-tools/engineclient"
)

// DefaultBinary is the name of the docker CLI binary, looked up in PATH.
const DefaultBinary = "docker"

// Runner runs a command, returning its stdout output. Runners must return an
// *dockertools.EngineError when the command fails to start or exits with a
// non-zero status.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands as child processes.
type ExecRunner struct{}

// Run the command, capturing its stdout and stderr output.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		eerr := &dockertools.EngineError{
			Op:       CommandLine(name, args...),
			ExitCode: -1,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
		var exiterr *exec.ExitError
		if errors.As(err, &exiterr) {
			eerr.ExitCode = exiterr.ExitCode()
		}
		return nil, eerr
	}
	return stdout.Bytes(), nil
}

// CommandLine renders a command with its arguments for display, quoting
// arguments containing spaces.
func CommandLine(name string, args ...string) string {
	var b strings.Builder
	b.WriteString(name)
	for _, arg := range args {
		b.WriteByte(' ')
		if strings.ContainsAny(arg, " \t\n\"") {
			b.WriteString(quote(arg))
			continue
		}
		b.WriteString(arg)
	}
	return b.String()
}

// quote returns the argument as a JSON string, leaving shell redirections
// such as ">&2" alone.
func quote(arg string) string {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(arg)
	return strings.TrimSuffix(b.String(), "\n")
}

// DockerCLI is a Docker-engine Inspector and TableLister running the docker
// command line client.
type DockerCLI struct {
	binary string
	host   string
	runner Runner
}

var (
	_ (engineclient.Inspector)   = (*DockerCLI)(nil)
	_ (engineclient.TableLister) = (*DockerCLI)(nil)
)

// NewOption represents options to New when creating docker CLI clients.
type NewOption func(*DockerCLI)

// WithBinary sets the docker CLI binary name or path.
func WithBinary(binary string) NewOption {
	return func(dc *DockerCLI) {
		if binary != "" {
			dc.binary = binary
		}
	}
}

// WithHost passes the specified daemon socket to all docker CLI invocations.
func WithHost(host string) NewOption {
	return func(dc *DockerCLI) {
		dc.host = host
	}
}

// WithRunner sets the Runner for running the docker CLI, defaulting to
// ExecRunner.
func WithRunner(r Runner) NewOption {
	return func(dc *DockerCLI) {
		dc.runner = r
	}
}

// New returns a new docker CLI client.
func New(opts ...NewOption) *DockerCLI {
	dc := &DockerCLI{
		binary: DefaultBinary,
		runner: ExecRunner{},
	}
	for _, opt := range opts {
		opt(dc)
	}
	return dc
}

// Binary returns the docker CLI binary in use.
func (dc *DockerCLI) Binary() string { return dc.binary }

// Close is a no-op, as there are no resources to release.
func (dc *DockerCLI) Close() {}

// run the docker CLI with the specified arguments, inserting the daemon host
// flag if configured.
func (dc *DockerCLI) run(ctx context.Context, args ...string) ([]byte, error) {
	if dc.host != "" {
		args = append([]string{"-H", dc.host}, args...)
	}
	return dc.runner.Run(ctx, dc.binary, args...)
}

// Table runs the docker CLI with the query's arguments and the "--format"
// flag set to the tab-separated template for the query's fields.
func (dc *DockerCLI) Table(ctx context.Context, q engineclient.Query) ([]string, error) {
	args := make([]string, 0, len(q.Args)+2+len(q.Trailing))
	args = append(args, q.Args...)
	args = append(args, "--format", dockertools.GoTemplate(q.Fields...))
	args = append(args, q.Trailing...)
	out, err := dc.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimRight(string(out), "\n"), "\n"), nil
}

// ContainerIDs returns the full IDs of the currently running containers.
func (dc *DockerCLI) ContainerIDs(ctx context.Context) ([]string, error) {
	out, err := dc.run(ctx, "ps", "--quiet", "--no-trunc")
	if err != nil {
		return nil, err
	}
	return strings.Fields(string(out)), nil
}

// Inspect returns the full details of the container with the specified name
// or ID.
func (dc *DockerCLI) Inspect(ctx context.Context, nameorid string) (*types.ContainerJSON, error) {
	out, err := dc.run(ctx, "container", "inspect", nameorid)
	if err != nil {
		var eerr *dockertools.EngineError
		if errors.As(err, &eerr) && strings.Contains(strings.ToLower(eerr.Stderr), "no such") {
			return nil, errdefs.NotFound(perrors.Wrapf(err, "container %q gone", nameorid))
		}
		return nil, err
	}
	var details []types.ContainerJSON
	if err := json.Unmarshal(out, &details); err != nil {
		return nil, &dockertools.EngineError{
			Op:       CommandLine(dc.binary, "container", "inspect", nameorid),
			ExitCode: -1,
			Err:      perrors.Wrap(err, "malformed inspection output"),
		}
	}
	if len(details) != 1 {
		return nil, &dockertools.EngineError{
			Op:       CommandLine(dc.binary, "container", "inspect", nameorid),
			ExitCode: -1,
			Err:      perrors.Errorf("expected a single container, got %d", len(details)),
		}
	}
	return &details[0], nil
}
