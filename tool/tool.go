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

package tool

import (
	"context"
	"log/slog"
	"strings"

	dockertools "github.com/srevenant/practical-docker-tools"
	"github.com/srevenant/practical-docker-tools/config"
	"github.com/srevenant/practical-docker-tools/engineclient"
	"github.com/srevenant/practical-docker-tools/inventory"
	"github.com/srevenant/practical-docker-tools/resolver"
)

// Field lists of the supported listings.
var (
	ServiceFields = []string{"ID", "Name", "Mode", "Replicas", "Image", "Ports"}
	TaskFields    = []string{"ID", "Name", "Image", "Node", "DesiredState", "CurrentState", "Error", "Ports"}
	PsFields      = []string{"ID", "Image", "Command", "Status", "Ports", "Names"}
)

// Tool lists services, service tasks and containers, and resolves partial
// identifiers to running containers.
type Tool struct {
	lister      engineclient.TableLister
	engine      engineclient.Inspector
	placeholder string
}

// New returns a new Tool using the specified lister for tabular listings and
// the engine for taking container inventories.
func New(lister engineclient.TableLister, engine engineclient.Inspector, cfg config.Config) *Tool {
	placeholder := cfg.Placeholder
	if placeholder == "" {
		placeholder = config.DefaultPlaceholder
	}
	return &Tool{
		lister:      lister,
		engine:      engine,
		placeholder: placeholder,
	}
}

// LoadServices returns the swarm services.
func (t *Tool) LoadServices(ctx context.Context) (dockertools.Records, error) {
	return t.table(ctx, engineclient.Query{
		Args:   []string{"service", "ls"},
		Fields: ServiceFields,
	})
}

// LoadService returns the tasks of the specified swarm service.
func (t *Tool) LoadService(ctx context.Context, service string) (dockertools.Records, error) {
	return t.table(ctx, engineclient.Query{
		Args:     []string{"service", "ps"},
		Fields:   TaskFields,
		Trailing: []string{service},
	})
}

// ListContainers returns the running containers.
func (t *Tool) ListContainers(ctx context.Context) (dockertools.Records, error) {
	return t.table(ctx, engineclient.Query{
		Args:   []string{"ps"},
		Fields: PsFields,
	})
}

// table runs the query and parses its output into records, annotated with
// their short IDs.
func (t *Tool) table(ctx context.Context, q engineclient.Query) (dockertools.Records, error) {
	lines, err := t.lister.Table(ctx, q)
	if err != nil {
		return nil, err
	}
	records, stats, err := dockertools.ParseLines(lines, q.Fields)
	if err != nil {
		return nil, err
	}
	if stats.Skipped > 0 {
		slog.Debug("skipped malformed lines",
			slog.String("query", strings.Join(q.Args, " ")),
			slog.Int("count", stats.Skipped))
	}
	return records, nil
}

// Inventory takes an inventory of the currently running containers.
func (t *Tool) Inventory(ctx context.Context) (dockertools.Inventory, error) {
	return inventory.Build(ctx, t.engine)
}

// Resolve resolves the partial identifier to the full ID of exactly one
// running container, see resolver.Resolve for details.
func (t *Tool) Resolve(ctx context.Context, target string) (string, error) {
	inv, err := t.Inventory(ctx)
	if err != nil {
		return "", err
	}
	return resolver.Resolve(target, inv)
}

// ExecArgs returns the command line argv with all placeholders replaced by the
// container ID. If argv doesn't contain any placeholder, the ID gets appended
// instead.
func (t *Tool) ExecArgs(id string, argv []string) ([]string, error) {
	if len(argv) == 0 {
		return nil, &dockertools.ConfigError{Msg: "missing command to run"}
	}
	args := make([]string, 0, len(argv)+1)
	substituted := false
	for _, arg := range argv {
		if strings.Contains(arg, t.placeholder) {
			arg = strings.ReplaceAll(arg, t.placeholder, id)
			substituted = true
		}
		args = append(args, arg)
	}
	if !substituted {
		args = append(args, id)
	}
	return args, nil
}

// ResolveArgs resolves the partial identifier to a running container and
// returns argv with the container's full ID put in, ready to be run.
func (t *Tool) ResolveArgs(ctx context.Context, target string, argv []string) ([]string, error) {
	if len(argv) == 0 {
		return nil, &dockertools.ConfigError{Msg: "missing command to run"}
	}
	id, err := t.Resolve(ctx, target)
	if err != nil {
		return nil, err
	}
	return t.ExecArgs(id, argv)
}
