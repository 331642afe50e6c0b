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

package inventory

import (
	"context"
	"log/slog"

	dockertools "github.com/srevenant/practical-docker-tools"
	"github.com/srevenant/practical-docker-tools/engineclient"
)

// StateRunning is the container state of containers taken into inventory.
const StateRunning = "running"

// Build takes an inventory of the currently running containers, inspecting
// them one after another. Containers not running at the time of inspection
// are skipped. Any listing or inspection error aborts the inventory, as
// resolving identifiers on a partial inventory might wrongly consider an
// identifier to be unique.
//
// The one exception are inspections failing with a not-found error: such
// containers stopped and got removed between listing and inspecting them, so
// they are skipped the same as containers found to be no longer running.
func Build(ctx context.Context, engine engineclient.Inspector) (dockertools.Inventory, error) {
	ids, err := engine.ContainerIDs(ctx)
	if err != nil {
		return nil, err
	}
	inv := make(dockertools.Inventory, len(ids))
	for _, id := range ids {
		details, err := engine.Inspect(ctx, id)
		if err != nil {
			if engineclient.IsNotFound(err) {
				slog.Debug("container vanished before inspection",
					slog.String("id", dockertools.ShortID(id)))
				continue
			}
			return nil, err
		}
		cntr := dockertools.NewContainer(details)
		if cntr.State != StateRunning {
			slog.Debug("skipping container",
				slog.String("id", cntr.ShortID()),
				slog.String("state", cntr.State))
			continue
		}
		inv[cntr.ID] = cntr
	}
	slog.Debug("container inventory taken",
		slog.Int("listed", len(ids)),
		slog.Int("running", len(inv)))
	return inv, nil
}
