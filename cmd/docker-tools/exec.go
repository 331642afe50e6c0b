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

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sys/unix"

	dockertools "github.com/srevenant/practical-docker-tools"
	"github.com/srevenant/practical-docker-tools/resolver"
)

func newExecCmd(a *app) *cobra.Command {
	var (
		dryRun bool
		quiet  bool
	)
	cmd := &cobra.Command{
		Use:   "exec TARGET [--] COMMAND [ARG...]",
		Short: "Run a command against a single running container",
		Long: `Resolve TARGET to a single running container and then run COMMAND with
all occurrences of the placeholder (default: {}) replaced by the full container
ID. If the command line doesn't contain any placeholder, the container ID gets
appended as the last argument.

TARGET is a prefix of either a swarm service ID, a swarm service name, or a
container ID; these are tried in this order until one of them matches.

Examples:
  docker-tools exec web -- docker exec -it {} sh
  docker-tools exec 3f2a docker logs -f
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			argv := args[1:]
			// flag parsing stops at TARGET, so a separating "--" is still here.
			if len(argv) > 0 && argv[0] == "--" {
				argv = argv[1:]
			}
			argv, err = t.ResolveArgs(cmd.Context(), args[0], argv)
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(argv, " "))
				return nil
			}
			if !quiet {
				echoCommand(cmd.ErrOrStderr(), a.cfg.Color, argv)
			}
			path, err := exec.LookPath(argv[0])
			if err != nil {
				return err
			}
			// nothing gets cleaned up after a successful exec, so do it now.
			a.engine.Close()
			a.engine = nil
			return unix.Exec(path, argv, os.Environ())
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the command instead of running it")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not echo the command before running it")
	return cmd
}

func newResolveCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "resolve TARGET",
		Short: "Print the full ID of the single running container matching TARGET",
		Long: `Resolve TARGET to a single running container and print its full ID.

TARGET is a prefix of either a swarm service ID, a swarm service name, or a
container ID; these are tried in this order until one of them matches. TARGET
is taken literally and not as a pattern. An empty TARGET never matches any
container.
`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			inv, err := t.Inventory(cmd.Context())
			if err != nil {
				return err
			}
			if all {
				for _, stage := range resolver.Stages {
					matches := stage.Match(args[0], inv)
					slog.Info("stage matches",
						slog.String("stage", stage.Name),
						slog.Int("count", len(matches)))
					ids := maps.Keys(matches)
					slices.Sort(ids)
					for _, id := range ids {
						fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n",
							stage.Name, dockertools.ShortID(id), matches[id])
					}
				}
			}
			id, err := resolver.Resolve(args[0], inv)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "show the matches of all resolution stages")
	return cmd
}
