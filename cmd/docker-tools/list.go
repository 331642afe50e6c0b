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
	"github.com/spf13/cobra"

	dockertools "github.com/srevenant/practical-docker-tools"
)

func newServicesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "services",
		Aliases: []string{"svc", "ls"},
		Short:   "List swarm services",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			services, err := t.LoadServices(cmd.Context())
			if err != nil {
				return err
			}
			renderRecords(cmd.OutOrStdout(), services, "name", []column{
				{"ID", dockertools.FieldShortID},
				{"Name", "name"},
				{"Mode", "mode"},
				{"Replicas", "replicas"},
				{"Registry", dockertools.FieldRepoHost},
				{"Repository", dockertools.FieldRepo},
				{"Ports", "ports"},
			})
			return nil
		},
	}
}

func newServiceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "service SERVICE",
		Short: "List the tasks of a swarm service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			tasks, err := t.LoadService(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderRecords(cmd.OutOrStdout(), tasks, "name", []column{
				{"ID", dockertools.FieldShortID},
				{"Name", "name"},
				{"Node", "node"},
				{"Desired", "desiredstate"},
				{"Current", "currentstate"},
				{"Error", "error"},
				{"Repository", dockertools.FieldRepo},
				{"Ports", "ports"},
			})
			return nil
		},
	}
}

func newPsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ps",
		Short: "List running containers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			containers, err := t.ListContainers(cmd.Context())
			if err != nil {
				return err
			}
			renderRecords(cmd.OutOrStdout(), containers, "names", []column{
				{"ID", dockertools.FieldShortID},
				{"Names", "names"},
				{"Registry", dockertools.FieldRepoHost},
				{"Repository", dockertools.FieldRepo},
				{"Status", "status"},
				{"Ports", "ports"},
				{"Command", "command"},
			})
			return nil
		},
	}
}
