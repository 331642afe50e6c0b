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

// Command docker-tools lists Docker swarm services and containers with short
// IDs and runs commands against containers identified by partial service or
// container identifiers.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/srevenant/practical-docker-tools/config"
	"github.com/srevenant/practical-docker-tools/engineclient"
	"github.com/srevenant/practical-docker-tools/engineclient/cli"
	"github.com/srevenant/practical-docker-tools/engineclient/moby"
	"github.com/srevenant/practical-docker-tools/tool"
)

var (
	// BuildTag is set during build
	BuildTag = "dev"
	// BuildDate is set during build
	BuildDate = "unknown"
)

// app carries the configuration and engine clients of a single command
// invocation.
type app struct {
	cfg    config.Config
	engine engineclient.Inspector
	tool   *tool.Tool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(&app{}).ExecuteContext(ctx)
	stop()
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	var (
		logLevel string
		noColor  bool
	)
	rootCmd := &cobra.Command{
		Use:   "docker-tools",
		Short: "List swarm services and containers, and run commands in containers",
		Long: `docker-tools - practical helpers for Docker swarm operators

docker-tools lists swarm services, their tasks, and running containers using
the shortest unique ID prefixes, and runs commands against a single running
container identified by a prefix of either its swarm service ID, its swarm
service name, or its container ID.

Environment Variables:
  DOCKER_TOOLS_DOCKER       docker CLI binary (default: docker)
  DOCKER_HOST               Docker daemon socket
  DOCKER_TOOLS_ENGINE       api or cli (default: api)
  DOCKER_TOOLS_PLACEHOLDER  container ID placeholder (default: {})
  DOCKER_TOOLS_COLOR        colorize output (default: true)
  LOG_LEVEL                 debug, info, warn, or error (default: info)
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				level, err := config.ParseLogLevel(logLevel)
				if err != nil {
					return err
				}
				a.cfg.LogLevel = level
			}
			if noColor {
				a.cfg.Color = false
			}
			setupLogging(a.cfg)
			return a.cfg.Validate()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.engine != nil {
				a.engine.Close()
			}
		},
	}

	cfg, err := config.Load()
	if err != nil {
		// keep going with the defaults so that at least the help works; the
		// error surfaces when running any command.
		rootCmd.PersistentPreRunE = func(*cobra.Command, []string) error { return err }
		cfg = config.Default()
	}
	a.cfg = cfg
	setupLogging(a.cfg)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfg.Docker, "docker", a.cfg.Docker, "docker CLI binary")
	pf.StringVarP(&a.cfg.DockerHost, "host", "H", a.cfg.DockerHost, "Docker daemon socket to connect to")
	pf.StringVar(&a.cfg.Engine, "engine", a.cfg.Engine, "engine client for container inventories: api or cli")
	pf.StringVar(&a.cfg.Placeholder, "placeholder", a.cfg.Placeholder, "container ID placeholder in exec command lines")
	pf.StringVar(&logLevel, "log-level", a.cfg.LogLevel.String(), "log level: debug, info, warn, or error")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newServicesCmd(a),
		newServiceCmd(a),
		newPsCmd(a),
		newResolveCmd(a),
		newExecCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "docker-tools version %s (built %s)\n", BuildTag, BuildDate)
			},
		},
	)
	return rootCmd
}

// setupLogging installs a colored slog handler as the default logger.
func setupLogging(cfg config.Config) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      cfg.LogLevel,
			TimeFormat: time.Kitchen,
			NoColor:    !cfg.Color,
		}),
	))
}

// connect creates the engine clients as configured and returns the tool
// operating on them. Listings always use the docker CLI, as they rely on its
// template formatting.
func (a *app) connect(ctx context.Context) (*tool.Tool, error) {
	if a.tool != nil {
		return a.tool, nil
	}
	dockercli := cli.New(cli.WithBinary(a.cfg.Docker), cli.WithHost(a.cfg.DockerHost))
	switch a.cfg.Engine {
	case config.EngineCLI:
		a.engine = dockercli
	default:
		engine, err := moby.New(ctx, a.cfg.DockerHost,
			moby.WithBackOff(backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), 3)))
		if err != nil {
			return nil, err
		}
		a.engine = engine
	}
	slog.Debug("connected", slog.String("engine", a.cfg.Engine), slog.String("docker", dockercli.Binary()))
	a.tool = tool.New(dockercli, a.engine, a.cfg)
	return a.tool, nil
}
