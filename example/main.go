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
	"context"
	"fmt"
	"os"

	"github.com/srevenant/practical-docker-tools/config"
	"github.com/srevenant/practical-docker-tools/engineclient/cli"
	"github.com/srevenant/practical-docker-tools/engineclient/moby"
	"github.com/srevenant/practical-docker-tools/tool"
)

func main() {
	ctx := context.Background()
	engine, err := moby.New(ctx, "unix:///var/run/docker.sock")
	if err != nil {
		panic(err)
	}
	defer engine.Close()
	fmt.Printf("inspecting engine at: %s\n", engine.API())

	t := tool.New(cli.New(), engine, config.Default())

	// list the running containers with their shortest unique ID prefixes.
	containers, err := t.ListContainers(ctx)
	if err != nil {
		panic(err)
	}
	for _, cntr := range containers.Sorted("names") {
		fmt.Printf("  %-12s %s (%s)\n", cntr.ShortID, cntr.Get("names"), cntr.Repo)
	}

	// resolve the identifier passed, if any, to a single running container.
	if len(os.Args) < 2 {
		return
	}
	argv, err := t.ResolveArgs(ctx, os.Args[1], []string{"docker", "inspect", "{}"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(argv)
}
