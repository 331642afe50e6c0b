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

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	dockertools "github.com/srevenant/practical-docker-tools"
)

// Engine client kinds.
const (
	EngineAPI = "api" // talk to the Docker engine API.
	EngineCLI = "cli" // run the docker CLI.
)

// DefaultPlaceholder marks where to put the resolved container ID in exec
// command lines.
const DefaultPlaceholder = "{}"

// Config is the configuration of the docker tools, built once at startup and
// then passed on to where needed.
type Config struct {
	Docker      string     `validate:"required"`      // docker CLI binary.
	DockerHost  string     // daemon socket, or zero for the client defaults.
	Engine      string     `validate:"oneof=api cli"` // engine client kind.
	Placeholder string     `validate:"required"`      // ID placeholder in exec args.
	Color       bool       // colorize operator output.
	LogLevel    slog.Level // minimum level of log messages.
}

// Default returns the built-in default configuration.
func Default() Config {
	return Config{
		Docker:      "docker",
		Engine:      EngineAPI,
		Placeholder: DefaultPlaceholder,
		Color:       true,
		LogLevel:    slog.LevelInfo,
	}
}

// Load returns the default configuration overridden by environment
// variables. It automatically loads a .env file if present.
func Load() (Config, error) {
	// Try to load .env file (fail silently if not present)
	_ = godotenv.Load()

	cfg := Default()
	cfg.Docker = getEnv("DOCKER_TOOLS_DOCKER", cfg.Docker)
	cfg.DockerHost = getEnv("DOCKER_HOST", cfg.DockerHost)
	cfg.Engine = getEnv("DOCKER_TOOLS_ENGINE", cfg.Engine)
	cfg.Placeholder = getEnv("DOCKER_TOOLS_PLACEHOLDER", cfg.Placeholder)
	if color := os.Getenv("DOCKER_TOOLS_COLOR"); color != "" {
		on, err := strconv.ParseBool(color)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DOCKER_TOOLS_COLOR %q: %w", color, err)
		}
		cfg.Color = on
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.Color = false
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		var err error
		cfg.LogLevel, err = ParseLogLevel(level)
		if err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// Validate checks the configuration for invalid settings, returning a
// *dockertools.ConfigError if there are any.
func (c Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return &dockertools.ConfigError{Msg: "invalid configuration: " + err.Error()}
	}
	return nil
}

// ParseLogLevel parses a textual log level, such as "debug".
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", level)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
