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

package dockertools

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigError signals a programming or configuration mistake on the caller's
// side, such as a table template lacking the mandatory ID field.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Msg
}

// EngineError signals that the container engine, either the docker CLI or
// the engine API, failed to list or inspect. ExitCode is only set for docker
// CLI invocations and is -1 otherwise.
type EngineError struct {
	Op       string // operation, such as the command line run.
	ExitCode int    // exit status of docker CLI invocations.
	Stderr   string // (trimmed) stderr output of docker CLI invocations.
	Err      error  // underlying cause, if any.
}

func (e *EngineError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "engine failure: %s", e.Op)
	if e.ExitCode >= 0 {
		fmt.Fprintf(&b, " exited with status %d", e.ExitCode)
	}
	if e.Stderr != "" {
		fmt.Fprintf(&b, ": %s", e.Stderr)
	} else if e.Err != nil {
		fmt.Fprintf(&b, ": %s", e.Err.Error())
	}
	return b.String()
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// AmbiguousError signals that an identifier matched more than a single
// container in the first resolution stage that matched at all.
type AmbiguousError struct {
	Target     string   // identifier as given by the operator.
	Stage      string   // resolution stage that matched.
	Candidates []string // sorted short (12 character) container IDs.
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous identifier %q matches %d containers by %s: %s",
		e.Target, len(e.Candidates), e.Stage, strings.Join(e.Candidates, ", "))
}

// NoMatchError signals that an identifier didn't match any running container
// in any resolution stage.
type NoMatchError struct {
	Target string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no running container matches %q", e.Target)
}

// IsAmbiguous returns true if the error is or wraps an AmbiguousError.
func IsAmbiguous(err error) bool {
	var aerr *AmbiguousError
	return errors.As(err, &aerr)
}

// IsNoMatch returns true if the error is or wraps a NoMatchError.
func IsNoMatch(err error) bool {
	var nerr *NoMatchError
	return errors.As(err, &nerr)
}

// IsConfigError returns true if the error is or wraps a ConfigError.
func IsConfigError(err error) bool {
	var cerr *ConfigError
	return errors.As(err, &cerr)
}

// IsEngineError returns true if the error is or wraps an EngineError.
func IsEngineError(err error) bool {
	var eerr *EngineError
	return errors.As(err, &eerr)
}
