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

import "context"

// HookKey identifies the point in processing a mocked API request where a
// Hook gets called.
type HookKey string

// The hook points of the mocked container list and inspect requests.
const (
	ContainerListPre     = HookKey("containerlistpre")     // before listing.
	ContainerListPost    = HookKey("containerlistpost")    // after listing, before returning.
	ContainerInspectPre  = HookKey("containerinspectpre")  // before looking up.
	ContainerInspectPost = HookKey("containerinspectpost") // after looking up, before returning.
)

// Hook gets called at its HookKey point when processing a mocked API request
// with a context carrying the hook. A non-nil error aborts the request and is
// returned instead of the request's result.
//
// Requests with an already done context fail before any hook gets called.
type Hook func(HookKey) error

// WithHook returns a new context carrying the Hook for the specified key.
func WithHook(ctx context.Context, key HookKey, hook Hook) context.Context {
	return context.WithValue(ctx, key, hook)
}

// FailWith returns a context that makes mocked requests fail with the
// specified error at the hook point key, such as failing the inspection of
// containers while taking an inventory.
func FailWith(ctx context.Context, key HookKey, err error) context.Context {
	return WithHook(ctx, key, func(HookKey) error { return err })
}

// callHook calls the Hook registered in the context for the key, if any.
func callHook(ctx context.Context, key HookKey) error {
	if h, ok := ctx.Value(key).(Hook); ok {
		return h(key)
	}
	return nil
}
