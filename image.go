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

import "strings"

// DefaultRepoHost is the registry host assumed for image references without
// any host part.
const DefaultRepoHost = "docker.io"

// SplitImage splits an image reference of the form "[host/]repository[:tag]"
// once at the first "/" into its registry host and repository parts. Image
// references without any "/" are considered to come from DefaultRepoHost.
//
// Please note that this is only a rough approximation of Docker's own
// reference normalization: "library/nginx" gets split into the host "library"
// and repository "nginx", and a "host:port" registry without a path is taken
// as the repository.
func SplitImage(image string) (repohost, repo string) {
	parts := strings.SplitN(image, "/", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return DefaultRepoHost, image
}
