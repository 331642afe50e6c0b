/*
Package config provides the docker tools configuration: built-in defaults,
overridden by an optional .env file and environment variables, which in turn
get overridden by command line flags.

Environment variables:

	DOCKER_TOOLS_DOCKER       docker CLI binary (default: docker)
	DOCKER_HOST               Docker daemon socket
	DOCKER_TOOLS_ENGINE       "api" or "cli" (default: api)
	DOCKER_TOOLS_PLACEHOLDER  container ID placeholder in exec args (default: {})
	DOCKER_TOOLS_COLOR        colorize output (default: true)
	NO_COLOR                  disables colors when set
	LOG_LEVEL                 debug, info, warn, or error (default: info)
*/
package config
