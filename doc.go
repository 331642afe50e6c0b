/*
Package dockertools helps Docker swarm operators with day-to-day chores: it
lists swarm services, their tasks, and running containers using the shortest
unique ID prefixes, and it resolves short, partial identifiers to exactly one
running container in order to then run commands against it.

# Records

Listings are rendered by the docker CLI using Go templates (see [GoTemplate])
into tab-separated lines, which [ParseTable] then turns into [Records] keyed by
their IDs. Image references get split into their registry host and repository
parts (see [SplitImage]). [AnnotateShortIDs] finally sets the shortest unique ID
prefix of all records, if there is any such prefix.

# Containers

For resolving identifiers, the running containers get inspected and turned
into [Container] objects that additionally carry the swarm service ID and name
a container is a task of. An [Inventory] maps container IDs to their
containers; see the inventory package for taking inventories and the resolver
package for resolving identifiers.

# Errors

Listing and resolving fail with one of the following error types:
  - [ConfigError] when the caller passed an invalid configuration, such as a
    table template without an ID field.
  - [EngineError] when the docker CLI or engine API failed.
  - [AmbiguousError] when an identifier matches more than one container.
  - [NoMatchError] when an identifier doesn't match any running container.
*/
package dockertools
