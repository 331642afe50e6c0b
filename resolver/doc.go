/*
Package resolver resolves operator-supplied partial identifiers to exactly one
running container, trying swarm service IDs, swarm service names and container
IDs in this order.
*/
package resolver
