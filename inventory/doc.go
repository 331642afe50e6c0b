/*
Package inventory takes stock of the running containers of a Docker engine,
together with the swarm services they belong to.
*/
package inventory
