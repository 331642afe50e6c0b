/*
Package engineclient defines the Inspector and TableLister interfaces between
the concrete Docker engine adaptors and the engine-neutral inventory and
listing code.

Sub-packages implement the adaptors: moby talks to the engine API, while cli
runs the docker command line client.
*/
package engineclient
