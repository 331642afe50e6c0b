/*
Package cli implements an engineclient.Inspector and engineclient.TableLister
that run the docker command line client. Listings use the docker CLI's
"--format" flag with tab-separated Go templates, which then get parsed using
dockertools.ParseLines.

Unit tests can swap the process-running part using WithRunner.
*/
package cli
