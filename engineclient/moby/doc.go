/*
Package moby implements an engineclient.Inspector talking to a Docker engine
via its API, using the Docker client from github.com/docker/docker/client.

	engine, err := moby.New(ctx, "unix:///var/run/docker.sock",
	    moby.WithBackOff(backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 3)))
	if err != nil {
	    panic(err)
	}
	defer engine.Close()
*/
package moby
