package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until ctx is cancelled, a termination signal arrives or
// the listener fails. Shutdown gracefully stops the server.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}

// Runner is a group of background jobs bound to the server lifetime.
type Runner interface {
	Run(ctx context.Context) error
}
