package server

import "context"

// Server defines the lifecycle contract of the relay process.
type Server interface {
	// RunServer serves until a termination signal arrives, Shutdown is
	// called or a component fails. It returns the failure, if any.
	RunServer() error

	// Shutdown asks a running server to stop gracefully.
	Shutdown()
}

// SessionCloser closes every live relay session.
type SessionCloser interface {
	CloseAll()
}

type runner interface {
	Run(ctx context.Context) error
}
