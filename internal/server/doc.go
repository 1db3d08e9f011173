// Package server wires and runs the relay process.
//
// It runs the HTTP server and the session janitor as one group, handles
// termination signals and shuts everything down gracefully, closing the
// remaining relay sessions last.
package server
