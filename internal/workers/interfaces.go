// Package workers runs the long-lived components of the relay as one group.
//
// A Worker blocks until its context is cancelled or it fails. Workers runs
// several of them together: the first failure cancels the others.
package workers

import "context"

// Worker is a long-running component of the relay.
//
// Run must block until ctx is cancelled, release its resources and return
// nil, or return an error when it cannot keep running.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
