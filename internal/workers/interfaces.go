// Package workers runs long-lived background jobs until their context is
// cancelled. It defines the Worker interface, a Periodic worker that runs a
// job on a fixed interval, and a Workers aggregate that runs several workers
// concurrently and reports the first failure.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. Returning nil after
// cancellation is the normal way to stop.
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
