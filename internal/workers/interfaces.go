// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs every
// worker in its own goroutine for the lifetime of the serving context.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block until ctx is cancelled; returning
// earlier means the worker decided it has nothing left to do.
type Worker interface {
	Run(ctx context.Context)
}
