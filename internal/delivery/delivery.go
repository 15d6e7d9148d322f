// Package delivery holds the entry points that drive the use cases: the HTTP API and the sweep scheduler.
package delivery

import "context"

// Delivery is a long-running component started by the application after dependency injection completes.
type Delivery interface {
	Serve(ctx context.Context) error
}
