// Package delivery holds the transports that expose the application to the outside world.
package delivery

import "context"

// Delivery is a long-running transport started by the application, e.g. the HTTP API.
type Delivery interface {
	// Serve blocks until the transport stops.
	Serve(ctx context.Context) error
}
