// Package delivery defines the contract every transport endpoint fulfills.
package delivery

import "context"

// Delivery is a long-running endpoint (HTTP server, worker, ...) started
// by the application entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
