// Package delivery defines the contract for transport servers managed by the
// application lifecycle.
package delivery

import "context"

// Delivery is a transport surface (HTTP server, worker, etc.) that can be
// started by the composition root.
type Delivery interface {
	Serve(ctx context.Context) error
}
