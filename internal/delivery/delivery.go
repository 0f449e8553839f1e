// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker loop) started by
// the composition root. Implementations block in Serve until shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}
