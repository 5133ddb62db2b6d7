// Package delivery defines the contract every delivery mechanism of the
// application implements.
package delivery

import "context"

// Delivery serves one user-facing surface of the application until it is
// done or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
