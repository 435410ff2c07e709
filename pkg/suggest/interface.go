// Package suggest turns estimations into ranked completion suggestions and filters them by prefix.
package suggest

import "context"

// ICompleter defines the interface for type hint completion engines
type ICompleter interface {
	// Complete returns ranked suggestions for the parameter in req
	Complete(ctx context.Context, req Request) []Suggestion

	// Invalidate drops cached results, e.g. after a settings change
	Invalidate()

	// Stats returns cache statistics
	Stats() map[string]int
}
