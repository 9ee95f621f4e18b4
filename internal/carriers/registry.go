// internal/carriers/registry.go
package carriers

import (
	"context"
	"errors"
)

// ErrCarrierNotFound reports that the registry holds no record for the
// identifier. Distinct from transport failures, which surface as wrapped
// upstream errors so the caller never mistakes an outage for "not verified".
var ErrCarrierNotFound = errors.New("carrier not found")

// Registry is the carrier-authority lookup capability. The live FMCSA client
// and the static preset list both implement it, so the concrete collaborator
// can be swapped per environment or replaced with a test double.
type Registry interface {
	Lookup(ctx context.Context, mcNumber string) (*CarrierRecord, error)
}
