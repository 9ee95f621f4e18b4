// internal/carriers/verifier.go
package carriers

import (
	"context"
	"errors"

	apierrors "carrier-sales-api/internal/common/errors"
	"carrier-sales-api/internal/common/logger"
	"carrier-sales-api/internal/common/metrics"
)

// Verifier checks a carrier's operating authority against a registry and
// derives the display name: legal name first, doing-business-as name as the
// fallback.
type Verifier struct {
	registry Registry
	logger   logger.Logger
}

func NewVerifier(registry Registry, log logger.Logger) *Verifier {
	return &Verifier{
		registry: registry,
		logger:   log.WithFields(map[string]interface{}{"component": "carrier-verifier"}),
	}
}

// Verify normalizes the MC number and resolves it through the registry.
// A record without any usable name counts as not found rather than producing
// a partially empty verification.
func (v *Verifier) Verify(ctx context.Context, mcNumber string) (*Verification, error) {
	id := NormalizeMC(mcNumber)
	if id == "" {
		return nil, apierrors.NewInvalidInputError("mc_number is required")
	}

	record, err := v.registry.Lookup(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCarrierNotFound) {
			metrics.RegistryLookupsTotal.WithLabelValues("not_found").Inc()
			return nil, apierrors.NewCarrierNotFoundError(mcNumber)
		}
		metrics.RegistryLookupsTotal.WithLabelValues("error").Inc()
		v.logger.Error("registry lookup failed", map[string]interface{}{
			"mcNumber": id,
			"error":    err,
		})
		return nil, err
	}

	name := record.LegalName
	if name == "" {
		name = record.DBAName
	}
	if name == "" {
		metrics.RegistryLookupsTotal.WithLabelValues("not_found").Inc()
		return nil, apierrors.NewCarrierNotFoundError(mcNumber)
	}

	metrics.RegistryLookupsTotal.WithLabelValues("found").Inc()
	v.logger.Info("carrier verified", map[string]interface{}{
		"mcNumber":    id,
		"carrierName": name,
	})

	return &Verification{
		Verified:    true,
		CarrierName: name,
	}, nil
}
