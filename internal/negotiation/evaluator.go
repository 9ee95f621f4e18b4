// internal/negotiation/evaluator.go
package negotiation

import (
	"fmt"
	"math"

	apierrors "carrier-sales-api/internal/common/errors"
	"carrier-sales-api/internal/common/metrics"
)

// Evaluate decides whether to accept a carrier's offer or counter it.
//
//   - carrier_offer >= our_last_offer accepts at the carrier's number; the
//     comparison is inclusive, so an exactly matching offer is accepted.
//   - Otherwise the counter is the arithmetic mean of the two offers, rounded
//     half-up to the nearest integer.
//   - On attempt 2 or later a counter is flagged final; the numeric value is
//     computed identically.
//
// Pure function: no state, no side effects beyond metrics, identical inputs
// yield identical outputs. Offer magnitude is not bound-checked; only
// finiteness and a positive attempt are enforced.
func Evaluate(in Input) (*Output, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	if in.CarrierOffer >= in.OurLastOffer {
		metrics.OfferDecisionsTotal.WithLabelValues(ResultAccept).Inc()
		return &Output{
			Result:   ResultAccept,
			NewOffer: in.CarrierOffer,
			Message:  "Offer accepted.",
		}, nil
	}

	counter := roundHalfUp((in.CarrierOffer + in.OurLastOffer) / 2)

	out := &Output{
		Result:   ResultCounter,
		NewOffer: counter,
	}
	if in.OfferAttempt > 1 {
		out.Final = true
		out.Message = fmt.Sprintf("This is our final counter at %s.", formatOffer(counter))
	} else {
		out.Message = fmt.Sprintf("We can go as low as %s on this load.", formatOffer(counter))
	}

	metrics.OfferDecisionsTotal.WithLabelValues(ResultCounter).Inc()
	return out, nil
}

func validate(in Input) error {
	if math.IsNaN(in.CarrierOffer) || math.IsInf(in.CarrierOffer, 0) {
		return apierrors.NewInvalidInputError("carrier_offer must be a finite number")
	}
	if math.IsNaN(in.OurLastOffer) || math.IsInf(in.OurLastOffer, 0) {
		return apierrors.NewInvalidInputError("our_last_offer must be a finite number")
	}
	if in.OfferAttempt < 1 {
		return apierrors.NewInvalidInputError("offer_attempt must be a positive integer")
	}
	return nil
}

// roundHalfUp rounds to the nearest integer with ties going up, so the
// counter for (600, 701) is 651, not 650.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// formatOffer renders the counter without a trailing ".000000" since counters
// are always whole numbers.
func formatOffer(offer float64) string {
	return fmt.Sprintf("%d", int64(offer))
}
