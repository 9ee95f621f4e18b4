// internal/negotiation/models.go
package negotiation

// Input carries one round of negotiation. Each call is self-contained; no
// negotiation history is kept between requests.
type Input struct {
	CarrierOffer float64 `json:"carrier_offer"`
	OurLastOffer float64 `json:"our_last_offer"`
	OfferAttempt int     `json:"offer_attempt"`
}

type Output struct {
	Result   string  `json:"result"` // "accept" or "counter"
	NewOffer float64 `json:"new_offer"`
	Message  string  `json:"message"`
	Final    bool    `json:"final,omitempty"`
}

const (
	ResultAccept  = "accept"
	ResultCounter = "counter"
)
