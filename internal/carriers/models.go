// internal/carriers/models.go
package carriers

// CarrierRecord is one carrier as reported by the registry. Fetched fresh per
// verification request, never persisted locally.
type CarrierRecord struct {
	MCNumber  string `json:"mc_number"`
	LegalName string `json:"legal_name"`
	DBAName   string `json:"dba_name,omitempty"`
}

// Verification is the outcome of a successful carrier verification.
type Verification struct {
	Verified    bool   `json:"verified"`
	CarrierName string `json:"carrier_name"`
}
