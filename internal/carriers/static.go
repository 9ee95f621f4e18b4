// internal/carriers/static.go
package carriers

import "context"

// StaticRegistry serves a preset carrier list from memory. Same contract as
// the live FMCSA client, used for demos and as a test double.
type StaticRegistry struct {
	records map[string]CarrierRecord
}

// NewStaticRegistry builds a registry over the given records, keyed by
// normalized MC number.
func NewStaticRegistry(records []CarrierRecord) *StaticRegistry {
	byMC := make(map[string]CarrierRecord, len(records))
	for _, rec := range records {
		byMC[NormalizeMC(rec.MCNumber)] = rec
	}
	return &StaticRegistry{records: byMC}
}

// DefaultStaticRegistry returns the registry seeded with the demo carrier
// list.
func DefaultStaticRegistry() *StaticRegistry {
	return NewStaticRegistry([]CarrierRecord{
		{MCNumber: "MC123456", LegalName: "ABC Trucking"},
		{MCNumber: "MC789012", LegalName: "XYZ Freight"},
		{MCNumber: "MC345678", LegalName: "Delta Logistics"},
	})
}

func (r *StaticRegistry) Lookup(_ context.Context, mcNumber string) (*CarrierRecord, error) {
	rec, ok := r.records[NormalizeMC(mcNumber)]
	if !ok {
		return nil, ErrCarrierNotFound
	}
	return &rec, nil
}
