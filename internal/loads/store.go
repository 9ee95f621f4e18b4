// internal/loads/store.go
package loads

import (
	"fmt"

	apierrors "carrier-sales-api/internal/common/errors"
)

// Store is the read-only accessor for the load dataset. Handlers depend on
// this interface rather than on ambient global state so lookup stays
// independently testable.
type Store interface {
	// Lookup resolves a raw reference (any case, with or without prefix or
	// leading zeros) to its load, or returns a LOAD_NOT_FOUND error.
	Lookup(reference string) (*Load, error)
	// All returns every load in the dataset.
	All() []Load
}

// MemoryStore indexes loads by canonical reference. Built once at startup;
// concurrent reads need no locking because the map is never written again.
type MemoryStore struct {
	byReference map[string]Load
	ordered     []Load
}

// NewMemoryStore indexes the given records. Two records normalizing to the
// same key violate the dataset invariant and fail construction.
func NewMemoryStore(records []Load) (*MemoryStore, error) {
	s := &MemoryStore{
		byReference: make(map[string]Load, len(records)),
		ordered:     make([]Load, 0, len(records)),
	}

	for _, rec := range records {
		key := NormalizeReference(rec.ReferenceNumber)
		if key == "" {
			return nil, fmt.Errorf("load with empty reference number")
		}
		if _, exists := s.byReference[key]; exists {
			return nil, fmt.Errorf("duplicate load reference %q (canonical %q)", rec.ReferenceNumber, key)
		}
		s.byReference[key] = rec
		s.ordered = append(s.ordered, rec)
	}

	return s, nil
}

func (s *MemoryStore) Lookup(reference string) (*Load, error) {
	key := NormalizeReference(reference)
	load, ok := s.byReference[key]
	if !ok {
		return nil, apierrors.NewLoadNotFoundError(reference)
	}
	return &load, nil
}

func (s *MemoryStore) All() []Load {
	out := make([]Load, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Len returns the number of indexed loads.
func (s *MemoryStore) Len() int {
	return len(s.byReference)
}
