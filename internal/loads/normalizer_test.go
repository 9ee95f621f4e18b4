// internal/loads/normalizer_test.go
package loads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeReference(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "uppercase prefix with leading zeros", input: "REF09460", expected: "9460"},
		{name: "lowercase prefix", input: "ref9460", expected: "9460"},
		{name: "mixed case prefix", input: "Ref09460", expected: "9460"},
		{name: "bare digits with leading zeros", input: "0009460", expected: "9460"},
		{name: "bare digits", input: "9460", expected: "9460"},
		{name: "all zeros collapse to single zero", input: "REF0", expected: "0"},
		{name: "zeros without prefix", input: "000", expected: "0"},
		{name: "prefix only", input: "REF", expected: ""},
		{name: "empty", input: "", expected: ""},
		{name: "surrounding whitespace", input: "  REF09460  ", expected: "9460"},
		{name: "non-digits pass through", input: "REF00A12", expected: "A12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeReference(tt.input))
		})
	}
}

func TestNormalizeReference_Equivalence(t *testing.T) {
	// The three spellings of the same reference must share one canonical key.
	a := NormalizeReference("REF09460")
	b := NormalizeReference("ref9460")
	c := NormalizeReference("0009460")

	assert.Equal(t, a, b)
	assert.Equal(t, b, c)
}
