// internal/loads/normalizer.go
package loads

import "strings"

// NormalizeReference produces the canonical lookup key for a load reference.
// The "REF" prefix is stripped case-insensitively, then leading zeros are
// removed from the remainder. A remainder of all zeros collapses to "0" so the
// key is never empty ("REF0" -> "0"). Characters other than the prefix and
// leading zeros pass through untouched.
func NormalizeReference(reference string) string {
	ref := strings.TrimSpace(reference)

	if len(ref) >= 3 && strings.EqualFold(ref[:3], "REF") {
		ref = ref[3:]
	}

	trimmed := strings.TrimLeft(ref, "0")
	if trimmed == "" && ref != "" {
		return "0"
	}
	return trimmed
}
