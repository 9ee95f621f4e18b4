// internal/carriers/normalizer.go
package carriers

import "strings"

// NormalizeMC strips a case-insensitive "MC" prefix from a carrier identifier.
// Unlike load references, the digits are passed through as-is: registry keys
// are not re-padded or zero-stripped.
func NormalizeMC(mcNumber string) string {
	mc := strings.TrimSpace(mcNumber)

	if len(mc) >= 2 && strings.EqualFold(mc[:2], "MC") {
		mc = mc[2:]
	}

	return mc
}
