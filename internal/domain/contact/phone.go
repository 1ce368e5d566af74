package contact

import "strings"

const (
	// DefaultCountryCode is prepended to national numbers (Brazil).
	DefaultCountryCode = "55"
	// DefaultGatewaySuffix is the address suffix required by the messaging gateway.
	DefaultGatewaySuffix = "@c.us"

	minDigits = 10
)

// Normalizer validates raw phone strings and formats them into the address
// shape the messaging gateway expects.
type Normalizer struct {
	CountryCode   string
	GatewaySuffix string
}

// NewNormalizer returns a Normalizer, falling back to the defaults for any
// empty field.
func NewNormalizer(countryCode, gatewaySuffix string) Normalizer {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	if gatewaySuffix == "" {
		gatewaySuffix = DefaultGatewaySuffix
	}
	return Normalizer{CountryCode: countryCode, GatewaySuffix: gatewaySuffix}
}

// Normalize strips all non-digit characters, rejects inputs with fewer than
// ten digits, prepends the country code when missing and appends the gateway
// suffix. ok=false signals an unusable address; Normalize never panics.
// Applying Normalize to its own output yields the same address.
func (n Normalizer) Normalize(raw string) (string, bool) {
	suffixed := strings.HasSuffix(raw, n.GatewaySuffix)
	if suffixed {
		raw = strings.TrimSuffix(raw, n.GatewaySuffix)
	}

	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if len(digits) < minDigits {
		return "", false
	}
	if !strings.HasPrefix(digits, n.CountryCode) {
		digits = n.CountryCode + digits
	}
	return digits + n.GatewaySuffix, true
}
