package wire

import (
	"strings"

	"github.com/gosimple/slug"

	"github.com/agentbiz/onboard/engine/schema"
)

// NormalizePhone converts a phone number to the canonical
// +<country>-<area>-<exchange>-<line> shape using a North-American 10/11-digit
// heuristic. Input that matches neither shape keeps its digits and gains a
// leading + if it had none.
func NormalizePhone(phone string) string {
	if phone == "" {
		return ""
	}
	digits := stripNonDigits(phone)
	switch {
	case len(digits) == 10:
		return "+1-" + digits[0:3] + "-" + digits[3:6] + "-" + digits[6:10]
	case len(digits) == 11 && digits[0] == '1':
		return "+1-" + digits[1:4] + "-" + digits[4:7] + "-" + digits[7:11]
	default:
		// Not a NANP number; strip formatting and keep a single leading +.
		return "+" + digits
	}
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// Slugify derives the URL-safe identifier the registration service keys a
// business on: lowercase, hyphen-separated, truncated to the schema limit.
func Slugify(name string) string {
	s := slug.Make(name)
	maxLen := int(schema.LimitFor(schema.LimitSlugLength).Max)
	if len(s) > maxLen {
		s = strings.TrimRight(s[:maxLen], "-")
	}
	return s
}
