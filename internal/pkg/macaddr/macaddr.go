// Package macaddr canonicalizes hardware addresses so that values reported by
// different operating systems and tools compare equal.
package macaddr

import (
	"net"
	"strings"
)

const hexDigits = "0123456789abcdef"

// Normalize returns the canonical lowercase colon-separated form of a MAC
// address ("aa:bb:cc:dd:ee:ff"). It never fails: input that cannot be read as
// a 48-bit address is reduced to its lowercase hex digits.
//
// Accepted shapes include "AA-BB-CC-DD-EE-FF", "aabb.ccdd.eeff",
// "AABBCCDDEEFF" and the zero-stripped groups printed by macOS ("0:1a:2:..").
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	if hw, err := net.ParseMAC(s); err == nil && len(hw) == 6 {
		return hw.String()
	}

	groups := strings.FieldsFunc(s, isDelimiter)
	if len(groups) == 6 && allHex(groups, 2) {
		for i, g := range groups {
			if len(g) == 1 {
				groups[i] = "0" + g
			}
		}
		return strings.Join(groups, ":")
	}

	digits := keepHex(s)
	if len(digits) == 12 {
		return format(digits)
	}
	return digits
}

// Equal reports whether two raw MAC strings name the same address.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// IsValid reports whether raw normalizes to a full 48-bit address.
func IsValid(raw string) bool {
	n := Normalize(raw)
	return len(n) == 17 && strings.Count(n, ":") == 5
}

func isDelimiter(r rune) bool {
	switch r {
	case ':', '-', '.', ' ', '\t':
		return true
	}
	return false
}

func allHex(groups []string, maxLen int) bool {
	for _, g := range groups {
		if len(g) == 0 || len(g) > maxLen || len(keepHex(g)) != len(g) {
			return false
		}
	}
	return true
}

func keepHex(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(hexDigits, s[i]) >= 0 {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func format(digits string) string {
	var b strings.Builder
	b.Grow(17)
	for i := 0; i < 12; i += 2 {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(digits[i : i+2])
	}
	return b.String()
}
