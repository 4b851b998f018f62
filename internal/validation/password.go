package validation

import "strings"

const specialChars = "!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~"

// HasSpecialChar reports whether the string contains at least one special
// character.
func HasSpecialChar(s string) bool {
	return strings.ContainsAny(s, specialChars)
}

// ValidPassword enforces the minimum password policy.
func ValidPassword(s string) bool {
	return len(s) >= 8 && HasSpecialChar(s)
}
