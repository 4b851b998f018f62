package validation

// PositiveAmount reports whether the amount is a usable positive value.
func PositiveAmount(amount float64) bool {
	return amount > 0
}

// ValidRole reports whether the role is one of the known identity roles.
func ValidRole(role string) bool {
	switch role {
	case "consumer", "shipper", "business", "verifier":
		return true
	}
	return false
}
