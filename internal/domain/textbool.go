package domain

// TextBool renders b as the exact lowercase tokens "true" or "false".
// The provider reads nonStop as text, not as a JSON boolean.
func TextBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
