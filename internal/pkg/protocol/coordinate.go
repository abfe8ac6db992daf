package protocol

// ValidateCoordinate reports whether s names a cell on the 9x9 grid: exactly
// two characters, a column letter A..I followed by a row digit 1..9.
// Lower-case input must be upper-cased by the caller before validation.
func ValidateCoordinate(s string) bool {
	if len(s) != 2 {
		return false
	}
	return s[0] >= 'A' && s[0] <= 'I' && s[1] >= '1' && s[1] <= '9'
}
