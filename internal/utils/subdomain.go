package utils

// IsValidSubdomain reports whether s is a usable DNS label: 1-63
// characters of lowercase letters, digits and hyphens, with no leading
// or trailing hyphen.
func IsValidSubdomain(s string) bool {
	if len(s) < 1 || len(s) > 63 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
			if i == 0 || i == len(s)-1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
