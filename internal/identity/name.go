package identity

import "strings"

// SplitFullName derives first and last name from a full name by splitting on
// the first space: the first token becomes the first name, the remainder the
// last name. The last name may be empty. This is the single splitting rule
// for the whole system; registration and login-time repair both use it.
func SplitFullName(fullName string) (first, last string) {
	trimmed := strings.TrimSpace(fullName)
	if trimmed == "" {
		return "", ""
	}
	parts := strings.SplitN(trimmed, " ", 2)
	first = parts[0]
	if len(parts) == 2 {
		last = strings.TrimSpace(parts[1])
	}
	return first, last
}
