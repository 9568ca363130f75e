package profile

import (
	"strings"
	"unicode"
)

// trimmedName returns name trimmed, or "" when it is too short to be a
// usable display name.
func trimmedName(name string) string {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < minNameLength {
		return ""
	}
	return name
}

// SynthesizeName derives a display name from the local part of an email
// address: fragments split on "." are title-cased and joined with spaces,
// so "joao.silva@example.com" becomes "Joao Silva".
func SynthesizeName(email string) string {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}

	fragments := strings.Split(local, ".")
	for i, fragment := range fragments {
		fragments[i] = titleCase(fragment)
	}
	return strings.Join(fragments, " ")
}

func titleCase(fragment string) string {
	runes := []rune(fragment)
	if len(runes) == 0 {
		return fragment
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
