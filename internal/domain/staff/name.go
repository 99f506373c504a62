package staff

import (
	"strings"
	"unicode/utf8"
)

const MaxNameLength = 100

// ValidateName trims name and checks it against the roster naming rules.
// Length is counted in characters, matching VARCHAR(100).
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}
