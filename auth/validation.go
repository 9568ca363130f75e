package auth

import (
	"strings"
	"unicode"
)

// Validator holds the client-side credential checks run before a request
// leaves the process. The server re-validates everything; these only
// exist to fail fast with a local message.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCredentials checks the login form fields.
func (v *Validator) ValidateCredentials(email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return ErrInvalidEmail
	}
	if password == "" {
		return ErrMissingPassword
	}
	return nil
}

// ValidatePasswordStrength enforces the signup rule: at least 8
// characters containing a letter, a digit and a symbol.
func (v *Validator) ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < 8 {
		return ErrWeakPassword
	}

	var hasLetter, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if !hasLetter || !hasDigit || !hasSymbol {
		return ErrWeakPassword
	}
	return nil
}
