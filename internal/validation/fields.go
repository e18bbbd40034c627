// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// emailRegex matches the loose "something@something.something" shape the
// app has always accepted. No DNS/MX verification.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// passwordSpecials is the fixed punctuation set counted as special characters.
const passwordSpecials = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// PasswordMinLength is the minimum accepted password length.
const PasswordMinLength = 6

// IsEmailValid reports whether s looks like an email address.
func IsEmailValid(s string) bool {
	return emailRegex.MatchString(s)
}

// PasswordChecklist itemizes which password policy conditions pass, so a
// signup form can render a live checklist instead of a single boolean.
type PasswordChecklist struct {
	MinLength bool `json:"min_length"`
	Uppercase bool `json:"uppercase"`
	Digit     bool `json:"digit"`
	Special   bool `json:"special"`
}

// OK reports whether every condition passed.
func (c PasswordChecklist) OK() bool {
	return c.MinLength && c.Uppercase && c.Digit && c.Special
}

// CheckPassword evaluates each password policy condition independently.
func CheckPassword(password string) PasswordChecklist {
	checklist := PasswordChecklist{
		MinLength: len(password) >= PasswordMinLength,
	}
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			checklist.Uppercase = true
		case r >= '0' && r <= '9':
			checklist.Digit = true
		case strings.ContainsRune(passwordSpecials, r):
			checklist.Special = true
		}
	}
	return checklist
}

// IsPasswordValid reports whether the password meets the full policy.
func IsPasswordValid(password string) bool {
	return CheckPassword(password).OK()
}

// ValidatePassword returns a descriptive error for the first failing
// password policy condition, for API error messages.
func ValidatePassword(password string) error {
	c := CheckPassword(password)
	switch {
	case !c.MinLength:
		return fmt.Errorf("password must be at least %d characters long", PasswordMinLength)
	case !c.Uppercase:
		return fmt.Errorf("password must contain at least one uppercase letter")
	case !c.Digit:
		return fmt.Errorf("password must contain at least one digit")
	case !c.Special:
		return fmt.Errorf("password must contain at least one special character")
	}
	return nil
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateUsername checks if a username meets requirements
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}

	if len(username) > 30 {
		return fmt.Errorf("username must not exceed 30 characters")
	}

	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, underscores, and hyphens")
	}

	if username[0] == '_' || username[0] == '-' || username[len(username)-1] == '_' || username[len(username)-1] == '-' {
		return fmt.Errorf("username cannot start or end with underscore or hyphen")
	}

	return nil
}

// ValidateEmail returns a descriptive error for malformed emails.
func ValidateEmail(email string) error {
	if !IsEmailValid(email) {
		return fmt.Errorf("invalid email format")
	}
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	return nil
}
