// Package validation contains the credential format rules applied at
// registration. All checks are pure functions with no I/O.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernamePattern = regexp.MustCompile(`^[a-z0-9._\-]+$`)
)

// reservedUsernames can never be registered.
var reservedUsernames = map[string]bool{
	"admin":         true,
	"administrator": true,
	"root":          true,
	"support":       true,
	"system":        true,
	"puresoul":      true,
}

const (
	usernameMinLen = 3
	usernameMaxLen = 20
	passwordMinLen = 8
)

// ValidateUsername returns the list of rule violations for a username.
// An empty slice means the username is acceptable. The check is
// case-insensitive; usernames are stored lowercased.
func ValidateUsername(username string) []string {
	u := strings.ToLower(strings.TrimSpace(username))
	if u == "" {
		return []string{"Username is required."}
	}

	var errs []string
	if len(u) < usernameMinLen || len(u) > usernameMaxLen {
		errs = append(errs, "Username must be between 3 and 20 characters.")
	}
	if !usernamePattern.MatchString(u) {
		errs = append(errs, "Username may only contain letters, numbers, dots, hyphens and underscores.")
	}
	if reservedUsernames[u] {
		errs = append(errs, "This username is reserved.")
	}
	return errs
}

// ValidateEmail reports whether the address conforms to standard email syntax.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// ValidatePassword returns the list of rule violations for a password:
// minimum length plus at least one upper-case letter, lower-case letter,
// digit and symbol.
func ValidatePassword(password string) []string {
	var errs []string
	if len(password) < passwordMinLen {
		errs = append(errs, "Password must be at least 8 characters.")
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	if !hasUpper {
		errs = append(errs, "Password must contain an uppercase letter.")
	}
	if !hasLower {
		errs = append(errs, "Password must contain a lowercase letter.")
	}
	if !hasDigit {
		errs = append(errs, "Password must contain a number.")
	}
	if !hasSymbol {
		errs = append(errs, "Password must contain a special character.")
	}
	return errs
}
