// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"time"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateUsername checks if a username meets requirements
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}

	if len(username) > 20 {
		return fmt.Errorf("username must not exceed 20 characters")
	}

	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, underscores, and hyphens")
	}

	if username[0] == '_' || username[0] == '-' || username[len(username)-1] == '_' || username[len(username)-1] == '-' {
		return fmt.Errorf("username cannot start or end with underscore or hyphen")
	}

	return nil
}

// ValidatePassword checks if a password meets security requirements
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	if len(password) > 72 {
		// bcrypt truncates input beyond 72 bytes
		return fmt.Errorf("password must not exceed 72 characters")
	}

	return nil
}

// ValidateName checks a profile name field (first or last name).
func ValidateName(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	if len(value) > 100 {
		return fmt.Errorf("%s must not exceed 100 characters", field)
	}
	return nil
}

// ParseDateOfBirth parses a date of birth given as "2006-01-02" or RFC 3339
// and rejects dates in the future.
func ParseDateOfBirth(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("dateOfBirth is required")
	}

	dob, err := time.Parse(time.DateOnly, value)
	if err != nil {
		dob, err = time.Parse(time.RFC3339, value)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("dateOfBirth must be a date in YYYY-MM-DD format")
	}

	if dob.After(time.Now()) {
		return time.Time{}, fmt.Errorf("dateOfBirth cannot be in the future")
	}

	return dob, nil
}
