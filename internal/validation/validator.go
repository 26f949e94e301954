package validation

import (
	"regexp"
	"strings"
	"time"
)

// DeadlineFormat is the calendar-date input format for task deadlines.
const DeadlineFormat = "2006-01-02"

// Validator provides common validation utilities
type Validator struct {
	emailRegex *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		// Conservative local@domain.tld shape. This is a UX convenience
		// only; the server remains the authority on what it accepts.
		emailRegex: regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`),
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidEmail checks if a string looks like an email address
func (v *Validator) IsValidEmail(email string) bool {
	return v.emailRegex.MatchString(email)
}

// ParseDeadline parses a calendar-date string at day precision. Empty input
// is a valid absent deadline.
func (v *Validator) ParseDeadline(s string) (*time.Time, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, true
	}
	t, err := time.Parse(DeadlineFormat, trimmed)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
