package validator

import (
	"fmt"
	"strings"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s is required", field),
		},
	}
}

// TrimmedMinLen validates that a string has at least min characters after
// trimming surrounding whitespace.
func TrimmedMinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(strings.TrimSpace(value)) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at least %d characters long", field, min),
		},
	}
}

// MaxLenString validates that a string does not exceed max characters.
// The raw (untrimmed) length is measured.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at most %d characters long", field, max),
		},
	}
}
