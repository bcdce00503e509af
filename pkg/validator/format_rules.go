package validator

import (
	"fmt"
	"regexp"
)

// emailRegex accepts local@domain.tld shapes: non-space, non-@ characters
// around a single "@" with at least one "." in the domain part. It makes
// no attempt at full RFC 5322 compliance and applies no TLD length check.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// EmailAddress validates that a string looks like an email address.
func EmailAddress(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be a valid email address", field),
		},
	}
}
