// Package validate wraps the external input validators treated as
// collaborators by the feature usecases.
package validate

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// PhoneValidator validates phone numbers against the international
// numbering plan via libphonenumber. Numbers must be submitted in
// international format (leading +) since no default region is assumed.
type PhoneValidator struct{}

// NewPhoneValidator creates a new PhoneValidator.
func NewPhoneValidator() PhoneValidator {
	return PhoneValidator{}
}

// Validate parses and checks the number. A nil return means the number is
// valid under its country's numbering plan.
func (PhoneValidator) Validate(number string) error {
	parsed, err := phonenumbers.Parse(number, "")
	if err != nil {
		return fmt.Errorf("please provide a valid phone number: %v", err)
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return fmt.Errorf("please provide a valid phone number")
	}
	return nil
}
