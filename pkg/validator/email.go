package validator

import (
	"errors"
	"regexp"

	"github.com/dmitrymomot/commonkit/pkg/apperr"
)

var emailRegex = regexp.MustCompile(`^[\w.\-]+@([\w\-]+\.)+[\w\-]{2,}$`)

var errInvalidEmail = errors.New("Invalid email address")

const emailInstruction = "Please input a valid email address"

// Email returns a validator for email-shaped strings. It runs in every scope
// and fails with EmailValidationError.
func Email() Validator[string] {
	return emailValidator{}
}

type emailValidator struct{}

func (emailValidator) Apply(value string, _ Scope) (string, apperr.ValidationErr) {
	if emailRegex.MatchString(value) {
		return value, nil
	}
	return value, apperr.NewEmailValidation(errInvalidEmail, emailInstruction)
}
