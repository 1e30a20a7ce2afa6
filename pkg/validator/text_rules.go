package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/commonkit/pkg/apperr"
)

var specialCharRegex = regexp.MustCompile(`(?i)[^a-z0-9 ]`)

// textRule fails with TextValidationError. Like Email it is never scope gated;
// wrap it with Scoped to restrict it.
type textRule struct {
	check       func(string) bool
	message     string
	instruction string
}

func (r textRule) Apply(value string, _ Scope) (string, apperr.ValidationErr) {
	if r.check(value) {
		return value, nil
	}
	return value, apperr.NewTextValidation(errors.New(r.message), r.instruction)
}

// NotBlank rejects strings that are empty after trimming whitespace.
func NotBlank(field string) Validator[string] {
	return textRule{
		check:       func(s string) bool { return strings.TrimSpace(s) != "" },
		message:     field + " must not be blank",
		instruction: fmt.Sprintf("Please fill in the %s", field),
	}
}

// MinLength rejects strings shorter than min characters.
func MinLength(field string, min int) Validator[string] {
	return textRule{
		check:       func(s string) bool { return utf8.RuneCountInString(s) >= min },
		message:     fmt.Sprintf("%s must be at least %d characters long", field, min),
		instruction: fmt.Sprintf("Please use at least %d characters for the %s", min, field),
	}
}

// MaxLength rejects strings longer than max characters.
func MaxLength(field string, max int) Validator[string] {
	return textRule{
		check:       func(s string) bool { return utf8.RuneCountInString(s) <= max },
		message:     fmt.Sprintf("%s must be at most %d characters long", field, max),
		instruction: fmt.Sprintf("Please use at most %d characters for the %s", max, field),
	}
}

// NoSpecialCharacters only allows ASCII letters, digits and spaces.
func NoSpecialCharacters(field string) Validator[string] {
	return textRule{
		check:       func(s string) bool { return !specialCharRegex.MatchString(s) },
		message:     field + " contains special characters",
		instruction: fmt.Sprintf("Please use only letters, digits and spaces for the %s", field),
	}
}

// Matches rejects strings that do not match pattern. description names the
// expected shape in the failure message. It panics when pattern is nil.
func Matches(field string, pattern *regexp.Regexp, description string) Validator[string] {
	if pattern == nil {
		panic("validator: nil pattern")
	}
	return textRule{
		check:       pattern.MatchString,
		message:     fmt.Sprintf("%s must match %s", field, description),
		instruction: fmt.Sprintf("Please enter the %s as %s", field, description),
	}
}
