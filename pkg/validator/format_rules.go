package validator

import (
	"errors"
	"net/url"
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"

	"github.com/dmitrymomot/commonkit/pkg/apperr"
)

const (
	usernameMinLen = 5
	usernameMaxLen = 20
)

var (
	errInvalidUsername = errors.New("Invalid username")
	errInvalidURL      = errors.New("Invalid URL")
	errInvalidPhone    = errors.New("Invalid phone number")
)

// Username accepts 5 to 20 ASCII letters, digits, '.', '_' or '-', starting and
// ending with a letter or digit and never containing two separators in a row.
func Username() Validator[string] {
	return textRule{
		check:       isValidUsername,
		message:     errInvalidUsername.Error(),
		instruction: "Please use 5 to 20 letters or digits, optionally separated by single '.', '_' or '-'",
	}
}

func isValidUsername(s string) bool {
	if len(s) < usernameMinLen || len(s) > usernameMaxLen {
		return false
	}
	prevSep := true // forbids a leading separator
	for _, r := range s {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			prevSep = false
		case r == '.' || r == '_' || r == '-':
			if prevSep {
				return false
			}
			prevSep = true
		default:
			return false
		}
	}
	return !prevSep
}

// URL accepts absolute URLs with a scheme and a host.
func URL() Validator[string] {
	return Func[string](func(value string, _ Scope) (string, apperr.ValidationErr) {
		u, err := url.Parse(strings.TrimSpace(value))
		if err == nil && u.Scheme != "" && u.Host != "" {
			return value, nil
		}
		return value, apperr.NewGenericValidation(errInvalidURL, "Please input a valid URL, for example https://example.com")
	})
}

// Phone accepts numbers that libphonenumber considers valid. region is the
// ISO 3166-1 alpha-2 code used for numbers without an international prefix.
func Phone(region string) Validator[string] {
	region = strings.ToUpper(region)
	return Func[string](func(value string, _ Scope) (string, apperr.ValidationErr) {
		num, err := phonenumbers.Parse(value, region)
		if err == nil && phonenumbers.IsValidNumber(num) {
			return value, nil
		}
		return value, apperr.NewGenericValidation(errInvalidPhone, "Please input a valid phone number")
	})
}
