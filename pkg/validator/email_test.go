package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/commonkit/pkg/apperr"
	"github.com/dmitrymomot/commonkit/pkg/validator"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"user@example.com",
		"first.last@sub.example.org",
		"a-b_c@my-host.io",
	}
	invalid := []string{
		"not-an-email",
		"",
		"user@example",
		"user@example.c",
		"user name@example.com",
		"@example.com",
		"user@@example.com",
	}

	v := validator.Email()
	for _, s := range allScopes {
		for _, addr := range valid {
			got, err := v.Apply(addr, s)
			assert.Nil(t, err, "%q in scope %s", addr, s)
			assert.Equal(t, addr, got)
		}
		for _, addr := range invalid {
			got, err := v.Apply(addr, s)
			require.NotNil(t, err, "%q in scope %s", addr, s)
			assert.Equal(t, addr, got)
			assert.Equal(t, apperr.KindEmailValidation, err.Kind())
			assert.Equal(t, "Invalid email address", err.Error())
			assert.Equal(t, "Please input a valid email address", err.Instruction())
		}
	}
}
