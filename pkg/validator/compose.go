package validator

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/commonkit/pkg/apperr"
)

// All combines validators into one that stops at the first failure.
// Validators run in the given order; nil entries are skipped.
func All[T any](validators ...Validator[T]) Validator[T] {
	return chain[T](validators)
}

type chain[T any] []Validator[T]

func (c chain[T]) Apply(value T, scope Scope) (T, apperr.ValidationErr) {
	for _, v := range c {
		if v == nil {
			continue
		}
		if _, err := v.Apply(value, scope); err != nil {
			return value, err
		}
	}
	return value, nil
}

// Failures collects every validation failure for a value.
type Failures []apperr.ValidationErr

func (f Failures) Error() string {
	if len(f) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(f))
	for i, err := range f {
		parts[i] = err.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes each failure to errors.Is and errors.As.
func (f Failures) Unwrap() []error {
	errs := make([]error, len(f))
	for i, err := range f {
		errs[i] = err
	}
	return errs
}

// First returns the first failure or nil.
func (f Failures) First() apperr.ValidationErr {
	if len(f) == 0 {
		return nil
	}
	return f[0]
}

// Kinds returns the kind of each failure in order.
func (f Failures) Kinds() []apperr.Kind {
	kinds := make([]apperr.Kind, len(f))
	for i, err := range f {
		kinds[i] = err.Kind()
	}
	return kinds
}

// Has reports whether any failure is of the given kind.
func (f Failures) Has(kind apperr.Kind) bool {
	for _, err := range f {
		if err.Kind() == kind {
			return true
		}
	}
	return false
}

// Instructions returns the non-empty remediation texts in order.
func (f Failures) Instructions() []string {
	var out []string
	for _, err := range f {
		if s := err.Instruction(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Collect runs every validator against value and accumulates all failures.
// It returns nil when every validator passes, otherwise a Failures error.
func Collect[T any](value T, scope Scope, validators ...Validator[T]) error {
	var failures Failures
	for _, v := range validators {
		if v == nil {
			continue
		}
		if _, err := v.Apply(value, scope); err != nil {
			failures = append(failures, err)
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return failures
}

// ExtractFailures returns the Failures in err's chain, or nil.
func ExtractFailures(err error) Failures {
	if err == nil {
		return nil
	}
	var failures Failures
	if errors.As(err, &failures) {
		return failures
	}
	return nil
}
