package validator

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/commonkit/pkg/apperr"
)

// Validator checks a value for an operation scope.
// On success it returns the value unchanged; validators gate values, they never transform them.
type Validator[T any] interface {
	Apply(value T, scope Scope) (T, apperr.ValidationErr)
}

// Func adapts a plain function to the Validator interface.
type Func[T any] func(value T, scope Scope) (T, apperr.ValidationErr)

func (f Func[T]) Apply(value T, scope Scope) (T, apperr.ValidationErr) {
	return f(value, scope)
}

// Option configures a Rule.
type Option func(*ruleConfig)

type ruleConfig struct {
	message     string
	instruction string
	cause       error
}

// WithMessage sets the failure message used when no cause is configured.
func WithMessage(message string) Option {
	return func(c *ruleConfig) { c.message = message }
}

// WithInstruction sets the remediation text attached to failures.
func WithInstruction(instruction string) Option {
	return func(c *ruleConfig) { c.instruction = instruction }
}

// WithCause sets a pre-built cause. It takes precedence over the message.
func WithCause(cause error) Option {
	return func(c *ruleConfig) { c.cause = cause }
}

// Rule is a scope-gated predicate. It is immutable and safe for concurrent use.
type Rule[T any] struct {
	scopes      Scopes
	check       func(T) bool
	message     string
	instruction string
	cause       error
}

// New builds a rule active in scopes. Outside those scopes the rule passes
// every value through. Failures are GenericValidationError values whose cause
// is the configured cause, else the message, else "<value> is invalid".
//
// New panics when check is nil so misconfigured rules fail at startup.
func New[T any](scopes Scopes, check func(T) bool, opts ...Option) Rule[T] {
	if check == nil {
		panic("validator: nil check function")
	}
	var cfg ruleConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return Rule[T]{
		scopes:      scopes,
		check:       check,
		message:     cfg.message,
		instruction: cfg.instruction,
		cause:       cfg.cause,
	}
}

// Apply implements Validator.
func (r Rule[T]) Apply(value T, scope Scope) (T, apperr.ValidationErr) {
	if !r.scopes.Has(scope) {
		return value, nil
	}
	if r.check(value) {
		return value, nil
	}
	return value, apperr.NewGenericValidation(r.failureCause(value), r.instruction)
}

// Scopes returns the scopes the rule is active in.
func (r Rule[T]) Scopes() Scopes {
	return r.scopes
}

// Instruction returns the remediation text attached to failures.
func (r Rule[T]) Instruction() string {
	return r.instruction
}

func (r Rule[T]) failureCause(value T) error {
	switch {
	case r.cause != nil:
		return r.cause
	case r.message != "":
		return errors.New(r.message)
	default:
		return fmt.Errorf("%v is invalid", value)
	}
}

// Scoped gates v so it only runs for the given scopes.
func Scoped[T any](scopes Scopes, v Validator[T]) Validator[T] {
	return Func[T](func(value T, scope Scope) (T, apperr.ValidationErr) {
		if v == nil || !scopes.Has(scope) {
			return value, nil
		}
		return v.Apply(value, scope)
	})
}
