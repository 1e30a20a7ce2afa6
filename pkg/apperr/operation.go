package apperr

import (
	"errors"
	"fmt"
)

var (
	errUnavailable         = errors.New("Item not available.")
	errForbidden           = errors.New("You are not allowed to perform this action.")
	errConstraintViolation = errors.New("Couldn't perform the action due to unresolved constraints.")
)

// NonExistentError reports a failed lookup of an entity by identifier.
type NonExistentError struct {
	id int64
}

// NewNonExistent builds a lookup failure for id.
func NewNonExistent(id int64) NonExistentError {
	return NonExistentError{id: id}
}

// ID returns the identifier that was not found.
func (e NonExistentError) ID() int64     { return e.id }
func (e NonExistentError) Error() string { return fmt.Sprintf("Item not found with id %d", e.id) }
func (e NonExistentError) Cause() error  { return errors.New(e.Error()) }
func (NonExistentError) Kind() Kind      { return KindNonExistent }
func (NonExistentError) taxonomy()       {}

// UnavailableError reports an entity that exists but cannot be used right now.
type UnavailableError struct{}

func (UnavailableError) Error() string { return errUnavailable.Error() }
func (UnavailableError) Cause() error  { return errUnavailable }
func (UnavailableError) Unwrap() error { return errUnavailable }
func (UnavailableError) Kind() Kind    { return KindUnavailable }
func (UnavailableError) taxonomy()     {}

// ForbiddenError reports a caller without permission for the action.
// The zero value carries the default message.
type ForbiddenError struct {
	cause error
}

// NewForbidden builds a forbidden error around cause.
func NewForbidden(cause error) ForbiddenError {
	return ForbiddenError{cause: cause}
}

func (e ForbiddenError) Error() string { return e.Cause().Error() }
func (e ForbiddenError) Cause() error {
	if e.cause != nil {
		return e.cause
	}
	return errForbidden
}
func (e ForbiddenError) Unwrap() error { return e.Cause() }
func (ForbiddenError) Kind() Kind      { return KindForbidden }
func (ForbiddenError) taxonomy()       {}

// ConstraintViolationError reports a business invariant blocking the action.
type ConstraintViolationError struct{}

func (ConstraintViolationError) Error() string { return errConstraintViolation.Error() }
func (ConstraintViolationError) Cause() error  { return errConstraintViolation }
func (ConstraintViolationError) Unwrap() error { return errConstraintViolation }
func (ConstraintViolationError) Kind() Kind    { return KindConstraintViolation }
func (ConstraintViolationError) taxonomy()     {}

// NotAllowedError reports an operation that is categorically disallowed.
type NotAllowedError struct {
	instruction string
}

// NewNotAllowed builds a not-allowed error with an explanation.
func NewNotAllowed(instruction string) NotAllowedError {
	return NotAllowedError{instruction: instruction}
}

// Instruction returns the explanation given to the caller.
func (e NotAllowedError) Instruction() string { return e.instruction }
func (e NotAllowedError) Error() string       { return "Operation not allowed. " + e.instruction }
func (e NotAllowedError) Cause() error        { return errors.New(e.Error()) }
func (NotAllowedError) Kind() Kind            { return KindNotAllowed }
func (NotAllowedError) taxonomy()             {}

// NotFoundError reports a missing resource described by its cause message.
type NotFoundError struct {
	cause error
}

func (e NotFoundError) Error() string { return messageOf(e.cause, "not found") }
func (e NotFoundError) Cause() error  { return causeOr(e.cause, "not found") }
func (e NotFoundError) Unwrap() error { return e.cause }
func (NotFoundError) Kind() Kind      { return KindNotFound }
func (NotFoundError) taxonomy()       {}

// NotAcceptableError reports input the operation refuses to accept, such as a missing required value.
type NotAcceptableError struct {
	cause error
}

func (e NotAcceptableError) Error() string { return messageOf(e.cause, "not acceptable") }
func (e NotAcceptableError) Cause() error  { return causeOr(e.cause, "not acceptable") }
func (e NotAcceptableError) Unwrap() error { return e.cause }
func (NotAcceptableError) Kind() Kind      { return KindNotAcceptable }
func (NotAcceptableError) taxonomy()       {}

// InvalidError reports input rejected outside the validator pipeline.
type InvalidError struct {
	cause error
}

// NewInvalid wraps cause as an invalid-input error. errors.Is sees through it.
func NewInvalid(cause error) InvalidError {
	return InvalidError{cause: cause}
}

func (e InvalidError) Error() string { return messageOf(e.cause, "invalid") }
func (e InvalidError) Cause() error  { return causeOr(e.cause, "invalid") }
func (e InvalidError) Unwrap() error { return e.cause }
func (InvalidError) Kind() Kind      { return KindInvalid }
func (InvalidError) taxonomy()       {}

// AlreadyExistsError reports a conflicting resource. It may carry response headers.
type AlreadyExistsError struct {
	cause   error
	headers Headers
}

// Headers returns a copy of the attached headers. It is never nil.
func (e AlreadyExistsError) Headers() Headers { return e.headers.Clone() }
func (e AlreadyExistsError) Error() string    { return messageOf(e.cause, "already exists") }
func (e AlreadyExistsError) Cause() error     { return causeOr(e.cause, "already exists") }
func (e AlreadyExistsError) Unwrap() error    { return e.cause }
func (AlreadyExistsError) Kind() Kind         { return KindAlreadyExists }
func (AlreadyExistsError) taxonomy()          {}

// NotExistsError reports a resource that should exist but does not. It may carry response headers.
type NotExistsError struct {
	cause   error
	headers Headers
}

// Headers returns a copy of the attached headers. It is never nil.
func (e NotExistsError) Headers() Headers { return e.headers.Clone() }
func (e NotExistsError) Error() string    { return messageOf(e.cause, "does not exist") }
func (e NotExistsError) Cause() error     { return causeOr(e.cause, "does not exist") }
func (e NotExistsError) Unwrap() error    { return e.cause }
func (NotExistsError) Kind() Kind         { return KindNotExists }
func (NotExistsError) taxonomy()          {}
