package apperr

import "errors"

var errGeneric = errors.New("Generic Error, usually used as a placeholder for error.")

// GenericError is a catch-all placeholder. Its cause is fixed.
// It is developer-facing and must never be rendered to end users verbatim.
type GenericError struct{}

func (GenericError) Error() string { return errGeneric.Error() }
func (GenericError) Cause() error  { return errGeneric }
func (GenericError) Unwrap() error { return errGeneric }
func (GenericError) Kind() Kind    { return KindGeneric }
func (GenericError) taxonomy()     {}

// UnclassifiedError is a runtime failure nobody has given a proper kind yet.
// Like GenericError, it is a developer-facing placeholder.
type UnclassifiedError struct {
	cause error
}

// NewUnclassified wraps cause as an unclassified failure.
func NewUnclassified(cause error) UnclassifiedError {
	return UnclassifiedError{cause: cause}
}

func (e UnclassifiedError) Error() string { return messageOf(e.cause, "unclassified error") }
func (e UnclassifiedError) Cause() error  { return causeOr(e.cause, "unclassified error") }
func (e UnclassifiedError) Unwrap() error { return e.cause }
func (UnclassifiedError) Kind() Kind      { return KindUnclassified }
func (UnclassifiedError) taxonomy()       {}
