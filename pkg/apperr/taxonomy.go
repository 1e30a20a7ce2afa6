package apperr

import "errors"

// Err is a member of the closed error taxonomy.
//
// The interface is sealed: only types declared in this package implement it,
// so a type switch or a Visitor over Err covers every possible failure.
type Err interface {
	error
	// Cause returns the root failure. It is never nil.
	Cause() error
	// Kind returns the variant tag.
	Kind() Kind
	taxonomy()
}

// ValidationErr is a member of the validation branch.
// All validation variants share the cause plus instruction shape and differ only by kind.
type ValidationErr interface {
	Err
	// Instruction returns remediation text meant for direct display.
	Instruction() string
	validation()
}

// As extracts a taxonomy member from err or anything it wraps.
func As(err error) (Err, bool) {
	if err == nil {
		return nil, false
	}
	var e Err
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// AsValidation extracts a validation-branch member from err or anything it wraps.
func AsValidation(err error) (ValidationErr, bool) {
	if err == nil {
		return nil, false
	}
	var e ValidationErr
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of the first taxonomy member in err's chain,
// or an empty Kind when err is nil or foreign.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind()
	}
	return ""
}

// Is reports whether err's chain contains a taxonomy member of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// causeOr returns cause, or a new error with fallback text when cause is nil.
func causeOr(cause error, fallback string) error {
	if cause != nil {
		return cause
	}
	return errors.New(fallback)
}

func messageOf(cause error, fallback string) string {
	if cause != nil {
		return cause.Error()
	}
	return fallback
}
