package apperr

import (
	"errors"
	"fmt"
	"reflect"
)

// MsgUnauthorized is the stock message for forbidden resource access.
const MsgUnauthorized = "You're not authorized to access this resource."

// notFoundMessage is the canonical shape shared by every id-based not-found constructor.
func notFoundMessage(name string, id int64) string {
	return fmt.Sprintf("Could not find %s with id: %d", name, id)
}

// Forbidden builds a forbidden error with the given message.
func Forbidden(message string) ForbiddenError {
	return ForbiddenError{cause: errors.New(message)}
}

// NotAcceptable builds a not-acceptable error.
func NotAcceptable(message string) NotAcceptableError {
	return NotAcceptableError{cause: errors.New(message)}
}

// NotFound builds a not-found error from a raw message.
func NotFound(message string) NotFoundError {
	return NotFoundError{cause: errors.New(message)}
}

// NotFoundEntity builds a not-found error for entity with the given id.
//
//	apperr.NotFoundEntity("Order", 42) // Could not find Order with id: 42
func NotFoundEntity(entity string, id int64) NotFoundError {
	return NotFound(notFoundMessage(entity, id))
}

// NotFoundType builds a not-found error named after t's simple type name.
// Pointer, slice and array types are unwrapped to their element type first.
func NotFoundType(t reflect.Type, id int64) NotFoundError {
	return NotFoundEntity(TypeName(t), id)
}

// NotFoundOf builds a not-found error named after T.
func NotFoundOf[T any](id int64) NotFoundError {
	return NotFoundType(reflect.TypeFor[T](), id)
}

// TypeName returns the simple display name of t without package qualifier.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "Item"
	}
	for {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array:
			t = t.Elem()
			continue
		}
		break
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// NotExists builds a not-exists error. headers may be nil.
func NotExists(message string, headers Headers) NotExistsError {
	return NotExistsError{cause: errors.New(message), headers: headers.Clone()}
}

// AlreadyExists builds an already-exists error. headers may be nil.
func AlreadyExists(message string, headers Headers) AlreadyExistsError {
	return AlreadyExistsError{cause: errors.New(message), headers: headers.Clone()}
}

// Invalid builds an invalid-input error.
func Invalid(message string) InvalidError {
	return InvalidError{cause: errors.New(message)}
}

// WTF builds an unclassified runtime error. It is a developer-facing
// placeholder and must not be shown to end users.
func WTF(message string) UnclassifiedError {
	return UnclassifiedError{cause: errors.New(message)}
}

// Exists builds an already-exists error without headers.
func Exists(message string) AlreadyExistsError {
	return AlreadyExists(message, nil)
}
