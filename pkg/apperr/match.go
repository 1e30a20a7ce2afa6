package apperr

import (
	"fmt"
	"reflect"
)

// Visitor handles every variant of the taxonomy.
//
// Adding a variant adds a method here, so every Visitor implementation stops
// compiling until it handles the new kind. Consumers that must be exhaustive
// (transport mapping, logging, retries) should implement Visitor instead of
// switching on Kind.
type Visitor[R any] interface {
	Generic(GenericError) R
	Unclassified(UnclassifiedError) R

	GenericValidation(GenericValidationError) R
	TextValidation(TextValidationError) R
	EmailValidation(EmailValidationError) R

	NonExistent(NonExistentError) R
	Unavailable(UnavailableError) R
	Forbidden(ForbiddenError) R
	ConstraintViolation(ConstraintViolationError) R
	NotAllowed(NotAllowedError) R
	NotFound(NotFoundError) R
	NotAcceptable(NotAcceptableError) R
	Invalid(InvalidError) R
	AlreadyExists(AlreadyExistsError) R
	NotExists(NotExistsError) R

	User(UserError) R
}

// Match dispatches err to the visitor method for its variant.
// Pointer variants are dereferenced. A struct declared elsewhere that embeds a
// variant is dispatched as that embedded variant; its own fields are not seen
// by the visitor. A nil err panics.
func Match[R any](err Err, v Visitor[R]) R {
	switch e := err.(type) {
	case GenericError:
		return v.Generic(e)
	case *GenericError:
		return v.Generic(*e)
	case UnclassifiedError:
		return v.Unclassified(e)
	case *UnclassifiedError:
		return v.Unclassified(*e)
	case GenericValidationError:
		return v.GenericValidation(e)
	case *GenericValidationError:
		return v.GenericValidation(*e)
	case TextValidationError:
		return v.TextValidation(e)
	case *TextValidationError:
		return v.TextValidation(*e)
	case EmailValidationError:
		return v.EmailValidation(e)
	case *EmailValidationError:
		return v.EmailValidation(*e)
	case NonExistentError:
		return v.NonExistent(e)
	case *NonExistentError:
		return v.NonExistent(*e)
	case UnavailableError:
		return v.Unavailable(e)
	case *UnavailableError:
		return v.Unavailable(*e)
	case ForbiddenError:
		return v.Forbidden(e)
	case *ForbiddenError:
		return v.Forbidden(*e)
	case ConstraintViolationError:
		return v.ConstraintViolation(e)
	case *ConstraintViolationError:
		return v.ConstraintViolation(*e)
	case NotAllowedError:
		return v.NotAllowed(e)
	case *NotAllowedError:
		return v.NotAllowed(*e)
	case NotFoundError:
		return v.NotFound(e)
	case *NotFoundError:
		return v.NotFound(*e)
	case NotAcceptableError:
		return v.NotAcceptable(e)
	case *NotAcceptableError:
		return v.NotAcceptable(*e)
	case InvalidError:
		return v.Invalid(e)
	case *InvalidError:
		return v.Invalid(*e)
	case AlreadyExistsError:
		return v.AlreadyExists(e)
	case *AlreadyExistsError:
		return v.AlreadyExists(*e)
	case NotExistsError:
		return v.NotExists(e)
	case *NotExistsError:
		return v.NotExists(*e)
	case UserError:
		return v.User(e)
	case *UserError:
		return v.User(*e)
	}
	if inner, ok := embeddedMember(err); ok {
		return Match(inner, v)
	}
	// Unreachable: Err is sealed to the types above and their embedders.
	panic(fmt.Sprintf("apperr: unhandled taxonomy member %T", err))
}

// embeddedMember returns the variant embedded in err's struct, if any.
// Only an embedded variant can supply the unexported marker method of Err.
func embeddedMember(err Err) (Err, bool) {
	rv := reflect.ValueOf(err)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	rt := rv.Type()
	for i := range rt.NumField() {
		f := rt.Field(i)
		if !f.Anonymous || !f.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if fv.Kind() == reflect.Pointer && fv.IsNil() {
			continue
		}
		if inner, ok := fv.Interface().(Err); ok {
			return inner, true
		}
	}
	return nil, false
}
