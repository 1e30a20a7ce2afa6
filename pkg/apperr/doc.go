// Package apperr defines the closed taxonomy of application failures and the
// constructors business logic uses to report them.
//
// Every failure is exactly one of the variant types declared here. The Err
// interface is sealed with an unexported method, so no other package can add a
// variant. Variants are grouped into four branches:
//
//   - generic: GenericError (fixed placeholder) and UnclassifiedError (see WTF).
//     Both are developer-facing and must not be rendered to end users.
//   - validation: GenericValidationError, TextValidationError and
//     EmailValidationError. They share a cause and an Instruction and differ
//     only by kind, so UIs can target field-level feedback.
//   - operation: NonExistentError, UnavailableError, ForbiddenError,
//     ConstraintViolationError, NotAllowedError, NotFoundError,
//     NotAcceptableError, InvalidError, AlreadyExistsError and NotExistsError.
//   - user: UserError wraps an external cause.
//
// # Exhaustive handling
//
// Consumers that must handle every kind implement Visitor and call Match.
// Visitor has one method per variant, so adding a variant breaks the build of
// every consumer until it is handled:
//
//	status := apperr.Match[int](e, statusMapper{})
//
// Switching on Kind is fine for ad-hoc checks but is not checked by the compiler.
//
// # Construction
//
// The message-based constructors mirror the well-known failure shapes:
//
//	apperr.NotFoundEntity("Order", 42)    // Could not find Order with id: 42
//	apperr.NotFoundOf[Person](7)         // Could not find Person with id: 7
//	apperr.Forbidden(apperr.MsgUnauthorized)
//	apperr.NotExists("gone", apperr.NewHeaders(map[string][]string{"Link": {"</v2>"}}))
//
// AlreadyExists has its own kind. Earlier releases built a not-exists shape for
// it; callers matching on NotExists for conflicts must switch to AlreadyExists.
//
// # Error Handling
//
// Every variant implements error and Unwrap, so errors.As works on wrapped
// chains. As, AsValidation and KindOf are shortcuts for the common lookups.
// Nothing in this package logs or panics on the success path; errors are
// returned as values.
package apperr
