package apperr

const defaultValidationMessage = "validation failed"

// GenericValidationError is a bad-input failure not tied to a more specific kind.
type GenericValidationError struct {
	cause       error
	instruction string
}

// NewGenericValidation builds a generic validation failure.
func NewGenericValidation(cause error, instruction string) GenericValidationError {
	return GenericValidationError{cause: cause, instruction: instruction}
}

func (e GenericValidationError) Error() string       { return messageOf(e.cause, defaultValidationMessage) }
func (e GenericValidationError) Cause() error        { return causeOr(e.cause, defaultValidationMessage) }
func (e GenericValidationError) Unwrap() error       { return e.cause }
func (e GenericValidationError) Instruction() string { return e.instruction }
func (GenericValidationError) Kind() Kind            { return KindGenericValidation }
func (GenericValidationError) taxonomy()             {}
func (GenericValidationError) validation()           {}

// TextValidationError reports free-text input that breaks a text rule (blank, length, charset).
type TextValidationError struct {
	cause       error
	instruction string
}

// NewTextValidation builds a text validation failure.
func NewTextValidation(cause error, instruction string) TextValidationError {
	return TextValidationError{cause: cause, instruction: instruction}
}

func (e TextValidationError) Error() string       { return messageOf(e.cause, defaultValidationMessage) }
func (e TextValidationError) Cause() error        { return causeOr(e.cause, defaultValidationMessage) }
func (e TextValidationError) Unwrap() error       { return e.cause }
func (e TextValidationError) Instruction() string { return e.instruction }
func (TextValidationError) Kind() Kind            { return KindTextValidation }
func (TextValidationError) taxonomy()             {}
func (TextValidationError) validation()           {}

// EmailValidationError reports a malformed email address.
type EmailValidationError struct {
	cause       error
	instruction string
}

// NewEmailValidation builds an email validation failure.
func NewEmailValidation(cause error, instruction string) EmailValidationError {
	return EmailValidationError{cause: cause, instruction: instruction}
}

func (e EmailValidationError) Error() string       { return messageOf(e.cause, defaultValidationMessage) }
func (e EmailValidationError) Cause() error        { return causeOr(e.cause, defaultValidationMessage) }
func (e EmailValidationError) Unwrap() error       { return e.cause }
func (e EmailValidationError) Instruction() string { return e.instruction }
func (EmailValidationError) Kind() Kind            { return KindEmailValidation }
func (EmailValidationError) taxonomy()             {}
func (EmailValidationError) validation()           {}
