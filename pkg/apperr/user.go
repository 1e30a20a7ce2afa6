package apperr

// UserError wraps a cause supplied from outside the application that fits no other kind.
type UserError struct {
	cause error
}

// NewUser wraps cause. A nil cause yields a generic "user error" message.
func NewUser(cause error) UserError {
	return UserError{cause: cause}
}

func (e UserError) Error() string { return messageOf(e.cause, "user error") }
func (e UserError) Cause() error  { return causeOr(e.cause, "user error") }
func (e UserError) Unwrap() error { return e.cause }
func (UserError) Kind() Kind      { return KindUser }
func (UserError) taxonomy()       {}
