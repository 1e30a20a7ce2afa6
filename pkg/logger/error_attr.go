package logger

import (
	"log/slog"
	"strings"

	"github.com/dmitrymomot/commonkit/pkg/apperr"
)

// Error renders err under the key "error". Taxonomy members become a group
// with kind, branch, message and any payload fields; other errors are logged
// as-is. If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	e, ok := apperr.As(err)
	if !ok {
		return slog.Any("error", err)
	}
	attrs := []slog.Attr{
		slog.String("kind", e.Kind().String()),
		slog.String("branch", string(e.Kind().Branch())),
		slog.String("message", err.Error()),
	}
	attrs = append(attrs, apperr.Match[[]slog.Attr](e, payloadAttrs{})...)
	return Group("error", attrs...)
}

// payloadAttrs renders the variant-specific fields of a taxonomy member.
type payloadAttrs struct{}

var _ apperr.Visitor[[]slog.Attr] = payloadAttrs{}

func instruction(s string) []slog.Attr {
	if s == "" {
		return nil
	}
	return []slog.Attr{slog.String("instruction", s)}
}

func headers(h apperr.Headers) []slog.Attr {
	if h.Len() == 0 {
		return nil
	}
	as := make([]slog.Attr, 0, h.Len())
	for _, name := range h.Names() {
		as = append(as, slog.String(name, strings.Join(h.Values(name), ",")))
	}
	return []slog.Attr{Group("headers", as...)}
}

func (payloadAttrs) Generic(apperr.GenericError) []slog.Attr {
	return []slog.Attr{slog.Bool("placeholder", true)}
}

func (payloadAttrs) Unclassified(apperr.UnclassifiedError) []slog.Attr {
	return []slog.Attr{slog.Bool("placeholder", true)}
}

func (payloadAttrs) GenericValidation(e apperr.GenericValidationError) []slog.Attr {
	return instruction(e.Instruction())
}

func (payloadAttrs) TextValidation(e apperr.TextValidationError) []slog.Attr {
	return instruction(e.Instruction())
}

func (payloadAttrs) EmailValidation(e apperr.EmailValidationError) []slog.Attr {
	return instruction(e.Instruction())
}

func (payloadAttrs) NonExistent(e apperr.NonExistentError) []slog.Attr {
	return []slog.Attr{slog.Int64("id", e.ID())}
}

func (payloadAttrs) Unavailable(apperr.UnavailableError) []slog.Attr { return nil }

func (payloadAttrs) Forbidden(apperr.ForbiddenError) []slog.Attr { return nil }

func (payloadAttrs) ConstraintViolation(apperr.ConstraintViolationError) []slog.Attr { return nil }

func (payloadAttrs) NotAllowed(e apperr.NotAllowedError) []slog.Attr {
	return instruction(e.Instruction())
}

func (payloadAttrs) NotFound(apperr.NotFoundError) []slog.Attr { return nil }

func (payloadAttrs) NotAcceptable(apperr.NotAcceptableError) []slog.Attr { return nil }

func (payloadAttrs) Invalid(apperr.InvalidError) []slog.Attr { return nil }

func (payloadAttrs) AlreadyExists(e apperr.AlreadyExistsError) []slog.Attr {
	return headers(e.Headers())
}

func (payloadAttrs) NotExists(e apperr.NotExistsError) []slog.Attr {
	return headers(e.Headers())
}

func (payloadAttrs) User(e apperr.UserError) []slog.Attr {
	return []slog.Attr{slog.String("cause", e.Cause().Error())}
}
