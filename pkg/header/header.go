package header

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/commonkit/pkg/apperr"
)

// Flatten converts a header set into transport headers. Each name carries a
// single value holding its members joined by ",". Names with no members are
// kept with an empty value.
func Flatten(h apperr.Headers) http.Header {
	out := make(http.Header, h.Len())
	for _, name := range h.Names() {
		out.Set(name, strings.Join(h.Values(name), ","))
	}
	return out
}

// FromError extracts headers carried by err. Only already-exists and
// not-exists errors carry headers; anything else yields an empty header map.
func FromError(err error) http.Header {
	e, ok := apperr.As(err)
	if !ok {
		return http.Header{}
	}
	switch v := e.(type) {
	case apperr.AlreadyExistsError:
		return Flatten(v.Headers())
	case *apperr.AlreadyExistsError:
		return Flatten(v.Headers())
	case apperr.NotExistsError:
		return Flatten(v.Headers())
	case *apperr.NotExistsError:
		return Flatten(v.Headers())
	}
	return http.Header{}
}

// Apply copies the headers carried by err onto dst, replacing existing values.
func Apply(dst http.Header, err error) {
	for name, values := range FromError(err) {
		dst[name] = values
	}
}
