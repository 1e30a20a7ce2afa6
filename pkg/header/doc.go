// Package header converts header sets attached to taxonomy errors into
// net/http headers.
//
//	err := apperr.AlreadyExists("user exists", apperr.NewHeaders(map[string][]string{
//		"Location": {"/users/42"},
//	}))
//	header.Apply(w.Header(), err)
package header
