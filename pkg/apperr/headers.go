package apperr

import (
	"maps"
	"slices"
)

// Headers maps a header name to a set of values that should travel with an error,
// for example a Location or Link header. Flattening to one value per name is the
// transport layer's job.
type Headers map[string]map[string]struct{}

// NewHeaders builds a header set from name/values pairs.
func NewHeaders(values map[string][]string) Headers {
	h := make(Headers, len(values))
	for name, vs := range values {
		h.Add(name, vs...)
	}
	return h
}

// Add inserts values under name. Duplicates collapse. Adding no values still
// registers the name with an empty set.
func (h Headers) Add(name string, values ...string) {
	set, ok := h[name]
	if !ok {
		set = make(map[string]struct{}, len(values))
		h[name] = set
	}
	for _, v := range values {
		set[v] = struct{}{}
	}
}

// Values returns the values stored under name in ascending order.
func (h Headers) Values(name string) []string {
	set, ok := h[name]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(set))
}

// Names returns every header name in ascending order.
func (h Headers) Names() []string {
	return slices.Sorted(maps.Keys(h))
}

// Len returns the number of header names.
func (h Headers) Len() int {
	return len(h)
}

// Clone returns a deep copy. A nil receiver yields an empty, non-nil set.
func (h Headers) Clone() Headers {
	out := make(Headers, len(h))
	for name, set := range h {
		out[name] = maps.Clone(set)
		if out[name] == nil {
			out[name] = map[string]struct{}{}
		}
	}
	return out
}
