package validator

import (
	"strings"

	"github.com/dmitrymomot/commonkit/pkg/apperr"
)

// Scope is the kind of operation a value is validated for.
type Scope uint8

const (
	Read Scope = iota + 1
	Write
	Search
	Modify
)

var scopeNames = map[Scope]string{
	Read:   "read",
	Write:  "write",
	Search: "search",
	Modify: "modify",
}

func (s Scope) String() string {
	if name, ok := scopeNames[s]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether s is one of the four declared scopes.
func (s Scope) Valid() bool {
	return s >= Read && s <= Modify
}

// ParseScope converts a case-insensitive scope name into a Scope.
func ParseScope(name string) (Scope, error) {
	for s, n := range scopeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return 0, apperr.Invalid("unknown validation scope: " + name)
}

// Scopes is an immutable set of scopes, stored as a bit mask.
type Scopes uint8

// AllScopes activates a rule for every operation.
const AllScopes = Scopes(1<<Read | 1<<Write | 1<<Search | 1<<Modify)

// NoScopes disables a rule for every operation.
const NoScopes Scopes = 0

// ScopesOf builds a set from the given scopes. Invalid scopes are ignored.
func ScopesOf(scopes ...Scope) Scopes {
	return NoScopes.With(scopes...)
}

// With returns a copy of the set including scopes.
func (ss Scopes) With(scopes ...Scope) Scopes {
	for _, s := range scopes {
		if s.Valid() {
			ss |= 1 << s
		}
	}
	return ss
}

// Without returns a copy of the set excluding scopes.
func (ss Scopes) Without(scopes ...Scope) Scopes {
	for _, s := range scopes {
		if s.Valid() {
			ss &^= 1 << s
		}
	}
	return ss
}

// Has reports whether s is in the set. Invalid scopes are never members.
func (ss Scopes) Has(s Scope) bool {
	return s.Valid() && ss&(1<<s) != 0
}

// Slice returns the members in declaration order.
func (ss Scopes) Slice() []Scope {
	out := make([]Scope, 0, 4)
	for s := Read; s <= Modify; s++ {
		if ss.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

func (ss Scopes) String() string {
	members := ss.Slice()
	if len(members) == 0 {
		return "none"
	}
	names := make([]string, len(members))
	for i, s := range members {
		names[i] = s.String()
	}
	return strings.Join(names, "|")
}
