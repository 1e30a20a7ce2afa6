package apperr

// Kind identifies exactly one variant of the taxonomy.
// Kinds are string-based so they read well in logs and JSON payloads.
type Kind string

const (
	// Generic branch.

	// KindGeneric is the placeholder kind. It is never shown to end users.
	KindGeneric Kind = "GENERIC"
	// KindUnclassified is a developer-facing runtime failure without a better home.
	KindUnclassified Kind = "UNCLASSIFIED"

	// Validation branch.

	KindGenericValidation Kind = "GENERIC_VALIDATION"
	KindTextValidation    Kind = "TEXT_VALIDATION"
	KindEmailValidation   Kind = "EMAIL_VALIDATION"

	// Operation branch.

	KindNonExistent         Kind = "NON_EXISTENT"
	KindUnavailable         Kind = "UNAVAILABLE"
	KindForbidden           Kind = "FORBIDDEN"
	KindConstraintViolation Kind = "CONSTRAINT_VIOLATION"
	KindNotAllowed          Kind = "NOT_ALLOWED"
	KindNotFound            Kind = "NOT_FOUND"
	KindNotAcceptable       Kind = "NOT_ACCEPTABLE"
	KindInvalid             Kind = "INVALID"
	KindAlreadyExists       Kind = "ALREADY_EXISTS"
	KindNotExists           Kind = "NOT_EXISTS"

	// User branch.

	// KindUser wraps an externally supplied cause.
	KindUser Kind = "USER"
)

// Branch groups kinds into the top-level taxonomy subtrees.
type Branch string

const (
	BranchGeneric    Branch = "generic"
	BranchValidation Branch = "validation"
	BranchOperation  Branch = "operation"
	BranchUser       Branch = "user"
)

var kindBranches = map[Kind]Branch{
	KindGeneric:      BranchGeneric,
	KindUnclassified: BranchGeneric,

	KindGenericValidation: BranchValidation,
	KindTextValidation:    BranchValidation,
	KindEmailValidation:   BranchValidation,

	KindNonExistent:         BranchOperation,
	KindUnavailable:         BranchOperation,
	KindForbidden:           BranchOperation,
	KindConstraintViolation: BranchOperation,
	KindNotAllowed:          BranchOperation,
	KindNotFound:            BranchOperation,
	KindNotAcceptable:       BranchOperation,
	KindInvalid:             BranchOperation,
	KindAlreadyExists:       BranchOperation,
	KindNotExists:           BranchOperation,

	KindUser: BranchUser,
}

// Branch returns the subtree the kind belongs to, or "" for unknown kinds.
func (k Kind) Branch() Branch {
	return kindBranches[k]
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindBranches[k]
	return ok
}

// IsUserFacing reports whether errors of this kind carry text meant for end users.
// Generic and unclassified errors are placeholders for developers.
func (k Kind) IsUserFacing() bool {
	switch k {
	case KindGeneric, KindUnclassified:
		return false
	}
	return k.Valid()
}

// IsValidation reports whether the kind belongs to the validation branch.
func (k Kind) IsValidation() bool {
	return k.Branch() == BranchValidation
}

func (k Kind) String() string {
	return string(k)
}
