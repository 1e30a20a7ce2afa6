// Package validator runs business-rule checks against values before they are
// accepted, gated by the kind of operation being performed.
//
// A Validator takes a value and a Scope (Read, Write, Search or Modify) and
// returns either the value unchanged or an apperr.ValidationErr. Validators
// never transform values.
//
// # Rules
//
// New builds a Rule from a scope set and a predicate. When the scope is not in
// the set the rule passes the value through untouched, so one rule can be
// shared by write and modify paths while staying silent on reads:
//
//	nameRequired := validator.New(
//	    validator.ScopesOf(validator.Write, validator.Modify),
//	    func(s string) bool { return strings.TrimSpace(s) != "" },
//	    validator.WithMessage("name is required"),
//	    validator.WithInstruction("Please enter a name"),
//	)
//	name, err := nameRequired.Apply(input, validator.Write)
//
// Rule failures are apperr.GenericValidationError values. Library validators
// target more specific kinds: Email yields apperr.EmailValidationError, the
// text rules (NotBlank, MinLength, MaxLength, NoSpecialCharacters, Matches,
// Username) yield apperr.TextValidationError. Library validators are never
// scope gated; wrap them with Scoped when they should be.
//
// # Composition
//
// All chains validators and stops at the first failure, which keeps the
// one-failure-per-Apply contract. Collect runs every validator and
// accumulates failures into Failures, which implements error and unwraps to
// the individual failures:
//
//	err := validator.Collect(email, validator.Write,
//	    validator.NotBlank("email"),
//	    validator.MaxLength("email", 254),
//	    validator.Email(),
//	)
//	if failures := validator.ExtractFailures(err); failures != nil {
//	    // failures.Instructions() for field-level feedback
//	}
//
// Every value in this package is immutable after construction and safe for
// concurrent use.
package validator
