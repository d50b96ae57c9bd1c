package instance

import "errors"

// Sentinel errors for the instance package. Callers MUST use errors.Is to
// branch on semantics; sentinels are never wrapped with formatted strings
// at the definition site (wrapping, when useful, happens at the call site
// with %w so the sentinel survives errors.Is).
var (
	// ErrParse indicates a malformed instance file (bad prelude, missing
	// fields, non-integer tokens, or a row with an odd token count).
	ErrParse = errors.New("instance: malformed instance file")

	// ErrInfeasible indicates a Solution violates one of the three
	// verifier predicates: job precedence, machine exclusivity, or
	// non-negative start times.
	ErrInfeasible = errors.New("instance: infeasible solution")
)
