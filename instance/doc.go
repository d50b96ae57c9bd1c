// Package instance defines the immutable job-shop problem data model, the
// text instance format reader, the schedule verifier, and the stdout
// solution writer.
//
// # What & Why
//
// An Instance fixes J jobs and M machines (square JSSP: M operations per
// job). Operations are addressed by a single linear OpID = j*M+o so every
// solver component can index them with plain slices instead of nested maps.
// A Solution is nothing more than a start time per operation; everything
// else (feasibility, makespan, machine ordering) is derived from it.
//
// # Format (text, ASCII)
//
//	Line 1:        J M
//	Lines 2..J+1:  m0 d0 m1 d1 ... m_{M-1} d_{M-1}   (job j's operations, in order)
//
// # Determinism & Scope
//
//   - Durations and machine indices are validated on Parse; Instance itself
//     carries no further invariants beyond "every machine id is in [0,M)".
//   - Verify implements the §6 contract directly (precedence, no overlap,
//     non-negative starts) rather than the narrower check the original
//     source used — see Verify's doc comment for the corrected predicate.
package instance
