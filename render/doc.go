// Package render draws a human-readable, non-normative view of a schedule.
//
// The §6 stdout contract (a Cmax line followed by per-job start times) is
// the only format the external verifier understands and is produced by
// instance.Write regardless of anything in this package. Gantt is an
// additional view for a human at a terminal, selected by the CLI's
// --format=pretty flag; it never replaces or perturbs the plain contract.
package render
