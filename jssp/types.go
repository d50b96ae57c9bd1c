package jssp

import "github.com/nvollmar/jssp-heuristics/instance"

// Edge is a directed arc (u,v) meaning "u immediately precedes v".
type Edge struct {
	From instance.OpID
	To   instance.OpID
}

// SwapMove is a candidate N1 neighborhood move: reverse the machine edge
// (A,B) so A becomes B's machine-successor instead of its predecessor.
type SwapMove struct {
	A instance.OpID
	B instance.OpID
}

// EvaluatedMove pairs a SwapMove with its estimated post-swap Cmax.
type EvaluatedMove struct {
	Swap SwapMove
	Cmax uint32
}

// SearchMethod controls how FindMove scans the candidate move list.
type SearchMethod int

const (
	// SearchExhaustive scans every candidate and keeps the best accepted one.
	SearchExhaustive SearchMethod = iota
	// SearchFirst returns on the first accepted candidate.
	SearchFirst
)

// AcceptFunc decides whether candidate should replace the current best (nil
// if none accepted yet). It is called in candidate iteration order.
type AcceptFunc func(best *EvaluatedMove, candidate EvaluatedMove) bool
