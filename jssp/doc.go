// Package jssp implements the disjunctive-graph core and the search
// algorithms built on it: the graph state (heads, tails, Cmax), the
// schedule/orientation bridge, the N1 neighborhood, the six priority
// dispatchers, and the four metaheuristics (hill climbing, random-restart
// hill climbing, tabu search, simulated annealing) plus the sequential
// baseline.
//
// # What & Why
//
// A State is a disjunctive graph: instance.Instance's fixed precedence arcs
// plus a chosen orientation of machine-conflict arcs. Given that
// orientation, heads (release times), tails, path times, and Cmax are fully
// determined — State owns all of it and is immutable once constructed;
// ApplySwap returns a new State rather than mutating in place, so a search
// loop can hold onto a previous State (the current best, a pre-restart
// snapshot) without it being invalidated by a later swap.
//
// # No-neighbor sentinel
//
// Predecessor/successor arrays use noOp (-1) as "no such neighbor", not a
// pointer or Go's zero value (which would collide with operation id 0).
package jssp

// noOp is the sentinel for "this operation has no such neighbor" in the
// pre/succ arrays (job-chain ends, machine-chain ends).
const noOp = -1
