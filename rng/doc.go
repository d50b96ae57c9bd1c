// Package rng centralizes deterministic random generation for all JSSP
// heuristics.
//
// One seed policy, a SplitMix64-style sub-stream derivation, and small
// O(1)/O(n) helpers, with no time-based sources anywhere. The generator
// itself is not math/rand — reproducibility is required to be bit-exact
// under a named, documented algorithm, so every Source is backed by a
// ChaCha20 keystream (golang.org/x/crypto/chacha20) consumed as an infinite
// byte stream.
//
// Concurrency: a *Source is not goroutine-safe, the same contract
// *rand.Rand carries. Use Derive/DeriveSource to build independent
// sub-streams for parallel workers or successive restarts.
package rng
