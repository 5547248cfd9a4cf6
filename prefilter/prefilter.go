// Package prefilter provides the rare-byte candidate-finding collaborator
// consumed by the two-way searcher in package twoway.
//
// The two-way core treats the prefilter strictly as an external collaborator:
// it advances to the next candidate offset within a haystack slice, and it
// exposes an effectiveness predicate the searcher uses to decide whether to
// keep consulting it. Implementations here never reason about the needle's
// critical factorization or shift regime; they only ever see byte slices and
// offsets.
//
// Selection strategy (mirrors the rest of this module's domain stack):
//   - Auto mode builds RareByte, a scalar SWAR scan for the rarest byte in
//     the needle by empirical frequency rank (package simd).
//   - None mode, and reverse search, use Inert, which always reports no
//     candidate and permanent ineffectiveness.
package prefilter

// Prefilter is used to quickly find candidate match positions before the
// two-way searcher commits to a full left/right scan at that position.
//
// A candidate does not guarantee a match; the searcher always verifies.
type Prefilter interface {
	// Find returns the index of the first candidate position at or after
	// start within haystack, or -1 if none exists.
	Find(haystack []byte, start int) int

	// Reset clears any prefilter-internal scanning state so the same
	// Prefilter value can be reused to begin a fresh search.
	Reset()
}

// Inert is a Prefilter that never produces a candidate. It is used when
// prefiltering is disabled by configuration and for reverse search (which
// never prefilters, per the two-way searcher's design). A Tracker wrapping
// Inert starts out ineffective.
type Inert struct{}

// NewInert returns the always-empty Prefilter.
func NewInert() Prefilter { return Inert{} }

// Find always reports no candidate.
func (Inert) Find(haystack []byte, start int) int { return -1 }

// Reset is a no-op; Inert carries no state.
func (Inert) Reset() {}
