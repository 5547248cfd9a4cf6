// Package twoway implements the two-way string matching algorithm
// (Crochemore-Perrin): a worst-case O(n+m) time, O(1) auxiliary space
// substring search that needs no more preprocessing than a single pass over
// the needle. It is the algorithm behind Rust's regex-automata memmem
// substring searcher.
//
// A Searcher is built once from a needle via ForwardNew or ReverseNew and
// then reused across any number of Find/RFind calls; construction runs the
// critical-factorization preprocessing (package-internal suffix.go,
// shift.go), and every subsequent search just walks that precomputed state
// over a haystack.
package twoway

import "github.com/coregx/twoway/prefilter"

// PrefilterMode selects whether a forward Searcher attaches a rare-byte
// prefilter.
type PrefilterMode int

const (
	// PrefilterNone disables the prefilter entirely; the searcher runs
	// the pure two-way loop.
	PrefilterNone PrefilterMode = iota
	// PrefilterAuto attaches a prefilter.RareByte built from the needle
	// (when the needle is long enough for one to make sense).
	PrefilterAuto
)

// Config configures a forward Searcher's construction.
type Config struct {
	Prefilter PrefilterMode
}

// Searcher holds an immutable needle and the critical-factorization state
// derived from it, and exposes the forward Find and reverse RFind queries.
// A Searcher is safe for concurrent use: all derived state is fixed at
// construction, and every per-search mutable state (the prefilter Tracker)
// lives outside the Searcher in the caller's hands.
type Searcher struct {
	needle []byte

	criticalPos int
	regime      shiftRegime
	byteset     approximateByteSet

	reverse bool

	pf prefilter.Prefilter
}

// ForwardNew builds a Searcher for forward (leftmost-match) search.
func ForwardNew(cfg Config, needle []byte) *Searcher {
	s := newSearcher(needle, false)
	if cfg.Prefilter == PrefilterAuto && len(needle) >= 2 {
		s.pf = prefilter.NewRareByte(needle)
	} else {
		s.pf = prefilter.NewInert()
	}
	return s
}

// ReverseNew builds a Searcher for reverse (rightmost-match) search.
// Reverse search never consults a prefilter (see RFind's doc comment).
func ReverseNew(needle []byte) *Searcher {
	s := newSearcher(needle, true)
	s.pf = prefilter.NewInert()
	return s
}

func newSearcher(needle []byte, rev bool) *Searcher {
	owned := make([]byte, len(needle))
	copy(owned, needle)

	s := &Searcher{needle: owned, reverse: rev}
	if len(owned) == 0 {
		return s
	}

	s.byteset = newApproximateByteSet(owned)

	if !rev {
		minSuf := extractSuffixForward(owned, suffixMinimal)
		maxSuf := extractSuffixForward(owned, suffixMaximal)
		chosen := maxSuf
		if minSuf.pos > maxSuf.pos {
			chosen = minSuf
		}
		s.criticalPos = chosen.pos
		s.regime = computeShiftForward(owned, chosen.period, chosen.pos)
	} else {
		minSuf := extractSuffixReverse(owned, suffixMinimal)
		maxSuf := extractSuffixReverse(owned, suffixMaximal)
		chosen := maxSuf
		if minSuf.pos < maxSuf.pos {
			chosen = minSuf
		}
		s.criticalPos = chosen.pos
		s.regime = computeShiftReverse(owned, chosen.period, chosen.pos)
	}
	return s
}

// Needle returns the needle this Searcher was built from. The returned
// slice must not be mutated.
func (s *Searcher) Needle() []byte {
	return s.needle
}

// PrefilterState returns a fresh Tracker wrapping this Searcher's
// prefilter, valid even when the prefilter is the inert no-op (e.g. for a
// reverse Searcher, or a forward one built with PrefilterNone).
func (s *Searcher) PrefilterState() *prefilter.Tracker {
	return prefilter.NewTracker(s.pf)
}
