package twoway

import (
	"sort"
	"testing"
)

// naiveMaximalSuffix returns the start position of the lexicographically
// greatest suffix of s, found by exhaustive sort-and-pick. This is the test
// oracle for extractSuffixForward(s, suffixMaximal).
func naiveMaximalSuffix(s []byte) int {
	positions := make([]int, len(s))
	for i := range positions {
		positions[i] = i
	}
	sort.Slice(positions, func(a, b int) bool {
		return string(s[positions[a]:]) < string(s[positions[b]:])
	})
	return positions[len(positions)-1]
}

func TestExtractSuffixForward_MaximalAgreesWithNaiveOracle(t *testing.T) {
	needles := []string{
		"a", "ab", "ba", "aaa", "aaab", "abcabc", "abcd", "banana",
		"mississippi", "zzzzz", "aabaabaaaab", "cabbage",
	}
	for _, n := range needles {
		want := naiveMaximalSuffix([]byte(n))
		got := extractSuffixForward([]byte(n), suffixMaximal).pos
		if got != want {
			t.Errorf("extractSuffixForward(%q, Maximal).pos = %d, want %d (naive oracle)", n, got, want)
		}
	}
}

func TestExtractSuffixForward_MinimalPrefersLongerOverShorter(t *testing.T) {
	// "daa" has suffixes {"daa", "aa", "a"}. Strict lexicographic minimum
	// (a string is a prefix is considered smaller) picks "a" at position 2.
	// Minimal, as specified, picks "aa" at position 1 instead — it prefers
	// a longer equal-prefixed suffix over a shorter one. This is
	// deliberate and required by the two-way algorithm; do not substitute
	// a strict lex-min routine here.
	got := extractSuffixForward([]byte("daa"), suffixMinimal).pos
	if got != 1 {
		t.Errorf("extractSuffixForward(%q, Minimal).pos = %d, want 1", "daa", got)
	}
}

func TestExtractSuffixForward_PeriodInvariant(t *testing.T) {
	needles := []string{"abcabc", "aaaa", "abcd", "mississippi", "banana"}
	for _, n := range needles {
		for _, kind := range []suffixKind{suffixMinimal, suffixMaximal} {
			s := extractSuffixForward([]byte(n), kind)
			if s.period < 1 || s.period > len(n)-s.pos {
				t.Errorf("extractSuffixForward(%q, %v) = %+v has period out of [1, %d]",
					n, kind, s, len(n)-s.pos)
			}
		}
	}
}

func TestExtractSuffixReverse_MirrorsForwardOnReversedNeedle(t *testing.T) {
	needles := []string{"a", "ab", "ba", "abcabc", "banana", "mississippi"}
	for _, n := range needles {
		rev := reverseBytes([]byte(n))
		for _, kind := range []suffixKind{suffixMinimal, suffixMaximal} {
			fwdOnRev := extractSuffixForward(rev, kind)
			r := extractSuffixReverse([]byte(n), kind)
			// extractSuffixReverse(n).pos is an exclusive end; mirroring onto
			// the reversed needle turns it into an inclusive start measured
			// from the other end.
			wantPos := len(n) - fwdOnRev.pos
			if r.pos != wantPos || r.period != fwdOnRev.period {
				t.Errorf("extractSuffixReverse(%q, %v) = %+v, want pos=%d period=%d (via reversed forward)",
					n, kind, r, wantPos, fwdOnRev.period)
			}
		}
	}
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}
