package twoway

import (
	"github.com/coregx/twoway/prefilter"
	"github.com/coregx/twoway/rollinghash"
)

// Find returns the start index of the first occurrence of the Searcher's
// needle in haystack, or (0, false) if it does not occur. It self-
// initializes a fresh prefilter Tracker per call; callers iterating many
// searches with the same Searcher should prefer FindWith with a Tracker
// reused — or reset — across calls, per package prefilter's effectiveness
// bookkeeping.
func (s *Searcher) Find(haystack []byte) (int, bool) {
	return s.FindWith(s.PrefilterState(), haystack)
}

// FindWith is Find with caller-supplied prefilter state, letting a series
// of searches over related haystacks share (or deliberately not share)
// effectiveness tracking.
func (s *Searcher) FindWith(st *prefilter.Tracker, haystack []byte) (int, bool) {
	m := len(s.needle)
	switch {
	case m == 0:
		return 0, true
	case m == 1:
		return findSingleByte(haystack, s.needle[0])
	case len(haystack) < m:
		return 0, false
	case len(haystack) <= prefilterThreshold(m):
		if pos := rollinghash.New(s.needle).Find(haystack, 0); pos != -1 {
			return pos, true
		}
		return 0, false
	}
	if s.regime.small {
		return s.findSmall(st, haystack)
	}
	return s.findLarge(st, haystack)
}

// findLarge is the Large-period variant: no memory of previously matched
// bytes is kept, since a mismatch in the left part always permits a shift
// of at least ceil(m/2) (a right-part mismatch shifts past the mismatched
// byte instead).
func (s *Searcher) findLarge(st *prefilter.Tracker, haystack []byte) (int, bool) {
	needle := s.needle
	m := len(needle)
	lastByte := m - 1
	shift := s.regime.shift
	c := s.criticalPos

	pos := 0
	for pos+m <= len(haystack) {
		if st.IsEffective() {
			next := st.Find(haystack, pos)
			if next == -1 {
				return 0, false
			}
			pos = next
			if pos+m > len(haystack) {
				return 0, false
			}
		}

		if !s.byteset.contains(haystack[pos+lastByte]) {
			pos += m
			continue
		}

		i := c
		for i < m && needle[i] == haystack[pos+i] {
			i++
		}
		if i < m {
			pos += i - c + 1
			continue
		}

		j := c - 1
		matched := true
		for ; j >= 0; j-- {
			if needle[j] != haystack[pos+j] {
				matched = false
				break
			}
		}
		if matched {
			st.ConfirmMatch()
			return pos, true
		}
		pos += shift
	}
	return 0, false
}

// findSmall is the Small-period variant: the needle's period is at most
// m/2, so after a left-scan mismatch we remember how much of the prefix is
// already known to match (shiftMem) instead of rescanning it.
func (s *Searcher) findSmall(st *prefilter.Tracker, haystack []byte) (int, bool) {
	needle := s.needle
	m := len(needle)
	lastByte := m - 1
	period := s.regime.period
	c := s.criticalPos

	pos := 0
	shiftMem := 0
	for pos+m <= len(haystack) {
		i := c
		if shiftMem > i {
			i = shiftMem
		}

		if st.IsEffective() {
			next := st.Find(haystack, pos)
			if next == -1 {
				return 0, false
			}
			pos = next
			shiftMem = 0
			i = c
			if pos+m > len(haystack) {
				return 0, false
			}
		}

		if !s.byteset.contains(haystack[pos+lastByte]) {
			pos += m
			shiftMem = 0
			continue
		}

		for i < m && needle[i] == haystack[pos+i] {
			i++
		}
		if i < m {
			pos += i - c + 1
			shiftMem = 0
			continue
		}

		j := c
		for j > shiftMem && needle[j] == haystack[pos+j] {
			j--
		}
		if j <= shiftMem && needle[shiftMem] == haystack[pos+shiftMem] {
			st.ConfirmMatch()
			return pos, true
		}
		pos += period
		shiftMem = m - period
	}
	return 0, false
}
