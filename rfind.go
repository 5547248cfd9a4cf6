package twoway

import "github.com/coregx/twoway/rollinghash"

// RFind returns the start index of the last occurrence of the Searcher's
// needle in haystack, or (0, false) if it does not occur.
//
// RFind never consults a prefilter: the teacher's own rationale (see the
// forward Searcher's PrefilterAuto) only pays for the code duplication and
// vectorized-scan investment in one direction, and reverse search is the
// less common query. A Searcher built with ReverseNew always carries the
// inert prefilter.
func (s *Searcher) RFind(haystack []byte) (int, bool) {
	m := len(s.needle)
	switch {
	case m == 0:
		return len(haystack), true
	case m == 1:
		return rfindSingleByte(haystack, s.needle[0])
	case len(haystack) < m:
		return 0, false
	case len(haystack) <= prefilterThreshold(m):
		if pos := rollinghash.New(s.needle).RFind(haystack, -1); pos != -1 {
			return pos, true
		}
		return 0, false
	}

	if s.regime.small {
		return s.rfindSmall(haystack)
	}
	return s.rfindLarge(haystack)
}

// rfindLarge is the reverse Large-period variant: pos is the exclusive end
// of the current candidate window, shifting leftward past the mismatched
// byte on a left-scan mismatch and by s.regime.shift on a right-scan
// mismatch.
func (s *Searcher) rfindLarge(haystack []byte) (int, bool) {
	needle := s.needle
	m := len(needle)
	c := s.criticalPos
	shift := s.regime.shift

	pos := len(haystack)
	for pos >= m {
		if !s.byteset.contains(haystack[pos-m]) {
			pos -= m
			continue
		}

		i := c
		for i > 0 && needle[i-1] == haystack[pos-m+i-1] {
			i--
		}
		if i > 0 {
			pos -= c - i + 1
			continue
		}

		j := c
		matched := true
		for ; j < m; j++ {
			if needle[j] != haystack[pos-m+j] {
				matched = false
				break
			}
		}
		if matched {
			return pos - m, true
		}
		pos -= shift
	}
	return 0, false
}

// rfindSmall is the reverse Small-period variant, mirroring findSmall's use
// of shiftMem to avoid rescanning a known-matching tail after a period
// shift.
func (s *Searcher) rfindSmall(haystack []byte) (int, bool) {
	needle := s.needle
	m := len(needle)
	c := s.criticalPos
	period := s.regime.period

	pos := len(haystack)
	shiftMem := m
	for pos >= m {
		if !s.byteset.contains(haystack[pos-m]) {
			pos -= m
			shiftMem = m
			continue
		}

		i := c
		if shiftMem < i {
			i = shiftMem
		}
		for i > 0 && needle[i-1] == haystack[pos-m+i-1] {
			i--
		}
		if i > 0 {
			pos -= c - i + 1
			shiftMem = m
			continue
		}

		j := c
		bound := shiftMem
		matched := true
		for ; j < bound; j++ {
			if needle[j] != haystack[pos-m+j] {
				matched = false
				break
			}
		}
		if matched {
			return pos - m, true
		}
		pos -= period
		shiftMem = period
	}
	return 0, false
}
