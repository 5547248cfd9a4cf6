package twoway

// suffixKind selects which lexicographic extreme extractSuffix computes.
type suffixKind int

const (
	// suffixMinimal favors longer equal-prefixed suffixes over shorter
	// ones (it picks "aa" over "a" inside "daa") — this is NOT strict
	// lexicographic minimum, and that is deliberate: the two-way
	// algorithm needs this exact tie-breaking behavior to produce a
	// valid critical factorization. Do not "fix" this to a literal
	// lex-min comparison.
	suffixMinimal suffixKind = iota
	suffixMaximal
)

// suffix is a (pos, period) descriptor.
//
// For a forward suffix, pos is the inclusive start of needle[pos:] and
// period is that suffix's period (a lower bound on, not necessarily equal
// to, the whole needle's period). For a reverse suffix, pos is the
// exclusive end of needle[:pos].
type suffix struct {
	pos    int
	period int
}

// lessExtremal compares candidate with current under kind: accept reports
// whether candidate is strictly more extremal, skip whether it is strictly
// less extremal. Both are false when the two bytes are equal.
func lessExtremal(kind suffixKind, current, candidate byte) (accept, skip bool) {
	switch kind {
	case suffixMinimal:
		return candidate < current, candidate > current
	default: // suffixMaximal
		return candidate > current, candidate < current
	}
}

// extractSuffixForward computes the lexicographically extremal (per kind)
// suffix of needle, scanning left to right with the classic Duval
// two-pointer critical-factorization scan. needle must be non-empty.
func extractSuffixForward(needle []byte, kind suffixKind) suffix {
	m := len(needle)
	s := suffix{pos: 0, period: 1}
	candidateStart := 1
	offset := 0

	for candidateStart+offset < m {
		current := needle[s.pos+offset]
		candidate := needle[candidateStart+offset]

		accept, skip := lessExtremal(kind, current, candidate)
		switch {
		case accept:
			s = suffix{pos: candidateStart, period: 1}
			candidateStart++
			offset = 0
		case skip:
			candidateStart += offset + 1
			offset = 0
			s.period = candidateStart - s.pos
		default: // push: equal at this offset
			if offset+1 == s.period {
				candidateStart += s.period
				offset = 0
			} else {
				offset++
			}
		}
	}
	return s
}

// extractSuffixReverse is extractSuffixForward's mirror image: it finds the
// extremal suffix scanning right to left. pos is the exclusive end of the
// suffix needle[:pos]. needle must be non-empty.
func extractSuffixReverse(needle []byte, kind suffixKind) suffix {
	m := len(needle)
	s := suffix{pos: m, period: 1}
	candidateStart := m - 1
	offset := 0

	for offset < candidateStart {
		current := needle[s.pos-offset-1]
		candidate := needle[candidateStart-offset-1]

		accept, skip := lessExtremal(kind, current, candidate)
		switch {
		case accept:
			s = suffix{pos: candidateStart, period: 1}
			candidateStart--
			offset = 0
		case skip:
			candidateStart -= offset + 1
			offset = 0
			s.period = s.pos - candidateStart
		default: // push
			if offset+1 == s.period {
				candidateStart -= s.period
				offset = 0
			} else {
				offset++
			}
		}
	}
	return s
}
