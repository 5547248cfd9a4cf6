package twoway

import "github.com/coregx/twoway/simd"

// prefilterThreshold is the haystack-length floor below which the two-way
// preprocessing (critical factorization, shift table) is not amortized, and
// below which the prefilter is never worth consulting either — matching
// the distilled algorithm's should_prefilter denominator, max(16, 2*m).
func prefilterThreshold(m int) int {
	t := 2 * m
	if t < 16 {
		t = 16
	}
	return t
}

// findSingleByte delegates the single-byte-needle fast path to the simd
// package's scalar scan rather than duplicating a byte loop here.
func findSingleByte(haystack []byte, b byte) (int, bool) {
	if i := simd.ForwardByte(haystack, b); i != -1 {
		return i, true
	}
	return 0, false
}

func rfindSingleByte(haystack []byte, b byte) (int, bool) {
	if i := simd.ReverseByte(haystack, b); i != -1 {
		return i, true
	}
	return 0, false
}
