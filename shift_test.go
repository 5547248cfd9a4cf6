package twoway

import "testing"

func TestComputeShiftForward_SmallRegimeInvariant(t *testing.T) {
	// For every Small-regime needle, needle[0:c] must be a suffix of
	// needle[c:c+period], and 2*c < len(needle) (testable property 8).
	needles := []string{"abcabc", "aaaa", "ababab", "xyzxyzxyz"}
	for _, n := range needles {
		needle := []byte(n)
		minSuf := extractSuffixForward(needle, suffixMinimal)
		maxSuf := extractSuffixForward(needle, suffixMaximal)
		chosen := maxSuf
		if minSuf.pos > maxSuf.pos {
			chosen = minSuf
		}
		regime := computeShiftForward(needle, chosen.period, chosen.pos)
		if !regime.small {
			continue
		}
		c := chosen.pos
		if 2*c >= len(needle) {
			t.Errorf("needle %q: Small regime but 2*c=%d >= len=%d", n, 2*c, len(needle))
		}
		u := needle[:c]
		v := needle[c : c+regime.period]
		if !bytesHasSuffix(v, u) {
			t.Errorf("needle %q: Small regime but needle[0:%d]=%q is not a suffix of needle[%d:%d]=%q",
				n, c, u, c, c+regime.period, v)
		}
	}
}

func TestComputeShiftForward_RegimeSelection(t *testing.T) {
	tests := []struct {
		needle    string
		wantSmall bool
	}{
		{"abcabc", true},  // period 3, repeats twice
		{"abcd", false},   // no short period
		{"aaaa", true},    // period 1
		{"mississippi", false},
	}
	for _, tt := range tests {
		needle := []byte(tt.needle)
		minSuf := extractSuffixForward(needle, suffixMinimal)
		maxSuf := extractSuffixForward(needle, suffixMaximal)
		chosen := maxSuf
		if minSuf.pos > maxSuf.pos {
			chosen = minSuf
		}
		regime := computeShiftForward(needle, chosen.period, chosen.pos)
		if regime.small != tt.wantSmall {
			t.Errorf("needle %q: regime.small = %v, want %v", tt.needle, regime.small, tt.wantSmall)
		}
	}
}

func TestComputeShiftForward_LargeShiftAtLeastHalf(t *testing.T) {
	needles := []string{"abcd", "mississippi", "xyzxyzxy", "banana"}
	for _, n := range needles {
		needle := []byte(n)
		minSuf := extractSuffixForward(needle, suffixMinimal)
		maxSuf := extractSuffixForward(needle, suffixMaximal)
		chosen := maxSuf
		if minSuf.pos > maxSuf.pos {
			chosen = minSuf
		}
		regime := computeShiftForward(needle, chosen.period, chosen.pos)
		if regime.small {
			continue
		}
		half := (len(needle) + 1) / 2
		if regime.shift < half {
			t.Errorf("needle %q: Large shift=%d, want >= ceil(m/2)=%d", n, regime.shift, half)
		}
	}
}
