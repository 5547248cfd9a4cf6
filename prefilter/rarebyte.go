package prefilter

import "github.com/coregx/twoway/simd"

// RareByte is a Prefilter built around the single rarest byte in a needle,
// selected by empirical frequency rank (simd.ByteFrequencies). It scans for
// that byte with simd.ForwardByte and reports the candidate start position
// for the needle, not the rare byte's own position.
//
// This mirrors the classic memchr-based rare-byte heuristic: scanning for an
// infrequent byte and verifying around it is, on typical text, dramatically
// cheaper than running the full two-way comparison loop at every position.
type RareByte struct {
	// rareByte is the byte simd.ForwardByte searches for.
	rareByte byte
	// offset is rareByte's own index within the needle: a needle occurrence
	// starting at candidate position A has its rare byte at A+offset, so an
	// absolute rare-byte hit at haystack index H implies a needle-start
	// candidate at H-offset (mirrors the teacher's simd/memmem.go rare-byte
	// scan, which reports candidatePos-rareIdx for the same reason).
	offset int
}

// NewRareByte builds a RareByte prefilter for needle.
//
// Returns an Inert prefilter if needle has fewer than 2 bytes: a one-byte
// needle is handled by the single-byte fast path in package twoway and never
// reaches the prefilter gate.
func NewRareByte(needle []byte) Prefilter {
	if len(needle) < 2 {
		return NewInert()
	}

	b, idx := simd.SelectRareByte(needle)
	return &RareByte{
		rareByte: b,
		offset:   idx,
	}
}

// Find returns the candidate start position, at or after start, of a needle
// occurrence whose rare byte was found in haystack. Returns -1 once the rare
// byte no longer occurs in haystack[start:] at a position that leaves room
// for the needle's offset.
func (r *RareByte) Find(haystack []byte, start int) int {
	if start < 0 {
		return -1
	}
	searchFrom := start + r.offset
	if searchFrom < 0 || searchFrom >= len(haystack) {
		return -1
	}

	idx := simd.ForwardByte(haystack[searchFrom:], r.rareByte)
	if idx == -1 {
		return -1
	}
	candidate := searchFrom + idx - r.offset
	if candidate < start {
		return -1
	}
	return candidate
}

// Reset is a no-op: RareByte holds no per-search scanning state, only the
// construction-time rare byte and offset (see Tracker for the mutable
// effectiveness bookkeeping).
func (r *RareByte) Reset() {}
