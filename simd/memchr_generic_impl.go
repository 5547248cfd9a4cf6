package simd

import (
	"encoding/binary"
	"math/bits"
)

// forwardByteGeneric implements pure Go byte search using SWAR (SIMD Within A
// Register) technique. It processes 8 bytes at a time using uint64 bitwise
// operations.
//
// This stands in for the vectorized (AVX2/SSE4.2) scan the teacher's original
// package dispatched to on amd64; no assembly is available here, so the SWAR
// path is the only implementation.
//
// Algorithm:
//  1. Create a mask with needle replicated in every byte of uint64
//  2. Read 8 bytes from haystack as uint64
//  3. XOR with mask (matching bytes become 0x00)
//  4. Use zero-byte detection formula to find first zero
//  5. Extract position using trailing zero count
func forwardByteGeneric(haystack []byte, needle byte) int {
	haystackLen := len(haystack)
	if haystackLen == 0 {
		return -1
	}

	// For small inputs, byte-by-byte is faster (no setup overhead)
	if haystackLen < 8 {
		for idx := 0; idx < haystackLen; idx++ {
			if haystack[idx] == needle {
				return idx
			}
		}
		return -1
	}

	// SWAR technique: broadcast needle to all 8 bytes of uint64
	needleMask := uint64(needle) * 0x0101010101010101

	idx := 0

	// Process aligned 8-byte chunks
	for idx+8 <= haystackLen {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])

		// XOR makes matching bytes become 0x00
		xor := chunk ^ needleMask

		// Zero-byte detection formula (Hacker's Delight technique):
		const lo8 = 0x0101010101010101
		const hi8 = 0x8080808080808080
		hasZero := (xor - lo8) & ^xor & hi8

		if hasZero != 0 {
			return idx + bits.TrailingZeros64(hasZero)/8
		}

		idx += 8
	}

	// Process remaining bytes (0-7 bytes) byte-by-byte
	for idx < haystackLen {
		if haystack[idx] == needle {
			return idx
		}
		idx++
	}

	return -1
}

// reverseByteGeneric is the mirror image of forwardByteGeneric: it scans
// haystack from the end, returning the index of the last occurrence of
// needle, or -1 if absent.
func reverseByteGeneric(haystack []byte, needle byte) int {
	haystackLen := len(haystack)
	if haystackLen == 0 {
		return -1
	}

	if haystackLen < 8 {
		for idx := haystackLen - 1; idx >= 0; idx-- {
			if haystack[idx] == needle {
				return idx
			}
		}
		return -1
	}

	needleMask := uint64(needle) * 0x0101010101010101

	idx := haystackLen

	// Process aligned 8-byte chunks from the tail.
	for idx-8 >= 0 {
		idx -= 8
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		xor := chunk ^ needleMask

		// Exact zero-byte test: unlike the subtraction formula used by
		// forwardByteGeneric, no borrow crosses byte lanes, so the highest
		// flagged byte is always a real match.
		const lo7 = 0x7f7f7f7f7f7f7f7f
		hasZero := ^(((xor & lo7) + lo7) | xor | lo7)

		if hasZero != 0 {
			highBit := bits.Len64(hasZero) - 1
			return idx + highBit/8
		}
	}

	// Process the leading remainder (0-7 bytes) byte-by-byte.
	for i := idx - 1; i >= 0; i-- {
		if haystack[i] == needle {
			return i
		}
	}

	return -1
}
