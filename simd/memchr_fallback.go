// Package simd provides single-byte scan primitives for high-performance
// byte searching.
//
// The two-way searcher in package twoway and the rare-byte prefilter in
// package prefilter both treat byte scanning as an external collaborator
// reached only through ForwardByte/ReverseByte: neither cares whether the
// scan underneath is vectorized or scalar. This package supplies the
// scalar (SWAR) implementation; no assembly is available in this module,
// so there is no AMD64/generic split the way the teacher package had.
package simd

// ForwardByte returns the index of the first instance of needle in
// haystack, or -1 if needle is not present.
//
// This is equivalent to bytes.IndexByte. It uses an optimized pure Go
// implementation with SWAR (SIMD Within A Register) technique, which
// processes 8 bytes at a time using uint64 bitwise operations.
func ForwardByte(haystack []byte, needle byte) int {
	return forwardByteGeneric(haystack, needle)
}

// ReverseByte returns the index of the last instance of needle in
// haystack, or -1 if needle is not present.
//
// This is equivalent to bytes.LastIndexByte, implemented with the same
// SWAR technique as ForwardByte but scanning from the tail.
func ReverseByte(haystack []byte, needle byte) int {
	return reverseByteGeneric(haystack, needle)
}
