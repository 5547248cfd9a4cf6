package twoway

// approximateByteSet is a 64-bit bloom-style filter over the bytes that
// appear in a needle: bit i is set iff some needle byte b satisfies
// b%64 == i. Membership has no false negatives but may have false
// positives across the mod-64 equivalence classes — that imprecision is
// the price of testing set membership with a single register compare
// instead of a 256-bit (or larger) table.
//
// Grounded on original_source/src/memmem/twoway.rs's ApproximateByteSet(u64):
// same fold-every-byte-into-a-64-bit-mask construction and the same
// byte%64-indexed membership test.
type approximateByteSet uint64

// newApproximateByteSet folds every byte of needle into a 64-bit mask.
func newApproximateByteSet(needle []byte) approximateByteSet {
	var set approximateByteSet
	for _, b := range needle {
		set |= approximateByteSet(1) << (b % 64)
	}
	return set
}

// contains reports whether b might appear in the needle this set was built
// from. A false result is certain; a true result is not (collisions across
// the mod-64 classes are acceptable).
func (s approximateByteSet) contains(b byte) bool {
	return s&(approximateByteSet(1)<<(b%64)) != 0
}
