// Package rollinghash implements a Rabin-Karp rolling hash search used as
// the short-haystack fallback below the threshold at which the two-way
// algorithm's setup cost (critical factorization, shift tables) stops paying
// for itself.
//
// Grounded on the Go standard library's internal/bytealg Rabin-Karp
// implementation: same prime multiplier, same rolling update, same
// hash-then-verify structure, generalized here to a needle whose hash is
// computed once by New and can be reused across repeated Find/RFind calls
// (the two-way Searcher's fallback path builds a fresh rollinghash.Needle
// on each Find/RFind call that takes it).
package rollinghash

// primeRK is the prime base used for the rolling hash. Matches the Go
// standard library's choice so the multiplicative inverse arithmetic stays
// within uint32 without needing a bigger hash width.
const primeRK = 16777619

// Needle precomputes the hash of a pattern and the multiplicative factor
// needed to roll that hash forward (or backward) one byte at a time, so
// repeated searches for the same needle don't redo that setup.
type Needle struct {
	pattern []byte

	hashFwd uint32
	powFwd  uint32

	hashRev uint32
	powRev  uint32
}

// New precomputes both the forward and reverse rolling-hash state for
// pattern. pattern must be non-empty; callers (package twoway's dispatch)
// guarantee this.
func New(pattern []byte) *Needle {
	hashFwd, powFwd := hashStr(pattern)
	hashRev, powRev := hashStrRev(pattern)
	return &Needle{
		pattern: pattern,
		hashFwd: hashFwd,
		powFwd:  powFwd,
		hashRev: hashRev,
		powRev:  powRev,
	}
}

// hashStr returns the hash of sep and the multiplicative factor primeRK^len
// used to remove a byte's contribution when rolling the hash forward.
func hashStr(sep []byte) (uint32, uint32) {
	var hash uint32
	for i := 0; i < len(sep); i++ {
		hash = hash*primeRK + uint32(sep[i])
	}
	var pow, sq uint32 = 1, primeRK
	for i := len(sep); i > 0; i >>= 1 {
		if i&1 != 0 {
			pow *= sq
		}
		sq *= sq
	}
	return hash, pow
}

// hashStrRev is hashStr over the reverse of sep, for the backward roll RFind
// needs.
func hashStrRev(sep []byte) (uint32, uint32) {
	var hash uint32
	for i := len(sep) - 1; i >= 0; i-- {
		hash = hash*primeRK + uint32(sep[i])
	}
	var pow, sq uint32 = 1, primeRK
	for i := len(sep); i > 0; i >>= 1 {
		if i&1 != 0 {
			pow *= sq
		}
		sq *= sq
	}
	return hash, pow
}

// Find returns the index of the first occurrence of n's pattern in
// haystack[start:], relative to the start of haystack, or -1 if the pattern
// does not occur.
func (n *Needle) Find(haystack []byte, start int) int {
	pat := n.pattern
	m := len(pat)
	if start < 0 {
		start = 0
	}
	if m > len(haystack)-start {
		return -1
	}

	var h uint32
	for i := start; i < start+m; i++ {
		h = h*primeRK + uint32(haystack[i])
	}
	if h == n.hashFwd && equal(haystack[start:start+m], pat) {
		return start
	}
	for i := start + m; i < len(haystack); i++ {
		h *= primeRK
		h += uint32(haystack[i])
		h -= n.powFwd * uint32(haystack[i-m])
		lo := i - m + 1
		if h == n.hashFwd && equal(haystack[lo:lo+m], pat) {
			return lo
		}
	}
	return -1
}

// RFind returns the index of the last occurrence of n's pattern in
// haystack[:end], or -1 if the pattern does not occur. end is exclusive and
// defaults to len(haystack) when negative or beyond it.
func (n *Needle) RFind(haystack []byte, end int) int {
	pat := n.pattern
	m := len(pat)
	if end < 0 || end > len(haystack) {
		end = len(haystack)
	}
	if m > end {
		return -1
	}

	last := end - m
	var h uint32
	for i := end - 1; i >= last; i-- {
		h = h*primeRK + uint32(haystack[i])
	}
	if h == n.hashRev && equal(haystack[last:last+m], pat) {
		return last
	}
	for i := last - 1; i >= 0; i-- {
		h *= primeRK
		h += uint32(haystack[i])
		h -= n.powRev * uint32(haystack[i+m])
		if h == n.hashRev && equal(haystack[i:i+m], pat) {
			return i
		}
	}
	return -1
}

func equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
