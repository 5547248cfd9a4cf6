package prefilter

// Tracker wraps a Prefilter with effectiveness tracking.
//
// The tracker monitors the average number of haystack bytes each candidate
// search skips over (the "skip yield"): a rare byte that is actually rare in
// a given haystack lets Find jump far ahead each call, while a rare byte
// that turns out to be dense degenerates into advancing almost one byte at
// a time — no better than (and, with the prefilter's own overhead, worse
// than) the plain two-way loop it was meant to accelerate. When the yield
// drops below a threshold, the prefilter is disabled for the remainder of
// the search to prevent that pathological multiplicative slowdown.
//
// This is the concrete realization of the distilled spec's "Prefilter
// state: a monotone counter of skipped bytes vs invocations" (and of
// original_source/twoway.rs's own PrefilterState doc: "the number of
// skipped bytes is tracked, and if it's too low after a certain number of
// skips, the prefilter is disabled"). An earlier revision of this tracker
// measured confirmed-matches-per-candidate instead; that degenerates to
// zero over the course of a single Find call (a confirmed match ends the
// search immediately), which starves the metric of any signal before it
// can observe real skip behavior. Tracking skip distance directly is
// signal the tracker can observe on every single candidate, independent of
// whether or how the search ultimately concludes.
//
// Algorithm:
//  1. Track skips (prefilter invocations that found a candidate) and
//     skipped (total haystack bytes jumped over by those invocations)
//  2. Every N skips, check the average skip distance
//  3. If the average falls below threshold, disable the prefilter
//  4. Once disabled, never re-enable (for this search)
//
// Example usage:
//
//	tracker := prefilter.NewTracker(prefilter.NewRareByte(needle))
//	for tracker.IsEffective() {
//	    pos := tracker.Find(haystack, start)
//	    if pos == -1 {
//	        break
//	    }
//	    if fullMatchAt(haystack, pos) {
//	        tracker.ConfirmMatch()
//	        return pos
//	    }
//	    start = pos + 1
//	}
type Tracker struct {
	inner Prefilter

	skips    uint64 // total prefilter invocations that produced a candidate
	skipped  uint64 // total haystack bytes those invocations jumped over
	confirms uint64 // confirmed matches (verified by the searcher); observability only

	checkInterval  uint64  // check effectiveness every N skips
	minSkipBytes   float64 // minimum required average bytes skipped per call
	warmupPeriod   uint64  // don't disable until this many skips
	lastCheckpoint uint64  // skips at last checkpoint

	active bool // whether the prefilter is still being consulted
}

// TrackerConfig holds configuration for the effectiveness tracker.
type TrackerConfig struct {
	// CheckInterval is how often to check effectiveness (in skips).
	// Default: 64
	CheckInterval uint64

	// MinSkipBytes is the minimum acceptable average number of haystack
	// bytes skipped per prefilter invocation. If the average drops below
	// this, the prefilter is disabled.
	// Default: 2.0
	MinSkipBytes float64

	// WarmupPeriod is the minimum number of skips before checking
	// effectiveness at all. Prevents premature disabling on small samples.
	// Default: 128
	WarmupPeriod uint64
}

// DefaultTrackerConfig returns the default tracker configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 64,
		MinSkipBytes:  2.0,
		WarmupPeriod:  128,
	}
}

// NewTracker creates a tracker for the given prefilter with default config.
func NewTracker(inner Prefilter) *Tracker {
	return NewTrackerWithConfig(inner, DefaultTrackerConfig())
}

// NewTrackerWithConfig creates a tracker with custom configuration.
//
// A Tracker wrapping Inert starts permanently inactive: should_prefilter's
// short-circuit (is_effective && haystack long enough) falls out of
// IsEffective alone, with no special-casing of Inert required in the
// searcher's hot loop.
func NewTrackerWithConfig(inner Prefilter, config TrackerConfig) *Tracker {
	_, inert := inner.(Inert)
	return &Tracker{
		inner:         inner,
		checkInterval: config.CheckInterval,
		minSkipBytes:  config.MinSkipBytes,
		warmupPeriod:  config.WarmupPeriod,
		active:        !inert,
	}
}

// Find returns the next candidate position, or -1 if none is found or the
// prefilter has been disabled.
func (t *Tracker) Find(haystack []byte, start int) int {
	if !t.active {
		return -1
	}

	pos := t.inner.Find(haystack, start)
	if pos >= 0 {
		t.skips++
		if pos > start {
			t.skipped += uint64(pos - start)
		}
		t.checkEffectiveness()
	}
	return pos
}

// ConfirmMatch must be called whenever the caller verifies that a candidate
// Find returned is a genuine needle occurrence. It is tracked for Stats
// observability only; effectiveness is judged by skip yield (see Tracker's
// doc comment), not by confirmed-match rate.
func (t *Tracker) ConfirmMatch() {
	t.confirms++
}

// IsEffective reports whether the prefilter is still worth consulting.
//
// Once false, it stays false for the remainder of this search (this Tracker
// value); the caller should fall back to the pure two-way loop.
func (t *Tracker) IsEffective() bool {
	return t.active
}

// Stats returns the current tracking statistics: (skips, skipped bytes,
// average bytes skipped per call, active).
func (t *Tracker) Stats() (skips, skipped uint64, avgSkip float64, active bool) {
	skips = t.skips
	skipped = t.skipped
	if skips > 0 {
		avgSkip = float64(skipped) / float64(skips)
	}
	active = t.active
	return
}

// Reset clears statistics, re-enables the prefilter, and resets the wrapped
// Prefilter's own scanning state, so the same Tracker can be reused to begin
// an unrelated search.
func (t *Tracker) Reset() {
	t.skips = 0
	t.skipped = 0
	t.confirms = 0
	t.lastCheckpoint = 0
	_, inert := t.inner.(Inert)
	t.active = !inert
	t.inner.Reset()
}

// Inner returns the underlying prefilter.
func (t *Tracker) Inner() Prefilter {
	return t.inner
}

// checkEffectiveness evaluates whether to disable the prefilter. Called
// after each candidate is found; only performs the actual check at
// configured intervals to minimize overhead.
func (t *Tracker) checkEffectiveness() {
	if t.skips < t.warmupPeriod {
		return
	}
	if t.skips-t.lastCheckpoint < t.checkInterval {
		return
	}
	t.lastCheckpoint = t.skips

	avgSkip := float64(t.skipped) / float64(t.skips)
	if avgSkip < t.minSkipBytes {
		t.active = false
	}
}
