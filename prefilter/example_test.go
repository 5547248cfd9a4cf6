package prefilter_test

import (
	"fmt"

	"github.com/coregx/twoway/prefilter"
)

// ExampleRareByte demonstrates using the rare-byte prefilter directly.
func ExampleRareByte() {
	pf := prefilter.NewRareByte([]byte("needle"))

	haystack := []byte("a haystack containing needle somewhere")
	pos := pf.Find(haystack, 0)
	fmt.Printf("candidate at %d\n", pos)

	// Output:
	// candidate at 22
}

// ExampleTracker demonstrates the effectiveness-tracking loop a two-way
// searcher runs internally: consult the prefilter for a candidate, verify
// it, and confirm or continue.
func ExampleTracker() {
	needle := []byte("needle")
	tracker := prefilter.NewTracker(prefilter.NewRareByte(needle))

	haystack := []byte("a haystack containing needle somewhere")
	start := 0
	for tracker.IsEffective() {
		pos := tracker.Find(haystack, start)
		if pos == -1 {
			fmt.Println("exhausted")
			break
		}
		if pos+len(needle) <= len(haystack) && string(haystack[pos:pos+len(needle)]) == string(needle) {
			tracker.ConfirmMatch()
			fmt.Printf("match at %d\n", pos)
			break
		}
		start = pos + 1
	}

	// Output:
	// match at 22
}
