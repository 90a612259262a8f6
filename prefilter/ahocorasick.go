package prefilter

import (
	"github.com/coregx/ahocorasick"
)

// AhoCorasickPrefilter scans for any of several required prefixes using a
// multi-pattern automaton. It is selected when extraction produced more than
// one alternative (optional atoms, small bracket classes).
type AhoCorasickPrefilter struct {
	auto         *ahocorasick.Automaton
	patternBytes int
	complete     bool
}

// Find returns the start of the first occurrence of any prefix at or after
// start, or -1 if none occurs.
func (p *AhoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsComplete reports whether a hit is a full body match.
func (p *AhoCorasickPrefilter) IsComplete() bool { return p.complete }

// HeapBytes returns a rough estimate of the automaton's memory, based on the
// total pattern bytes it was built from.
func (p *AhoCorasickPrefilter) HeapBytes() int {
	// The automaton's internal size is not exposed; the pattern bytes give a
	// stable lower bound useful for profiling comparisons.
	return p.patternBytes
}
