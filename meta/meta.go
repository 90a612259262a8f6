package meta

import (
	"sync/atomic"

	"github.com/coregx/microgrep/backtrack"
	"github.com/coregx/microgrep/prefilter"
	"github.com/coregx/microgrep/syntax"
)

// Strategy identifies how the engine enumerates candidate start offsets.
type Strategy uint8

const (
	// UseScan tries every rune boundary in the haystack.
	UseScan Strategy = iota

	// UseAnchoredScan tries offset 0 only (start-anchored patterns).
	UseAnchoredScan

	// UsePrefilteredScan lets a literal prefilter propose candidates.
	UsePrefilteredScan
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case UseScan:
		return "Scan"
	case UseAnchoredScan:
		return "AnchoredScan"
	case UsePrefilteredScan:
		return "PrefilteredScan"
	}
	return "Unknown"
}

// Engine is a compiled pattern ready for matching.
//
// An Engine is immutable after compilation apart from its statistics
// counters, which are updated atomically, so it is safe for concurrent use.
type Engine struct {
	pattern       string
	tokens        []syntax.Token
	startAnchored bool
	endAnchored   bool

	bt       *backtrack.Backtracker
	pf       prefilter.Prefilter
	strategy Strategy
	config   Config

	stats Stats
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// BacktrackSearches counts invocations of the backtracking matcher.
	BacktrackSearches uint64

	// PrefilterSeeks counts candidate lookups delegated to the prefilter.
	PrefilterSeeks uint64
}

// Pattern returns the source text the engine was compiled from.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Strategy returns the search strategy selected at compile time.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// NumTokens returns the number of tokens in the compiled pattern body.
func (e *Engine) NumTokens() int {
	return len(e.tokens)
}

// Anchored reports the start- and end-anchor flags of the pattern.
func (e *Engine) Anchored() (start, end bool) {
	return e.startAnchored, e.endAnchored
}

// Stats returns a snapshot of the execution counters.
func (e *Engine) Stats() Stats {
	return Stats{
		BacktrackSearches: atomic.LoadUint64(&e.stats.BacktrackSearches),
		PrefilterSeeks:    atomic.LoadUint64(&e.stats.PrefilterSeeks),
	}
}

// ResetStats zeroes the execution counters.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.BacktrackSearches, 0)
	atomic.StoreUint64(&e.stats.PrefilterSeeks, 0)
}
