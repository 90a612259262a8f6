package meta

import (
	"sync/atomic"
	"unicode/utf8"
)

// IsMatch reports whether the pattern matches anywhere in the haystack.
func (e *Engine) IsMatch(haystack []byte) bool {
	// A complete prefilter covers the whole pattern body, so for a fully
	// unanchored pattern a candidate is already a match.
	if e.pf != nil && e.pf.IsComplete() && !e.endAnchored {
		atomic.AddUint64(&e.stats.PrefilterSeeks, 1)
		return e.pf.Find(haystack, 0) >= 0
	}
	return e.Find(haystack) != nil
}

// Find returns the leftmost match in the haystack, or nil if there is none.
func (e *Engine) Find(haystack []byte) *Match {
	return e.FindAt(haystack, 0)
}

// FindAt returns the leftmost match starting at or after byte offset at,
// or nil if there is none. at must lie on a rune boundary.
func (e *Engine) FindAt(haystack []byte, at int) *Match {
	if at < 0 || at > len(haystack) {
		return nil
	}

	// An empty body with at least one anchor matches the empty input only,
	// bypassing the matcher entirely.
	if len(e.tokens) == 0 && (e.startAnchored || e.endAnchored) {
		if len(haystack) == 0 {
			return NewMatch(0, 0, haystack)
		}
		return nil
	}

	if e.startAnchored {
		if at > 0 {
			return nil
		}
		return e.verify(haystack, 0)
	}

	for pos := at; pos <= len(haystack); {
		start := pos
		if e.pf != nil {
			atomic.AddUint64(&e.stats.PrefilterSeeks, 1)
			start = e.pf.Find(haystack, pos)
			if start < 0 {
				return nil
			}
		}

		if m := e.verify(haystack, start); m != nil {
			return m
		}

		if start >= len(haystack) {
			return nil
		}
		_, width := utf8.DecodeRune(haystack[start:])
		pos = start + width
	}
	return nil
}

// verify runs the backtracking matcher at one start offset and applies the
// end-anchor acceptance check to the returned end offset.
func (e *Engine) verify(haystack []byte, start int) *Match {
	atomic.AddUint64(&e.stats.BacktrackSearches, 1)
	end := e.bt.FindAt(haystack, start)
	if end < 0 {
		return nil
	}
	if e.endAnchored && end != len(haystack) {
		return nil
	}
	return NewMatch(start, end, haystack)
}

// Count returns the number of non-overlapping matches in the haystack.
// If n > 0, counting stops at n matches; n <= 0 counts all matches.
func (e *Engine) Count(haystack []byte, n int) int {
	if n == 0 {
		return 0
	}

	count := 0
	pos := 0
	for pos <= len(haystack) {
		m := e.FindAt(haystack, pos)
		if m == nil {
			break
		}
		count++
		if n > 0 && count >= n {
			break
		}

		if m.End() > pos {
			pos = m.End()
		} else {
			// Empty match: advance one rune to avoid an infinite loop.
			if pos >= len(haystack) {
				break
			}
			_, width := utf8.DecodeRune(haystack[pos:])
			pos += width
		}
	}
	return count
}
