// Package backtrack implements the recursive backtracking matcher that drives
// microgrep's pattern engine.
//
// The matcher consumes a compiled token sequence against a haystack starting
// at a fixed byte offset. Quantifiers are resolved greedily first and then
// backtracked downward: a one-or-more atom consumes its maximal run and
// retries with one fewer repetition until the remaining tokens succeed, and a
// zero-or-one atom tries the consuming branch before the empty one. This is
// the conventional greedy quantifier semantics for the subset grammar.
//
// The search is a pure function of (haystack, tokens, position) with no
// shared state, so a Backtracker is safe for concurrent use. Worst-case time
// is exponential in the number of adjacent quantified tokens; that is an
// accepted property of the design, and the contract is match/no-match
// outcomes rather than a performance class.
package backtrack

import (
	"unicode/utf8"

	"github.com/coregx/microgrep/syntax"
)

// Backtracker matches one compiled token sequence against haystacks.
type Backtracker struct {
	tokens []syntax.Token
}

// New creates a backtracker for the given token sequence. The sequence is
// retained by reference and must not be mutated afterwards.
func New(tokens []syntax.Token) *Backtracker {
	return &Backtracker{tokens: tokens}
}

// NumTokens returns the number of tokens in the compiled sequence.
func (b *Backtracker) NumTokens() int {
	return len(b.tokens)
}

// FindAt attempts to match the full token sequence against haystack starting
// at byte offset pos. It returns the byte offset immediately after the last
// consumed rune on success, or -1 on failure.
//
// Anchors are the caller's concern: FindAt neither enumerates start offsets
// nor checks where the returned end lies.
func (b *Backtracker) FindAt(haystack []byte, pos int) int {
	return b.matchFrom(haystack, 0, pos)
}

// matchFrom matches tokens[ti:] at byte offset pos.
// Returns the end offset on success, -1 on failure.
func (b *Backtracker) matchFrom(haystack []byte, ti, pos int) int {
	if ti == len(b.tokens) {
		return pos
	}

	tok := &b.tokens[ti]
	switch tok.Quant {
	case syntax.QuantOneOrMore:
		return b.matchOneOrMore(haystack, ti, pos)

	case syntax.QuantZeroOrOne:
		if pos < len(haystack) {
			r, width := utf8.DecodeRune(haystack[pos:])
			if tok.Matches(r) {
				// Greedy branch first: consume the rune.
				if end := b.matchFrom(haystack, ti+1, pos+width); end >= 0 {
					return end
				}
			}
		}
		// Empty branch: skip the optional atom.
		return b.matchFrom(haystack, ti+1, pos)

	default:
		if pos >= len(haystack) {
			return -1
		}
		r, width := utf8.DecodeRune(haystack[pos:])
		if !tok.Matches(r) {
			return -1
		}
		return b.matchFrom(haystack, ti+1, pos+width)
	}
}

// matchOneOrMore resolves a one-or-more atom at tokens[ti]. It scans the
// maximal run of runes satisfying the atom, then tries repetition counts from
// the run length down to one, returning the first end offset at which the
// remaining tokens succeed.
func (b *Backtracker) matchOneOrMore(haystack []byte, ti, pos int) int {
	tok := &b.tokens[ti]

	// ends[n-1] is the byte offset after consuming n repetitions.
	var ends []int
	for off := pos; off < len(haystack); {
		r, width := utf8.DecodeRune(haystack[off:])
		if !tok.Matches(r) {
			break
		}
		off += width
		ends = append(ends, off)
	}
	if len(ends) == 0 {
		// At least one repetition is required.
		return -1
	}

	for n := len(ends); n >= 1; n-- {
		if end := b.matchFrom(haystack, ti+1, ends[n-1]); end >= 0 {
			return end
		}
	}
	return -1
}
