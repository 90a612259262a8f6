// Package prefilter provides fast candidate filtering for pattern search
// using extracted literal prefixes.
//
// A prefilter quickly rejects positions in the haystack that cannot begin a
// match, so the backtracking matcher only runs at positions where one of the
// pattern's required prefixes actually occurs.
//
// The builder selects a strategy from the prefix set:
//   - single one-byte prefix → MemchrPrefilter (SWAR byte scan)
//   - single longer prefix → MemmemPrefilter (byte scan + prefix verify)
//   - several prefixes → AhoCorasickPrefilter (multi-pattern automaton)
//
// Example usage:
//
//	seq := extractor.ExtractPrefixes(tokens)
//	pf := prefilter.NewBuilder(seq).Build()
//	if pf != nil {
//	    pos := pf.Find(haystack, 0)
//	    // verify a full match at pos with the matcher
//	}
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/microgrep/literal"
)

// Prefilter finds candidate match positions before the matcher runs.
//
// A candidate is a position where one of the extracted prefixes occurs. It
// does not guarantee a full match; the caller must verify with the matcher
// unless IsComplete reports true.
type Prefilter interface {
	// Find returns the index of the first candidate at or after start,
	// or -1 if none exists.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate is itself a full match of the
	// pattern body, making verification unnecessary for unanchored searches.
	IsComplete() bool

	// HeapBytes returns the approximate heap memory held by the prefilter.
	HeapBytes() int
}

// Builder constructs a Prefilter from an extracted prefix set.
type Builder struct {
	seq *literal.Seq
}

// NewBuilder creates a builder over the given prefix set. A nil or empty
// set yields no prefilter.
func NewBuilder(seq *literal.Seq) *Builder {
	return &Builder{seq: seq}
}

// Build selects and constructs the prefilter strategy, or returns nil when
// the prefix set cannot support one (empty set, or a zero-length prefix,
// which would make every position a candidate).
func (b *Builder) Build() Prefilter {
	if b.seq == nil || b.seq.IsEmpty() || b.seq.MinLen() == 0 {
		return nil
	}

	complete := b.seq.AllComplete()

	if b.seq.Len() == 1 {
		lit := b.seq.Get(0)
		if lit.Len() == 1 {
			return &MemchrPrefilter{needle: lit.Bytes[0], complete: complete}
		}
		return &MemmemPrefilter{needle: lit.Bytes, complete: complete}
	}

	builder := ahocorasick.NewBuilder()
	total := 0
	for i := 0; i < b.seq.Len(); i++ {
		lit := b.seq.Get(i)
		builder.AddPattern(lit.Bytes)
		total += lit.Len()
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &AhoCorasickPrefilter{auto: auto, patternBytes: total, complete: complete}
}
