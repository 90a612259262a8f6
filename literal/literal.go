// Package literal extracts literal prefixes from compiled token sequences
// for prefilter optimization.
//
// The idea: every match of a pattern body must begin with one of a small set
// of concrete byte strings whenever the leading tokens are literal-like. A
// prefilter can then scan for those strings and propose candidate start
// offsets, so the backtracking matcher only runs where a match is possible.
//
// Key concepts:
//   - A Literal is a concrete byte sequence that may begin a match
//   - A Seq is the set of alternative prefixes (e.g. "color"/"colour" from
//     colou?r, or one per member of a small bracket class)
//   - A Literal is Complete when it covers the entire pattern body, so an
//     occurrence of it IS a body match and needs no verification
package literal

// Literal represents one literal prefix extracted from a pattern body.
type Literal struct {
	// Bytes is the concrete byte sequence.
	Bytes []byte

	// Complete indicates the literal covers the whole pattern body.
	// When false it is only a required prefix and candidates must be
	// verified by the matcher.
	Complete bool
}

// NewLiteral creates a Literal from the given bytes and completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// Seq is an ordered set of alternative literal prefixes.
//
// The zero value is an empty sequence, which means "no usable prefixes":
// extraction could not establish any required leading bytes.
type Seq struct {
	lits []Literal
}

// NewSeq creates a Seq from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{lits: lits}
}

// Push appends a literal to the sequence.
func (s *Seq) Push(l Literal) {
	s.lits = append(s.lits, l)
}

// Len returns the number of literals.
func (s *Seq) Len() int {
	return len(s.lits)
}

// IsEmpty reports whether the sequence holds no literals.
func (s *Seq) IsEmpty() bool {
	return len(s.lits) == 0
}

// Get returns the i-th literal.
func (s *Seq) Get(i int) Literal {
	return s.lits[i]
}

// AllComplete reports whether every literal covers the whole pattern body.
// Only then may a prefilter hit be accepted without running the matcher.
func (s *Seq) AllComplete() bool {
	if len(s.lits) == 0 {
		return false
	}
	for _, l := range s.lits {
		if !l.Complete {
			return false
		}
	}
	return true
}

// MinLen returns the length of the shortest literal, or 0 for an empty Seq.
func (s *Seq) MinLen() int {
	if len(s.lits) == 0 {
		return 0
	}
	min := s.lits[0].Len()
	for _, l := range s.lits[1:] {
		if l.Len() < min {
			min = l.Len()
		}
	}
	return min
}
