package meta

// Match represents a successful match with position information.
//
// Start is inclusive, End is exclusive; both are byte offsets into the
// haystack the match was found in. The haystack is held by reference, so it
// must remain valid for the lifetime of the Match.
type Match struct {
	start    int
	end      int
	haystack []byte
}

// NewMatch creates a Match from start and end offsets into haystack.
func NewMatch(start, end int, haystack []byte) *Match {
	return &Match{
		start:    start,
		end:      end,
		haystack: haystack,
	}
}

// Start returns the inclusive start offset of the match.
func (m *Match) Start() int {
	return m.start
}

// End returns the exclusive end offset of the match.
func (m *Match) End() int {
	return m.end
}

// Len returns the length of the match in bytes.
func (m *Match) Len() int {
	return m.end - m.start
}

// Bytes returns the matched slice of the haystack. The slice aliases the
// haystack; callers must copy it if they outlive the haystack.
func (m *Match) Bytes() []byte {
	return m.haystack[m.start:m.end]
}

// String returns the matched text.
func (m *Match) String() string {
	return string(m.Bytes())
}
