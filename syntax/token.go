package syntax

// Kind identifies the atomic token variants.
type Kind uint8

const (
	// KindLiteral matches one specific rune.
	KindLiteral Kind = iota

	// KindDigit matches an ASCII decimal digit (\d).
	KindDigit

	// KindWord matches an ASCII alphanumeric rune or underscore (\w).
	KindWord

	// KindClass matches by membership in an explicit rune set ([...] / [^...]).
	KindClass
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindDigit:
		return "Digit"
	case KindWord:
		return "Word"
	case KindClass:
		return "Class"
	}
	return "Unknown"
}

// Quant is the repetition mode attached to an atomic token.
//
// The grammar only allows a quantifier suffix directly after an atom, so a
// quantified token is always exactly one atom plus one mode; representing the
// mode as a field keeps that invariant structural instead of needing a
// recursive wrapper node.
type Quant uint8

const (
	// QuantNone consumes the atom exactly once.
	QuantNone Quant = iota

	// QuantOneOrMore consumes the atom one or more times (suffix +).
	QuantOneOrMore

	// QuantZeroOrOne consumes the atom zero or one time (suffix ?).
	QuantZeroOrOne
)

// String returns a human-readable name for the quantifier mode.
func (q Quant) String() string {
	switch q {
	case QuantNone:
		return "None"
	case QuantOneOrMore:
		return "OneOrMore"
	case QuantZeroOrOne:
		return "ZeroOrOne"
	}
	return "Unknown"
}

// Token is one unit of a compiled pattern: an atom identified by Kind plus
// the quantifier mode applied to it.
//
// A token sequence is immutable once produced by Tokenize. Class holds the
// member runes in pattern order; duplicates are allowed because only
// membership matters.
type Token struct {
	Kind    Kind
	Lit     rune   // payload for KindLiteral
	Class   []rune // payload for KindClass
	Negated bool   // payload for KindClass
	Quant   Quant
}

// Matches reports whether a single rune satisfies the token's atom predicate.
// The quantifier mode is not consulted here; repetition is the matcher's job.
func (t *Token) Matches(r rune) bool {
	switch t.Kind {
	case KindLiteral:
		return r == t.Lit

	case KindDigit:
		return r >= '0' && r <= '9'

	case KindWord:
		return r >= '0' && r <= '9' ||
			r >= 'a' && r <= 'z' ||
			r >= 'A' && r <= 'Z' ||
			r == '_'

	case KindClass:
		for _, m := range t.Class {
			if m == r {
				return !t.Negated
			}
		}
		return t.Negated
	}
	return false
}
