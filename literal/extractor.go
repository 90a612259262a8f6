package literal

import (
	"github.com/coregx/microgrep/syntax"
)

// ExtractorConfig configures literal extraction limits.
//
// The limits keep extraction useful rather than exhaustive:
//   - MaxLiterals bounds the prefix-set size when optional atoms and bracket
//     classes fork alternatives
//   - MaxLiteralLen bounds individual prefix length; long literals stop
//     paying for themselves in the prefilter
//   - MaxClassSize bounds which bracket classes are expanded per-member
type ExtractorConfig struct {
	// MaxLiterals limits the number of alternative prefixes.
	// Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the byte length of each prefix.
	// Default: 64.
	MaxLiteralLen int

	// MaxClassSize limits the member count of bracket classes that get
	// expanded into one alternative per member. Default: 10.
	MaxClassSize int
}

// DefaultConfig returns the default extraction limits.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxClassSize:  10,
	}
}

// Extractor extracts literal prefix sets from compiled token sequences.
type Extractor struct {
	config ExtractorConfig
}

// New creates an extractor with the given limits.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// ExtractPrefixes walks the token sequence from the front and collects the
// set of byte strings a body match can begin with.
//
// Extraction advances while tokens are literal-like and stops at the first
// token whose contribution is not a fixed rune set:
//   - an unquantified literal appends its rune to every alternative
//   - an unquantified small positive class forks one alternative per member
//   - a zero-or-one literal forks each alternative with and without the rune
//   - a one-or-more literal appends one occurrence, then stops (further
//     repetitions make the following offsets variable)
//   - \d, \w, negated or large classes stop extraction
//
// Stopping early is sound: the alternatives gathered so far are still
// required prefixes of any match. Literals are marked Complete only when
// every token was consumed exactly, so a prefilter hit is itself a full body
// match. The returned Seq is empty when no non-empty prefix is required
// (e.g. the body starts with \d, or with an optional atom).
func (e *Extractor) ExtractPrefixes(tokens []syntax.Token) *Seq {
	variants := [][]byte{nil}
	complete := true

scan:
	for i := range tokens {
		tok := &tokens[i]

		switch tok.Quant {
		case syntax.QuantNone:
			switch tok.Kind {
			case syntax.KindLiteral:
				if !e.fitsAfter(variants, tok.Lit) {
					complete = false
					break scan
				}
				variants = appendToAll(variants, tok.Lit)

			case syntax.KindClass:
				members := uniqueMembers(tok.Class)
				if tok.Negated || len(members) == 0 || len(members) > e.config.MaxClassSize {
					complete = false
					break scan
				}
				if len(variants)*len(members) > e.config.MaxLiterals || !e.fitsAfterAny(variants, members) {
					complete = false
					break scan
				}
				variants = forkPerMember(variants, members)

			default: // \d, \w
				complete = false
				break scan
			}

		case syntax.QuantZeroOrOne:
			if tok.Kind != syntax.KindLiteral {
				complete = false
				break scan
			}
			if len(variants)*2 > e.config.MaxLiterals || !e.fitsAfter(variants, tok.Lit) {
				complete = false
				break scan
			}
			variants = append(variants, appendToAll(copyVariants(variants), tok.Lit)...)

		case syntax.QuantOneOrMore:
			if tok.Kind == syntax.KindLiteral && e.fitsAfter(variants, tok.Lit) {
				// One occurrence is guaranteed; anything beyond it shifts
				// the following offsets, so extraction ends here.
				variants = appendToAll(variants, tok.Lit)
			}
			complete = false
			break scan
		}
	}

	seq := &Seq{}
	for _, v := range variants {
		if len(v) == 0 {
			// A possible empty prefix means no leading bytes are required;
			// the whole set is unusable for prefiltering.
			return &Seq{}
		}
		seq.Push(NewLiteral(v, complete))
	}
	return seq
}

// fitsAfter reports whether appending r keeps every variant within
// MaxLiteralLen.
func (e *Extractor) fitsAfter(variants [][]byte, r rune) bool {
	w := len(string(r))
	for _, v := range variants {
		if len(v)+w > e.config.MaxLiteralLen {
			return false
		}
	}
	return true
}

// fitsAfterAny reports whether appending each of rs keeps every variant
// within MaxLiteralLen.
func (e *Extractor) fitsAfterAny(variants [][]byte, rs []rune) bool {
	for _, r := range rs {
		if !e.fitsAfter(variants, r) {
			return false
		}
	}
	return true
}

func appendToAll(variants [][]byte, r rune) [][]byte {
	for i := range variants {
		variants[i] = append(variants[i], string(r)...)
	}
	return variants
}

func forkPerMember(variants [][]byte, members []rune) [][]byte {
	forked := make([][]byte, 0, len(variants)*len(members))
	for _, v := range variants {
		for _, m := range members {
			nv := make([]byte, len(v), len(v)+len(string(m)))
			copy(nv, v)
			forked = append(forked, append(nv, string(m)...))
		}
	}
	return forked
}

func copyVariants(variants [][]byte) [][]byte {
	out := make([][]byte, len(variants))
	for i, v := range variants {
		nv := make([]byte, len(v))
		copy(nv, v)
		out[i] = nv
	}
	return out
}

// uniqueMembers drops duplicate class members while preserving order.
// Duplicates are legal in the grammar but would produce duplicate literals.
func uniqueMembers(members []rune) []rune {
	out := members[:0:0]
	seen := make(map[rune]bool, len(members))
	for _, m := range members {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}
