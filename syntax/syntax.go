// Package syntax implements the pattern grammar accepted by microgrep.
//
// The grammar is a small regex subset: literal runes, the \d and \w escape
// classes, bracket classes with optional negation, the ^ and $ anchors, and
// the + and ? quantifier suffixes. Patterns are compiled by a single
// left-to-right scan with one rune of lookahead; there is no grammar table or
// parser infrastructure because the token set is fixed and tiny.
//
// Tokenization never fails. Malformed input degrades to a best-effort token
// sequence instead of an error:
//   - a trailing lone backslash produces no token
//   - an unterminated bracket class consumes the rest of the pattern as
//     members and terminates at end of string
//
// This permissiveness is part of the engine's contract, not an oversight;
// callers that want strict validation should use a full regex engine.
package syntax

import "strings"

// Pattern is a compiled pattern: the token sequence for the pattern body plus
// the anchor flags stripped from it. Both are immutable after Parse.
type Pattern struct {
	// Tokens is the compiled body, anchors excluded.
	Tokens []Token

	// StartAnchored is true if the raw pattern began with ^.
	StartAnchored bool

	// EndAnchored is true if the raw pattern (after any ^ strip) ended with $.
	EndAnchored bool
}

// Parse strips anchors from the raw pattern and tokenizes the remaining body.
//
// A leading ^ is stripped first, then a trailing $ from the shortened string,
// so "^$" yields both flags and an empty body. An empty body is legal: it
// compiles to zero tokens, and the engine gives it the empty-input semantics
// the anchors imply.
func Parse(pattern string) Pattern {
	var p Pattern

	body := pattern
	if strings.HasPrefix(body, "^") {
		p.StartAnchored = true
		body = body[1:]
	}
	if strings.HasSuffix(body, "$") {
		p.EndAnchored = true
		body = body[:len(body)-1]
	}

	p.Tokens = Tokenize(body)
	return p
}

// Tokenize compiles a pattern body (anchors already stripped) into an ordered
// token sequence. It is a pure function: the same body always yields the same
// sequence, with no state carried between calls.
func Tokenize(body string) []Token {
	rs := []rune(body)

	var tokens []Token
	i := 0
	for i < len(rs) {
		var tok Token

		switch rs[i] {
		case '\\':
			if i+1 >= len(rs) {
				// Dangling escape at end of pattern: dropped silently.
				return tokens
			}
			switch rs[i+1] {
			case 'd':
				tok = Token{Kind: KindDigit}
			case 'w':
				tok = Token{Kind: KindWord}
			default:
				tok = Token{Kind: KindLiteral, Lit: rs[i+1]}
			}
			i += 2

		case '[':
			i++
			negated := false
			if i < len(rs) && rs[i] == '^' {
				negated = true
				i++
			}
			var members []rune
			for i < len(rs) && rs[i] != ']' {
				members = append(members, rs[i])
				i++
			}
			if i < len(rs) {
				i++ // consume ']'
			}
			// An unterminated class swallowed the tail; members may be empty.
			tok = Token{Kind: KindClass, Class: members, Negated: negated}

		default:
			tok = Token{Kind: KindLiteral, Lit: rs[i]}
			i++
		}

		// One rune of lookahead for a quantifier suffix on the atom.
		if i < len(rs) {
			switch rs[i] {
			case '+':
				tok.Quant = QuantOneOrMore
				i++
			case '?':
				tok.Quant = QuantZeroOrOne
				i++
			}
		}

		tokens = append(tokens, tok)
	}

	return tokens
}
