// Package microgrep provides a small pattern-matching engine implementing a
// regex subset: literal runes, the \d and \w classes, bracket classes with
// optional negation, the ^ and $ anchors, and the + and ? quantifiers.
//
// The engine is a backtracking matcher with greedy-first quantifier
// resolution, combined with literal prefiltering: patterns that begin with
// concrete bytes are located with a fast scan (single-byte SWAR search or an
// Aho-Corasick automaton over the alternative prefixes) before the matcher
// verifies candidates.
//
// Basic usage:
//
//	re := microgrep.Compile(`colou?r`)
//	if re.MatchString("a colour swatch") {
//	    println("matched!")
//	}
//
// Compile never fails. Malformed pattern syntax (a dangling trailing
// backslash, an unterminated bracket class) degrades to a best-effort
// pattern instead of an error; that permissiveness is part of the engine's
// contract. The grammar has no alternation, grouping, back-references,
// counted repetition, or Unicode-aware classes.
//
// Worst-case matching time is exponential in the number of adjacent
// quantified tokens; the engine trades ReDoS resistance for simplicity and
// is intended for small, trusted patterns.
package microgrep

import (
	"unicode/utf8"

	"github.com/coregx/microgrep/meta"
)

// Regex represents a compiled pattern.
//
// A Regex is immutable apart from internal statistics counters and is safe
// for concurrent use.
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a pattern.
//
// Unlike most regex libraries there is no error result: the tokenizer
// tolerates malformed input by design, so every string compiles.
//
// Example:
//
//	re := microgrep.Compile(`^\d+$`)
//	re.MatchString("12345") // true
func Compile(pattern string) *Regex {
	return &Regex{
		engine:  meta.Compile(pattern),
		pattern: pattern,
	}
}

// CompileWithConfig compiles a pattern with a custom engine configuration.
//
// Example:
//
//	config := microgrep.DefaultConfig()
//	config.EnablePrefilter = false
//	re := microgrep.CompileWithConfig("needle", config)
func CompileWithConfig(pattern string, config meta.Config) *Regex {
	return &Regex{
		engine:  meta.CompileWithConfig(pattern, config),
		pattern: pattern,
	}
}

// DefaultConfig returns the default engine configuration, suitable for
// customizing and passing to CompileWithConfig.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// Match reports whether the byte slice b contains any match of the pattern.
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(b)
}

// MatchString reports whether the string s contains any match of the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// Find returns a slice holding the text of the leftmost match in b.
// Returns nil if no match is found.
//
// Example:
//
//	re := microgrep.Compile(`\d+`)
//	match := re.Find([]byte("age: 42"))
//	println(string(match)) // "42"
func (r *Regex) Find(b []byte) []byte {
	m := r.engine.Find(b)
	if m == nil {
		return nil
	}
	return m.Bytes()
}

// FindString returns a string holding the text of the leftmost match in s.
// Returns the empty string if no match is found (indistinguishable from an
// empty match; use FindStringIndex to tell them apart).
func (r *Regex) FindString(s string) string {
	m := r.engine.Find([]byte(s))
	if m == nil {
		return ""
	}
	return m.String()
}

// FindIndex returns a two-element slice of integers defining the location of
// the leftmost match in b: the match is at b[loc[0]:loc[1]].
// Returns nil if no match is found.
func (r *Regex) FindIndex(b []byte) []int {
	m := r.engine.Find(b)
	if m == nil {
		return nil
	}
	return []int{m.Start(), m.End()}
}

// FindStringIndex returns a two-element slice of integers defining the
// location of the leftmost match in s. Returns nil if no match is found.
func (r *Regex) FindStringIndex(s string) []int {
	return r.FindIndex([]byte(s))
}

// FindAll returns a slice of all successive non-overlapping matches in b.
// If n > 0, it returns at most n matches; n <= 0 returns all matches.
func (r *Regex) FindAll(b []byte, n int) [][]byte {
	indices := r.FindAllIndex(b, n)
	if indices == nil {
		return nil
	}
	matches := make([][]byte, len(indices))
	for i, idx := range indices {
		matches[i] = b[idx[0]:idx[1]]
	}
	return matches
}

// FindAllString returns a slice of all successive non-overlapping matches
// in s. If n > 0, it returns at most n matches; n <= 0 returns all matches.
func (r *Regex) FindAllString(s string, n int) []string {
	matches := r.FindAll([]byte(s), n)
	if matches == nil {
		return nil
	}
	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = string(m)
	}
	return result
}

// FindAllIndex returns the start/end index pairs of all successive
// non-overlapping matches in b. If n > 0, it returns at most n matches;
// n <= 0 returns all matches. Returns nil if there are none.
func (r *Regex) FindAllIndex(b []byte, n int) [][]int {
	if n == 0 {
		return nil
	}

	var indices [][]int
	pos := 0
	for pos <= len(b) {
		m := r.engine.FindAt(b, pos)
		if m == nil {
			break
		}
		indices = append(indices, []int{m.Start(), m.End()})

		if m.End() > pos {
			pos = m.End()
		} else {
			// Empty match: advance one rune to avoid an infinite loop.
			if pos >= len(b) {
				break
			}
			_, width := utf8.DecodeRune(b[pos:])
			pos += width
		}

		if n > 0 && len(indices) >= n {
			break
		}
	}
	return indices
}

// FindAllStringIndex returns the start/end index pairs of all successive
// non-overlapping matches in s. Returns nil if there are none.
func (r *Regex) FindAllStringIndex(s string, n int) [][]int {
	return r.FindAllIndex([]byte(s), n)
}

// Count returns the number of non-overlapping matches in b.
// If n > 0, counts at most n matches; n <= 0 counts all matches.
func (r *Regex) Count(b []byte, n int) int {
	return r.engine.Count(b, n)
}

// CountString returns the number of non-overlapping matches in s.
func (r *Regex) CountString(s string, n int) int {
	return r.Count([]byte(s), n)
}

// String returns the source text used to compile the pattern.
func (r *Regex) String() string {
	return r.pattern
}
