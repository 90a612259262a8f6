package meta

import (
	"github.com/coregx/microgrep/backtrack"
	"github.com/coregx/microgrep/literal"
	"github.com/coregx/microgrep/prefilter"
	"github.com/coregx/microgrep/syntax"
)

// Compile compiles a pattern with the default configuration.
//
// Compilation cannot fail: malformed syntax (dangling escape, unterminated
// bracket class) degrades to a best-effort token sequence by design.
func Compile(pattern string) *Engine {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with a custom configuration.
func CompileWithConfig(pattern string, config Config) *Engine {
	parsed := syntax.Parse(pattern)

	e := &Engine{
		pattern:       pattern,
		tokens:        parsed.Tokens,
		startAnchored: parsed.StartAnchored,
		endAnchored:   parsed.EndAnchored,
		bt:            backtrack.New(parsed.Tokens),
		config:        config,
	}

	e.strategy = UseScan
	if e.startAnchored {
		// Only offset 0 can begin a match; a prefilter has nothing to add.
		e.strategy = UseAnchoredScan
		return e
	}

	if config.EnablePrefilter {
		if pf := buildPrefilter(parsed.Tokens, config); pf != nil {
			e.pf = pf
			e.strategy = UsePrefilteredScan
		}
	}
	return e
}

// buildPrefilter extracts literal prefixes from the token sequence and
// builds a prefilter over them. Returns nil when no usable prefixes exist.
func buildPrefilter(tokens []syntax.Token, config Config) prefilter.Prefilter {
	extractor := literal.New(literal.ExtractorConfig{
		MaxLiterals:   config.MaxLiterals,
		MaxLiteralLen: config.MaxLiteralLen,
		MaxClassSize:  config.MaxClassSize,
	})
	seq := extractor.ExtractPrefixes(tokens)
	if seq.IsEmpty() || seq.MinLen() < config.MinLiteralLen {
		return nil
	}
	return prefilter.NewBuilder(seq).Build()
}
