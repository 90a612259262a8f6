// Package meta implements the engine orchestrator that ties the pattern
// syntax, the backtracking matcher, and the literal prefilters together.
//
// The engine compiles a pattern once, selects a search strategy, and then
// answers match queries:
//   - anchored patterns try exactly one start offset
//   - unanchored patterns with a usable literal prefix let a prefilter
//     propose candidate start offsets
//   - everything else enumerates every rune boundary as a start offset
//
// Compilation never fails: malformed pattern syntax degrades to a
// best-effort token sequence inside the syntax package, so the engine always
// has something to run.
package meta

// Config controls engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // force full scanning
//	engine := meta.CompileWithConfig("colou?r", config)
type Config struct {
	// EnablePrefilter enables literal-based prefiltering.
	// When false, no prefilter is built even if prefixes are available.
	// Default: true
	EnablePrefilter bool

	// MinLiteralLen is the minimum length of the shortest extracted prefix
	// for a prefilter to be worth building. Default: 1.
	MinLiteralLen int

	// MaxLiterals limits the number of alternative prefixes extracted from
	// optional atoms and bracket classes. Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the byte length of each extracted prefix.
	// Default: 64.
	MaxLiteralLen int

	// MaxClassSize limits the member count of bracket classes expanded into
	// one prefix alternative per member. Default: 10.
	MaxClassSize int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
		MinLiteralLen:   1,
		MaxLiterals:     64,
		MaxLiteralLen:   64,
		MaxClassSize:    10,
	}
}
