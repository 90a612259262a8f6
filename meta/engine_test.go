package meta

import (
	"testing"
)

func TestIsMatch(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		haystack string
		want     bool
	}{
		// Literals anywhere in the line.
		{"literal contained", "ell", "hello", true},
		{"literal absent", "xyz", "hello", false},
		{"literal at end", "lo", "hello", true},

		// Built-in classes.
		{"digit in mixed input", `\d`, "apple123", true},
		{"digit absent", `\d`, "apple", false},
		{"word class", `\w`, "...a...", true},
		{"word class absent", `\w`, "...!...", false},

		// Bracket classes.
		{"class hits", "[abc]", "xxbxx", true},
		{"class misses", "[abc]", "xyz", false},
		{"negated class hits", "[^xyz]", "banana", true},
		{"negated class exhausts", "[^xyz]", "xyz", false},

		// Quantifiers.
		{"one or more consumes run", "a+", "aaa", true},
		{"one or more requires one", "a+", "bbb", false},
		{"optional present", "colou?r", "colour", true},
		{"optional absent", "colou?r", "color", true},
		{"optional cannot double", "colou?r", "colouur", false},
		{"backtrack across tokens", "a+ab", "aaab", true},

		// Anchors.
		{"start anchor holds", "^hell", "hello", true},
		{"start anchor fails mid-line", "^ello", "hello", false},
		{"end anchor holds", "llo$", "hello", true},
		{"end anchor fails early", "hell$", "hello", false},
		{"full anchoring", "^hello$", "hello", true},
		{"full anchoring rejects longer", "^hello$", "hello!", false},
		{"end anchor forces full consumption", "a+$", "aaab", false},
		{"end anchor with full run", "a+$", "aaa", true},
		{"anchored digits", `^\d+$`, "12345", true},
		{"anchored digits broken", `^\d+$`, "12a45", false},

		// Empty-body anchors.
		{"lone start anchor empty input", "^", "", true},
		{"lone start anchor nonempty input", "^", "x", false},
		{"lone end anchor empty input", "$", "", true},
		{"lone end anchor nonempty input", "$", "x", false},
		{"both anchors empty input", "^$", "", true},
		{"both anchors nonempty input", "^$", "x", false},

		// Empty pattern, no anchors: matches everything.
		{"empty pattern empty input", "", "", true},
		{"empty pattern nonempty input", "", "abc", true},

		// Permissive degradation.
		{"dangling escape ignored", `ab\`, "xaby", true},
		{"unterminated class", "[abc", "b", true},
		{"unterminated class miss", "[abc", "z", false},
		{"empty class never matches", "[]", "anything", false},
		{"empty negated class matches any rune", "[^]", "a", true},

		// Multibyte runes.
		{"multibyte literal", "é", "café", true},
		{"multibyte quantified", "é+!", "idéé!", true},
		{"multibyte negated class", "[^é]", "ééé", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Compile(tt.pattern)
			if got := e.IsMatch([]byte(tt.haystack)); got != tt.want {
				t.Errorf("Compile(%q).IsMatch(%q) = %v, want %v",
					tt.pattern, tt.haystack, got, tt.want)
			}
		})
	}
}

// TestIsMatchAllStrategies runs the same cases with prefiltering disabled to
// pin that strategies only affect speed, never outcomes.
func TestIsMatchAllStrategies(t *testing.T) {
	cases := []struct {
		pattern  string
		haystack string
	}{
		{"ell", "hello"},
		{"colou?r", "my color!"},
		{"colou?r", "colouur"},
		{"[abc]x", "zzcxzz"},
		{"ab+c", "xabbbc"},
		{"llo$", "hello"},
		{`\d+`, "abc123"},
	}

	for _, tc := range cases {
		fast := Compile(tc.pattern)

		slow := DefaultConfig()
		slow.EnablePrefilter = false
		plain := CompileWithConfig(tc.pattern, slow)

		got := fast.IsMatch([]byte(tc.haystack))
		want := plain.IsMatch([]byte(tc.haystack))
		if got != want {
			t.Errorf("pattern %q on %q: prefiltered=%v, plain=%v",
				tc.pattern, tc.haystack, got, want)
		}
	}
}

func TestFindPositions(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		haystack  string
		wantStart int
		wantEnd   int
	}{
		{"leftmost literal", "an", "banana", 1, 3},
		{"greedy run", `\d+`, "ab1234cd", 2, 6},
		{"greedy prefers longest at start", "a+", "aaab", 0, 3},
		{"optional takes consuming branch", "colou?r", "colour", 0, 6},
		{"end anchored match", "na$", "banana", 4, 6},
		{"start anchored match", "^ba", "banana", 0, 2},
		{"empty pattern matches at origin", "", "abc", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Compile(tt.pattern).Find([]byte(tt.haystack))
			if m == nil {
				t.Fatalf("Find(%q) = nil, want [%d,%d)", tt.haystack, tt.wantStart, tt.wantEnd)
			}
			if m.Start() != tt.wantStart || m.End() != tt.wantEnd {
				t.Errorf("Find(%q) = [%d,%d) %q, want [%d,%d)",
					tt.haystack, m.Start(), m.End(), m.String(), tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestFindAt(t *testing.T) {
	e := Compile("an")
	haystack := []byte("banana")

	m := e.FindAt(haystack, 2)
	if m == nil || m.Start() != 3 || m.End() != 5 {
		t.Fatalf("FindAt(2) = %+v, want [3,5)", m)
	}
	if m := e.FindAt(haystack, 4); m != nil {
		t.Errorf("FindAt(4) = [%d,%d), want nil", m.Start(), m.End())
	}
	if m := e.FindAt(haystack, -1); m != nil {
		t.Error("FindAt(-1) should be nil")
	}
	if m := e.FindAt(haystack, len(haystack)+1); m != nil {
		t.Error("FindAt past end should be nil")
	}

	anchored := Compile("^ba")
	if m := anchored.FindAt(haystack, 1); m != nil {
		t.Error("start-anchored FindAt(1) should be nil")
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		pattern  string
		haystack string
		n        int
		want     int
	}{
		{"an", "banana", -1, 2},
		{"an", "banana", 1, 1},
		{"an", "banana", 0, 0},
		{`\d+`, "1 22 333", -1, 3},
		{`\d+`, "no digits", -1, 0},
		{"", "ab", -1, 3}, // empty match at every boundary
		{"^b", "banana", -1, 1},
	}

	for _, tt := range tests {
		e := Compile(tt.pattern)
		if got := e.Count([]byte(tt.haystack), tt.n); got != tt.want {
			t.Errorf("Compile(%q).Count(%q, %d) = %d, want %d",
				tt.pattern, tt.haystack, tt.n, got, tt.want)
		}
	}
}

func TestStrategySelection(t *testing.T) {
	tests := []struct {
		pattern string
		want    Strategy
	}{
		{"^abc", UseAnchoredScan},
		{"^abc$", UseAnchoredScan},
		{"abc", UsePrefilteredScan},
		{"colou?r", UsePrefilteredScan},
		{"[abc]x", UsePrefilteredScan},
		{"abc$", UsePrefilteredScan},
		{`\d+`, UseScan},
		{"[^abc]", UseScan},
		{"a?", UseScan}, // possibly-empty prefix, no prefilter
		{"", UseScan},
		{"$", UseScan},
	}

	for _, tt := range tests {
		e := Compile(tt.pattern)
		if e.Strategy() != tt.want {
			t.Errorf("Compile(%q).Strategy() = %v, want %v", tt.pattern, e.Strategy(), tt.want)
		}
	}

	config := DefaultConfig()
	config.EnablePrefilter = false
	if e := CompileWithConfig("abc", config); e.Strategy() != UseScan {
		t.Errorf("EnablePrefilter=false: Strategy() = %v, want %v", e.Strategy(), UseScan)
	}
}

func TestEngineAccessors(t *testing.T) {
	e := Compile("^colou?r$")
	if e.Pattern() != "^colou?r$" {
		t.Errorf("Pattern() = %q", e.Pattern())
	}
	if e.NumTokens() != 6 {
		t.Errorf("NumTokens() = %d, want 6", e.NumTokens())
	}
	start, end := e.Anchored()
	if !start || !end {
		t.Errorf("Anchored() = %v, %v, want true, true", start, end)
	}
}

func TestStats(t *testing.T) {
	e := Compile(`\d+x`)
	haystack := []byte("aaaa1234x")

	if !e.IsMatch(haystack) {
		t.Fatal("expected match")
	}
	stats := e.Stats()
	if stats.BacktrackSearches == 0 {
		t.Error("BacktrackSearches not counted")
	}

	e.ResetStats()
	if s := e.Stats(); s.BacktrackSearches != 0 || s.PrefilterSeeks != 0 {
		t.Errorf("ResetStats left %+v", s)
	}

	pf := Compile("needle")
	pf.IsMatch([]byte("hay needle hay"))
	if pf.Stats().PrefilterSeeks == 0 {
		t.Error("PrefilterSeeks not counted for prefiltered pattern")
	}
}

func TestConcurrentUse(t *testing.T) {
	e := Compile("colou?r")
	haystack := []byte("swatch of colour here")

	done := make(chan bool)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				if !e.IsMatch(haystack) {
					t.Error("concurrent IsMatch returned false")
					break
				}
			}
			done <- true
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
