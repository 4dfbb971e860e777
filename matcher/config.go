package matcher

// Config tunes optional, non-semantic aspects of PatternMatcher
// construction. Every field has a safe default; no option changes the
// matching semantics of spec §4.6–§4.7, only how PatternMatcher gets
// there. Shaped after the teacher's dfa/lazy/config.go Config/
// DefaultConfig() pair.
type Config struct {
	// UsePrefilter builds the optional Aho-Corasick literal prefilter
	// (package prefilter) when every row pattern in the catalogue is
	// wildcard-free, exposed through HasLiteralPrefilter and
	// MayContainRowLiteral; recompute does not consult it. Ignored
	// (silently unused) when any row pattern contains a wildcard atom.
	UsePrefilter bool
}

// DefaultConfig returns the configuration used by NewPatternMatcher.
func DefaultConfig() Config {
	return Config{UsePrefilter: true}
}
