package lgtokenize

// Token decoration markers (spec §3). These are single characters reserved
// inside interned alternative strings; they are exported from the root
// package because every subpackage (affix, dict, wordsep, sentence) needs
// to recognize or emit them, and none of those packages may import each
// other cyclically.
const (
	// InfixMark separates a stem from an affix in an emitted alternative,
	// e.g. "play" + "=ed".
	InfixMark = '='
	// SubscriptMark separates a base word from its dictionary sense
	// subscript, e.g. "run.v".
	SubscriptMark = '.'
	// EmptyWordMark fills unused columns so every position in an emission
	// group has the same alternative count (the balancing invariant).
	EmptyWordMark = "ZZZ"
)

// Suffix markers appended to a whole alternative string (not a single
// character, since they must survive string interning and equality
// comparisons untouched).
const (
	// SpellGuessSuffix marks an alternative that originated from a
	// spellcheck suggestion rather than a dictionary/regex/affix match.
	SpellGuessSuffix = "[~]"
	// RegexDeferredSuffix marks an alternative that must be resolved via
	// regex at the expression-building stage (the "parallel-regex" test
	// flag, spec §9 open question — treated as a single flag here).
	RegexDeferredSuffix = "[!]"
)

// Wall and unknown-word surface forms (spec §6).
const (
	LeftWallWord  = "LEFT-WALL"
	RightWallWord = "RIGHT-WALL"
	UnknownWord   = "UNKNOWN-WORD"
)

// Size and bound constants (spec §4.4, §6).
const (
	// MaxWord is the byte bound on any single alternative.
	MaxWord = 60
	// MaxStrip is the maximum number of right-strip iterations attempted
	// in C4 Stage 3 before the long-sequence escape (Stage 8) triggers.
	MaxStrip = 10
	// MaxPrefixChain bounds the length of a multi-prefix (MPRE) chain in
	// C4 Stage 7.
	MaxPrefixChain = 5
	// MaxMPRETableSize bounds the number of configured MPRE entries.
	MaxMPRETableSize = 16
	// MaxNumSpellGuesses bounds how many suggestions the spellcheck
	// facade is asked for in C4 Stage 11.
	MaxNumSpellGuesses = 60
)

// TestFlag names recognized in Options.TestFlags (spec §6).
const (
	TestFlagNoSuffixes    = "no-suffixes"
	TestFlagParallelRegex = "parallel-regex"
	// TestFlagParallelRegexAlias is accepted as a synonym for
	// TestFlagParallelRegex and normalized to it on Config load (spec §9
	// open question: treat "parallel-regex"/"parallels-regex" as one
	// flag).
	TestFlagParallelRegexAlias = "parallels-regex"
)

// Options are the options consumed by the tokenizer (spec §6).
type Options struct {
	UseSpellGuess     bool
	DisplayMorphology bool
	Verbosity         int
	TestFlags         map[string]bool
}

// HasTestFlag reports whether a test flag is set, normalizing the
// parallel-regex alias.
func (o Options) HasTestFlag(name string) bool {
	if o.TestFlags == nil {
		return false
	}
	if name == TestFlagParallelRegex {
		return o.TestFlags[TestFlagParallelRegex] || o.TestFlags[TestFlagParallelRegexAlias]
	}
	return o.TestFlags[name]
}
