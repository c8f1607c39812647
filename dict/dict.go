// Package dict implements the dictionary oracle (spec §4.3): exact lookup
// and regex-aware lookup of candidate surface forms, plus the named-regex
// registry the word separator (wordsep) consults.
//
// The contract in spec §4.3 is load-bearing and easy to collapse by
// accident: ExactLookup and Find are deliberately two different
// operations. Regex matches may validate the *first word* of a contracted
// pair (spec Stage 5's "1960" in "1960's") but must never be used to
// validate the *stem* of an affix split — stems are exact-lookup only.
// Keeping two methods on Oracle (rather than one "is this a word" bool)
// is what lets wordsep enforce that distinction instead of re-deriving
// it.
package dict

// Oracle is the read-only dictionary facade (spec §6). A single Oracle is
// shared, read-only, across concurrently tokenized sentences (spec §5).
type Oracle interface {
	// ExactLookup reports whether s is literally a dictionary entry,
	// ignoring regex entries entirely.
	ExactLookup(s string) bool
	// Find reports whether ExactLookup(s) is true, or there exists a
	// named regex matching s whose name is itself a dictionary entry.
	Find(s string) bool
	// MatchRegex returns the name of a regex matching s, or "", false if
	// none matches.
	MatchRegex(s string) (name string, ok bool)
	// WordContains reports whether the dictionary entry for s (if any)
	// carries the given entity marker, e.g. a part-of-speech or capitalized-
	// entity annotation attached at load time.
	WordContains(s string, marker string) bool

	// LeftWallDefined, RightWallDefined and UnknownWordDefined report
	// whether the dictionary declares the corresponding synthetic entries
	// (spec §6).
	LeftWallDefined() bool
	RightWallDefined() bool
	UnknownWordDefined() bool
	// UseUnknownWord reports whether the downstream expression builder
	// should synthesize expressions for words with no dictionary/regex/
	// spell match, rather than reject them (spec §7).
	UseUnknownWord() bool
}

// Entry is one dictionary entry as loaded from a bundle: its exact form
// plus whatever entity markers it carries (e.g. "proper-noun",
// "abbreviation").
type Entry struct {
	Markers map[string]bool
}

// RegexEntry is one named regex entry: its name and its uncompiled
// pattern. NewMemOracle compiles the pattern; whether the name is itself
// a dictionary entry (the Find contract in spec §4.3) is checked at
// lookup time.
type RegexEntry struct {
	Name    string
	Pattern string
}

// memOracle is the default in-memory Oracle implementation, built by
// Load or NewMemOracle directly (e.g. from tests).
type memOracle struct {
	entries    map[string]Entry
	regexes    []compiledRegex
	leftWall   bool
	rightWall  bool
	unknown    bool
	useUnknown bool
}

type compiledRegex struct {
	name    string
	pattern string
	match   func(string) bool
}

// NewMemOracle builds an in-memory Oracle from already-resolved entries
// and regexes. Load (loader.go) is the usual entry point; this is exposed
// for tests and for callers assembling a dictionary programmatically.
func NewMemOracle(entries map[string]Entry, regexes []RegexEntry, leftWall, rightWall, unknown, useUnknown bool) (Oracle, error) {
	o := &memOracle{
		entries:    entries,
		leftWall:   leftWall,
		rightWall:  rightWall,
		unknown:    unknown,
		useUnknown: useUnknown,
	}
	for _, re := range regexes {
		matcher, err := compileRegex(re.Pattern)
		if err != nil {
			return nil, err
		}
		o.regexes = append(o.regexes, compiledRegex{name: re.Name, pattern: re.Pattern, match: matcher})
	}
	return o, nil
}

func (o *memOracle) ExactLookup(s string) bool {
	_, ok := o.entries[s]
	return ok
}

func (o *memOracle) Find(s string) bool {
	if o.ExactLookup(s) {
		return true
	}
	name, ok := o.MatchRegex(s)
	if !ok {
		return false
	}
	return o.ExactLookup(name)
}

func (o *memOracle) MatchRegex(s string) (string, bool) {
	for _, re := range o.regexes {
		if re.match(s) {
			return re.name, true
		}
	}
	return "", false
}

func (o *memOracle) WordContains(s string, marker string) bool {
	e, ok := o.entries[s]
	if !ok {
		return false
	}
	return e.Markers[marker]
}

func (o *memOracle) LeftWallDefined() bool    { return o.leftWall }
func (o *memOracle) RightWallDefined() bool   { return o.rightWall }
func (o *memOracle) UnknownWordDefined() bool { return o.unknown }
func (o *memOracle) UseUnknownWord() bool     { return o.useUnknown }
