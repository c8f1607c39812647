// Package spell implements the spellcheck facade (spec §6), the one
// external collaborator the spec allows to block: "the tokenizer exposes
// no cancellation point — callers wishing to cancel must abandon the
// owning sentence" (spec §5).
//
// No repository in the retrieval pack ships a fuzzy-match or spellchecker
// library, so the two implementations here (NullOracle, StaticOracle) are
// deliberately stdlib-only test doubles rather than a production
// spellchecker — there is nothing in the corpus to ground a real one on,
// and the spec treats the spellcheck backend itself as an external
// collaborator (spec §1), not something this module must implement.
package spell

// Oracle is the spellcheck facade (spec §6).
type Oracle interface {
	// Test reports whether word is considered correctly spelled.
	Test(word string) bool
	// Suggest returns up to lgtokenize.MaxNumSpellGuesses candidate
	// corrections for word. A suggestion may contain an internal space,
	// which wordsep interprets as a run-on decomposition (spec §4.4 Stage
	// 11).
	Suggest(word string) []string
}

// NullOracle always reports a word as correctly spelled and never
// suggests anything. It is the default when Options.UseSpellGuess is
// false or no Oracle is configured, so C4 Stage 11 becomes a no-op
// without every caller needing a nil check.
type NullOracle struct{}

func (NullOracle) Test(string) bool        { return true }
func (NullOracle) Suggest(string) []string { return nil }

// StaticOracle is a test double driven by a fixed suggestion table,
// useful for exercising wordsep's Stage 11 without a live backend.
type StaticOracle struct {
	Correct     map[string]bool
	Suggestions map[string][]string
}

func (s StaticOracle) Test(word string) bool {
	if s.Correct == nil {
		return false
	}
	return s.Correct[word]
}

func (s StaticOracle) Suggest(word string) []string {
	return s.Suggestions[word]
}
