package wordsep

import (
	"strings"
	"unicode/utf8"

	"github.com/janphilipps/lgtokenize"
	"github.com/janphilipps/lgtokenize/affix"
	"github.com/janphilipps/lgtokenize/charclass"
	"github.com/janphilipps/lgtokenize/dict"
)

// Separate runs the thirteen-stage pipeline (spec §4.4) over one
// whitespace- and quote-free orthographic chunk and commits the result
// onto sink. It never returns an error: DecodeError is the only fatal
// condition C4 can encounter and the driver (sentence package) decodes
// the chunk before calling Separate, so nothing here can fail the
// sentence. The returned Diagnostics records the two named non-fatal
// conditions (spec §7) for callers that want visibility into them.
func Separate(sink Sink, chunk string, quoteFound bool, ctx PositionContext, opts lgtokenize.Options, deps Deps) Diagnostics {
	var diag Diagnostics
	oracle := deps.Dict
	aff := deps.Affix

	// Stage 1 — initial whole-word probe. The result isn't used to
	// short-circuit anything; it only seeds word_is_in_dict, which
	// Stage 3 needs before any stripping has happened.
	wholeWordFound := oracle.Find(chunk)

	// Stage 2 — left strip.
	remaining := chunk
	pendingQuote := quoteFound
	for {
		p, ok := matchClassPrefix(remaining, aff.Class(affix.LPUNC))
		if !ok {
			break
		}
		sink.IssueSentenceWord(p, pendingQuote)
		pendingQuote = false
		remaining = remaining[len(p):]
	}
	if remaining == "" {
		return diag
	}

	origStartsDigit := charclass.StartsWithDigit(chunk)
	word := remaining

	// Stage 3 — right strip.
	var rStripped []string
	wordIsInDict := wholeWordFound && word == chunk
	prevWasUnit := false
	strips := 0
	for strips < lgtokenize.MaxStrip {
		if oracle.Find(word) {
			wordIsInDict = true
			break
		}
		if p, ok := matchClassSuffix(word, aff.Class(affix.RPUNC)); ok {
			rStripped = append(rStripped, p)
			word = word[:len(word)-len(p)]
			prevWasUnit = false
			strips++
			continue
		}
		if origStartsDigit && !prevWasUnit {
			if p, ok := matchClassSuffix(word, aff.Class(affix.UNITS)); ok {
				rStripped = append(rStripped, p)
				word = word[:len(word)-len(p)]
				prevWasUnit = true
				strips++
				continue
			}
		}
		break
	}
	diag.TooManyStrips = strips >= lgtokenize.MaxStrip
	diag.WordIsInDict = wordIsInDict

	// Stage 8 runs conceptually here: on escape, the strips collected so
	// far are dropped and `word` reverts to the original remaining chunk.
	if diag.TooManyStrips {
		rStripped = nil
		word = remaining
	}

	var candidates [][]string

	// Stage 4 — whole-word addition.
	if oracle.ExactLookup(word) {
		candidates = append(candidates, []string{word})
	}

	// Stage 5 — suffix split (and Stage 6's case-folded retry of the same
	// logic).
	noSuffixMark := opts.HasTestFlag(lgtokenize.TestFlagNoSuffixes)
	splitCandidates, split := suffixSplit(word, aff, oracle, noSuffixMark)
	candidates = append(candidates, splitCandidates...)
	wordCanSplit := split

	upper := startsUpper(word)
	if upper && ctx.IsCapitalizable() {
		downcased := charclass.Downcase(word)
		if downcased != word {
			retryCandidates, retrySplit := suffixSplit(downcased, aff, oracle, noSuffixMark)
			candidates = append(candidates, retryCandidates...)
			wordCanSplit = wordCanSplit || retrySplit
		}
	}

	// Stage 7 — multi-prefix split.
	if aff.HasMultiPrefix() {
		mpre := mprefixSplit(word, aff, oracle)
		if len(mpre) > 0 {
			candidates = append(candidates, mpre...)
			wordCanSplit = true
		}
	}
	diag.WordCanSplit = wordCanSplit

	// Stage 9 — capitalization alternatives.
	if upper {
		if !wordCanSplit && !diag.TooManyStrips {
			if charclass.IsAllUpperPrefix(word) {
				if _, ok := oracle.MatchRegex(word); ok {
					candidates = append(candidates, []string{word})
				}
			}
		}
		if ctx.IsCapitalizable() || quoteFound {
			downcased := charclass.Downcase(word)
			if oracle.ExactLookup(downcased) {
				// The downcased form is "additional": the original
				// surface form is kept as a candidate too, so a
				// sentence-initial capital like "Surprise" carries
				// both "Surprise" and "surprise" forward for the
				// grammar side to choose between.
				if len(candidates) == 0 {
					candidates = append(candidates, []string{word})
				}
				candidates = append(candidates, []string{downcased})
			}
		}
	}

	// Stage 10 — regex fallback.
	dictAccepted := wordIsInDict || wordCanSplit || oracle.ExactLookup(word)
	parallelRegex := opts.HasTestFlag(lgtokenize.TestFlagParallelRegex)
	if !dictAccepted || parallelRegex {
		if _, ok := oracle.MatchRegex(word); ok {
			if parallelRegex {
				candidates = append(candidates, []string{word + lgtokenize.RegexDeferredSuffix})
			} else {
				candidates = append(candidates, []string{word})
			}
		}
	}

	// Stage 11 — spellcheck fallback.
	properNoun := startsUpper(word)
	if !dictAccepted && !properNoun && opts.UseSpellGuess && deps.Spell != nil && !charclass.IsNumber(word) {
		suggestions := deps.Spell.Suggest(word)
		if len(suggestions) > lgtokenize.MaxNumSpellGuesses {
			suggestions = suggestions[:lgtokenize.MaxNumSpellGuesses]
		}
		for _, sug := range suggestions {
			if strings.Contains(sug, " ") {
				parts := strings.Fields(sug)
				runOn := make([]string, len(parts))
				for i, p := range parts {
					runOn[i] = p + lgtokenize.SpellGuessSuffix
				}
				candidates = append(candidates, runOn)
				continue
			}
			if oracle.ExactLookup(sug) {
				candidates = append(candidates, []string{sug + lgtokenize.SpellGuessSuffix})
			}
		}
		diag.UnknownWord = len(suggestions) == 0
	} else if !dictAccepted {
		diag.UnknownWord = true
	}

	// Stage 12 — commit.
	if len(candidates) == 0 {
		sink.IssueSentenceWord(word, pendingQuote)
	} else {
		sink.IssueAlternatives(word, candidates, pendingQuote)
	}

	// Stage 13 — emit trailing strips in reverse order.
	for i := len(rStripped) - 1; i >= 0; i-- {
		sink.IssueSentenceWord(rStripped[i], false)
	}

	return diag
}

// suffixSplit implements Stage 5 for one case form of word (either as
// originally cased, or downcased by Stage 6's retry).
func suffixSplit(word string, aff *affix.Table, oracle dict.Oracle, noSuffixMark bool) ([][]string, bool) {
	var out [][]string
	split := false

	// The empty suffix is included only so the prefix bullet below can
	// produce prefix-only splits (p, middle, ∅); a bare stem==word,
	// suffix==∅ "split" would just duplicate Stage 4's whole-word
	// addition, so the stem bullet skips s == "".
	suffixes := append([]string{""}, aff.Class(affix.SUF)...)
	for _, s := range suffixes {
		if s != "" {
			if strings.HasSuffix(word, s) {
				stem := word[:len(word)-len(s)]
				if stem != "" && stemAccepted(stem, aff, oracle) {
					out = append(out, []string{stem, decorateSuffix(s, noSuffixMark)})
					split = true
				}
			}
		}

		for _, p := range aff.Class(affix.PRE) {
			if len(p)+len(s) >= len(word) || !strings.HasPrefix(word, p) || !strings.HasSuffix(word, s) {
				continue
			}
			middle := word[len(p) : len(word)-len(s)]
			if middle == "" || !oracle.ExactLookup(middle) {
				continue
			}
			out = append(out, []string{decoratePrefix(p), middle, decorateSuffix(s, noSuffixMark)})
			split = true
		}
	}

	return out, split
}

// stemAccepted mirrors Stage 5's "C3.find(stem)" check, additionally
// trying each STEMSUBSCR suffix when the table declares any.
func stemAccepted(stem string, aff *affix.Table, oracle dict.Oracle) bool {
	if oracle.Find(stem) {
		return true
	}
	for _, sigma := range aff.StemSubscripts() {
		if oracle.ExactLookup(stem + sigma) {
			return true
		}
	}
	return false
}

func decoratePrefix(p string) string {
	return p + string(rune(lgtokenize.InfixMark))
}

func decorateSuffix(s string, noSuffixMark bool) string {
	if s == "" {
		return string(rune(lgtokenize.InfixMark))
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !charclass.IsAlpha(r) || noSuffixMark {
		return s
	}
	return string(rune(lgtokenize.InfixMark)) + s
}

func startsUpper(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return charclass.IsUpper(r)
}

// matchClassPrefix returns the first entry in class (in list order) that
// prefixes s, if any.
func matchClassPrefix(s string, class []string) (string, bool) {
	for _, p := range class {
		if p != "" && strings.HasPrefix(s, p) {
			return p, true
		}
	}
	return "", false
}

// matchClassSuffix returns the first entry in class (in list order) that
// suffixes s, if any.
func matchClassSuffix(s string, class []string) (string, bool) {
	for _, p := range class {
		if p != "" && strings.HasSuffix(s, p) && len(p) < len(s) {
			return p, true
		}
	}
	return "", false
}
