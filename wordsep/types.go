// Package wordsep implements the word separator (spec §4.4, component
// C4): given one whitespace- and quote-free orthographic chunk, it
// produces zero or more alternative tokenizations and commits them onto a
// Sink (implemented by the sentence package's Sentence) via the
// thirteen-stage pipeline spec §4.4 describes.
//
// wordsep intentionally does not import the sentence package: C5 drives
// C4, not the other way around (spec §4.5), so the dependency only goes
// one way. Sink is the narrow interface Sentence implements so wordsep
// can commit results without depending on its concrete type.
package wordsep

import (
	"github.com/janphilipps/lgtokenize/affix"
	"github.com/janphilipps/lgtokenize/dict"
	"github.com/janphilipps/lgtokenize/spell"
)

// Sink receives the alternatives a Separate call produces, matching the
// two sentence-level operations spec §3/§4.4 name: issue_alternatives and
// issue_sentence_word.
type Sink interface {
	// IssueAlternatives commits one emission group. candidates is the
	// ordered list of accepted analyses ("rows"); each candidate is a
	// sequence of already-decorated tokens occupying consecutive
	// positions starting at the group's first position. Analyses of
	// different widths are balanced into a rectangular matrix by the
	// Sink using lgtokenize.EmptyWordMark padding (spec §3 invariant 1).
	IssueAlternatives(unsplitWord string, candidates [][]string, quoteFound bool)
	// IssueSentenceWord commits a single trivial one-position,
	// one-alternative emission group.
	IssueSentenceWord(word string, quoteFound bool)
}

// PositionContext carries the state C5 (the sentence driver) must supply
// C4 so the capitalizability predicate (spec §4.4) can be evaluated
// without wordsep depending on the sentence package.
type PositionContext struct {
	// SentenceInitial is true iff this chunk begins the first non-wall
	// position of the sentence.
	SentenceInitial bool
	// PrevFirstAlt is the first alternative string committed at the
	// immediately preceding position, or "" if there is none.
	PrevFirstAlt string
	// PrevIsBullet reports whether PrevFirstAlt is a bullet string.
	PrevIsBullet bool
	// PostQuote reports whether the whitespace preceding this chunk
	// contained a quotation character.
	PostQuote bool
}

// IsCapitalizable implements the capitalizable-position predicate (spec
// §4.4): true iff the position is sentence-initial, follows a ":" or "."
// alternative, follows a bullet, or is marked post-quote.
func (c PositionContext) IsCapitalizable() bool {
	return c.SentenceInitial ||
		c.PrevFirstAlt == ":" ||
		c.PrevFirstAlt == "." ||
		c.PrevIsBullet ||
		c.PostQuote
}

// Deps bundles the read-only collaborators C4 consults (spec §4.4: the
// affix table, the dictionary oracle, and the optional spellcheck
// oracle).
type Deps struct {
	Affix *affix.Table
	Dict  dict.Oracle
	Spell spell.Oracle
}

// Diagnostics reports the non-fatal conditions spec §7 names
// (TooManyStrips, UnknownWord). Neither aborts tokenization; Separate
// always commits something onto the Sink. Diagnostics exists purely for
// callers that want visibility into which path a chunk took; the
// sentence driver discards it.
type Diagnostics struct {
	TooManyStrips bool
	UnknownWord   bool
	WordCanSplit  bool
	WordIsInDict  bool
}
