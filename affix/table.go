// Package affix implements the affix table accessor (spec §4.2): a
// read-only, per-locale view over affix classes (LPUNC, RPUNC, UNITS,
// PRE, SUF, MPRE, QUOTES, BULLETS, STEMSUBSCR).
//
// Grounded on the teacher's tokenizer/dialect.go KeywordSet: a
// package-level declarative map keyed by tag, generalized here into a
// loaded, per-locale value rather than one hardcoded global, since the
// spec requires the affix classes to vary by locale (Hebrew MPRE vs.
// English's empty one).
package affix

import (
	"sort"
	"unicode/utf8"

	"github.com/janphilipps/lgtokenize"
)

// Tag names one affix class.
type Tag string

const (
	LPUNC      Tag = "LPUNC"
	RPUNC      Tag = "RPUNC"
	UNITS      Tag = "UNITS"
	PRE        Tag = "PRE"
	SUF        Tag = "SUF"
	MPRE       Tag = "MPRE"
	STEMSUBSCR Tag = "STEMSUBSCR"
	QUOTES     Tag = "QUOTES"
	BULLETS    Tag = "BULLETS"
)

// MPREEntry is one multi-prefix subword together with its optional
// declarative chain constraint (spec §9 design notes: "language-specific
// policy as data, not code"). See constraint.go.
type MPREEntry struct {
	Subword    string
	Constraint *Constraint
	// CollapseDuplicate marks the one subword (at most) in a locale's MPRE
	// table that should have a repeated leading occurrence in the residual
	// collapsed to a single copy whenever some *other* subword is chosen
	// first (spec §4.4 Stage 7 / §9 design notes: Hebrew "a non-'ו' prefix
	// followed by 'וו...' strips one leading 'ו' from the residual before
	// further matching"). A Constraint can only accept or reject a
	// placement, not rewrite the residual, so this rule is carried as a
	// plain boolean flag on the entry rather than forced into CEL.
	CollapseDuplicate bool
}

// Table is an immutable, read-only affix table for one locale. Build one
// with NewTable or Load; do not mutate a Table shared across goroutines
// (spec §5: the affix table is shared, read-only during tokenization).
type Table struct {
	locale  lgtokenize.Locale
	simple  map[Tag][]string
	mpre    []MPREEntry
	quotes  map[rune]bool
	bullets map[rune]bool
}

// NewTable builds a Table from locale and per-tag string lists. MPRE
// entries are sorted longest-subword-first (spec §4.2: "MPRE is presented
// in descending length order; longer subwords are tried first").
func NewTable(locale lgtokenize.Locale, classes map[Tag][]string, mpre []MPREEntry) *Table {
	t := &Table{
		locale:  locale,
		simple:  make(map[Tag][]string, len(classes)),
		quotes:  make(map[rune]bool),
		bullets: make(map[rune]bool),
	}
	for tag, words := range classes {
		cp := make([]string, len(words))
		copy(cp, words)
		t.simple[tag] = cp
	}
	for _, w := range t.simple[QUOTES] {
		r, _ := utf8.DecodeRuneInString(w)
		t.quotes[r] = true
	}
	for _, w := range t.simple[BULLETS] {
		r, _ := utf8.DecodeRuneInString(w)
		t.bullets[r] = true
	}

	t.mpre = make([]MPREEntry, len(mpre))
	copy(t.mpre, mpre)
	if len(t.mpre) > lgtokenize.MaxMPRETableSize {
		t.mpre = t.mpre[:lgtokenize.MaxMPRETableSize]
	}
	sort.SliceStable(t.mpre, func(i, j int) bool {
		return utf8.RuneCountInString(t.mpre[i].Subword) > utf8.RuneCountInString(t.mpre[j].Subword)
	})

	return t
}

// Locale returns the locale this table was built for.
func (t *Table) Locale() lgtokenize.Locale { return t.locale }

// Class returns the ordered string list for tag, or nil if the locale's
// table carries no entries for it.
func (t *Table) Class(tag Tag) []string { return t.simple[tag] }

// MPRE returns the multi-prefix entries in descending subword-length
// order (spec §4.2).
func (t *Table) MPRE() []MPREEntry { return t.mpre }

// HasMultiPrefix reports whether C4 Stage 7 should run at all — the spec
// says it is "triggered iff MPRE is non-empty".
func (t *Table) HasMultiPrefix() bool { return len(t.mpre) > 0 }

// StemSubscripts returns the allowed suffix-subscripts to append to a
// candidate stem before dictionary lookup (spec §4.2).
func (t *Table) StemSubscripts() []string { return t.simple[STEMSUBSCR] }

// IsQuoteRune reports whether cp belongs to QUOTES. Table implements
// charclass.QuoteClass via this and IsBulletRune.
func (t *Table) IsQuoteRune(cp rune) bool { return t.quotes[cp] }

// IsBulletRune reports whether cp belongs to BULLETS.
func (t *Table) IsBulletRune(cp rune) bool { return t.bullets[cp] }
