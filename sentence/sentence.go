// Package sentence implements the sentence data model (spec §3) and
// drives C4 (wordsep) over one input string (component C5, spec §4.5).
//
// Sentence owns its word array and string interner exclusively (spec §9
// design notes: "no cyclic ownership" — the affix table and dictionary
// are borrowed read-only, the interner is owned here). It implements
// wordsep.Sink so the word separator can commit alternatives without
// sentence needing to be imported by wordsep.
package sentence

import (
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/janphilipps/lgtokenize"
	"github.com/janphilipps/lgtokenize/charclass"
)

// WordPosition is one slot in the sentence (spec §3).
type WordPosition struct {
	// Alternatives holds at least one interned candidate string.
	Alternatives []string
	// UnsplitWord is the orthographic word that produced this position,
	// after left/right punctuation and unit stripping (so "Surprise!"
	// records "Surprise"), set only on the first position of its emission
	// group (invariant 3).
	UnsplitWord string
	// FirstUpper is true iff any alternative at this position begins
	// with an upper-case code point.
	FirstUpper bool
	// PostQuote is true iff the input whitespace preceding this position
	// contained a quotation character. Meaningful only at a group's
	// first position (invariant 4).
	PostQuote bool
}

// Sentence is an ordered sequence of word positions plus the string
// interner shared across them (spec §3).
type Sentence struct {
	ID    uuid.UUID
	words []WordPosition

	mu       sync.Mutex
	interner map[string]string
}

// New creates an empty Sentence. id should be generated by the caller
// (e.g. uuid.New()) rather than inside this constructor: Workflow scripts
// and tests that need deterministic output cannot call uuid.New at
// tokenization time, and the driver's decode loop must stay free of
// nondeterministic calls for the same reason the module avoids
// time.Now/rand in its core path.
func New(id uuid.UUID) *Sentence {
	return &Sentence{ID: id, interner: make(map[string]string)}
}

// Len reports the number of committed positions.
func (s *Sentence) Len() int { return len(s.words) }

// At returns the position at index i.
func (s *Sentence) At(i int) WordPosition { return s.words[i] }

// Positions iterates over every committed position, index first, in the
// Go 1.24 iterator idiom the teacher's own tokenizer exposes for its
// token stream (tokenizer.TokenIterator).
func (s *Sentence) Positions() func(yield func(int, WordPosition) bool) {
	return func(yield func(int, WordPosition) bool) {
		for i, w := range s.words {
			if !yield(i, w) {
				return
			}
		}
	}
}

func (s *Sentence) intern(w string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.interner[w]; ok {
		return v
	}
	s.interner[w] = w
	return w
}

// IssueSentenceWord commits a single trivial one-position, one-
// alternative emission group (spec §4.4 Stage 12's fallback path, and
// Stage 2/13's r-stripped/LPUNC tokens).
func (s *Sentence) IssueSentenceWord(word string, quoteFound bool) {
	interned := s.intern(word)
	s.words = append(s.words, WordPosition{
		Alternatives: []string{interned},
		UnsplitWord:  interned,
		FirstUpper:   beginsUpper(interned),
		PostQuote:    quoteFound,
	})
}

// IssueAlternatives commits one emission group, implementing the
// balancing algorithm of spec §3 invariant 1 / §4.4: candidates is a
// jagged list of analyses (rows), each spanning some number of
// consecutive positions from the group's first position. Rows shorter
// than the widest row are padded with lgtokenize.EmptyWordMark so every
// resulting position has the same alternative count.
func (s *Sentence) IssueAlternatives(unsplitWord string, candidates [][]string, quoteFound bool) {
	width := 0
	for _, c := range candidates {
		if len(c) > width {
			width = len(c)
		}
	}
	if width == 0 {
		s.IssueSentenceWord(unsplitWord, quoteFound)
		return
	}

	columns := make([][]string, width)
	emptyMark := s.intern(lgtokenize.EmptyWordMark)
	for _, row := range candidates {
		for i := 0; i < width; i++ {
			if i < len(row) {
				columns[i] = append(columns[i], s.intern(row[i]))
			} else {
				columns[i] = append(columns[i], emptyMark)
			}
		}
	}

	internedUnsplit := s.intern(unsplitWord)
	for i, alts := range columns {
		wp := WordPosition{Alternatives: alts, FirstUpper: anyBeginsUpper(alts)}
		if i == 0 {
			wp.UnsplitWord = internedUnsplit
			wp.PostQuote = quoteFound
		}
		s.words = append(s.words, wp)
	}
}

func beginsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return charclass.IsUpper(r)
}

func anyBeginsUpper(alts []string) bool {
	for _, a := range alts {
		if a == lgtokenize.EmptyWordMark {
			continue
		}
		if beginsUpper(a) {
			return true
		}
	}
	return false
}
