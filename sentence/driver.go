package sentence

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/janphilipps/lgtokenize"
	"github.com/janphilipps/lgtokenize/charclass"
	"github.com/janphilipps/lgtokenize/wordsep"
)

// Tokenize walks input (component C5, spec §4.5), handing each
// whitespace- and quote-free orthographic chunk to wordsep.Separate and
// assembling the resulting positional alternatives matrix. It returns
// the built Sentence, whether the sentence carries at least one
// non-wall position (or a right wall), and a non-nil error only on a
// decode failure — the sole fatal condition this layer defines.
//
// id is the Sentence's correlation ID (see Sentence.ID): callers doing a
// batch run generate one with uuid.New() per input line; tests pass a
// fixed ID for reproducible assertions.
//
// Grounded on the teacher's SqlTokenizer.Tokens() driver shape (a loop
// that repeatedly calls nextToken() until EOF), generalized here from
// "emit one lexical token" to "emit one orthographic chunk to the word
// separator, which itself may issue several positions".
func Tokenize(id uuid.UUID, input string, opts lgtokenize.Options, deps wordsep.Deps) (*Sentence, bool, error) {
	sent := New(id)
	codeset := deps.Affix.Locale()

	if deps.Dict.LeftWallDefined() {
		sent.IssueSentenceWord(lgtokenize.LeftWallWord, false)
	}
	firstNonWall := sent.Len()

	b := []byte(input)
	pos := 0
	quoteFound := false
	state := charclass.DecodeState{Codeset: string(codeset)}

	for pos < len(b) {
		r, size, err := charclass.DecodeNext(b, pos, state)
		if err != nil {
			return nil, false, fmt.Errorf("sentence: tokenizing input: %w", err)
		}
		if size == 0 {
			break
		}
		if charclass.IsSpace(r) || deps.Affix.IsQuoteRune(r) {
			if deps.Affix.IsQuoteRune(r) {
				quoteFound = true
			}
			pos += size
			continue
		}

		start := pos
		for pos < len(b) {
			r, size, err := charclass.DecodeNext(b, pos, state)
			if err != nil {
				return nil, false, fmt.Errorf("sentence: tokenizing input: %w", err)
			}
			if size == 0 || r == 0 || charclass.IsSpace(r) || deps.Affix.IsQuoteRune(r) {
				break
			}
			pos += size
		}
		chunk := string(b[start:pos])

		ctx := wordsep.PositionContext{
			SentenceInitial: sent.Len() == firstNonWall,
			PostQuote:       quoteFound,
		}
		if sent.Len() > 0 {
			prev := sent.At(sent.Len() - 1)
			if len(prev.Alternatives) > 0 {
				ctx.PrevFirstAlt = prev.Alternatives[0]
				ctx.PrevIsBullet = charclass.IsBulletString(prev.Alternatives[0], deps.Affix)
			}
		}

		wordsep.Separate(sent, chunk, quoteFound, ctx, opts, deps)
		quoteFound = false
	}

	if deps.Dict.RightWallDefined() {
		sent.IssueSentenceWord(lgtokenize.RightWallWord, false)
	}

	ok := sent.Len() > firstNonWall || deps.Dict.RightWallDefined()
	return sent, ok, nil
}
