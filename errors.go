// Package lgtokenize converts a raw UTF-8 sentence into a positional
// alternatives matrix suitable for a downstream grammatical expression
// builder. See the subpackages charclass, affix, dict, spell, wordsep and
// sentence for the individual pipeline stages.
package lgtokenize

import "errors"

// Fatal errors abort tokenization of the current sentence outright.
var (
	// ErrDecodeFailure indicates the input contained a byte sequence that
	// could not be decoded as UTF-8 at the current locale's codeset.
	ErrDecodeFailure = errors.New("lgtokenize: could not decode input at current codeset")
	// ErrInvariantViolation indicates a data-model invariant from §3 of the
	// specification was violated. This is a programmer error, not a
	// property of the input, and is never expected in production use.
	ErrInvariantViolation = errors.New("lgtokenize: sentence invariant violation")
)

// Non-fatal conditions. These are absorbed by the word separator and
// expressed as the shape of the alternatives it commits; they are exported
// so callers can recognize them in logs or coverage reports, not so they
// can be used to abort tokenization.
var (
	// ErrTooManyStrips indicates the right-strip loop used all MaxStrip
	// iterations on one orthographic chunk. The chunk is accepted whole as
	// an unknown word; tokenization continues.
	ErrTooManyStrips = errors.New("lgtokenize: too many right-strips attempted")
	// ErrUnknownWord indicates no dictionary, regex or spellcheck path
	// matched a chunk. The surface form is still emitted; it is up to the
	// downstream expression builder (outside this module's scope) to
	// decide whether to synthesize expressions for it.
	ErrUnknownWord = errors.New("lgtokenize: no dictionary, regex or spell match")
)

// Configuration errors.
var (
	// ErrConfigValidation is returned when a loaded Config fails field
	// validation.
	ErrConfigValidation = errors.New("lgtokenize: configuration validation failed")
	// ErrUnknownLocale is returned when Config.Locale names a locale with
	// no registered Locale implementation.
	ErrUnknownLocale = errors.New("lgtokenize: unknown locale")
)
