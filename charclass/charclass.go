// Package charclass implements the character classifier (spec §4.1): UTF-8
// decoding and code-point classification shared by every other pipeline
// stage.
//
// The teacher's own tokenizer (tokenizer/tokenizer.go in the teacher repo)
// advances its cursor with `t.current = rune(t.input[t.position])`, which
// only works for ASCII — SQL identifiers are effectively ASCII in
// practice, so the teacher gets away with it. A sentence tokenizer cannot:
// Hebrew prefix splitting (spec §4.4 Stage 7) depends on correct multibyte
// decoding. DecodeNext below generalizes the teacher's single-rune cursor
// into a proper utf8.DecodeRuneInString walk.
package charclass

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/janphilipps/lgtokenize"
)

// ErrDecode is lgtokenize.ErrDecodeFailure; DecodeNext wraps it with the
// offending byte offset and codeset.
var ErrDecode = lgtokenize.ErrDecodeFailure

// noBreakSpace is U+00A0, force-classified as whitespace per spec §4.1
// even though unicode.IsSpace does not consider it one under some Unicode
// versions' White_Space property table quirks — the spec is explicit that
// this classification must not depend on that.
const noBreakSpace = ' '

// DecodeState threads a codeset/locale name through successive DecodeNext
// calls so a decode failure can be reported against it (spec §4.1, §7).
type DecodeState struct {
	Codeset string
}

// DecodeNext decodes the next code point from b starting at offset off. It
// returns the code point, its width in bytes, and an error wrapping
// ErrDecode (with the configured codeset name) on malformed input.
func DecodeNext(b []byte, off int, state DecodeState) (rune, int, error) {
	if off >= len(b) {
		return 0, 0, nil
	}
	r, size := utf8.DecodeRune(b[off:])
	if r == utf8.RuneError && size <= 1 {
		codeset := state.Codeset
		if codeset == "" {
			codeset = "UTF-8"
		}
		return 0, 0, fmt.Errorf("charclass: malformed byte sequence at offset %d for codeset %s: %w", off, codeset, ErrDecode)
	}
	return r, size, nil
}

// IsSpace reports whether cp is whitespace per Unicode, plus U+00A0
// (NO-BREAK SPACE), which spec §4.1 force-classifies as space.
func IsSpace(cp rune) bool {
	return cp == noBreakSpace || unicode.IsSpace(cp)
}

// IsDigit reports whether cp is a decimal digit.
func IsDigit(cp rune) bool {
	return unicode.IsDigit(cp)
}

// IsUpper reports whether cp is an upper-case letter.
func IsUpper(cp rune) bool {
	return unicode.IsUpper(cp)
}

// IsAlpha reports whether cp is a letter.
func IsAlpha(cp rune) bool {
	return unicode.IsLetter(cp)
}

// StartsWithDigit reports whether the first code point of s is a digit.
func StartsWithDigit(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return IsDigit(r)
}

// IsAllUpperPrefix reports whether every letter in s's leading run of
// letters is upper-case (used by the capitalizability/whole-upper checks
// in C4).
func IsAllUpperPrefix(s string) bool {
	seenLetter := false
	for _, r := range s {
		if !IsAlpha(r) {
			if seenLetter {
				break
			}
			continue
		}
		seenLetter = true
		if !IsUpper(r) {
			return false
		}
	}
	return seenLetter
}

// QuoteClass is the minimal view of an affix table C1 needs: membership
// tests for the QUOTES and BULLETS classes. affix.Table satisfies this
// directly; it is declared here (rather than imported) to keep charclass
// free of a dependency on affix.
type QuoteClass interface {
	IsQuoteRune(cp rune) bool
	IsBulletRune(cp rune) bool
}

// IsQuote reports whether cp belongs to the affix table's QUOTES class.
func IsQuote(cp rune, q QuoteClass) bool {
	return q.IsQuoteRune(cp)
}

// IsBullet reports whether cp belongs to the affix table's BULLETS class.
func IsBullet(cp rune, q QuoteClass) bool {
	return q.IsBulletRune(cp)
}

// IsBulletString tests only the first code point of s against the BULLETS
// class (spec §4.1).
func IsBulletString(s string, q QuoteClass) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return q.IsBulletRune(r)
}

// Downcase returns the Unicode lowercase form of s, bounded by
// lgtokenize.MaxWord bytes (spec §4.1, §6).
func Downcase(s string) string {
	if len(s) > lgtokenize.MaxWord {
		s = s[:lgtokenize.MaxWord]
	}
	return mapRunes(s, unicode.ToLower)
}

func mapRunes(s string, f func(rune) rune) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, f(r))
	}
	return string(out)
}

// IsNumber reports whether s is a numeric token: its first code point is a
// digit and every subsequent code point is a digit, U+00A0, or one of
// ASCII '.', ',', ':' (spec §4.1). This is a pure character-class scan —
// "1.2.3" is a number by this rule, same as "1,234" or "3.14", since
// neither grouping nor decimal placement is validated here.
func IsNumber(s string) bool {
	if s == "" {
		return false
	}
	runes := []rune(s)
	if !IsDigit(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		switch {
		case IsDigit(r):
		case r == noBreakSpace:
		case r == '.' || r == ',':
		case r == ':':
		default:
			return false
		}
	}
	return true
}
