package charclass

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

type fakeQuoteClass struct {
	quotes  map[rune]bool
	bullets map[rune]bool
}

func (f fakeQuoteClass) IsQuoteRune(cp rune) bool  { return f.quotes[cp] }
func (f fakeQuoteClass) IsBulletRune(cp rune) bool { return f.bullets[cp] }

func TestIsSpaceIncludesNoBreakSpace(t *testing.T) {
	assert.True(t, IsSpace(' '))
	assert.True(t, IsSpace(' '))
	assert.True(t, IsSpace('\t'))
	assert.False(t, IsSpace('a'))
}

func TestDecodeNextASCII(t *testing.T) {
	r, size, err := DecodeNext([]byte("abc"), 0, DecodeState{})
	assert.NoError(t, err)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 1, size)
}

func TestDecodeNextMultibyte(t *testing.T) {
	input := []byte("וכש")
	r, size, err := DecodeNext(input, 0, DecodeState{})
	assert.NoError(t, err)
	assert.Equal(t, 'ו', r)
	assert.Equal(t, 2, size)
}

func TestDecodeNextAtEnd(t *testing.T) {
	r, size, err := DecodeNext([]byte("a"), 1, DecodeState{})
	assert.NoError(t, err)
	assert.Equal(t, rune(0), r)
	assert.Equal(t, 0, size)
}

func TestDecodeNextInvalid(t *testing.T) {
	_, _, err := DecodeNext([]byte{0xff, 0xfe}, 0, DecodeState{Codeset: "UTF-8"})
	assert.Error(t, err)
}

func TestStartsWithDigit(t *testing.T) {
	assert.True(t, StartsWithDigit("86mm"))
	assert.False(t, StartsWithDigit("mm86"))
}

func TestIsAllUpperPrefix(t *testing.T) {
	assert.True(t, IsAllUpperPrefix("NASA"))
	assert.False(t, IsAllUpperPrefix("Surprise"))
	assert.False(t, IsAllUpperPrefix("123"))
}

func TestIsBulletString(t *testing.T) {
	q := fakeQuoteClass{bullets: map[rune]bool{'•': true}}
	assert.True(t, IsBulletString("• item", q))
	assert.False(t, IsBulletString("item", q))
}

func TestDowncase(t *testing.T) {
	assert.Equal(t, "surprise", Downcase("Surprise"))
	assert.Equal(t, "וכש", Downcase("וכש"))
}

func TestIsNumber(t *testing.T) {
	assert.True(t, IsNumber("86"))
	assert.True(t, IsNumber("1,234.56"))
	assert.True(t, IsNumber("12:30"))
	assert.True(t, IsNumber("1.2.3"))
	assert.False(t, IsNumber("mm86"))
	assert.False(t, IsNumber(""))
}
