package sentence

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janphilipps/lgtokenize"
	"github.com/janphilipps/lgtokenize/affix"
	"github.com/janphilipps/lgtokenize/dict"
	"github.com/janphilipps/lgtokenize/spell"
	"github.com/janphilipps/lgtokenize/wordsep"
)

func testDeps(t *testing.T, leftWall, rightWall bool) wordsep.Deps {
	t.Helper()
	aff := affix.NewTable(lgtokenize.LocaleEnglish, map[affix.Tag][]string{
		affix.LPUNC: {"(", "\"", "'"},
		affix.RPUNC: {"!", ".", ",", ")", "\"", "'"},
		affix.UNITS: {"mm", "sq.ft."},
		affix.SUF:   {"s"},
		affix.PRE:   {},
	}, nil)

	o, err := dict.NewMemOracle(map[string]dict.Entry{
		"this": {}, "is": {}, "a": {}, "test": {},
		"surprise": {}, "you": {}, "by": {}, "the": {},
		"he": {}, "was": {}, "very": {}, "prosperous": {},
		"86": {}, "mm": {}, "50s": {},
	}, nil, leftWall, rightWall, true, false)
	require.NoError(t, err)

	return wordsep.Deps{Affix: aff, Dict: o, Spell: spell.NullOracle{}}
}

func TestTokenizeSimpleSentence(t *testing.T) {
	deps := testDeps(t, false, false)
	sent, ok, err := Tokenize(uuid.Nil, "this is a test", lgtokenize.Options{}, deps)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Equal(t, 4, sent.Len())

	want := []string{"this", "is", "a", "test"}
	for i, w := range want {
		wp := sent.At(i)
		assert.Equal(t, []string{w}, wp.Alternatives)
		assert.False(t, wp.PostQuote)
	}
}

func TestTokenizeCapitalizationScenario(t *testing.T) {
	deps := testDeps(t, false, false)
	sent, ok, err := Tokenize(uuid.Nil, "Surprise!", lgtokenize.Options{}, deps)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Equal(t, 2, sent.Len())

	first := sent.At(0)
	assert.Equal(t, []string{"Surprise", "surprise"}, first.Alternatives)
	assert.Equal(t, "Surprise", first.UnsplitWord)
	assert.False(t, first.PostQuote)

	second := sent.At(1)
	assert.Equal(t, []string{"!"}, second.Alternatives)
}

func TestTokenizeContraction(t *testing.T) {
	deps := testDeps(t, false, false)
	deps.Affix = affix.NewTable(lgtokenize.LocaleEnglish, map[affix.Tag][]string{
		affix.SUF: {"'ve"},
	}, nil)
	sent, ok, err := Tokenize(uuid.Nil, "you've", lgtokenize.Options{}, deps)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Equal(t, 2, sent.Len())
	assert.Equal(t, []string{"you"}, sent.At(0).Alternatives)
	assert.Equal(t, "you've", sent.At(0).UnsplitWord)
	assert.Equal(t, []string{"'ve"}, sent.At(1).Alternatives)
}

func TestTokenizeUnitSuffix(t *testing.T) {
	deps := testDeps(t, false, false)
	sent, ok, err := Tokenize(uuid.Nil, "86mm", lgtokenize.Options{}, deps)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Equal(t, 2, sent.Len())
	assert.Equal(t, []string{"86"}, sent.At(0).Alternatives)
	assert.Equal(t, []string{"mm"}, sent.At(1).Alternatives)
}

func TestTokenizeWithWalls(t *testing.T) {
	deps := testDeps(t, true, true)
	sent, ok, err := Tokenize(uuid.Nil, "this is a test", lgtokenize.Options{}, deps)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Equal(t, 6, sent.Len())
	assert.Equal(t, []string{lgtokenize.LeftWallWord}, sent.At(0).Alternatives)
	assert.Equal(t, []string{lgtokenize.RightWallWord}, sent.At(5).Alternatives)
}

func TestTokenizeEmptyInputWithRightWallIsOK(t *testing.T) {
	deps := testDeps(t, false, true)
	sent, ok, err := Tokenize(uuid.Nil, "   ", lgtokenize.Options{}, deps)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Equal(t, 1, sent.Len())
}

func TestTokenizeHebrewMultiPrefixChain(t *testing.T) {
	chainInitial, err := affix.NewConstraint(affix.ChainInitialOnly)
	require.NoError(t, err)
	residualGuard, err := affix.NewConstraint(affix.RejectResidualBareCopyOf("ו"))
	require.NoError(t, err)

	aff := affix.NewTable(lgtokenize.LocaleHebrew, map[affix.Tag][]string{}, []affix.MPREEntry{
		{Subword: "ו", Constraint: chainInitial, CollapseDuplicate: true},
		{Subword: "כש", Constraint: residualGuard},
		{Subword: "ש", Constraint: residualGuard},
		{Subword: "ה", Constraint: residualGuard},
		{Subword: "ל", Constraint: residualGuard},
		{Subword: "ב", Constraint: residualGuard},
		{Subword: "מ", Constraint: residualGuard},
	})
	o, err := dict.NewMemOracle(map[string]dict.Entry{
		"לכתי": {}, "הלכתי": {},
	}, nil, false, false, true, false)
	require.NoError(t, err)
	deps := wordsep.Deps{Affix: aff, Dict: o, Spell: spell.NullOracle{}}

	sent, ok, err := Tokenize(uuid.Nil, "וכשהלכתי", lgtokenize.Options{}, deps)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Equal(t, 2, sent.Len())

	first := sent.At(0)
	second := sent.At(1)
	assert.Equal(t, []string{"וכש=", "וכשה="}, first.Alternatives)
	assert.Equal(t, []string{"הלכתי", "לכתי"}, second.Alternatives)
	assert.Equal(t, "וכשהלכתי", first.UnsplitWord)
}

func TestTokenizeEmptyInputNoWallsIsNotOK(t *testing.T) {
	deps := testDeps(t, false, false)
	sent, ok, err := Tokenize(uuid.Nil, "   ", lgtokenize.Options{}, deps)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, sent.Len())
}
