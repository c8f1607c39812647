package sentence

import (
	"strings"

	"github.com/janphilipps/lgtokenize"
	"github.com/janphilipps/lgtokenize/dict"
)

// UnknownWord names one position whose alternatives are all unrecognized
// by the dictionary (spec §7: "sentence_in_dictionary is a separate
// read-only audit that walks the committed alternatives and accumulates
// a 'not in dictionary' report; it never mutates the sentence").
type UnknownWord struct {
	Position int
	Surface  string
}

// CoverageReport is the result of Audit.
type CoverageReport struct {
	Total   int
	Unknown []UnknownWord
}

// Audit walks every committed position and reports which ones have no
// alternative recognized by oracle, ignoring wall tokens, the
// lgtokenize.EmptyWordMark padding sentinel, and decoration suffixes
// ("[~]", "[!]") and leading/trailing INFIX_MARK before checking.
// SUBSCRIPT_MARK is not stripped.
// It never mutates s.
func (s *Sentence) Audit(oracle dict.Oracle) CoverageReport {
	report := CoverageReport{Total: s.Len()}
	for i, wp := range s.words {
		if isWall(wp) {
			continue
		}
		if anyAlternativeKnown(wp.Alternatives, oracle) {
			continue
		}
		report.Unknown = append(report.Unknown, UnknownWord{Position: i, Surface: wp.UnsplitWord})
	}
	return report
}

func isWall(wp WordPosition) bool {
	return len(wp.Alternatives) == 1 &&
		(wp.Alternatives[0] == lgtokenize.LeftWallWord || wp.Alternatives[0] == lgtokenize.RightWallWord)
}

func anyAlternativeKnown(alts []string, oracle dict.Oracle) bool {
	for _, a := range alts {
		if a == lgtokenize.EmptyWordMark {
			continue
		}
		if oracle.Find(undecorate(a)) {
			return true
		}
	}
	return false
}

// undecorate strips the trailing spell-guess/regex-deferred markers and
// a leading/trailing INFIX_MARK so a decorated alternative can be
// re-checked against the dictionary.
func undecorate(a string) string {
	a = strings.TrimSuffix(a, lgtokenize.SpellGuessSuffix)
	a = strings.TrimSuffix(a, lgtokenize.RegexDeferredSuffix)
	a = strings.Trim(a, string(rune(lgtokenize.InfixMark)))
	return a
}
