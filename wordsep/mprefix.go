package wordsep

import (
	"strings"

	"github.com/janphilipps/lgtokenize"
	"github.com/janphilipps/lgtokenize/affix"
	"github.com/janphilipps/lgtokenize/dict"
)

// mprefixSplit implements C4 Stage 7: a greedy longest-match walk over the
// MPRE table that produces every accepted prefix chain, not just the
// first one found. Declarative constraints (affix.Constraint) replace the
// source's hardcoded Hebrew "ו" branches (spec §9 design notes), except
// for the duplicate-collapse rule, which rewrites the residual rather
// than accepting/rejecting a placement and so is applied directly below
// (see collapseDuplicateSubword and affix.MPREEntry.CollapseDuplicate).
func mprefixSplit(word string, aff *affix.Table, oracle dict.Oracle) [][]string {
	var candidates [][]string
	entries := aff.MPRE()
	collapseSubword := collapseDuplicateSubword(entries)

	var walk func(residual string, chain []string)
	walk = func(residual string, chain []string) {
		if len(chain) >= lgtokenize.MaxPrefixChain {
			return
		}
		for _, entry := range entries {
			if containsString(chain, entry.Subword) {
				continue
			}
			if !strings.HasPrefix(residual, entry.Subword) {
				continue
			}
			newResidual := residual[len(entry.Subword):]

			// Third Hebrew guard: a non-"ו" prefix followed by "וו..."
			// strips one leading "ו" from the residual before further
			// matching (spec §4.4 Stage 7 / §9). Applied before the
			// constraint check so a constraint sees the collapsed form.
			if collapseSubword != "" && entry.Subword != collapseSubword {
				doubled := collapseSubword + collapseSubword
				if strings.HasPrefix(newResidual, doubled) {
					newResidual = newResidual[len(collapseSubword):]
				}
			}

			state := affix.ChainState{
				ChainIndex:  len(chain),
				ChainLength: len(chain) + 1,
				Seen:        append([]string(nil), chain...),
				Residual:    newResidual,
			}
			if ok, err := entry.Constraint.Allows(state); err != nil || !ok {
				continue
			}
			newChain := append(append([]string(nil), chain...), entry.Subword)
			chainToken := strings.Join(newChain, "") + string(rune(lgtokenize.InfixMark))

			if newResidual == "" {
				candidates = append(candidates, []string{chainToken})
				continue
			}
			if oracle.Find(newResidual) {
				candidates = append(candidates, []string{chainToken, newResidual})
			}
			walk(newResidual, newChain)
		}
	}

	walk(word, nil)
	return candidates
}

// collapseDuplicateSubword returns the subword (at most one per table)
// marked MPREEntry.CollapseDuplicate, or "" if none.
func collapseDuplicateSubword(entries []affix.MPREEntry) string {
	for _, e := range entries {
		if e.CollapseDuplicate {
			return e.Subword
		}
	}
	return ""
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
