package dict

import (
	"fmt"

	"github.com/coregx/coregex"
)

// compileRegex compiles pattern with the coregex engine (a drop-in,
// stdlib-regexp-compatible matcher — see coregx-coregex in the retrieval
// pack) and returns a closure testing full-or-partial match the way the
// dictionary's regex entries are matched: MatchString tests for a match
// anywhere in s, which is what spec §4.3's "there exists a named regex
// matching s" calls for (regex entries in a real affix/dict bundle are
// themselves anchored with ^...$ when a whole-word match is intended —
// this layer does not impose anchoring itself).
func compileRegex(pattern string) (func(string) bool, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("dict: compiling regex %q: %w", pattern, err)
	}
	return re.MatchString, nil
}
