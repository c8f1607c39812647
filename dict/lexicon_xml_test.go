package dict

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseLexiconXML(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<lexicon>
  <word form="run" markers="verb noun"/>
  <word form="jumps"/>
  <regex name="year-1900s" pattern="^19[0-9]{2}$"/>
</lexicon>`

	lex, err := ParseLexiconXML(doc)
	assert.NoError(t, err)
	assert.Equal(t, []string{"verb", "noun"}, lex.Words["run"])
	_, ok := lex.Words["jumps"]
	assert.True(t, ok)
	assert.Equal(t, 1, len(lex.Regexes))
	assert.Equal(t, "year-1900s", lex.Regexes[0].Name)
}

func TestParseLexiconXMLMissingRoot(t *testing.T) {
	_, err := ParseLexiconXML(`<?xml version="1.0"?><other/>`)
	assert.Error(t, err)
}
