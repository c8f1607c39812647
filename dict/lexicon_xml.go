package dict

import (
	"fmt"

	"github.com/beevik/etree"
)

// LexiconXML is the parsed form of a legacy XML lexicon export — the
// "import-lexicon" CLI subcommand's input format (SPEC_FULL §5). It is
// not the original's bespoke affix-file grammar (spec §1 explicitly puts
// that parser out of scope): it is a generic interchange format for
// migrating a dictionary that lives in some other system's XML export
// into this module's own YAML bundle.
//
// Expected shape:
//
//	<lexicon>
//	  <word form="run" markers="verb noun"/>
//	  <regex name="year-1900s" pattern="^19[0-9]{2}$"/>
//	</lexicon>
type LexiconXML struct {
	Words   map[string][]string
	Regexes []RegexEntry
}

// ParseLexiconXML parses content (a complete XML document) into a
// LexiconXML, grounded on the teacher's parseDBUnitXML
// (markdownparser/dataformat.go in the teacher repo): read into an
// etree.Document, select the root element, and walk its children by tag.
func ParseLexiconXML(content string) (*LexiconXML, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(content); err != nil {
		return nil, fmt.Errorf("dict: parsing lexicon XML: %w", err)
	}

	root := doc.SelectElement("lexicon")
	if root == nil {
		return nil, fmt.Errorf("dict: lexicon XML missing root <lexicon> element")
	}

	out := &LexiconXML{Words: make(map[string][]string)}
	for _, elem := range root.ChildElements() {
		switch elem.Tag {
		case "word":
			form := elem.SelectAttrValue("form", "")
			if form == "" {
				continue
			}
			markers := splitFields(elem.SelectAttrValue("markers", ""))
			out.Words[form] = markers
		case "regex":
			name := elem.SelectAttrValue("name", "")
			pattern := elem.SelectAttrValue("pattern", "")
			if name == "" || pattern == "" {
				continue
			}
			out.Regexes = append(out.Regexes, RegexEntry{Name: name, Pattern: pattern})
		}
	}
	return out, nil
}

// ToBundleYAMLDoc renders the parsed lexicon into the same shape Load
// consumes, so a caller can marshal it straight to the dictionary bundle
// YAML file.
func (l *LexiconXML) ToBundleYAMLDoc() any {
	words := make(map[string][]string, len(l.Words))
	for k, v := range l.Words {
		words[k] = v
	}
	regexes := make([]regexEntryYAML, 0, len(l.Regexes))
	for _, r := range l.Regexes {
		regexes = append(regexes, regexEntryYAML{Name: r.Name, Pattern: r.Pattern})
	}
	return bundleYAML{Words: words, Regexes: regexes}
}

func splitFields(s string) []string {
	var out []string
	start := -1
	for i, r := range s {
		if r == ' ' || r == '\t' {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}
