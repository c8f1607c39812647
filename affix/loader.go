package affix

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/janphilipps/lgtokenize"
)

// bundleYAML is the on-disk shape of an affix bundle, grounded on the
// teacher's config.go yaml-tagged-struct convention.
type bundleYAML struct {
	Locale     string             `yaml:"locale"`
	LPUNC      []string           `yaml:"lpunc"`
	RPUNC      []string           `yaml:"rpunc"`
	UNITS      []string           `yaml:"units"`
	PRE        []string           `yaml:"pre"`
	SUF        []string           `yaml:"suf"`
	STEMSUBSCR []string           `yaml:"stemsubscr"`
	QUOTES     []string           `yaml:"quotes"`
	BULLETS    []string           `yaml:"bullets"`
	MPRE       []mprefixEntryYAML `yaml:"mpre"`
}

type mprefixEntryYAML struct {
	Subword           string `yaml:"subword"`
	Constraint        string `yaml:"constraint,omitempty"`
	CollapseDuplicate bool   `yaml:"collapse_duplicate,omitempty"`
}

// Load reads an affix bundle YAML file and builds a Table. MPRE entries
// with a Constraint expression are compiled with NewConstraint; a
// compile failure fails the whole load, since an affix table with a
// broken declarative rule is not safely usable (spec §7: load-time
// failures here are configuration errors, not per-sentence ones).
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("affix: reading %s: %w", path, err)
	}

	var doc bundleYAML
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("affix: parsing %s: %w", path, err)
	}

	classes := map[Tag][]string{
		LPUNC:      doc.LPUNC,
		RPUNC:      doc.RPUNC,
		UNITS:      doc.UNITS,
		PRE:        doc.PRE,
		SUF:        doc.SUF,
		STEMSUBSCR: doc.STEMSUBSCR,
		QUOTES:     doc.QUOTES,
		BULLETS:    doc.BULLETS,
	}

	mpre := make([]MPREEntry, 0, len(doc.MPRE))
	for _, e := range doc.MPRE {
		entry := MPREEntry{Subword: e.Subword, CollapseDuplicate: e.CollapseDuplicate}
		if e.Constraint != "" {
			c, err := NewConstraint(e.Constraint)
			if err != nil {
				return nil, fmt.Errorf("affix: %s: mpre entry %q: %w", path, e.Subword, err)
			}
			entry.Constraint = c
		}
		mpre = append(mpre, entry)
	}

	return NewTable(lgtokenize.Locale(doc.Locale), classes, mpre), nil
}
