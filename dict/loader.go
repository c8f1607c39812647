package dict

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// bundleYAML is the on-disk shape of a dictionary bundle.
type bundleYAML struct {
	Words      map[string][]string `yaml:"words"`   // word -> markers
	Regexes    []regexEntryYAML    `yaml:"regexes"`
	LeftWall   bool                `yaml:"left_wall_defined"`
	RightWall  bool                `yaml:"right_wall_defined"`
	Unknown    bool                `yaml:"unknown_word_defined"`
	UseUnknown bool                `yaml:"use_unknown_word"`
}

type regexEntryYAML struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

// Load reads a dictionary bundle YAML file and builds an Oracle.
func Load(path string) (Oracle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dict: reading %s: %w", path, err)
	}

	var doc bundleYAML
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("dict: parsing %s: %w", path, err)
	}

	entries := make(map[string]Entry, len(doc.Words))
	for word, markers := range doc.Words {
		m := make(map[string]bool, len(markers))
		for _, mk := range markers {
			m[mk] = true
		}
		entries[word] = Entry{Markers: m}
	}

	regexes := make([]RegexEntry, 0, len(doc.Regexes))
	for _, r := range doc.Regexes {
		regexes = append(regexes, RegexEntry{Name: r.Name, Pattern: r.Pattern})
	}

	oracle, err := NewMemOracle(entries, regexes, doc.LeftWall, doc.RightWall, doc.Unknown, doc.UseUnknown)
	if err != nil {
		return nil, fmt.Errorf("dict: %s: %w", path, err)
	}
	return oracle, nil
}
