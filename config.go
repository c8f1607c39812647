package lgtokenize

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config is the top-level configuration for a tokenizer run: which locale
// bundle to load, where its affix table and dictionary live, and the
// TokenizerOptions (spec §6) to apply. It is loaded the way the teacher's
// Config is (config.go in the teacher repo): a YAML document in strict
// mode, overlaid with a .env file, with field-level validation before use.
type Config struct {
	Locale    string       `yaml:"locale"`
	AffixFile string       `yaml:"affix_file"`
	DictFile  string       `yaml:"dict_file"`
	Options   OptionsYAML  `yaml:"options"`
	Spell     *SpellConfig `yaml:"spell,omitempty"`
}

// OptionsYAML is the YAML-shaped form of Options; TestFlags is a list in
// the config file (natural for humans to edit) and normalized into a map
// via ToOptions.
type OptionsYAML struct {
	UseSpellGuess     bool     `yaml:"use_spell_guess"`
	DisplayMorphology bool     `yaml:"display_morphology"`
	Verbosity         int      `yaml:"verbosity"`
	TestFlags         []string `yaml:"test_flags"`
}

// ToOptions converts the YAML-shaped options into the Options consumed by
// the wordsep pipeline, normalizing the parallel-regex flag alias.
func (o OptionsYAML) ToOptions() Options {
	flags := make(map[string]bool, len(o.TestFlags))
	for _, f := range o.TestFlags {
		f = strings.TrimSpace(f)
		if f == TestFlagParallelRegexAlias {
			f = TestFlagParallelRegex
		}
		flags[f] = true
	}
	return Options{
		UseSpellGuess:     o.UseSpellGuess,
		DisplayMorphology: o.DisplayMorphology,
		Verbosity:         o.Verbosity,
		TestFlags:         flags,
	}
}

// SpellConfig configures an external spellcheck oracle (spec §6). The
// oracle implementation itself is an external collaborator per spec §1;
// this struct only carries enough to construct one.
type SpellConfig struct {
	Endpoint  string `yaml:"endpoint"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

// LoadConfig loads configuration from the given YAML file, overlaying a
// sibling .env file if present, exactly as the teacher's LoadConfig does
// (loadEnvFiles before reading the YAML, strict unmarshal, then
// validation).
func LoadConfig(configPath string) (*Config, error) {
	if err := loadEnvFiles(configPath); err != nil {
		return nil, fmt.Errorf("lgtokenize: failed to load environment files: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("lgtokenize: failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("lgtokenize: failed to parse config file: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	expandConfigEnvVars(&cfg)

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	switch Locale(cfg.Locale) {
	case LocaleEnglish, LocaleHebrew:
	case "":
		return fmt.Errorf("%w: locale is required", ErrConfigValidation)
	default:
		return fmt.Errorf("%w: %s: %s", ErrUnknownLocale, cfg.Locale, "no registered affix/dictionary policy")
	}
	if cfg.AffixFile == "" {
		return fmt.Errorf("%w: affix_file is required", ErrConfigValidation)
	}
	if cfg.DictFile == "" {
		return fmt.Errorf("%w: dict_file is required", ErrConfigValidation)
	}
	for _, f := range cfg.Options.TestFlags {
		switch strings.TrimSpace(f) {
		case TestFlagNoSuffixes, TestFlagParallelRegex, TestFlagParallelRegexAlias:
		default:
			return fmt.Errorf("%w: unrecognized test flag %q", ErrConfigValidation, f)
		}
	}
	return nil
}

func loadEnvFiles(configPath string) error {
	candidate := ".env"
	if dir := dirOf(configPath); dir != "" {
		candidate = dir + "/.env"
	}
	if _, err := os.Stat(candidate); err == nil {
		if err := godotenv.Load(candidate); err != nil {
			return err
		}
	}
	return nil
}

func dirOf(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return ""
}

// expandConfigEnvVars expands ${VAR} and $VAR references in the affix and
// dictionary file paths, matching the teacher's expandEnvVars behavior.
func expandConfigEnvVars(cfg *Config) {
	cfg.AffixFile = expandEnvVars(cfg.AffixFile)
	cfg.DictFile = expandEnvVars(cfg.DictFile)
	if cfg.Spell != nil {
		cfg.Spell.Endpoint = expandEnvVars(cfg.Spell.Endpoint)
	}
}

var (
	braceVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)
	bareVarPattern  = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

func expandEnvVars(s string) string {
	s = braceVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})
	s = bareVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
	return s
}
