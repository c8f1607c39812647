package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"

	"github.com/janphilipps/lgtokenize"
	"github.com/janphilipps/lgtokenize/affix"
	"github.com/janphilipps/lgtokenize/dict"
	"github.com/janphilipps/lgtokenize/sentence"
	"github.com/janphilipps/lgtokenize/spell"
	"github.com/janphilipps/lgtokenize/wordsep"
)

// bundle is what every command needs to run the tokenizer: the loaded
// Config plus the wordsep.Deps it implies.
type bundle struct {
	cfg  *lgtokenize.Config
	deps wordsep.Deps
}

func loadBundle(configPath string) (*bundle, error) {
	cfg, err := lgtokenize.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	aff, err := affix.Load(cfg.AffixFile)
	if err != nil {
		return nil, err
	}

	oracle, err := dict.Load(cfg.DictFile)
	if err != nil {
		return nil, err
	}

	var spellOracle spell.Oracle = spell.NullOracle{}
	if cfg.Spell != nil {
		// The spellcheck backend is an external collaborator this module
		// does not implement (spec §1, spell.go). A configured Spell
		// block with no real client to honor it is a configuration
		// error, not something to silently downgrade to the no-op.
		return nil, fmt.Errorf("cmd/tokenize: config declares spell endpoint %q but no spellcheck client is wired; remove the spell block or configure spell.NullOracle/StaticOracle directly", cfg.Spell.Endpoint)
	}

	return &bundle{
		cfg: cfg,
		deps: wordsep.Deps{
			Affix: aff,
			Dict:  oracle,
			Spell: spellOracle,
		},
	}, nil
}

// TokenizeCmd tokenizes a sentence (from --text, or stdin when --text is
// empty) and prints the resulting alternatives matrix.
type TokenizeCmd struct {
	Text string `help:"Sentence to tokenize; omit to read from stdin" short:"t"`
	JSON bool   `help:"Emit JSON instead of a plain matrix"`
}

func (cmd *TokenizeCmd) Run(ctx *Context) error {
	b, err := loadBundle(ctx.Config)
	if err != nil {
		return err
	}

	input := cmd.Text
	if input == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("tokenize: reading stdin: %w", err)
		}
		input = string(data)
	}

	id := uuid.New()
	sent, ok, err := sentence.Tokenize(id, input, b.cfg.Options.ToOptions(), b.deps)
	if err != nil {
		return err
	}
	if !ok && !ctx.Quiet {
		color.Yellow("warning: sentence %s produced no positions", id)
	}

	if cmd.JSON {
		return printJSON(sent)
	}
	printMatrix(sent, ctx.Verbose)
	return nil
}

func printMatrix(sent *sentence.Sentence, verbose bool) {
	for i, wp := range sent.Positions() {
		fmt.Printf("%2d: %v", i, wp.Alternatives)
		if verbose {
			fmt.Printf("  unsplit=%q postQuote=%v firstUpper=%v", wp.UnsplitWord, wp.PostQuote, wp.FirstUpper)
		}
		fmt.Println()
	}
}

type jsonPosition struct {
	Index        int      `json:"index"`
	Alternatives []string `json:"alternatives"`
	UnsplitWord  string   `json:"unsplit_word,omitempty"`
	PostQuote    bool     `json:"post_quote"`
	FirstUpper   bool     `json:"first_upper"`
}

type jsonSentence struct {
	ID        string         `json:"id"`
	Positions []jsonPosition `json:"positions"`
}

func printJSON(sent *sentence.Sentence) error {
	out := jsonSentence{ID: sent.ID.String()}
	for i, wp := range sent.Positions() {
		out.Positions = append(out.Positions, jsonPosition{
			Index:        i,
			Alternatives: wp.Alternatives,
			UnsplitWord:  wp.UnsplitWord,
			PostQuote:    wp.PostQuote,
			FirstUpper:   wp.FirstUpper,
		})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// InspectCmd runs sentence.Audit over a corpus file (one sentence per
// line) and reports dictionary-coverage gaps.
type InspectCmd struct {
	Path string `arg:"" help:"Corpus file, one sentence per line"`
}

func (cmd *InspectCmd) Run(ctx *Context) error {
	b, err := loadBundle(ctx.Config)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cmd.Path)
	if err != nil {
		return fmt.Errorf("inspect: reading %s: %w", cmd.Path, err)
	}

	lines := splitLines(string(data))
	opts := b.cfg.Options.ToOptions()
	totalUnknown := 0
	for lineNo, line := range lines {
		if line == "" {
			continue
		}
		id := uuid.New()
		sent, _, err := sentence.Tokenize(id, line, opts, b.deps)
		if err != nil {
			return fmt.Errorf("inspect: line %d: %w", lineNo+1, err)
		}
		report := sent.Audit(b.deps.Dict)
		if len(report.Unknown) == 0 {
			continue
		}
		totalUnknown += len(report.Unknown)
		if !ctx.Quiet {
			color.Red("line %d (%s): %d unknown word(s)", lineNo+1, id, len(report.Unknown))
			for _, u := range report.Unknown {
				fmt.Printf("  position %d: %q\n", u.Position, u.Surface)
			}
		}
	}

	if !ctx.Quiet {
		if totalUnknown == 0 {
			color.Green("no unknown words found")
		} else {
			color.Yellow("%d unknown word(s) across %s", totalUnknown, cmd.Path)
		}
	}
	return nil
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, trimCR(s[start:i]))
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, trimCR(s[start:]))
	}
	return lines
}

func trimCR(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\r' {
		return s[:len(s)-1]
	}
	return s
}

// ImportLexiconCmd converts a legacy XML lexicon export into this
// module's own dictionary bundle YAML (SPEC_FULL §5); it does not
// reimplement the excluded affix-file grammar.
type ImportLexiconCmd struct {
	Input  string `arg:"" help:"Path to the XML lexicon export"`
	Output string `arg:"" help:"Path to write the YAML dictionary bundle"`
}

func (cmd *ImportLexiconCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(cmd.Input)
	if err != nil {
		return fmt.Errorf("import-lexicon: reading %s: %w", cmd.Input, err)
	}

	lex, err := dict.ParseLexiconXML(string(data))
	if err != nil {
		return err
	}
	if len(lex.Words) == 0 && len(lex.Regexes) == 0 {
		return errors.New("import-lexicon: lexicon contained no words or regexes")
	}

	out, err := yaml.Marshal(lex.ToBundleYAMLDoc())
	if err != nil {
		return fmt.Errorf("import-lexicon: marshaling bundle: %w", err)
	}

	if err := os.WriteFile(cmd.Output, out, 0o644); err != nil {
		return fmt.Errorf("import-lexicon: writing %s: %w", cmd.Output, err)
	}
	if !ctx.Quiet {
		color.Green("wrote %d word(s), %d regex(es) to %s", len(lex.Words), len(lex.Regexes), cmd.Output)
	}
	return nil
}
