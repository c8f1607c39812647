// Command tokenize is a small harness around the lgtokenize module: it
// loads a locale bundle (affix table + dictionary) from a YAML config
// file and runs the sentence tokenizer over stdin/file input, an audit
// corpus, or a legacy XML lexicon export, depending on the subcommand.
//
// Grounded on the teacher's cmd/snapsql/main.go: the same Context{Config,
// Verbose, Quiet} + kong.Parse(&CLI) + ctx.Run(appCtx) shape, trimmed to
// the subcommands this module's spec actually calls for.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// Context is the global context threaded into every command's Run
// method, mirroring the teacher's own Context struct verbatim in shape.
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
}

var CLI struct {
	Config string `help:"Configuration file path" default:"lgtokenize.yaml"`

	Verbose bool `help:"Enable verbose output" short:"v"`
	Quiet   bool `help:"Suppress non-error output" short:"q"`

	Tokenize      TokenizeCmd      `cmd:"" help:"Tokenize a sentence or file and print its alternatives matrix"`
	Inspect       InspectCmd       `cmd:"" help:"Audit a corpus for dictionary coverage"`
	ImportLexicon ImportLexiconCmd `cmd:"" name:"import-lexicon" help:"Convert a legacy XML lexicon export into a dictionary bundle"`
}

func main() {
	ctx := kong.Parse(&CLI)

	appCtx := &Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
