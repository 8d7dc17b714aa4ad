package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/lltab"
	"github.com/npillmayer/lltab/ll/scanner"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	config     *string
	file       *string
	lexmachine *bool
}{}

var conf = defaultConfig()

var rootCmd = &cobra.Command{
	Use:   "lltab",
	Short: "Experiment with LL(1) grammars, tokenizers and parsers",
	Long: `lltab provides tools for a built-in expression grammar:
- Prints the grammar's FIRST/FOLLOW sets and its LL(1) parse table.
- Tokenizes and parses input, printing tokens and parse trees.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: initialize,
}

func init() {
	flags := rootCmd.PersistentFlags()
	rootFlags.config = flags.StringP("config", "c", "", "configuration file (TOML)")
	rootFlags.file = flags.StringP("file", "f", "", "read input from file instead of arguments")
	rootFlags.lexmachine = flags.Bool("lexmachine", false, "tokenize with lexmachine instead of the built-in automaton")
	flags.String("trace", "Error", "trace level [Debug|Info|Error]")
	flags.Bool("trim", true, "drop empty non-terminals from parse trees")
	flags.Bool("panic", false, "panic on the first syntax error")
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	return nil
}

func initialize(cmd *cobra.Command, args []string) error {
	initDisplay()
	c, err := loadConfig(*rootFlags.config)
	if err != nil {
		return err
	}
	if err = c.overrideFrom(cmd.Flags()); err != nil {
		return err
	}
	conf = c
	return setup(conf)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// source returns the input source: either a file, normalized to NFC, or the
// command arguments.
func source(args []string) scanner.Source {
	if *rootFlags.file != "" {
		return scanner.NFC(scanner.FileSource(*rootFlags.file))
	}
	return scanner.StringSource(strings.Join(args, " "))
}

// tokens creates a token stream for the expression grammar, either from the
// automaton-based tokenizer or from lexmachine. Whitespace is skipped.
func tokens(src scanner.Source) (lltab.TokenStream, error) {
	if *rootFlags.lexmachine {
		LM, err := makeLexmachineAdapter()
		if err != nil {
			return nil, err
		}
		r, err := src.Open()
		if err != nil {
			return nil, err
		}
		if c, ok := r.(io.Closer); ok {
			defer c.Close()
		}
		input, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("cannot read input: %w", err)
		}
		return LM.Tokens(string(input))
	}
	tz := scanner.NewTokenizer(makeExprLexer(), src, scanner.Skip("ws"))
	return tz.Tokens()
}
