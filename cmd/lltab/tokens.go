package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "tokens [input]",
		Short:   "Tokenize input for the expression grammar",
		Example: `  lltab tokens "3 + 5*7"`,
		RunE:    runTokens,
	}
	rootCmd.AddCommand(cmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	ts, err := tokens(source(args))
	if err != nil {
		return err
	}
	data := pterm.TableData{{"Symbol", "Value", "Line:Col", "Span"}}
	errors := 0
	for tok, ok := ts.Next(); ok; tok, ok = ts.Next() {
		if tok.IsError() {
			errors++
		}
		data = append(data, []string{
			tok.Symbol,
			fmt.Sprintf("%q", tok.Value),
			fmt.Sprintf("%d:%d", tok.Line, tok.Column),
			tok.Span().String(),
		})
	}
	if c, ok := ts.(interface{ Close() error }); ok {
		c.Close()
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if errors > 0 {
		return fmt.Errorf("input contains %d unrecognized token(s)", errors)
	}
	return nil
}
