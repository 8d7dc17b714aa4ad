package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/lltab/ll"
	"github.com/npillmayer/lltab/ll/fa"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var tableFlags = struct {
	html *string
	dot  *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "table",
		Short:   "Print the analysis and the LL(1) parse table of the expression grammar",
		Example: `  lltab table --html table.html`,
		Args:    cobra.NoArgs,
		RunE:    runTable,
	}
	tableFlags.html = cmd.Flags().String("html", "", "export the parse table as HTML to this file")
	tableFlags.dot = cmd.Flags().String("dot", "", "export the lexer automaton in GraphViz format to this file")
	rootCmd.AddCommand(cmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	g := makeExprGrammar()
	g.Dump() // only visible in debug mode
	table, err := g.ParseTable()
	if err != nil {
		return err
	}
	pterm.Info.Printf("Grammar %s, fingerprint %s\n", g.Name, g.Fingerprint())
	printRules(g)
	printSets(g)
	printTable(table)
	if *tableFlags.html != "" {
		if err := writeFile(*tableFlags.html, func(f *os.File) error {
			return ll.ParseTableAsHTML(table, f)
		}); err != nil {
			return err
		}
		pterm.Info.Printf("Parse table written to %s\n", *tableFlags.html)
	}
	if *tableFlags.dot != "" {
		if err := writeFile(*tableFlags.dot, func(f *os.File) error {
			return fa.ToGraphViz(makeExprLexer(), f)
		}); err != nil {
			return err
		}
		pterm.Info.Printf("Automaton written to %s\n", *tableFlags.dot)
	}
	return nil
}

func printRules(g *ll.Cfg) {
	data := pterm.TableData{{"#", "Rule"}}
	for _, r := range g.Rules() {
		data = append(data, []string{fmt.Sprintf("%d", r.No()), r.String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printSets(g *ll.Cfg) {
	predict, follow := g.PredictTable(), g.FollowTable()
	data := pterm.TableData{{"Non-Terminal", "Predict", "Follow"}}
	for _, nt := range g.NonTerminals() {
		var ps []string
		for _, p := range predict.Predictions(nt) {
			ps = append(ps, p.String())
		}
		data = append(data, []string{nt, strings.Join(ps, ", "), strings.Join(follow.Follow(nt), " ")})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printTable(table *ll.ParseTable) {
	header := append([]string{""}, table.Terminals()...)
	data := pterm.TableData{header}
	for _, nt := range table.NonTerminals() {
		row := []string{nt}
		for _, term := range table.Terminals() {
			cell := ""
			if r, ok := table.Rule(nt, term); ok {
				cell = r.String()
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	if err = write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
