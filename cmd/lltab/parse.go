package main

import (
	"fmt"

	"github.com/npillmayer/lltab/ll"
	"github.com/npillmayer/lltab/ll/ll1"
	"github.com/npillmayer/lltab/ll/scanner"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	events *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse [input]",
		Short:   "Parse input with the expression grammar and print the parse tree",
		Example: `  lltab parse "(1+2)*3"`,
		RunE:    runParse,
	}
	parseFlags.events = cmd.Flags().Bool("events", false, "print the parser's node sequence instead of a tree")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	table, err := makeExprGrammar().ParseTable()
	if err != nil {
		return err
	}
	p, err := newParser(table, source(args))
	if err != nil {
		return err
	}
	if *parseFlags.events {
		printEvents(p)
	} else {
		printTree(p.ParseSubtree(conf.Trim))
	}
	if n := p.ErrorCount(); n > 0 {
		return fmt.Errorf("input contains %d syntax error(s)", n)
	}
	return nil
}

func printEvents(p *ll1.Parser) {
	data := pterm.TableData{{"Node", "Symbol", "Value", "Line:Col"}}
	for p.Read() {
		data = append(data, []string{
			p.Kind().String(),
			p.Symbol(),
			p.Value(),
			fmt.Sprintf("%d:%d", p.Line(), p.Column()),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// printTree displays a parse tree on a terminal, using a pterm tree.
func printTree(tree *ll1.ParseNode) {
	if tree == nil {
		pterm.Info.Println("empty parse tree")
		return
	}
	leveled := &treeLister{}
	ll1.Walk(tree, leveled)
	tracer().Debugf("|ll| = %d", len(leveled.list))
	root := pterm.NewTreeFromLeveledList(leveled.list)
	pterm.DefaultTree.WithRoot(root).Render()
	for _, leaf := range tree.Leaves() {
		if leaf.Kind == ll1.Error {
			pterm.Error.Printf("syntax error at %d:%d, skipped %q\n", leaf.Line, leaf.Column, leaf.Value)
		}
	}
}

// treeLister is a listener creating a pterm.LeveledList from a parse tree.
type treeLister struct {
	list pterm.LeveledList
}

func (tl *treeLister) EnterNonTerminal(n *ll1.ParseNode, level int) bool {
	tl.list = append(tl.list, pterm.LeveledListItem{Level: level, Text: n.Symbol})
	return true
}

func (tl *treeLister) ExitNonTerminal(*ll1.ParseNode, int) {}

func (tl *treeLister) Terminal(n *ll1.ParseNode, level int) {
	tl.list = append(tl.list, pterm.LeveledListItem{
		Level: level,
		Text:  fmt.Sprintf("%s %q", n.Symbol, n.Value),
	})
}

func (tl *treeLister) Error(n *ll1.ParseNode, level int) {
	tl.list = append(tl.list, pterm.LeveledListItem{
		Level: level,
		Text:  pterm.Red(fmt.Sprintf("%s %q", n.Symbol, n.Value)),
	})
}

func newParser(table *ll.ParseTable, src scanner.Source) (*ll1.Parser, error) {
	ts, err := tokens(src)
	if err != nil {
		return nil, err
	}
	return ll1.NewParser(table, ts, ""), nil
}
