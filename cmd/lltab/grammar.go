package main

import (
	"fmt"

	"github.com/npillmayer/lltab/ll"
	"github.com/npillmayer/lltab/ll/fa"
	"github.com/npillmayer/lltab/ll/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// We provide the classical LL(1) expression grammar
//
//  E  ➞ T E'
//  E' ➞ + T E'  |  ε
//  T  ➞ F T'
//  T' ➞ * F T'  |  ε
//  F  ➞ ( E )  |  int
//
func makeExprGrammar() *ll.Cfg {
	b := ll.NewGrammarBuilder("Expr")
	b.LHS("E").N("T").N("E'").End()
	b.LHS("E'").T("+").N("T").N("E'").End()
	b.LHS("E'").Epsilon()
	b.LHS("T").N("F").N("T'").End()
	b.LHS("T'").T("*").N("F").N("T'").End()
	b.LHS("T'").Epsilon()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("int").End()
	g, err := b.Grammar()
	if err != nil {
		panic(fmt.Errorf("error creating grammar: %s", err.Error()))
	}
	return g
}

// makeExprLexer creates an automaton recognizing the terminals of the
// expression grammar, plus whitespace.
func makeExprLexer() *fa.State {
	return fa.Lexer(
		fa.Literal("+", "+"),
		fa.Literal("*", "*"),
		fa.Literal("(", "("),
		fa.Literal(")", ")"),
		fa.Repeat(fa.Set("0123456789", ""), "int"),
		fa.Repeat(fa.Set(" \t\r\n", ""), "ws"),
	)
}

// makeLexmachineAdapter creates a lexmachine-based scanner for the expression
// grammar, as an alternative to the automaton.
func makeLexmachineAdapter() (*lexmach.Adapter, error) {
	literals := []string{"+", "*", "(", ")"}
	tokenIds := map[string]int{"+": 1, "*": 2, "(": 3, ")": 4, "int": 5}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[0-9]+`), lexmach.MakeToken("int", tokenIds["int"]))
		lexer.Add([]byte(`( |\t|\r|\n)+`), lexmach.Skip)
	}
	return lexmach.NewAdapter(init, literals, nil, tokenIds)
}
