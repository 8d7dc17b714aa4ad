/*
Package ll1 provides a pull-style LL(1)-parser. Clients have to use the tools
of package ll to prepare a parse table. The parser utilizes this table to create
a left derivation for a given input, provided through a token stream.

This parser is intended for small grammars, e.g. for configuration input or
small domain-specific languages. Clients are able to construct the parse table
from a grammar and use the parser directly, without a code-generation or
compile step.

Usage

Clients construct a grammar and request its parse table:

	g := ll.NewCfg("Expr")
	g.AddRule("E", "T", "E'")
	...
	table, err := g.ParseTable()
	if err != nil { ... } // grammar is not LL(1)

Input is tokenized, e.g. by a tokenizer of package scanner, which creates a
token stream:

	tokens, _ := scanner.NewTokenizer(lexer, scanner.StringSource("3+5*7")).Tokens()

The parser is driven by the client, one node at a time, much like a streaming
XML reader:

	p := ll1.NewParser(table, tokens, "")
	for p.Read() {
		switch p.Kind() {
		case ll1.NonTerminal:    // entering p.Symbol()
		case ll1.EndNonTerminal: // leaving p.Symbol()
		case ll1.Terminal:       // p.Symbol(), p.Value(), p.Line(), p.Column()
		case ll1.Error:          // p.Value() holds the skipped input
		}
	}

Alternatively, clients read a complete parse tree in one go:

	tree := p.ParseSubtree(true)

Syntax errors do not stop the parser. It reports an Error node and recovers
in panic-mode, i.e. it skips input tokens until it finds a token it is able to
continue with. The parser always terminates with an EndDocument node.
For debugging, the global configuration flag "panic-on-syntax-error" makes the
parser panic at the first syntax error.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll1

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lltab.ll'.
func tracer() tracing.Trace {
	return tracing.Select("lltab.ll")
}
