/*
Package ll implements grammar analysis for LL(1) parsing.

Building a Grammar

Grammars are ordered lists of rules. A rule has a left symbol and a (possibly
empty) sequence of right symbols. Symbols are plain strings. A symbol is a
non-terminal if and only if it appears as the left symbol of some rule; every
other symbol is a terminal. The reserved terminals "#EOS" and "#ERROR" are part
of every grammar.

Rules may be added directly

    g := ll.NewCfg("Expr")
    g.AddRule("E", "T", "E'")       // E  ->  T E'
    g.AddRule("E'", "+", "T", "E'") // E' ->  + T E'
    g.AddRule("E'")                 // E' ->  ε

or by a grammar builder, which checks the role of each symbol:

    b := ll.NewGrammarBuilder("Expr")
    b.LHS("E").N("T").N("E'").End()
    b.LHS("E'").T("+").N("T").N("E'").End()
    b.LHS("E'").Epsilon()
    ...
    g, err := b.Grammar()

The start symbol defaults to the left symbol of the first rule.

Static Grammar Analysis

The grammar computes its predict table (FIRST-sets with the originating rule
attached), its follow table (FOLLOW-sets over the grammar augmented by
S' -> S #EOS) and finally the LL(1) parse table:

    table, err := g.ParseTable()
    if err != nil {
        // grammar is not LL(1), err is a *ll.ConflictError
    }
    rule, ok := table.Rule("E'", "+")   // E' -> + T E'

All derived tables are pure functions of the grammar's rules. They are cached
and re-computed whenever the rules change.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lltab.ll'.
func tracer() tracing.Trace {
	return tracing.Select("lltab.ll")
}
