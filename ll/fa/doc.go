/*
Package fa implements nondeterministic finite automata for lexical analysis.

Automata are graphs of states. Each state may carry an accept symbol, has at most
one transition per input character and any number of ε-transitions. All
non-determinism is expressed through ε-transitions. Graphs are cyclic in general
(repetition introduces back-edges); the graph reachable from a state is "the"
automaton for that state.

Automata are composed from combinators:

    digits := fa.Repeat(fa.Set("0123456789", ""), "int")    // [0-9]+
    plus   := fa.Literal("+", "+")
    ident  := fa.Concat("id", fa.Set("abc", ""), fa.Kleene(fa.Set("abc012", ""), ""))
    lexer  := fa.Lexer(digits, plus, ident)

Combinators never modify their operands; they work on clones. It is therefore
safe to use a sub-expression more than once. Every combinator returns an
automaton with exactly one accepting state, which is the state further
combinators link to.

When more than one accepting state is reachable at the same time, the first one
in closure order wins. For Or and Lexer this is the order in which the
alternatives have been given.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lltab.fa'.
func tracer() tracing.Trace {
	return tracing.Select("lltab.fa")
}
