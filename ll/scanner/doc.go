/*
Package scanner implements a tokenizer driven by a finite automaton (see package fa).

A Tokenizer combines an automaton with a character source. Every call to Tokens
opens the source anew and returns an independent stream of tokens:

    lexer := fa.Lexer(
        fa.Repeat(fa.Set("0123456789", ""), "int"),
        fa.Literal("+", "+"),
    )
    tokenizer := scanner.NewTokenizer(lexer, scanner.StringSource("3+5"))
    stream, err := tokenizer.Tokens()
    ...
    for tok, ok := stream.Next(); ok; tok, ok = stream.Next() {
        fmt.Println(tok)    // int("3"), +("+"), int("5"), #EOS("")
    }

Matching is greedy (maximal munch): the tokenizer consumes characters as long as
the automaton has reachable states, without backtracking to a shorter match.
If more than one accepting state is reachable, the first one in closure order
wins. Input which cannot be matched is reported as a token with symbol "#ERROR".
The last token of every stream has symbol "#EOS".

An adapter for lexmachine lexers, producing the same kind of token stream, lives
in sub-package lexmach.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lltab.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lltab.scanner")
}
