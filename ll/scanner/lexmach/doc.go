/*
Package lexmach provides an adapter to use the lexmachine scanner generator with
the LL(1) parser of package ll1.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing keywords and regular expressions.
Lexmachine identifies token types by integers, whereas grammars use strings as
symbols. The token id map given to NewAdapter serves both purposes: its keys are
the terminal symbols of the grammar, its values are the lexmachine token ids.

	var literals []string       // tokens representing literal strings: "+", "(", …
	var keywords []string       // keyword tokens
	var tokenIds map[string]int // terminal symbol → lexmachine token id

	init := func(lexer *lexmachine.Lexer) {
		// initialize lexmachine with all the necessary regular expressions
		//
		// lexmach.Skip      is a pre-defined action which ignores the scanned match
		// lexmach.MakeToken is a pre-defined action which wraps a scanned match into a
		//                   lexmachine token
	}

	LM, err := lexmach.NewAdapter(init, literals, keywords, tokenIds)
	if err != nil {
		// DFA did not compile
	}

A token stream is instantiated for each concrete input. It implements
lltab.TokenStream and may be handed to an LL(1) parser directly.

	stream, err := LM.Tokens("input string to tokenize")

Input which lexmachine cannot match is delivered as a token with symbol "#ERROR";
the stream ends with a token with symbol "#EOS".

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
