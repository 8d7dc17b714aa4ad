/*
Command lltab is a command line tool for experiments with LL(1) grammars.

It comes with a built-in expression grammar

	E  ➞ T E'
	E' ➞ + T E'  |  ε
	T  ➞ F T'
	T' ➞ * F T'  |  ε
	F  ➞ ( E )  |  int

and a lexer for it. Sub-commands are

	lltab table             print rules, FIRST/FOLLOW sets and the LL(1) parse table
	lltab tokens <input>    tokenize input
	lltab parse <input>     parse input and print the parse tree
	lltab repl              interactive mode; every line entered is parsed

Input may be given as arguments or read from a file (flag --file).
Settings are read from a TOML file (flag --config), for example

	trace = "Info"              # trace level for all tracers
	trace-destination = "Stderr"
	trim = true                 # drop empty non-terminals from parse trees
	prompt = "lltab> "
	panic-on-syntax-error = false

Flags given on the command line take precedence over the configuration file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lltab.cmd'
func tracer() tracing.Trace {
	return tracing.Select("lltab.cmd")
}
