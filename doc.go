/*
Package lltab is a toolbox for table-driven LL(1) parsing.

lltab strives to be a small and approachable tool to put together recognizers
for DSLs, configuration input or teaching examples, without a code generation
step. Grammars and lexers are built directly from Go code. Package structure is
as follows:

■ ll: Package ll implements grammar analysis for LL(1) grammars: vocabularies,
predict sets, follow sets and the parse table.

■ ll/fa: Package fa implements a small engine for nondeterministic finite automata,
composed from regular-expression-like combinators. It is used to build lexers.

■ ll/scanner: Package scanner drives an automaton over input text and produces
a stream of tokens (maximal munch).

■ ll/ll1: Package ll1 provides a pull-style LL(1) parser with panic-mode error
recovery and parse tree construction.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lltab
