package ll1

import (
	"fmt"
	"strings"

	"github.com/npillmayer/lltab"
	"github.com/npillmayer/lltab/ll"
	"github.com/npillmayer/schuko/gconf"
)

// NodeType is the kind of node a parser is positioned on.
type NodeType int

// Node types of a parser.
const (
	Initial        NodeType = iota // no node read yet
	NonTerminal                    // start of a non-terminal
	EndNonTerminal                 // end of a non-terminal
	Terminal                       // a matched input token
	Error                          // skipped input
	EndDocument                    // end of input reached
)

func (n NodeType) String() string {
	switch n {
	case Initial:
		return "Initial"
	case NonTerminal:
		return "NonTerminal"
	case EndNonTerminal:
		return "EndNonTerminal"
	case Terminal:
		return "Terminal"
	case Error:
		return "Error"
	case EndDocument:
		return "EndDocument"
	}
	return fmt.Sprintf("NodeType(%d)", int(n))
}

// Parser is a pull-style LL(1)-parser. Create one with ll1.NewParser(...).
//
// A parser is not safe for concurrent use, but any number of parsers may share
// a parse table.
type Parser struct {
	table     *ll.ParseTable
	tokens    lltab.TokenStream
	start     string
	stack     []stackitem // parser stack, top at the end
	lookahead lltab.Token
	kind      NodeType
	node      lltab.Token // symbol, value and location of the current node
	resync    bool        // re-synchronizing after a syntax error
	errors    int
}

// We store grammar symbols and end markers of non-terminals on the parse stack.
type stackitem struct {
	sym string // grammar symbol
	end bool   // end marker for non-terminal sym
}

func (item stackitem) String() string {
	if item.end {
		return "#END " + item.sym
	}
	return item.sym
}

// NewParser creates an LL(1)-parser for a parse table, reading tokens from a
// token stream. Parsing starts with the start symbol start. If start is empty,
// the start symbol of the table's grammar is used.
func NewParser(table *ll.ParseTable, tokens lltab.TokenStream, start string) *Parser {
	if start == "" {
		start = table.Start()
	}
	return &Parser{
		table:  table,
		tokens: tokens,
		start:  start,
		stack:  make([]stackitem, 0, 64),
	}
}

// Kind returns the type of the current node.
func (p *Parser) Kind() NodeType {
	return p.kind
}

// Symbol returns the grammar symbol of the current node. For Error nodes, this
// is "#ERROR".
func (p *Parser) Symbol() string {
	return p.node.Symbol
}

// Value returns the input text of the current node. Non-terminals have no value;
// Error nodes carry the input text skipped during error recovery.
func (p *Parser) Value() string {
	return p.node.Value
}

// Line returns the input line of the current node.
func (p *Parser) Line() int {
	return p.node.Line
}

// Column returns the input column of the current node.
func (p *Parser) Column() int {
	return p.node.Column
}

// Position returns the input position of the current node.
func (p *Parser) Position() uint64 {
	return p.node.Position
}

// Token returns the current node as a token. For non-terminals, the location
// is the location of the lookahead token at the time the node has been read.
func (p *Parser) Token() lltab.Token {
	return p.node
}

// ErrorCount returns the number of syntax errors reported so far.
func (p *Parser) ErrorCount() int {
	return p.errors
}

// Read reads the next node. It returns false after an EndDocument node has been
// read.
func (p *Parser) Read() bool {
	switch p.kind {
	case EndDocument:
		return false
	case Initial:
		tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
		p.push(stackitem{sym: p.start})
		p.advance()
	}
	if p.resync && p.synchronize() {
		return true
	}
	if len(p.stack) == 0 {
		if p.lookahead.IsEOS() {
			p.report(EndDocument, lltab.Token{Symbol: lltab.EOS,
				Line: p.lookahead.Line, Column: p.lookahead.Column, Position: p.lookahead.Position})
			return true
		}
		p.panicMode()
		return true
	}
	top := p.stack[len(p.stack)-1]
	switch {
	case top.end:
		p.pop()
		p.report(EndNonTerminal, p.located(top.sym))
	case top.sym == p.lookahead.Symbol:
		p.pop()
		p.report(Terminal, p.lookahead)
		p.advance()
	case p.table.IsNonTerminal(top.sym):
		rule, ok := p.table.Rule(top.sym, p.lookahead.Symbol)
		if !ok {
			p.panicMode()
			break
		}
		tracer().Debugf("expand %v", rule)
		p.pop()
		p.push(stackitem{sym: top.sym, end: true})
		for i := rule.Len() - 1; i >= 0; i-- {
			p.push(stackitem{sym: rule.Symbol(i)})
		}
		p.report(NonTerminal, p.located(top.sym))
	default:
		p.panicMode()
	}
	return true
}

// panicMode reports a syntax error and skips input until the parser may
// continue. If the top of stack is a non-terminal, input is skipped until a
// token is found which the non-terminal is able to start with. Otherwise
// input is skipped until a token is found which matches any symbol on the
// stack. Skipping stops at the end of input.
//
// After skipping, the stack is re-synchronized with the input (see synchronize).
func (p *Parser) panicMode() {
	errtok := lltab.Token{
		Symbol:   lltab.ErrorSymbol,
		Line:     p.lookahead.Line,
		Column:   p.lookahead.Column,
		Position: p.lookahead.Position,
	}
	tracer().Infof("syntax error at %d:%d: unexpected %v, stack = %v",
		p.lookahead.Line, p.lookahead.Column, p.lookahead, p.stack)
	if gconf.GetBool("panic-on-syntax-error") {
		panic(fmt.Sprintf(`LL(1)-parser: syntax error at %d:%d, unexpected %v.

Configuration flag panic-on-syntax-error is set to true. It is aimed at helping
to debug a grammar. If you did not expect this to panic, please unset
panic-on-syntax-error to its default (false).`, p.lookahead.Line, p.lookahead.Column, p.lookahead))
	}
	p.errors++
	var skipped strings.Builder
	var expected []string
	if len(p.stack) > 0 {
		if top := p.stack[len(p.stack)-1]; !top.end && p.table.IsNonTerminal(top.sym) {
			expected = p.table.Expected(top.sym)
		}
	}
	start := p.lookahead.Position
	if len(expected) > 0 {
		for !p.lookahead.IsEOS() && !contains(expected, p.lookahead.Symbol) {
			skipped.WriteString(p.lookahead.Value)
			p.advance()
		}
	} else if !p.lookahead.IsEOS() {
		for {
			skipped.WriteString(p.lookahead.Value)
			p.advance()
			if p.lookahead.IsEOS() || p.onStack(p.lookahead.Symbol) {
				break
			}
		}
	}
	errtok.Value = skipped.String()
	errtok.Length = int(p.lookahead.Position - start)
	tracer().Debugf("skipped %q, continuing with %v", errtok.Value, p.lookahead)
	p.resync = true
	p.report(Error, errtok)
}

// synchronize is called by Read after a syntax error. It pops one symbol from
// the stack per call, until the top of stack is able to handle the lookahead.
// End markers popped are reported as EndNonTerminal nodes, keeping the node
// sequence well nested. synchronize returns true if it has reported a node.
//
// At the end of input the stack is drained completely, except for explicit
// matches of EOS.
func (p *Parser) synchronize() bool {
	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		if top.end {
			p.pop()
			p.report(EndNonTerminal, p.located(top.sym))
			return true
		}
		if top.sym == p.lookahead.Symbol {
			break
		}
		if !p.lookahead.IsEOS() && p.table.IsNonTerminal(top.sym) {
			if _, ok := p.table.Rule(top.sym, p.lookahead.Symbol); ok {
				break
			}
		}
		tracer().Debugf("dropping %v from stack", top)
		p.pop()
	}
	p.resync = false
	return false
}

// advance reads the next lookahead token. If the token stream is exhausted
// without having delivered EOS, an EOS token is synthesized.
func (p *Parser) advance() {
	tok, ok := p.tokens.Next()
	if !ok {
		prev := p.lookahead
		if prev.IsEOS() {
			return
		}
		tok = lltab.Token{
			Symbol:   lltab.EOS,
			Line:     prev.Line,
			Column:   prev.Column + prev.Length,
			Position: prev.Position + uint64(prev.Length),
		}
		if tok.Line == 0 {
			tok.Line, tok.Column = 1, 1
		}
	}
	tracer().Debugf("lookahead = %v", tok)
	p.lookahead = tok
}

// located creates a token for a non-terminal at the location of the lookahead.
func (p *Parser) located(sym string) lltab.Token {
	return lltab.Token{
		Symbol:   sym,
		Line:     p.lookahead.Line,
		Column:   p.lookahead.Column,
		Position: p.lookahead.Position,
	}
}

func (p *Parser) report(kind NodeType, node lltab.Token) {
	p.kind, p.node = kind, node
}

func (p *Parser) push(item stackitem) {
	p.stack = append(p.stack, item)
}

func (p *Parser) pop() {
	p.stack = p.stack[:len(p.stack)-1]
}

// onStack is true if sym is a pending grammar symbol on the stack.
func (p *Parser) onStack(sym string) bool {
	for _, item := range p.stack {
		if !item.end && item.sym == sym {
			return true
		}
	}
	return false
}

func contains(syms []string, sym string) bool {
	for _, s := range syms {
		if s == sym {
			return true
		}
	}
	return false
}
