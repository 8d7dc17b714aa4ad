package ll1

import (
	"fmt"
	"strings"
)

// ParseNode is a node of a parse tree. Nodes for non-terminals have children,
// nodes for terminals and errors are leaves carrying the input text.
type ParseNode struct {
	Kind     NodeType // NonTerminal, Terminal or Error
	Symbol   string
	Value    string
	Line     int
	Column   int
	Position uint64
	Children []*ParseNode
}

// ParseSubtree reads a complete sub-tree, starting with the next node. If the
// next node is a non-terminal, nodes are read until the matching end of the
// non-terminal, and the node returned holds the sub-tree. Terminal and Error
// nodes result in a leaf. ParseSubtree returns nil if the next node ends a
// non-terminal or the document.
//
// If the parser is in its initial state, the complete input is parsed and the
// tree for the start symbol is returned. Error nodes outside of the start
// symbol's sub-tree are attached to the root.
//
// With trimEmpties set, nodes for non-terminals without children are dropped,
// e.g. for non-terminals derived to ε.
func (p *Parser) ParseSubtree(trimEmpties bool) *ParseNode {
	if p.kind == Initial {
		return p.parseDocument(trimEmpties)
	}
	if !p.Read() {
		return nil
	}
	return p.subtree(trimEmpties)
}

func (p *Parser) parseDocument(trimEmpties bool) *ParseNode {
	var root *ParseNode
	var leading, trailing []*ParseNode
	for p.Read() && p.kind != EndDocument {
		switch p.kind {
		case NonTerminal:
			if root == nil {
				root = p.subtree(trimEmpties)
			} else {
				tracer().Errorf("unexpected non-terminal %s after end of start symbol", p.Symbol())
			}
		case Terminal, Error:
			if root == nil {
				leading = append(leading, p.leaf())
			} else {
				trailing = append(trailing, p.leaf())
			}
		}
	}
	if root == nil {
		root = &ParseNode{Kind: NonTerminal, Symbol: p.start, Line: p.Line(), Column: p.Column(),
			Position: p.Position()}
	}
	if len(leading) > 0 {
		root.Children = append(leading, root.Children...)
	}
	root.Children = append(root.Children, trailing...)
	return root
}

// subtree creates a tree for the current node, reading nodes as necessary.
func (p *Parser) subtree(trimEmpties bool) *ParseNode {
	switch p.kind {
	case Terminal, Error:
		return p.leaf()
	case NonTerminal:
		node := p.leaf()
		for p.Read() {
			if p.kind == EndNonTerminal || p.kind == EndDocument {
				break
			}
			child := p.subtree(trimEmpties)
			if child == nil || (trimEmpties && child.isEmpty()) {
				continue
			}
			node.Children = append(node.Children, child)
		}
		return node
	}
	return nil
}

func (p *Parser) leaf() *ParseNode {
	return &ParseNode{
		Kind:     p.kind,
		Symbol:   p.node.Symbol,
		Value:    p.node.Value,
		Line:     p.node.Line,
		Column:   p.node.Column,
		Position: p.node.Position,
	}
}

func (n *ParseNode) isEmpty() bool {
	return n.Kind == NonTerminal && n.Value == "" && len(n.Children) == 0
}

// Leaves returns the terminal and error nodes of a tree, from left to right.
func (n *ParseNode) Leaves() []*ParseNode {
	var leaves []*ParseNode
	Walk(n, leafCollector{&leaves})
	return leaves
}

// String returns an indented representation of a tree, one node per line.
func (n *ParseNode) String() string {
	var b strings.Builder
	Walk(n, &treePrinter{b: &b})
	return b.String()
}

// --- Walking trees ---------------------------------------------------------

// Listener is an interface for walking parse trees. EnterNonTerminal may
// return false to skip the children of a node; ExitNonTerminal is called in
// any case.
type Listener interface {
	EnterNonTerminal(node *ParseNode, level int) bool
	ExitNonTerminal(node *ParseNode, level int)
	Terminal(node *ParseNode, level int)
	Error(node *ParseNode, level int)
}

// Walk traverses a tree top-down and left to right, calling the listener for
// every node.
func Walk(node *ParseNode, listener Listener) {
	walk(node, listener, 0)
}

func walk(node *ParseNode, listener Listener, level int) {
	if node == nil {
		return
	}
	switch node.Kind {
	case Terminal:
		listener.Terminal(node, level)
	case Error:
		listener.Error(node, level)
	default:
		if listener.EnterNonTerminal(node, level) {
			for _, child := range node.Children {
				walk(child, listener, level+1)
			}
		}
		listener.ExitNonTerminal(node, level)
	}
}

type leafCollector struct {
	leaves *[]*ParseNode
}

func (c leafCollector) EnterNonTerminal(*ParseNode, int) bool { return true }
func (c leafCollector) ExitNonTerminal(*ParseNode, int)       {}
func (c leafCollector) Terminal(n *ParseNode, _ int)          { *c.leaves = append(*c.leaves, n) }
func (c leafCollector) Error(n *ParseNode, _ int)             { *c.leaves = append(*c.leaves, n) }

type treePrinter struct {
	b *strings.Builder
}

func (tp *treePrinter) indent(level int) {
	tp.b.WriteString(strings.Repeat("   ", level))
	tp.b.WriteString("+- ")
}

func (tp *treePrinter) EnterNonTerminal(n *ParseNode, level int) bool {
	tp.indent(level)
	tp.b.WriteString(n.Symbol)
	tp.b.WriteString("\n")
	return true
}

func (tp *treePrinter) ExitNonTerminal(*ParseNode, int) {}

func (tp *treePrinter) Terminal(n *ParseNode, level int) {
	tp.indent(level)
	tp.b.WriteString(fmt.Sprintf("%s %q\n", n.Symbol, n.Value))
}

func (tp *treePrinter) Error(n *ParseNode, level int) {
	tp.indent(level)
	tp.b.WriteString(fmt.Sprintf("%s %q @%d:%d\n", n.Symbol, n.Value, n.Line, n.Column))
}
