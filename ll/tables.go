package ll

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/npillmayer/lltab/ll/sparse"
)

// === Parse Table ===========================================================

// ParseTable is the LL(1) parse table of a grammar: for a non-terminal on top
// of the parse stack and a lookahead terminal, it tells which rule to expand.
//
// Cells are stored in a sparse matrix, rows are non-terminals, columns are
// terminals, values are rule numbers. A ParseTable is read-only after
// construction and may be shared between parsers.
type ParseTable struct {
	grammar  string
	start    string
	rules    []*Rule
	nonterms *symbolTable
	terms    *symbolTable
	matrix   *sparse.IntMatrix
}

// Conflict describes a cell of a parse table which two different rules compete for.
type Conflict struct {
	NonTerminal string
	Terminal    string
	Rules       [2]*Rule // rule already present, competing rule
}

func (c Conflict) String() string {
	return fmt.Sprintf("(%s, %s): [%s] vs [%s]", c.NonTerminal, c.Terminal, c.Rules[0], c.Rules[1])
}

// ConflictError is returned for grammars which are not LL(1).
type ConflictError struct {
	Grammar   string
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	c := e.Conflicts[0]
	msg := fmt.Sprintf("grammar is not LL(1): conflicting rules for (%s, %s): [%s] vs [%s]",
		c.NonTerminal, c.Terminal, c.Rules[0], c.Rules[1])
	if n := len(e.Conflicts) - 1; n > 0 {
		msg += fmt.Sprintf(" (and %d more)", n)
	}
	return msg
}

// buildParseTable creates the parse table from predict and follow sets.
// Concrete predictions enter the table directly, nil predictions enter the
// table for every terminal in the follow set of the non-terminal.
// Every cell may receive one rule only; all conflicts are collected and
// reported as a *ConflictError. The first rule entered for a cell stays.
func buildParseTable(g *Cfg, predict *PredictTable, follow *FollowTable) (*ParseTable, error) {
	t := &ParseTable{
		grammar:  g.Name,
		start:    g.Start(),
		rules:    g.Rules(),
		nonterms: newSymbolTable(),
		terms:    newSymbolTable(),
	}
	for _, nt := range g.NonTerminals() {
		t.nonterms.resolveOrDefine(nt)
	}
	for _, term := range g.Terminals() {
		t.terms.resolveOrDefine(term)
	}
	tracer().Infof("parse table of size %d x %d", t.nonterms.size(), t.terms.size())
	t.matrix = sparse.NewIntMatrix(t.nonterms.size(), t.terms.size(), sparse.DefaultNullValue)
	var conflicts []Conflict
	put := func(nt string, term string, r *Rule) {
		row := t.nonterms.resolve(nt)
		col := t.terms.resolve(term)
		if col == nil { // terminal only reachable through follow of a foreign symbol
			tracer().Errorf("symbol %s is not a terminal of grammar %s", term, g.Name)
			return
		}
		old := t.matrix.Set(row.index, col.index, int32(r.no))
		if old == t.matrix.NullValue() || int(old) == r.no {
			return
		}
		t.matrix.Set(row.index, col.index, old) // first rule stays
		c := Conflict{NonTerminal: nt, Terminal: term, Rules: [2]*Rule{t.rules[old], r}}
		tracer().Errorf("LL(1) conflict %s", c)
		conflicts = append(conflicts, c)
	}
	for _, nt := range g.NonTerminals() {
		for _, p := range predict.Predictions(nt) {
			if !p.IsNil() {
				put(nt, p.Terminal, p.Rule)
				continue
			}
			for _, term := range follow.Follow(nt) {
				put(nt, term, p.Rule)
			}
		}
	}
	if len(conflicts) > 0 {
		return t, &ConflictError{Grammar: g.Name, Conflicts: conflicts}
	}
	return t, nil
}

// Start returns the start symbol of the grammar the table has been built for.
func (t *ParseTable) Start() string {
	return t.start
}

// Rule returns the rule to expand for non-terminal nt with lookahead term.
func (t *ParseTable) Rule(nt string, term string) (*Rule, bool) {
	row, col := t.nonterms.resolve(nt), t.terms.resolve(term)
	if row == nil || col == nil {
		return nil, false
	}
	v := t.matrix.Value(row.index, col.index)
	if v == t.matrix.NullValue() {
		return nil, false
	}
	return t.rules[v], true
}

// IsNonTerminal is true if sym is a non-terminal of the grammar.
func (t *ParseTable) IsNonTerminal(sym string) bool {
	return t.nonterms.resolve(sym) != nil
}

// Expected returns all terminals which have an entry in the row for non-terminal nt,
// in terminal order. Parsers use this for error messages and recovery.
func (t *ParseTable) Expected(nt string) []string {
	row := t.nonterms.resolve(nt)
	if row == nil {
		return nil
	}
	cols := t.matrix.Row(row.index)
	terms := make([]string, len(cols))
	for i, c := range cols {
		terms[i] = t.terms.at(c).name
	}
	return terms
}

// NonTerminals returns the row symbols of the table.
func (t *ParseTable) NonTerminals() []string {
	return t.nonterms.names()
}

// Terminals returns the column symbols of the table.
func (t *ParseTable) Terminals() []string {
	return t.terms.names()
}

// Size returns the number of cells holding a rule.
func (t *ParseTable) Size() int {
	return t.matrix.ValueCount()
}

// Dump is a debugging helper, tracing all entries of the table.
func (t *ParseTable) Dump() {
	tracer().Debugf("--- parse table for %s ------------------------------", t.grammar)
	t.matrix.Each(func(i, j int, v int32) {
		tracer().Debugf("(%s, %s) = %s", t.nonterms.at(i).name, t.terms.at(j).name, t.rules[v])
	})
	tracer().Debugf("-------------------------------------------------------")
}

// ===========================================================================

// ParseTableAsHTML exports a parse table in HTML-format.
func ParseTableAsHTML(t *ParseTable, w io.Writer) error {
	var b strings.Builder
	b.WriteString("<html><body>\n")
	b.WriteString(fmt.Sprintf("LL(1) table for %s, %d entries<p>", html.EscapeString(t.grammar), t.Size()))
	b.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	b.WriteString("<tr bgcolor=#cccccc><td></td>\n")
	for _, term := range t.Terminals() {
		b.WriteString(fmt.Sprintf("<td>%s</td>", html.EscapeString(term)))
	}
	b.WriteString("</tr>\n")
	var td string // table cell
	for _, nt := range t.NonTerminals() {
		b.WriteString(fmt.Sprintf("<tr><td>%s</td>\n", html.EscapeString(nt)))
		for _, term := range t.Terminals() {
			if r, ok := t.Rule(nt, term); ok {
				td = html.EscapeString(r.String())
			} else {
				td = "&nbsp;"
			}
			b.WriteString("<td>")
			b.WriteString(td)
			b.WriteString("</td>\n")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table></body></html>\n")
	_, err := io.WriteString(w, b.String())
	return err
}
