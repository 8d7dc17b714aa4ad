package ll

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// GrammarBuilder is a helper for building grammars. Clients declare for every
// right symbol whether they expect it to be a non-terminal (N) or a terminal (T).
// Grammar() checks these declarations against the rules.
//
//    b := ll.NewGrammarBuilder("Signed Variables")
//    b.LHS("Var").N("Sign").T("a").End()  // Var  -> Sign a
//    b.LHS("Sign").T("+").End()           // Sign -> +
//    b.LHS("Sign").T("-").End()           // Sign -> -
//    b.LHS("Sign").Epsilon()              // Sign -> ε
//    g, err := b.Grammar()
type GrammarBuilder struct {
	g        *Cfg
	nonterms *linkedhashset.Set
	terms    *linkedhashset.Set
	err      error
}

// NewGrammarBuilder creates a builder for a named grammar.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{
		g:        NewCfg(name),
		nonterms: linkedhashset.New(),
		terms:    linkedhashset.New(),
	}
}

// Start sets the start symbol. If not called, the left symbol of the first rule
// is the start symbol.
func (b *GrammarBuilder) Start(sym string) *GrammarBuilder {
	b.g.SetStart(sym)
	return b
}

// LHS starts a new rule with left symbol sym.
func (b *GrammarBuilder) LHS(sym string) *RuleBuilder {
	return &RuleBuilder{b: b, left: sym}
}

// Grammar returns the grammar built so far. It returns an error if a symbol
// declared as a non-terminal has no rules, or if a symbol declared as a terminal
// has rules.
func (b *GrammarBuilder) Grammar() (*Cfg, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.g.Size() == 0 {
		return nil, fmt.Errorf("grammar %s has no rules", b.g.Name)
	}
	var missing, clashing []string
	for _, v := range b.nonterms.Values() {
		if !b.g.IsNonTerminal(v.(string)) {
			missing = append(missing, v.(string))
		}
	}
	for _, v := range b.terms.Values() {
		if b.g.IsNonTerminal(v.(string)) {
			clashing = append(clashing, v.(string))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("grammar %s: non-terminals without rules: %s",
			b.g.Name, strings.Join(missing, ", "))
	}
	if len(clashing) > 0 {
		return nil, fmt.Errorf("grammar %s: terminals used as left symbols: %s",
			b.g.Name, strings.Join(clashing, ", "))
	}
	b.g.Dump()
	return b.g, nil
}

// RuleBuilder collects the right symbols of a rule.
type RuleBuilder struct {
	b     *GrammarBuilder
	left  string
	right []string
}

// N appends a non-terminal.
func (rb *RuleBuilder) N(sym string) *RuleBuilder {
	rb.b.nonterms.Add(sym)
	return rb.append(sym)
}

// T appends a terminal.
func (rb *RuleBuilder) T(sym string) *RuleBuilder {
	rb.b.terms.Add(sym)
	return rb.append(sym)
}

func (rb *RuleBuilder) append(sym string) *RuleBuilder {
	if sym == "" && rb.b.err == nil {
		rb.b.err = fmt.Errorf("grammar %s: empty symbol in rule for %q", rb.b.g.Name, rb.left)
	}
	rb.right = append(rb.right, sym)
	return rb
}

// End finishes the rule and adds it to the grammar.
func (rb *RuleBuilder) End() *Rule {
	if rb.left == "" && rb.b.err == nil {
		rb.b.err = fmt.Errorf("grammar %s: rule with empty left symbol", rb.b.g.Name)
	}
	if rb.b.err != nil {
		return nil
	}
	return rb.b.g.AddRule(rb.left, rb.right...)
}

// Epsilon finishes the rule as a nil rule, ignoring any right symbols appended.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.right = nil
	return rb.End()
}
