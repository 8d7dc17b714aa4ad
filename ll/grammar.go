package ll

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/lltab"
)

// --- Rules -----------------------------------------------------------------

// Rule is a production rule of a context-free grammar. A rule with an empty
// right side is a nil rule (epsilon production).
// Rules are immutable once created. They are created by and belong to a grammar.
type Rule struct {
	no    int
	left  string
	right []string
}

// No returns the serial number of the rule within its grammar.
func (r *Rule) No() int {
	return r.no
}

// Left returns the left symbol of the rule.
func (r *Rule) Left() string {
	return r.left
}

// Right returns a copy of the right symbols of the rule.
func (r *Rule) Right() []string {
	return append([]string(nil), r.right...)
}

// Len returns the number of right symbols.
func (r *Rule) Len() int {
	return len(r.right)
}

// Symbol returns the right symbol at position i.
func (r *Rule) Symbol(i int) string {
	return r.right[i]
}

// IsNil is true for epsilon productions.
func (r *Rule) IsNil() bool {
	return len(r.right) == 0
}

func (r *Rule) String() string {
	if r.IsNil() {
		return r.left + " -> ε"
	}
	return r.left + " -> " + strings.Join(r.right, " ")
}

// --- Grammar ---------------------------------------------------------------

// Cfg is a context-free grammar, i.e. an ordered list of rules plus a start symbol.
// Construct with NewCfg or with a grammar builder.
//
// Cfg is not safe for concurrent use. Derived tables are memoised on first
// request; tables once returned are read-only and may be shared.
type Cfg struct {
	Name  string
	rules []*Rule
	start string
	cache *analysis
}

// NewCfg creates an empty grammar.
func NewCfg(name string) *Cfg {
	return &Cfg{Name: name}
}

// AddRule appends a rule left -> right to the grammar. An empty right side
// creates a nil rule.
//
// Symbols must not be empty strings; AddRule will panic if they are.
func (g *Cfg) AddRule(left string, right ...string) *Rule {
	if left == "" {
		panic("grammar rule with empty left symbol")
	}
	for _, sym := range right {
		if sym == "" {
			panic(fmt.Sprintf("grammar rule for %s with empty right symbol", left))
		}
	}
	r := &Rule{
		no:    len(g.rules),
		left:  left,
		right: append([]string(nil), right...),
	}
	g.rules = append(g.rules, r)
	return r
}

// SetStart sets the start symbol of the grammar.
func (g *Cfg) SetStart(sym string) {
	g.start = sym
}

// Start returns the start symbol. If none has been set, the left symbol of the
// first rule is the start symbol.
func (g *Cfg) Start() string {
	if g.start != "" {
		return g.start
	}
	if len(g.rules) > 0 {
		return g.rules[0].left
	}
	return ""
}

// Size returns the number of rules.
func (g *Cfg) Size() int {
	return len(g.rules)
}

// Rule returns rule number n.
func (g *Cfg) Rule(n int) *Rule {
	if n < 0 || n >= len(g.rules) {
		return nil
	}
	return g.rules[n]
}

// Rules returns all rules of the grammar, in insertion order.
func (g *Cfg) Rules() []*Rule {
	return append([]*Rule(nil), g.rules...)
}

// RulesFor returns all rules with left symbol sym, in insertion order.
func (g *Cfg) RulesFor(sym string) []*Rule {
	var rules []*Rule
	for _, r := range g.rules {
		if r.left == sym {
			rules = append(rules, r)
		}
	}
	return rules
}

// IsNonTerminal is true if sym is the left symbol of at least one rule.
func (g *Cfg) IsNonTerminal(sym string) bool {
	for _, r := range g.rules {
		if r.left == sym {
			return true
		}
	}
	return false
}

// NonTerminals returns the non-terminals of the grammar, in order of first
// occurrence as a left symbol.
func (g *Cfg) NonTerminals() []string {
	set := linkedhashset.New()
	for _, r := range g.rules {
		set.Add(r.left)
	}
	return stringValues(set)
}

// Terminals returns every right symbol of any rule which is not a non-terminal,
// in order of first occurrence, followed by the reserved symbols "#EOS" and "#ERROR".
func (g *Cfg) Terminals() []string {
	nonterms := linkedhashset.New()
	for _, r := range g.rules {
		nonterms.Add(r.left)
	}
	set := linkedhashset.New()
	for _, r := range g.rules {
		for _, sym := range r.right {
			if !nonterms.Contains(sym) {
				set.Add(sym)
			}
		}
	}
	set.Add(lltab.EOS, lltab.ErrorSymbol)
	return stringValues(set)
}

// Symbols returns all non-terminals, followed by all terminals.
func (g *Cfg) Symbols() []string {
	return append(g.NonTerminals(), g.Terminals()...)
}

// augmentedStart returns the name of the synthetic start symbol S' of the
// augmented grammar S' -> S #EOS. It will not clash with any symbol of the grammar.
func (g *Cfg) augmentedStart() string {
	syms := linkedhashset.New()
	for _, s := range g.Symbols() {
		syms.Add(s)
	}
	S := g.Start()
	name := S + "'"
	for i := 2; syms.Contains(name); i++ {
		name = fmt.Sprintf("%s%d'", S, i)
	}
	return name
}

// Dump is a debugging helper, tracing all rules at debug level.
func (g *Cfg) Dump() {
	tracer().Debugf("--- %s ----------------------------------------------", g.Name)
	tracer().Debugf("start symbol %s", g.Start())
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.no, r)
	}
	tracer().Debugf("-------------------------------------------------------")
}

func (g *Cfg) String() string {
	var b strings.Builder
	for _, r := range g.rules {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// --- Fingerprint and cached analysis ---------------------------------------

type ruleShape struct {
	Left  string
	Right []string
}

type grammarShape struct {
	Start string
	Rules []ruleShape
}

// Fingerprint returns a structural hash over the start symbol and the rules of
// the grammar. Two grammars with the same start symbol and the same rules, in
// the same order, have the same fingerprint.
func (g *Cfg) Fingerprint() string {
	shape := grammarShape{Start: g.Start(), Rules: make([]ruleShape, len(g.rules))}
	for i, r := range g.rules {
		shape.Rules[i] = ruleShape{Left: r.left, Right: r.right}
	}
	hash, err := structhash.Hash(shape, 1)
	if err != nil {
		tracer().Errorf("cannot fingerprint grammar %s: %v", g.Name, err)
		return ""
	}
	return hash
}

// analysis holds the tables derived from a grammar with a given fingerprint.
type analysis struct {
	fingerprint string
	predict     *PredictTable
	follow      *FollowTable
	table       *ParseTable
	err         error
}

// analysis returns the cached tables, invalidating them if the rules have changed.
func (g *Cfg) analysis() *analysis {
	fp := g.Fingerprint()
	if g.cache == nil || fp == "" || g.cache.fingerprint != fp {
		tracer().Debugf("grammar %s changed, re-computing tables", g.Name)
		g.cache = &analysis{fingerprint: fp}
	}
	return g.cache
}

// PredictTable returns the predict table for the grammar.
func (g *Cfg) PredictTable() *PredictTable {
	a := g.analysis()
	if a.predict == nil {
		a.predict = computePredict(g)
	}
	return a.predict
}

// FollowTable returns the follow table for the grammar.
func (g *Cfg) FollowTable() *FollowTable {
	a := g.analysis()
	if a.follow == nil {
		a.follow = computeFollow(g, g.PredictTable())
	}
	return a.follow
}

// ParseTable returns the LL(1) parse table for the grammar. If the grammar is
// not LL(1), a *ConflictError is returned, together with a table holding the
// first rule found for each conflicting cell.
func (g *Cfg) ParseTable() (*ParseTable, error) {
	a := g.analysis()
	if a.table == nil && a.err == nil {
		a.table, a.err = buildParseTable(g, g.PredictTable(), g.FollowTable())
	}
	return a.table, a.err
}

// --- Helpers ---------------------------------------------------------------

func stringValues(set *linkedhashset.Set) []string {
	values := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		values = append(values, v.(string))
	}
	return values
}
