package ll

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// makeExprGrammar creates the classical LL(1) expression grammar
//
//   E  -> T E'
//   E' -> + T E' | ε
//   T  -> F T'
//   T' -> * F T' | ε
//   F  -> ( E ) | int
//
func makeExprGrammar() *Cfg {
	g := NewCfg("Expr")
	g.AddRule("E", "T", "E'")
	g.AddRule("E'", "+", "T", "E'")
	g.AddRule("E'")
	g.AddRule("T", "F", "T'")
	g.AddRule("T'", "*", "F", "T'")
	g.AddRule("T'")
	g.AddRule("F", "(", "E", ")")
	g.AddRule("F", "int")
	return g
}

func TestVocabulary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.ll")
	defer teardown()
	//
	assert := assert.New(t)
	g := makeExprGrammar()
	assert.Equal("E", g.Start())
	assert.Equal([]string{"E", "E'", "T", "T'", "F"}, g.NonTerminals())
	assert.Equal([]string{"+", "*", "(", ")", "int", "#EOS", "#ERROR"}, g.Terminals())
	assert.Equal(12, len(g.Symbols()))
}

func TestVocabularyDisjointAndComplete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.ll")
	defer teardown()
	//
	grammars := []*Cfg{makeExprGrammar(), NewCfg("empty")}
	g := NewCfg("odd")
	g.AddRule("S", "S", "x")
	g.AddRule("S", "#EOS")
	g.AddRule("A", "y", "S")
	grammars = append(grammars, g)
	for _, g := range grammars {
		nonterms := map[string]bool{}
		for _, nt := range g.NonTerminals() {
			nonterms[nt] = true
		}
		terms := map[string]bool{}
		for _, term := range g.Terminals() {
			if nonterms[term] {
				t.Errorf("grammar %s: symbol %s is terminal and non-terminal", g.Name, term)
			}
			if terms[term] {
				t.Errorf("grammar %s: terminal %s enumerated twice", g.Name, term)
			}
			terms[term] = true
		}
		if !terms["#EOS"] || !terms["#ERROR"] {
			t.Errorf("grammar %s: reserved terminals missing", g.Name)
		}
		for _, r := range g.Rules() {
			for _, sym := range append(r.Right(), r.Left()) {
				if !nonterms[sym] && !terms[sym] {
					t.Errorf("grammar %s: symbol %s not covered by vocabulary", g.Name, sym)
				}
			}
		}
	}
}

func TestStartSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.ll")
	defer teardown()
	//
	g := NewCfg("G")
	if g.Start() != "" {
		t.Errorf("expected empty grammar to have no start symbol")
	}
	g.AddRule("A", "a")
	g.AddRule("B", "A")
	if g.Start() != "A" {
		t.Errorf("expected start symbol to default to A, is %s", g.Start())
	}
	g.SetStart("B")
	if g.Start() != "B" {
		t.Errorf("expected start symbol B, is %s", g.Start())
	}
}

func TestAugmentedStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.ll")
	defer teardown()
	//
	g := NewCfg("G")
	g.AddRule("S", "a")
	if s := g.augmentedStart(); s != "S'" {
		t.Errorf("expected S', got %s", s)
	}
	g = makeExprGrammar() // E' is taken
	if s := g.augmentedStart(); s != "E2'" {
		t.Errorf("expected E2', got %s", s)
	}
}

func TestRuleString(t *testing.T) {
	g := makeExprGrammar()
	if s := g.Rule(1).String(); s != "E' -> + T E'" {
		t.Errorf("unexpected rule string %q", s)
	}
	if s := g.Rule(2).String(); s != "E' -> ε" {
		t.Errorf("unexpected nil rule string %q", s)
	}
	if g.Rule(8) != nil || g.Rule(-1) != nil {
		t.Errorf("expected out of range rules to be nil")
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.ll")
	defer teardown()
	//
	assert := assert.New(t)
	g1, g2 := makeExprGrammar(), makeExprGrammar()
	assert.NotEmpty(g1.Fingerprint())
	assert.Equal(g1.Fingerprint(), g2.Fingerprint())
	g2.AddRule("F", "-", "F")
	assert.NotEqual(g1.Fingerprint(), g2.Fingerprint())
	g1.SetStart("T")
	assert.NotEqual(g1.Fingerprint(), makeExprGrammar().Fingerprint())
}

func TestTablesRecomputedOnChange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.ll")
	defer teardown()
	//
	g := makeExprGrammar()
	p1 := g.PredictTable()
	if p1 != g.PredictTable() {
		t.Errorf("expected predict table to be cached")
	}
	g.AddRule("F", "-", "F")
	p2 := g.PredictTable()
	if p1 == p2 {
		t.Fatalf("expected predict table to be re-computed after adding a rule")
	}
	if len(p2.Predictions("F")) != 3 {
		t.Errorf("expected 3 predictions for F, got %v", p2.Predictions("F"))
	}
	table, err := g.ParseTable()
	if err != nil {
		t.Fatal(err)
	}
	if r, ok := table.Rule("T", "-"); !ok || r.Left() != "T" {
		t.Errorf("expected new rule to be reachable from T with lookahead '-'")
	}
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("Signed Variables")
	b.LHS("Var").N("Sign").T("a").End()
	b.LHS("Sign").T("+").End()
	b.LHS("Sign").T("-").End()
	b.LHS("Sign").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 4 || !g.Rule(3).IsNil() {
		t.Errorf("expected 4 rules, the last one being a nil rule")
	}
	//
	b = NewGrammarBuilder("Broken")
	b.LHS("S").N("A").T("b").End()
	b.LHS("b").T("c").End()
	if _, err = b.Grammar(); err == nil {
		t.Errorf("expected missing non-terminal A to be reported")
	}
	b = NewGrammarBuilder("Broken")
	b.LHS("S").T("b").End()
	b.LHS("b").T("c").End()
	if _, err = b.Grammar(); err == nil {
		t.Errorf("expected terminal b used as left symbol to be reported")
	}
	if _, err = NewGrammarBuilder("Empty").Grammar(); err == nil {
		t.Errorf("expected empty grammar to be reported")
	}
}
