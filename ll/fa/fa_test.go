package fa

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// match runs an automaton over input and returns the accept symbol reached.
func match(start *State, input string) (string, bool) {
	states := []*State{start}
	for _, r := range input {
		states = Move(states, r)
		if len(states) == 0 {
			return "", false
		}
	}
	if f := FirstAccepting(states); f != nil {
		return f.Accept(), true
	}
	return "", false
}

func countAccepting(s *State) int {
	n := 0
	for _, state := range s.Closure() {
		if state.IsAccepting() {
			n++
		}
	}
	return n
}

func TestClosureOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.fa")
	defer teardown()
	//
	s0, s1, s2, s3 := NewState(), NewState(), NewState(), NewState()
	s0.AddEpsilon(s2)
	s0.AddTransition('a', s1)
	s1.AddEpsilon(s3)
	s2.AddEpsilon(s0) // cycle
	cl := s0.Closure()
	expected := []*State{s0, s1, s3, s2}
	if len(cl) != len(expected) {
		t.Fatalf("expected closure of size %d, got %d", len(expected), len(cl))
	}
	for i := range expected {
		if cl[i] != expected[i] {
			t.Errorf("closure order differs at position %d", i)
		}
	}
	ecl := s0.EpsilonClosure()
	if len(ecl) != 2 || ecl[0] != s0 || ecl[1] != s2 {
		t.Errorf("expected ε-closure [s0 s2], got %d states", len(ecl))
	}
	if len(s3.Closure()) != 1 {
		t.Errorf("expected closure of a leaf to contain only itself")
	}
}

func TestLiteralAndSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.fa")
	defer teardown()
	//
	lit := Literal("abc", "abc")
	if lit.Count() != 4 {
		t.Errorf("expected literal of length 3 to have 4 states, has %d", lit.Count())
	}
	if sym, ok := match(lit, "abc"); !ok || sym != "abc" {
		t.Errorf("expected literal to match 'abc'")
	}
	if _, ok := match(lit, "ab"); ok {
		t.Errorf("expected literal not to match prefix 'ab'")
	}
	set := Set("0123456789", "digit")
	if set.Count() != 2 {
		t.Errorf("expected set to have 2 states, has %d", set.Count())
	}
	for _, in := range []string{"0", "5", "9"} {
		if sym, ok := match(set, in); !ok || sym != "digit" {
			t.Errorf("expected set to match %q", in)
		}
	}
	if _, ok := match(set, "55"); ok {
		t.Errorf("expected set to match single characters only")
	}
}

func TestCombinators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.fa")
	defer teardown()
	//
	digit := Set("0123456789", "")
	number := Concat("num", Repeat(digit, ""), Optional(Concat("", Literal(".", ""), Repeat(digit, "")), ""))
	word := Or("word", Literal("if", ""), Literal("else", ""))
	spaces := Kleene(Literal(" ", ""), "ws")
	inputs := []struct {
		fa    *State
		input string
		sym   string
		ok    bool
	}{
		{number, "1", "num", true},
		{number, "123.45", "num", true},
		{number, "123.", "", false},
		{number, ".5", "", false},
		{word, "if", "word", true},
		{word, "else", "word", true},
		{word, "ifelse", "", false},
		{spaces, "", "ws", true},
		{spaces, "   ", "ws", true},
	}
	for i, c := range inputs {
		sym, ok := match(c.fa, c.input)
		if ok != c.ok || sym != c.sym {
			t.Errorf("case #%d: expected %q to give (%q,%v), got (%q,%v)", i, c.input, c.sym, c.ok, sym, ok)
		}
	}
	for i, expr := range []*State{number, word, spaces, digit, Kleene(word, "k"), Concat("empty")} {
		if n := countAccepting(expr); n != 1 {
			t.Errorf("expression #%d: expected exactly 1 accepting state, have %d", i, n)
		}
	}
}

func TestOperandsUntouched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.fa")
	defer teardown()
	//
	ab := Literal("ab", "ab")
	n := ab.Count()
	twice := Concat("abab", ab, ab)
	_ = Or("x", ab, twice)
	_ = Repeat(ab, "r")
	_ = Optional(ab, "o")
	if ab.Count() != n || ab.FirstAcceptingState().Accept() != "ab" || len(ab.Epsilons()) != 0 {
		t.Errorf("operand has been modified by combinators")
	}
	if sym, ok := match(twice, "abab"); !ok || sym != "abab" {
		t.Errorf("expected re-used sub-expression to match twice")
	}
	if _, ok := match(twice, "ab"); ok {
		t.Errorf("expected concatenation not to accept after first operand")
	}
}

func TestClone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.fa")
	defer teardown()
	//
	orig := Lexer(
		Repeat(Set("0123456789", ""), "int"),
		Literal("+", "+"),
		Kleene(Literal("ab", ""), "abs"),
	)
	clone := orig.Clone()
	oc, cc := orig.Closure(), clone.Closure()
	if len(oc) != len(cc) {
		t.Fatalf("expected clone to have %d states, has %d", len(oc), len(cc))
	}
	shared := map[*State]bool{}
	for _, s := range oc {
		shared[s] = true
	}
	for i := range oc {
		if shared[cc[i]] {
			t.Errorf("clone shares state #%d with original", i)
		}
		if oc[i].IsAccepting() != cc[i].IsAccepting() || oc[i].Accept() != cc[i].Accept() {
			t.Errorf("accept tag of state #%d differs in clone", i)
		}
	}
	for _, s := range cc {
		s.ClearAccept()
		s.AddTransition('x', NewState())
	}
	if sym, ok := match(orig, "42"); !ok || sym != "int" {
		t.Errorf("modifying the clone changed the original")
	}
	if orig.Count() != len(oc) {
		t.Errorf("modifying the clone changed the size of the original")
	}
}

func TestTieBreakByConstructionOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.fa")
	defer teardown()
	//
	kw := Literal("if", "keyword")
	id := Repeat(Set("abcdefghijklmnopqrstuvwxyz", ""), "ident")
	if sym, _ := match(Lexer(kw, id), "if"); sym != "keyword" {
		t.Errorf("expected first alternative to win, got %q", sym)
	}
	if sym, _ := match(Lexer(id, kw), "if"); sym != "ident" {
		t.Errorf("expected first alternative to win, got %q", sym)
	}
	if sym, _ := match(Lexer(kw, id), "iff"); sym != "ident" {
		t.Errorf("expected identifier for 'iff', got %q", sym)
	}
	syms := Lexer(kw, id).AcceptSymbols()
	if len(syms) != 2 || syms[0] != "keyword" || syms[1] != "ident" {
		t.Errorf("unexpected accept symbols %v", syms)
	}
}

func TestMoveDeduplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.fa")
	defer teardown()
	//
	s0, s1, target := NewState(), NewState(), NewState()
	s0.AddTransition('a', target)
	s1.AddTransition('a', target)
	s0.AddEpsilon(s1)
	moved := Move([]*State{s0, s1}, 'a')
	if len(moved) != 1 || moved[0] != target {
		t.Errorf("expected Move to deliver the target once, got %d states", len(moved))
	}
	if len(Move([]*State{s0}, 'b')) != 0 {
		t.Errorf("expected empty move for unknown input")
	}
	if to, ok := s0.Transition('a'); !ok || to != target {
		t.Errorf("expected transition for 'a'")
	}
	if in := s0.Inputs(); len(in) != 1 || in[0] != 'a' {
		t.Errorf("expected inputs [a], got %v", in)
	}
}

func TestMissingAcceptPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.fa")
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Repeat of an automaton without accepting state to panic")
		}
	}()
	Repeat(NewState(), "x")
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.fa")
	defer teardown()
	//
	var buf bytes.Buffer
	if err := ToGraphViz(Kleene(Literal("ab", ""), "abs"), &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	if !strings.HasPrefix(dot, "digraph {") || !strings.Contains(dot, "doublecircle") ||
		!strings.Contains(dot, "style=dashed") {
		t.Errorf("unexpected dot output:\n%s", dot)
	}
}
