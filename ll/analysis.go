package ll

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/lltab"
)

// === Predict Table =========================================================

// Prediction is an entry of a predict set: a terminal which may start a
// derivation of a symbol, together with the rule which has been predicted for
// it. For terminals, Rule is nil and Terminal is the terminal itself.
// A Prediction with an empty Terminal is a nil prediction: Rule is able to
// derive ε, and the lookahead has to be taken from the follow set.
type Prediction struct {
	Rule     *Rule
	Terminal string
}

// IsNil is true for a prediction of an ε-derivation.
func (p Prediction) IsNil() bool {
	return p.Terminal == ""
}

func (p Prediction) String() string {
	t := p.Terminal
	if p.IsNil() {
		t = "ε"
	}
	if p.Rule == nil {
		return t
	}
	return fmt.Sprintf("%s:[%s]", t, p.Rule)
}

// PredictTable maps every symbol of a grammar to its predict set.
// The table is read-only after construction.
type PredictTable struct {
	symbols  []string
	sets     map[string]*linkedhashset.Set // of Prediction
	expanded map[string]*linkedhashset.Set // non-terminal entries already substituted
}

func newPredictTable() *PredictTable {
	return &PredictTable{
		sets:     make(map[string]*linkedhashset.Set),
		expanded: make(map[string]*linkedhashset.Set),
	}
}

func (pt *PredictTable) add(sym string, p Prediction) {
	set, ok := pt.sets[sym]
	if !ok {
		set = linkedhashset.New()
		pt.sets[sym] = set
		pt.expanded[sym] = linkedhashset.New()
		pt.symbols = append(pt.symbols, sym)
	}
	set.Add(p)
}

// Symbols returns all symbols the table has an entry for, non-terminals first.
func (pt *PredictTable) Symbols() []string {
	return append([]string(nil), pt.symbols...)
}

// Predictions returns the predict set for a symbol, in a stable order.
func (pt *PredictTable) Predictions(sym string) []Prediction {
	set, ok := pt.sets[sym]
	if !ok {
		return nil
	}
	preds := make([]Prediction, 0, set.Size())
	for _, v := range set.Values() {
		preds = append(preds, v.(Prediction))
	}
	return preds
}

// computePredict creates the predict table for a grammar.
// Non-terminals get one entry per rule: the first right symbol, or a nil
// prediction for a nil rule. Terminals predict themselves. The table is then
// closed by replacing references to non-terminals by their own predictions.
//
// Only the first right symbol of a rule is looked at. If it derives ε, the nil
// prediction it carries makes the whole rule a nil prediction, which the parse
// table resolves through the follow set of the rule's left side. For
//
//	A -> B c
//	B -> ε
//
// A on lookahead c is therefore expanded only if c is in FOLLOW(A). Grammars
// relying on symbols behind a nullable prefix have to be rewritten.
func computePredict(g *Cfg) *PredictTable {
	pt := newPredictTable()
	for _, nt := range g.NonTerminals() {
		for _, r := range g.RulesFor(nt) {
			if r.IsNil() {
				pt.add(nt, Prediction{Rule: r})
			} else {
				pt.add(nt, Prediction{Rule: r, Terminal: r.right[0]})
			}
		}
	}
	for _, t := range g.Terminals() {
		pt.add(t, Prediction{Terminal: t})
	}
	pt.close(g.IsNonTerminal)
	pt.dump()
	return pt
}

// close substitutes entries referencing a non-terminal N with N's predictions,
// keeping the originating rule, until no substitution is possible.
// An entry substituted once for a symbol is never re-introduced to that symbol's
// set, so left recursion terminates (and shows up as a conflict later).
// close returns true if anything changed.
func (pt *PredictTable) close(isNonTerminal func(string) bool) bool {
	changed := false
	for again := true; again; {
		again = false
		for _, sym := range pt.symbols {
			set := pt.sets[sym]
			for _, v := range set.Values() {
				p := v.(Prediction)
				if p.IsNil() || !isNonTerminal(p.Terminal) {
					continue
				}
				set.Remove(p)
				pt.expanded[sym].Add(p)
				for _, w := range pt.sets[p.Terminal].Values() {
					q := Prediction{Rule: p.Rule, Terminal: w.(Prediction).Terminal}
					if !pt.expanded[sym].Contains(q) {
						set.Add(q)
					}
				}
				again, changed = true, true
			}
		}
	}
	return changed
}

func (pt *PredictTable) dump() {
	for _, sym := range pt.symbols {
		tracer().Debugf("PREDICT(%s) = %v", sym, pt.Predictions(sym))
	}
}

// === Follow Table ==========================================================

// FollowTable maps every non-terminal of a grammar to the set of terminals
// which may follow it in some derivation.
// The table is read-only after construction.
type FollowTable struct {
	symbols  []string
	sets     map[string]*linkedhashset.Set // of string
	expanded map[string]*linkedhashset.Set
}

func newFollowTable() *FollowTable {
	return &FollowTable{
		sets:     make(map[string]*linkedhashset.Set),
		expanded: make(map[string]*linkedhashset.Set),
	}
}

func (ft *FollowTable) add(nt string, sym string) {
	ft.row(nt).Add(sym)
}

func (ft *FollowTable) row(nt string) *linkedhashset.Set {
	set, ok := ft.sets[nt]
	if !ok {
		set = linkedhashset.New()
		ft.sets[nt] = set
		ft.expanded[nt] = linkedhashset.New()
		ft.symbols = append(ft.symbols, nt)
	}
	return set
}

// Symbols returns all non-terminals the table has an entry for.
func (ft *FollowTable) Symbols() []string {
	return append([]string(nil), ft.symbols...)
}

// Follow returns FOLLOW(nt), in a stable order.
func (ft *FollowTable) Follow(nt string) []string {
	set, ok := ft.sets[nt]
	if !ok {
		return nil
	}
	return stringValues(set)
}

// computeFollow creates the follow table for a grammar, augmented by a rule
// S' -> S #EOS.
func computeFollow(g *Cfg, predict *PredictTable) *FollowTable {
	ft := newFollowTable()
	for _, nt := range g.NonTerminals() {
		ft.row(nt)
	}
	S := g.Start()
	augmented := &Rule{no: -1, left: g.augmentedStart(), right: []string{S, lltab.EOS}}
	tracer().Debugf("augmented start rule %s", augmented)
	rules := append([]*Rule{augmented}, g.rules...)
	for _, r := range rules {
		if r.IsNil() { // what follows is the rule's left non-terminal itself
			ft.add(r.left, r.left)
			continue
		}
		for j := 1; j < len(r.right); j++ {
			target := r.right[j-1]
			if !g.IsNonTerminal(target) {
				continue
			}
			for _, p := range predict.Predictions(r.right[j]) {
				if p.IsNil() { // defer to FOLLOW of the nullable symbol
					ft.add(target, p.Rule.left)
				} else {
					ft.add(target, p.Terminal)
				}
			}
		}
		if last := r.right[len(r.right)-1]; g.IsNonTerminal(last) {
			ft.add(last, r.left)
		}
	}
	ft.close(g.IsNonTerminal)
	ft.dump()
	return ft
}

// close replaces non-terminals N in follow sets by FOLLOW(N), until no
// substitution is possible. Returns true if anything changed.
func (ft *FollowTable) close(isNonTerminal func(string) bool) bool {
	changed := false
	for again := true; again; {
		again = false
		for _, nt := range ft.symbols {
			set := ft.sets[nt]
			for _, v := range set.Values() {
				sym := v.(string)
				if !isNonTerminal(sym) {
					continue
				}
				set.Remove(sym)
				ft.expanded[nt].Add(sym)
				if other, ok := ft.sets[sym]; ok {
					for _, w := range other.Values() {
						if !ft.expanded[nt].Contains(w) {
							set.Add(w)
						}
					}
				}
				again, changed = true, true
			}
		}
	}
	return changed
}

func (ft *FollowTable) dump() {
	for _, nt := range ft.symbols {
		tracer().Debugf("FOLLOW(%s) = {%s}", nt, strings.Join(ft.Follow(nt), ", "))
	}
}
