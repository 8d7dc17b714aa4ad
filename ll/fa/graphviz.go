package fa

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ToGraphViz exports the automaton reachable from s to the Graphviz Dot format.
// States are numbered in closure order, ε-transitions are drawn dashed.
func ToGraphViz(s *State, w io.Writer) error {
	states := s.Closure()
	index := make(map[*State]int, len(states))
	for i, state := range states {
		index[state] = i
	}
	var b strings.Builder
	b.WriteString(`digraph {
graph [rankdir=LR, splines=true, fontname=Helvetica, fontsize=10];
node [shape=circle, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for i, state := range states {
		if state.accepting {
			b.WriteString(fmt.Sprintf("q%03d [shape=doublecircle, fillcolor=lightgray, label=%s]\n",
				i, strconv.Quote(fmt.Sprintf("q%d\n%s", i, state.accept))))
		} else {
			b.WriteString(fmt.Sprintf("q%03d [fillcolor=white, label=\"q%d\"]\n", i, i))
		}
	}
	for i, state := range states {
		it := state.transitions.Iterator()
		for it.Next() {
			label := strconv.Quote(string(it.Key().(rune)))
			b.WriteString(fmt.Sprintf("q%03d -> q%03d [label=%s]\n", i, index[it.Value().(*State)], label))
		}
		for _, e := range state.epsilons {
			b.WriteString(fmt.Sprintf("q%03d -> q%03d [label=\"ε\", style=dashed]\n", i, index[e]))
		}
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}
