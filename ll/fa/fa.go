package fa

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// State is a state of a nondeterministic finite automaton.
// The zero value is not usable, create states with NewState.
type State struct {
	accepting   bool
	accept      string
	transitions *linkedhashmap.Map // rune -> *State, in insertion order
	epsilons    []*State
}

// NewState creates a non-accepting state without transitions.
func NewState() *State {
	return &State{transitions: linkedhashmap.New()}
}

// Accept returns the accept symbol of s. The accept symbol of a non-accepting
// state is empty.
func (s *State) Accept() string {
	return s.accept
}

// IsAccepting is true for accepting states.
func (s *State) IsAccepting() bool {
	return s.accepting
}

// SetAccept makes s an accepting state for symbol sym. An accepting state may
// carry an empty symbol, which is useful for intermediate results of combinators.
func (s *State) SetAccept(sym string) {
	s.accepting, s.accept = true, sym
}

// ClearAccept makes s a non-accepting state.
func (s *State) ClearAccept() {
	s.accepting, s.accept = false, ""
}

// AddTransition adds a transition for input character r. A state has at most
// one transition per character, an existing transition for r is replaced.
func (s *State) AddTransition(r rune, to *State) {
	s.transitions.Put(r, to)
}

// Transition returns the target of the transition for r, if any.
func (s *State) Transition(r rune) (*State, bool) {
	to, ok := s.transitions.Get(r)
	if !ok {
		return nil, false
	}
	return to.(*State), true
}

// Inputs returns the characters s has transitions for, in insertion order.
func (s *State) Inputs() []rune {
	keys := s.transitions.Keys()
	runes := make([]rune, len(keys))
	for i, k := range keys {
		runes[i] = k.(rune)
	}
	return runes
}

// AddEpsilon adds an ε-transition to state to.
func (s *State) AddEpsilon(to *State) {
	s.epsilons = append(s.epsilons, to)
}

// Epsilons returns the targets of ε-transitions of s.
func (s *State) Epsilons() []*State {
	return append([]*State(nil), s.epsilons...)
}

// --- Closures --------------------------------------------------------------

// Closure returns all states reachable from s, including s. States are listed
// in depth-first pre-order, following labeled transitions before ε-transitions,
// each in insertion order.
func (s *State) Closure() []*State {
	return closure([]*State{s}, true)
}

// EpsilonClosure returns all states reachable from s by ε-transitions only,
// including s.
func (s *State) EpsilonClosure() []*State {
	return closure([]*State{s}, false)
}

// EpsilonClosure returns the ε-closure of a set of states. The result is
// ordered by the input states' closures, without duplicates.
func EpsilonClosure(states []*State) []*State {
	return closure(states, false)
}

// closure traverses the graph with an explicit stack. Visited states are
// tracked in an ordered set, which is the result.
func closure(start []*State, labeled bool) []*State {
	visited := linkedhashset.New()
	stack := arraystack.New()
	for i := len(start) - 1; i >= 0; i-- {
		stack.Push(start[i])
	}
	for !stack.Empty() {
		v, _ := stack.Pop()
		state := v.(*State)
		if visited.Contains(state) {
			continue
		}
		visited.Add(state)
		for i := len(state.epsilons) - 1; i >= 0; i-- {
			stack.Push(state.epsilons[i])
		}
		if labeled {
			targets := state.transitions.Values()
			for i := len(targets) - 1; i >= 0; i-- {
				stack.Push(targets[i])
			}
		}
	}
	return stateValues(visited)
}

// Move returns the states reachable from a set of states for input character r:
// for each state, its ε-closure is taken, and then transitions labeled r are
// followed. The result is ordered and free of duplicates.
func Move(states []*State, r rune) []*State {
	result := linkedhashset.New()
	for _, state := range states {
		for _, s := range state.EpsilonClosure() {
			if to, ok := s.Transition(r); ok {
				result.Add(to)
			}
		}
	}
	return stateValues(result)
}

// FirstAccepting returns the first accepting state in the ε-closure of a set of
// states, or nil.
func FirstAccepting(states []*State) *State {
	for _, s := range EpsilonClosure(states) {
		if s.accepting {
			return s
		}
	}
	return nil
}

// FirstAcceptingState returns the first accepting state in closure order, or nil.
func (s *State) FirstAcceptingState() *State {
	for _, state := range s.Closure() {
		if state.accepting {
			return state
		}
	}
	return nil
}

// Count returns the number of states reachable from s, including s.
func (s *State) Count() int {
	return len(s.Closure())
}

// AcceptSymbols returns the distinct accept symbols of all accepting states
// reachable from s, in closure order.
func (s *State) AcceptSymbols() []string {
	set := linkedhashset.New()
	for _, state := range s.Closure() {
		if state.accepting {
			set.Add(state.accept)
		}
	}
	syms := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		syms = append(syms, v.(string))
	}
	return syms
}

// --- Cloning ---------------------------------------------------------------

// Clone creates a deep copy of the automaton reachable from s. The copy shares no
// state with the original, but has the same structure, including cycles.
//
// The closure of s is materialized as a list, a new state is created for each
// entry, and transitions are re-wired by index.
func (s *State) Clone() *State {
	states := s.Closure()
	index := make(map[*State]int, len(states))
	for i, state := range states {
		index[state] = i
	}
	clones := make([]*State, len(states))
	for i, state := range states {
		clones[i] = NewState()
		clones[i].accepting, clones[i].accept = state.accepting, state.accept
	}
	for i, state := range states {
		it := state.transitions.Iterator()
		for it.Next() {
			clones[i].AddTransition(it.Key().(rune), clones[index[it.Value().(*State)]])
		}
		for _, e := range state.epsilons {
			clones[i].AddEpsilon(clones[index[e]])
		}
	}
	return clones[0]
}

func stateValues(set *linkedhashset.Set) []*State {
	states := make([]*State, 0, set.Size())
	for _, v := range set.Values() {
		states = append(states, v.(*State))
	}
	return states
}
