package fa

import "fmt"

// Literal creates an automaton matching the characters of text in sequence.
// It is a chain of states, one per character; the last state accepts.
func Literal(text string, accept string) *State {
	start := NewState()
	current := start
	for _, r := range text {
		next := NewState()
		current.AddTransition(r, next)
		current = next
	}
	current.SetAccept(accept)
	return start
}

// Set creates an automaton matching any single character of chars. All
// transitions converge on one accepting state.
func Set(chars string, accept string) *State {
	start, final := NewState(), NewState()
	for _, r := range chars {
		start.AddTransition(r, final)
	}
	final.SetAccept(accept)
	if len(chars) == 0 {
		tracer().Errorf("fa.Set: empty character set for %q never matches", accept)
	}
	return start
}

// Concat creates an automaton matching the operands in sequence. The accepting
// state of each operand is ε-linked to the start of the next one; only the
// last operand's accepting state accepts, with symbol accept.
// nil operands are skipped; without operands, Concat matches the empty input.
func Concat(accept string, exprs ...*State) *State {
	var start, tail *State
	for _, expr := range exprs {
		if expr == nil {
			continue
		}
		next := expr.Clone()
		if start == nil {
			start = next
		} else {
			f := acceptingState(tail, "Concat")
			f.ClearAccept()
			f.AddEpsilon(next)
		}
		tail = next
	}
	if start == nil {
		start = NewState()
		start.SetAccept(accept)
		return start
	}
	acceptingState(tail, "Concat").SetAccept(accept)
	return start
}

// Or creates an automaton matching any of the operands. A new start state
// ε-branches into a clone of each operand, in order. The operands' accepting
// states lose their symbols and are ε-linked to a shared accepting final state.
func Or(accept string, exprs ...*State) *State {
	start, final := NewState(), NewState()
	final.SetAccept(accept)
	for _, expr := range exprs {
		if expr == nil {
			continue
		}
		branch := expr.Clone()
		f := acceptingState(branch, "Or")
		f.ClearAccept()
		f.AddEpsilon(final)
		start.AddEpsilon(branch)
	}
	return start
}

// Repeat creates an automaton matching one or more occurrences of expr.
// The accepting state gets an ε-transition back to the start.
func Repeat(expr *State, accept string) *State {
	result := expr.Clone()
	f := acceptingState(result, "Repeat")
	f.AddEpsilon(result)
	f.SetAccept(accept)
	return result
}

// Optional creates an automaton matching zero or one occurrence of expr.
// The start state gets an ε-transition bypassing expr. The bypass targets a new
// accepting state, as the accepting state of expr may have ε-transitions back
// into expr (see Repeat).
func Optional(expr *State, accept string) *State {
	result := expr.Clone()
	f := acceptingState(result, "Optional")
	if f == result { // matches the empty input already
		f.SetAccept(accept)
		return result
	}
	final := NewState()
	final.SetAccept(accept)
	f.ClearAccept()
	f.AddEpsilon(final)
	result.AddEpsilon(final)
	return result
}

// Kleene creates an automaton matching zero or more occurrences of expr.
func Kleene(expr *State, accept string) *State {
	return Optional(Repeat(expr, accept), accept)
}

// Lexer joins independent alternatives into one automaton for a tokenizer.
// Unlike Or, the alternatives keep their accept symbols. A new start state
// ε-branches into a clone of each alternative, in order; this order decides
// which symbol wins if more than one alternative accepts the same input.
func Lexer(alternatives ...*State) *State {
	start := NewState()
	for _, alt := range alternatives {
		if alt != nil {
			start.AddEpsilon(alt.Clone())
		}
	}
	return start
}

// acceptingState locates the accepting state an operand is linked by.
// Operands without an accepting state are a programming error.
func acceptingState(expr *State, op string) *State {
	f := expr.FirstAcceptingState()
	if f == nil {
		panic(fmt.Sprintf("fa.%s: operand has no accepting state", op))
	}
	return f
}
