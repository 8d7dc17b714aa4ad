package lltab

import "fmt"

// Reserved terminal symbols. They are part of every grammar's terminal vocabulary,
// whether or not rules mention them.
const (
	EOS         = "#EOS"   // end of input stream
	ErrorSymbol = "#ERROR" // unmatched input
)

// --- Tokens ----------------------------------------------------------------

// Token represents an input token. Tokens are produced by a scanner and
// reflect terminals of a grammar: the symbol of a token has to match a terminal
// symbol used in the grammar's rules.
//
// An example would be a token for an integer:
//
//    Symbol   = "int"      // terminal symbol, as used in grammar rules
//    Value    = "4711"     // text as it appeared in the input stream
//    Line     = 3          // 1-based
//    Column   = 17         // 1-based
//    Position = 67         // 0-based character offset
//    Length   = 4          // number of characters matched
//
// Tokens are values without identity.
type Token struct {
	Symbol   string
	Value    string
	Line     int
	Column   int
	Position uint64
	Length   int
}

// Span returns the input span covered by a token.
func (t Token) Span() Span {
	return Span{t.Position, t.Position + uint64(t.Length)}
}

// IsEOS is true for a token signalling the end of input.
func (t Token) IsEOS() bool {
	return t.Symbol == EOS
}

// IsError is true for a token covering unmatched input.
func (t Token) IsError() bool {
	return t.Symbol == ErrorSymbol
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Symbol, t.Value, t.Line, t.Column)
}

// TokenStream is the interface parsers pull tokens from.
// Next returns false after the stream is exhausted. Well-behaved streams
// deliver a final token with symbol EOS before returning false.
type TokenStream interface {
	Next() (Token, bool)
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input run. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	}
	if other.IsNull() {
		return s
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
