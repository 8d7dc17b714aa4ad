package lexmach

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/lltab"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'lltab.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lltab.scanner")
}

// Adapter is a lexmachine adapter to use lexmachine as a token source.
type Adapter struct {
	Lexer   *lexmachine.Lexer
	symbols map[int]string // token id → terminal symbol
}

// NewAdapter creates a new lexmachine adapter. It receives an initializer for
// the lexer, a list of literals ('[', ';', …), a list of keywords ("if", "for", …)
// and a map for translating terminal symbols to lexmachine token ids.
//
// NewAdapter will return an error if compiling the DFA failed.
func NewAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*Adapter, error) {
	adapter := &Adapter{
		Lexer:   lexmachine.NewLexer(),
		symbols: make(map[int]string, len(tokenIds)),
	}
	for sym, id := range tokenIds {
		adapter.symbols[id] = sym
	}
	if init != nil {
		init(adapter.Lexer)
	}
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Tokens creates a token stream for a given input.
func (lm *Adapter) Tokens(input string) (*Stream, error) {
	text := []byte(input)
	s, err := lm.Lexer.Scanner(text)
	if err != nil {
		return nil, err
	}
	return &Stream{
		scanner: s,
		text:    text,
		symbols: lm.symbols,
		at:      location{line: 1, column: 1},
		Error:   logError,
	}, nil
}

// Stream is a token stream over a lexmachine scanner. It implements
// lltab.TokenStream.
type Stream struct {
	scanner *lexmachine.Scanner
	text    []byte
	symbols map[int]string
	done    bool
	at      location // running cursor, tokens arrive in input order
	Error   func(error)
}

// location tracks a byte offset together with its character coordinates.
type location struct {
	tc       int // byte offset
	position uint64
	line     int
	column   int
}

var _ lltab.TokenStream = (*Stream)(nil)

// SetErrorHandler sets an error handler for the stream. Unconsumed input is
// reported to it before an error token is delivered.
func (s *Stream) SetErrorHandler(h func(error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

// Default error reporting function for lexmachine-based streams
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// Next is part of the lltab.TokenStream interface.
func (s *Stream) Next() (lltab.Token, bool) {
	if s.done {
		return lltab.Token{}, false
	}
	tok, err, eos := s.scanner.Next()
	if err != nil {
		s.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			return s.unconsumed(ui), true
		}
		eos = true // no way to resume
	}
	if eos {
		s.done = true
		return s.eos(), true
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	sym, ok := s.symbols[token.Type]
	if !ok {
		sym = string(token.Lexeme)
	}
	at := s.locate(token.TC)
	return lltab.Token{
		Symbol:   sym,
		Value:    string(token.Lexeme),
		Line:     at.line,
		Column:   at.column,
		Position: at.position,
		Length:   utf8.RuneCount(token.Lexeme),
	}, true
}

// unconsumed creates an error token for input lexmachine could not match and
// moves the scanner behind it. The scanner always advances by at least one
// character and always stops at a character boundary.
func (s *Stream) unconsumed(ui *machines.UnconsumedInput) lltab.Token {
	next := ui.FailTC
	if next <= ui.StartTC {
		_, size := utf8.DecodeRune(s.text[ui.StartTC:])
		next = ui.StartTC + size
	}
	for next < len(s.text) && !utf8.RuneStart(s.text[next]) {
		next++
	}
	s.scanner.TC = next
	text := s.text[ui.StartTC:next]
	at := s.locate(ui.StartTC)
	return lltab.Token{
		Symbol:   lltab.ErrorSymbol,
		Value:    string(text),
		Line:     at.line,
		Column:   at.column,
		Position: at.position,
		Length:   utf8.RuneCount(text),
	}
}

// eos creates the final token, located behind the last character of input.
func (s *Stream) eos() lltab.Token {
	at := s.locate(len(s.text))
	return lltab.Token{
		Symbol:   lltab.EOS,
		Line:     at.line,
		Column:   at.column,
		Position: at.position,
	}
}

// locate moves the cursor forward to byte offset tc and returns its character
// coordinates. Line and column are counted in characters; lexmachine counts
// columns in bytes.
func (s *Stream) locate(tc int) location {
	if tc < s.at.tc {
		s.at = location{line: 1, column: 1}
	}
	for s.at.tc < tc {
		r, size := utf8.DecodeRune(s.text[s.at.tc:])
		s.at.tc += size
		s.at.position++
		if r == '\n' {
			s.at.line++
			s.at.column = 1
		} else {
			s.at.column++
		}
	}
	return s.at
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
