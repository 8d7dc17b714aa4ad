package scanner

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/lltab"
	"github.com/npillmayer/lltab/ll/fa"
)

// Tokenizer produces token streams from a character source, using an
// automaton to recognize tokens. Create one with NewTokenizer.
// A Tokenizer is read-only after creation; streams created from it are
// independent of each other.
type Tokenizer struct {
	lexer *fa.State
	src   Source
	skip  *linkedhashset.Set
}

// Option configures a tokenizer.
type Option func(t *Tokenizer)

// Skip lets the tokenizer drop tokens with any of the given symbols, e.g.
// whitespace or comments.
func Skip(symbols ...string) Option {
	return func(t *Tokenizer) {
		for _, sym := range symbols {
			t.skip.Add(sym)
		}
	}
}

// NewTokenizer creates a tokenizer for a lexer automaton and a source.
// Accept symbols of the lexer have to match the terminal symbols of the
// grammar the tokens are parsed with.
func NewTokenizer(lexer *fa.State, src Source, opts ...Option) *Tokenizer {
	t := &Tokenizer{
		lexer: lexer,
		src:   src,
		skip:  linkedhashset.New(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokens opens the source and returns a new token stream, starting at the
// beginning of the input.
func (t *Tokenizer) Tokens() (*TokenStream, error) {
	r, err := t.src.Open()
	if err != nil {
		return nil, fmt.Errorf("tokenizer cannot open input: %w", err)
	}
	ts := &TokenStream{
		tokenizer: t,
		reader:    bufio.NewReader(r),
		line:      1,
		column:    1,
		Error:     logError,
	}
	if c, ok := r.(io.Closer); ok {
		ts.closer = c
	}
	return ts, nil
}

// All is a convenience function which collects all tokens of a fresh stream,
// including the final EOS token.
func (t *Tokenizer) All() ([]lltab.Token, error) {
	ts, err := t.Tokens()
	if err != nil {
		return nil, err
	}
	defer ts.Close()
	var tokens []lltab.Token
	for tok, ok := ts.Next(); ok; tok, ok = ts.Next() {
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// Default error reporting function for token streams
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Token streams ---------------------------------------------------------

// StreamState is the state of a token stream.
type StreamState int

// States of token streams.
const (
	NotStarted StreamState = iota
	Running
	Exhausted
	Disposed
)

func (s StreamState) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Exhausted:
		return "exhausted"
	case Disposed:
		return "disposed"
	}
	return fmt.Sprintf("StreamState(%d)", int(s))
}

// TokenStream is a lazy sequence of tokens. It implements lltab.TokenStream.
// A TokenStream is not safe for concurrent use.
type TokenStream struct {
	tokenizer *Tokenizer
	reader    *bufio.Reader
	closer    io.Closer
	state     StreamState
	line      int    // line of next character
	column    int    // column of next character
	pos       uint64 // character offset of next character
	failed    bool   // source reported a read error
	buf       strings.Builder
	Error     func(error) // error handler for I/O errors
}

var _ lltab.TokenStream = (*TokenStream)(nil)

// SetErrorHandler sets an error handler for the stream. Read errors of the
// source are reported to it, and end the input.
func (ts *TokenStream) SetErrorHandler(h func(error)) {
	if h == nil {
		ts.Error = logError
		return
	}
	ts.Error = h
}

// State returns the current state of the stream.
func (ts *TokenStream) State() StreamState {
	return ts.state
}

// Close releases the stream and the underlying source.
// Calling Next after Close will panic.
func (ts *TokenStream) Close() error {
	if ts.state == Disposed {
		return nil
	}
	ts.state = Disposed
	if ts.closer != nil {
		return ts.closer.Close()
	}
	return nil
}

// Next returns the next token. After the final EOS token has been delivered,
// Next returns false.
func (ts *TokenStream) Next() (lltab.Token, bool) {
	for {
		tok, ok := ts.next()
		if !ok || !ts.tokenizer.skip.Contains(tok.Symbol) {
			return tok, ok
		}
		tracer().Debugf("skipping token %v", tok)
	}
}

func (ts *TokenStream) next() (lltab.Token, bool) {
	switch ts.state {
	case Disposed:
		panic("token stream used after Close")
	case Exhausted:
		return lltab.Token{}, false
	}
	ts.state = Running
	tok := lltab.Token{Line: ts.line, Column: ts.column, Position: ts.pos}
	r, ok := ts.peek()
	if !ok {
		ts.state = Exhausted
		tok.Symbol = lltab.EOS
		return tok, true
	}
	ts.buf.Reset()
	states := []*fa.State{ts.tokenizer.lexer}
	for {
		next := fa.Move(states, r)
		if len(next) == 0 {
			break
		}
		ts.consume(r)
		states = next
		if r, ok = ts.peek(); !ok {
			break
		}
	}
	matched := ts.pos > tok.Position
	if f := fa.FirstAccepting(states); f != nil && matched {
		tok.Symbol = f.Accept()
	} else {
		tok.Symbol = lltab.ErrorSymbol
		if ok { // unmatched character belongs to the error
			ts.consume(r)
		}
	}
	tok.Value = ts.buf.String()
	tok.Length = int(ts.pos - tok.Position)
	tracer().Debugf("token %v", tok)
	return tok, true
}

// peek returns the next input character without consuming it.
func (ts *TokenStream) peek() (rune, bool) {
	if ts.failed {
		return 0, false
	}
	r, _, err := ts.reader.ReadRune()
	if err != nil {
		if err != io.EOF {
			ts.failed = true
			ts.Error(err)
		}
		return 0, false
	}
	ts.reader.UnreadRune()
	return r, true
}

// consume moves past r, which has to be the character returned by peek.
func (ts *TokenStream) consume(r rune) {
	ts.reader.ReadRune()
	ts.buf.WriteRune(r)
	ts.pos++
	if r == '\n' {
		ts.line++
		ts.column = 1
	} else {
		ts.column++
	}
}
