package scanner

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/lltab"
	"github.com/npillmayer/lltab/ll/fa"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func exprLexer() *fa.State {
	return fa.Lexer(
		fa.Literal("+", "+"),
		fa.Literal("*", "*"),
		fa.Literal("(", "("),
		fa.Literal(")", ")"),
		fa.Repeat(fa.Set("0123456789", ""), "int"),
		fa.Repeat(fa.Set(" \t\n", ""), "ws"),
	)
}

func symbols(tokens []lltab.Token) []string {
	syms := make([]string, len(tokens))
	for i, tok := range tokens {
		syms[i] = tok.Symbol
	}
	return syms
}

func TestExprTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.scanner")
	defer teardown()
	//
	assert := assert.New(t)
	tokens, err := NewTokenizer(exprLexer(), StringSource("3+5*7")).All()
	if !assert.NoError(err) {
		return
	}
	assert.Equal([]string{"int", "+", "int", "*", "int", "#EOS"}, symbols(tokens))
	assert.Equal(lltab.Token{Symbol: "int", Value: "3", Line: 1, Column: 1, Position: 0, Length: 1}, tokens[0])
	assert.Equal(lltab.Token{Symbol: "*", Value: "*", Line: 1, Column: 4, Position: 3, Length: 1}, tokens[3])
	assert.Equal(lltab.Token{Symbol: "#EOS", Line: 1, Column: 6, Position: 5}, tokens[5])
}

func TestMaximalMunch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.scanner")
	defer teardown()
	//
	tokens, err := NewTokenizer(exprLexer(), StringSource("12345+678")).All()
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 4 || tokens[0].Value != "12345" || tokens[2].Value != "678" {
		t.Errorf("expected greedy matching of digits, got %v", tokens)
	}
	if tokens[2].Column != 7 || tokens[2].Length != 3 {
		t.Errorf("unexpected location of third token: %v", tokens[2])
	}
}

func TestEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.scanner")
	defer teardown()
	//
	tokens, err := NewTokenizer(exprLexer(), StringSource("")).All()
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 1 || tokens[0].Symbol != lltab.EOS {
		t.Errorf("expected single #EOS token for empty input, got %v", tokens)
	}
	// nullable lexer must not loop on empty matches
	nullable := fa.Lexer(fa.Kleene(fa.Literal("a", ""), "as"))
	tokens, _ = NewTokenizer(nullable, StringSource("b")).All()
	assert.Equal(t, []string{"#ERROR", "#EOS"}, symbols(tokens))
}

func TestErrorTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.scanner")
	defer teardown()
	//
	assert := assert.New(t)
	tokens, _ := NewTokenizer(exprLexer(), StringSource("3$4")).All()
	assert.Equal([]string{"int", "#ERROR", "int", "#EOS"}, symbols(tokens))
	assert.Equal("$", tokens[1].Value)
	assert.Equal(3, tokens[2].Column)
	assert.Equal(uint64(2), tokens[2].Position)
	//
	abc := fa.Lexer(fa.Literal("abc", "abc"), fa.Literal("x", "x"))
	tokens, _ = NewTokenizer(abc, StringSource("abxx")).All()
	assert.Equal([]string{"#ERROR", "x", "#EOS"}, symbols(tokens))
	assert.Equal("abx", tokens[0].Value) // partial match plus offending character
	tokens, _ = NewTokenizer(abc, StringSource("xab")).All()
	assert.Equal([]string{"x", "#ERROR", "#EOS"}, symbols(tokens))
	assert.Equal("ab", tokens[1].Value) // partial match at end of input
}

func TestLocations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.scanner")
	defer teardown()
	//
	assert := assert.New(t)
	tz := NewTokenizer(exprLexer(), StringSource("1 +\n  (22)\n"), Skip("ws"))
	tokens, _ := tz.All()
	assert.Equal([]string{"int", "+", "(", "int", ")", "#EOS"}, symbols(tokens))
	type loc struct{ line, col, pos int }
	expected := []loc{{1, 1, 0}, {1, 3, 2}, {2, 3, 6}, {2, 4, 7}, {2, 6, 9}, {3, 1, 11}}
	for i, l := range expected {
		tok := tokens[i]
		assert.Equal(l, loc{tok.Line, tok.Column, int(tok.Position)}, "location of token #%d %v", i, tok)
	}
}

func TestRestartable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.scanner")
	defer teardown()
	//
	tz := NewTokenizer(exprLexer(), StringSource("(1+2)*3$"))
	first, _ := tz.All()
	s1, _ := tz.Tokens()
	s2, _ := tz.Tokens()
	defer s1.Close()
	defer s2.Close()
	s1.Next() // advance first stream only
	s1.Next()
	second, _ := tz.All()
	assert.Equal(t, first, second)
	tok, _ := s2.Next()
	assert.Equal(t, first[0], tok, "independent stream has to start at the beginning")
}

func TestStreamStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.scanner")
	defer teardown()
	//
	ts, err := NewTokenizer(exprLexer(), StringSource("1")).Tokens()
	if err != nil {
		t.Fatal(err)
	}
	if ts.State() != NotStarted {
		t.Errorf("expected fresh stream to be not-started, is %s", ts.State())
	}
	ts.Next()
	if ts.State() != Running {
		t.Errorf("expected stream to be running, is %s", ts.State())
	}
	if tok, ok := ts.Next(); !ok || !tok.IsEOS() {
		t.Errorf("expected #EOS, got %v", tok)
	}
	if _, ok := ts.Next(); ok || ts.State() != Exhausted {
		t.Errorf("expected stream to be exhausted after #EOS")
	}
	ts.Close()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Next after Close to panic")
		}
	}()
	ts.Next()
}

func TestFileAndNFCSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.scanner")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("cafe\u0301"), 0644); err != nil {
		t.Fatal(err)
	}
	lexer := fa.Lexer(fa.Literal("caf\u00e9", "word"))
	tokens, err := NewTokenizer(lexer, NFC(FileSource(path))).All()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []string{"word", "#EOS"}, symbols(tokens))
	tokens, _ = NewTokenizer(lexer, FileSource(path)).All()
	assert.Equal(t, "#ERROR", tokens[0].Symbol, "decomposed input must not match without NFC")
	if _, err = NewTokenizer(lexer, FileSource(path+".missing")).Tokens(); err == nil {
		t.Errorf("expected error for missing input file")
	}
}

type failingSource struct{}

func (failingSource) Open() (io.Reader, error) {
	return io.MultiReader(strings.NewReader("1+"), errReader{}), nil
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestReadError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.scanner")
	defer teardown()
	//
	ts, _ := NewTokenizer(exprLexer(), failingSource{}).Tokens()
	var reported []error
	ts.SetErrorHandler(func(e error) { reported = append(reported, e) })
	var syms []string
	for tok, ok := ts.Next(); ok; tok, ok = ts.Next() {
		syms = append(syms, tok.Symbol)
	}
	assert.Equal(t, []string{"int", "+", "#EOS"}, syms)
	assert.Len(t, reported, 1)
}
