package lexmach

import (
	"strings"
	"testing"

	"github.com/npillmayer/lltab"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/timtadh/lexmachine"
)

var literals = []string{"+", "*", "(", ")"}
var keywords = []string{"nil"}
var tokenIds = map[string]int{
	"+":   1,
	"*":   2,
	"(":   3,
	")":   4,
	"nil": 5,
	"int": 6,
	"id":  7,
}

func exprAdapter(t *testing.T) *Adapter {
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), Skip)
		lexer.Add([]byte(`[0-9]+`), MakeToken("int", tokenIds["int"]))
		lexer.Add([]byte(`[a-z]+`), MakeToken("id", tokenIds["id"]))
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	LM, err := NewAdapter(init, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	return LM
}

func collect(t *testing.T, LM *Adapter, input string) []lltab.Token {
	stream, err := LM.Tokens(input)
	if err != nil {
		t.Fatal(err)
	}
	stream.SetErrorHandler(func(error) {})
	var tokens []lltab.Token
	for tok, ok := stream.Next(); ok; tok, ok = stream.Next() {
		tokens = append(tokens, tok)
	}
	return tokens
}

func symbols(tokens []lltab.Token) []string {
	syms := make([]string, len(tokens))
	for i, tok := range tokens {
		syms[i] = tok.Symbol
	}
	return syms
}

func TestLMTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.scanner")
	defer teardown()
	//
	LM := exprAdapter(t)
	inputs := []struct {
		input string
		syms  []string
	}{
		{"", []string{"#EOS"}},
		{"3+5*7", []string{"int", "+", "int", "*", "int", "#EOS"}},
		{"(a + 12) // comment", []string{"(", "id", "+", "int", ")", "#EOS"}},
	}
	for i, c := range inputs {
		tokens := collect(t, LM, c.input)
		assert.Equal(t, c.syms, symbols(tokens), "input #%d", i)
	}
}

func TestLMLocations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.scanner")
	defer teardown()
	//
	tokens := collect(t, exprAdapter(t), "1 +\n 22")
	if !assert.Len(t, tokens, 4) {
		return
	}
	assert.Equal(t, lltab.Token{Symbol: "int", Value: "22", Line: 2, Column: 2, Position: 5, Length: 2}, tokens[2])
	assert.Equal(t, uint64(2), tokens[1].Position)
	eos := tokens[3]
	assert.Equal(t, lltab.Token{Symbol: "#EOS", Line: 2, Column: 4, Position: 7}, eos)
}

func TestLMUnconsumedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.scanner")
	defer teardown()
	//
	LM := exprAdapter(t)
	stream, _ := LM.Tokens("3$4")
	var reported int
	stream.SetErrorHandler(func(error) { reported++ })
	var tokens []lltab.Token
	for tok, ok := stream.Next(); ok; tok, ok = stream.Next() {
		tokens = append(tokens, tok)
		if len(tokens) > 10 {
			t.Fatalf("scanner does not make progress on unmatched input")
		}
	}
	assert.Equal(t, lltab.ErrorSymbol, tokens[1].Symbol)
	assert.True(t, strings.HasPrefix(tokens[1].Value, "$"), "error token should start at '$'")
	assert.Equal(t, lltab.EOS, tokens[len(tokens)-1].Symbol)
	assert.GreaterOrEqual(t, reported, 1)
}

func TestLMNonASCIIInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lltab.scanner")
	defer teardown()
	//
	tokens := collect(t, exprAdapter(t), "ééé 1+2")
	expected := []lltab.Token{
		{Symbol: "#ERROR", Value: "é", Line: 1, Column: 1, Position: 0, Length: 1},
		{Symbol: "#ERROR", Value: "é", Line: 1, Column: 2, Position: 1, Length: 1},
		{Symbol: "#ERROR", Value: "é", Line: 1, Column: 3, Position: 2, Length: 1},
		{Symbol: "int", Value: "1", Line: 1, Column: 5, Position: 4, Length: 1},
		{Symbol: "+", Value: "+", Line: 1, Column: 6, Position: 5, Length: 1},
		{Symbol: "int", Value: "2", Line: 1, Column: 7, Position: 6, Length: 1},
		{Symbol: "#EOS", Line: 1, Column: 8, Position: 7},
	}
	assert.Equal(t, expected, tokens)
	//
	tokens = collect(t, exprAdapter(t), "1 // ä\n é 2")
	if assert.Len(t, tokens, 4) {
		assert.Equal(t, lltab.Token{Symbol: "#ERROR", Value: "é", Line: 2, Column: 2, Position: 8, Length: 1}, tokens[1])
		assert.Equal(t, lltab.Token{Symbol: "int", Value: "2", Line: 2, Column: 4, Position: 10, Length: 1}, tokens[2])
		assert.Equal(t, lltab.Token{Symbol: "#EOS", Line: 2, Column: 5, Position: 11}, tokens[3])
	}
}
