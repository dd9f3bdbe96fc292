package postfix_test

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/shunt"
	"github.com/npillmayer/shunt/lexer"
	"github.com/npillmayer/shunt/postfix"
)

func ExampleReorder() {
	tokens, _ := lexer.TokenizeString("(30 + 560) / 4")
	rpn, _ := postfix.Reorder(tokens)
	fmt.Printf("%v\n", rpn)
	// Output: [30 560 + 4 /]
}

func TestParenthesizedTerm(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	infix := []shunt.Token{
		shunt.Num(3), shunt.Oper(shunt.Add), {Kind: shunt.LeftParen},
		shunt.Num(4), shunt.Oper(shunt.Mul), shunt.Num(5), {Kind: shunt.RightParen},
	}
	rpn, err := postfix.Reorder(infix)
	if err != nil {
		t.Fatalf("unexpected parser error: %v", err)
	}
	expected := []shunt.Token{
		shunt.Num(3), shunt.Num(4), shunt.Num(5),
		shunt.Oper(shunt.Mul), shunt.Oper(shunt.Add),
	}
	if !sameTokens(rpn, expected) {
		t.Errorf("expected %v, have %v", expected, rpn)
	}
}

func TestUnmatchedParens(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	lone := [][]shunt.Token{
		{{Kind: shunt.LeftParen}},
		{{Kind: shunt.RightParen}},
	}
	for _, infix := range lone {
		rpn, err := postfix.Reorder(infix)
		if err != shunt.ErrUnmatchedParen {
			t.Errorf("expected ErrUnmatchedParen for %v, have %v", infix, err)
		}
		if rpn != nil {
			t.Errorf("expected no output sequence for %v, have %v", infix, rpn)
		}
	}
}

func TestEqualPrecedenceGroupsRight(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	tokens, err := lexer.TokenizeString("8 - 3 - 2;")
	if err != nil {
		t.Fatalf("unexpected lexer error: %v", err)
	}
	rpn, err := postfix.Reorder(tokens)
	if err != nil {
		t.Fatalf("unexpected parser error: %v", err)
	}
	expected := []shunt.Token{
		shunt.Num(8), shunt.Num(3), shunt.Num(2),
		shunt.Oper(shunt.Sub), shunt.Oper(shunt.Sub),
	}
	if !sameTokens(rpn, expected) {
		t.Errorf("expected right-grouped %v, have %v", expected, rpn)
	}
}

func TestEOFStopsConsumption(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	infix := []shunt.Token{shunt.Num(1), {Kind: shunt.EOF}, shunt.Num(2)}
	rpn, err := postfix.Reorder(infix)
	if err != nil {
		t.Fatalf("unexpected parser error: %v", err)
	}
	expected := []shunt.Token{shunt.Num(1)}
	if !sameTokens(rpn, expected) {
		t.Errorf("expected tokens after EOF to be ignored, have %v", rpn)
	}
}

func TestReorderIsIdempotentOnPostfix(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	rpn := []shunt.Token{
		shunt.Num(3), shunt.Num(4), shunt.Num(5),
		shunt.Oper(shunt.Mul), shunt.Oper(shunt.Add),
	}
	again, err := postfix.Reorder(rpn)
	if err != nil {
		t.Fatalf("unexpected parser error: %v", err)
	}
	if !sameTokens(again, rpn) {
		t.Errorf("expected reordering postfix input to be a no-op, have %v", again)
	}
}

func TestPipeline(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	inputs := []struct {
		line     string
		expected string
	}{
		{"3 + 4 * (420 - 69) / (2 + 4)", "[3 4 420 69 - 2 4 + / * +]"},
		{"(30 + 560) / 4", "[30 560 + 4 /]"},
		{"1 * 2 + 3;", "[1 2 * 3 +]"},
		{"10 / 5 / 2", "[10 5 2 / /]"},
	}
	for _, input := range inputs {
		tokens, err := lexer.TokenizeString(input.line)
		if err != nil {
			t.Fatalf("unexpected lexer error for %q: %v", input.line, err)
		}
		rpn, err := postfix.Reorder(tokens)
		if err != nil {
			t.Fatalf("unexpected parser error for %q: %v", input.line, err)
		}
		if have := fmt.Sprintf("%v", rpn); have != input.expected {
			t.Errorf("expected %q to reorder to %s, have %s", input.line, input.expected, have)
		}
	}
}

func TestPipelineUnmatchedParens(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	for _, line := range []string{"(1 + 2", "1 + 2)", "((1)"} {
		tokens, err := lexer.TokenizeString(line)
		if err != nil {
			t.Fatalf("unexpected lexer error for %q: %v", line, err)
		}
		if _, err = postfix.Reorder(tokens); err != shunt.ErrUnmatchedParen {
			t.Errorf("expected ErrUnmatchedParen for %q, have %v", line, err)
		}
	}
}

func sameTokens(have, expected []shunt.Token) bool {
	if len(have) != len(expected) {
		return false
	}
	for i, token := range have {
		if token != expected[i] {
			return false
		}
	}
	return true
}
