package shunt

import (
	"errors"
	"strconv"
)

// Operator is one of the four arithmetic operations the front end knows
// about. It is a closed set; every consumer switches exhaustively over it.
type Operator int8

// The four operators.
const (
	Mul Operator = iota
	Div
	Add
	Sub
)

// Precedence ranks for operators. A larger rank binds tighter.
const (
	PrecAdd = 1 // rank of Add and Sub
	PrecMul = 2 // rank of Mul and Div
)

// Precedence returns the precedence rank of an operator. Mul and Div share
// the higher rank, Add and Sub the lower one.
func (op Operator) Precedence() int {
	switch op {
	case Mul, Div:
		return PrecMul
	case Add, Sub:
		return PrecAdd
	}
	return 0
}

func (op Operator) String() string {
	switch op {
	case Mul:
		return "*"
	case Div:
		return "/"
	case Add:
		return "+"
	case Sub:
		return "-"
	}
	return "<illegal operator>"
}

// Kind discriminates the variants of a Token.
type Kind int8

// All possible token kinds. The set is closed, which limits the front end
// to simple arithmetic expressions.
const (
	EOF Kind = iota
	Number
	Operation
	LeftParen
	RightParen
)

// A Token is one lexical unit of an expression. Tokens are small values
// and are copied freely; they carry no identity and no position
// information.
//
// Value is set for Number tokens only. Literal values are 32 bit wide;
// decimal accumulation in the lexer wraps around on overflow with Go's
// two's-complement int32 semantics (see lexer.Tokenize).
type Token struct {
	Kind  Kind
	Value int32
	Op    Operator
}

// Num creates a Number token holding value v.
func Num(v int32) Token {
	return Token{Kind: Number, Value: v}
}

// Oper creates an Operation token for operator op.
func Oper(op Operator) Token {
	return Token{Kind: Operation, Op: op}
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "EOF"
	case Number:
		return strconv.Itoa(int(t.Value))
	case Operation:
		return t.Op.String()
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	}
	return "<illegal token>"
}

// Errors the two pipeline stages may report. Both are terminal for the
// current input line; the caller has to obtain a new line to retry.
var (
	ErrBadInput       = errors.New("shunt lexer: input contains an unrecognized character")
	ErrUnmatchedParen = errors.New("shunt: unmatched parenthesis")
)
