/*
Package lexer scans a line of textual arithmetic into a sequence of tokens.

Under active development; use at your own risk

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.


Typical Usage

Clients hand a line of input to Tokenize (or TokenizeString) and receive
the tokens in the order they were written:

  tokens, err := lexer.TokenizeString("420 + 69")
  // tokens = [420 + 69]

The recognized alphabet is fixed: decimal digits, space, the operators
"+ - * /", parentheses, and the terminators ";" and newline. Any other
character aborts the scan with shunt.ErrBadInput. */
package lexer

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/shunt"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Tokenize scans one line of input, producing the token sequence in the
// order the characters were read. Scanning stops at the first ';' or
// newline, which appends an EOF token; characters after the terminator are
// ignored. If the input is exhausted without a terminator, the sequence is
// returned as scanned, without an EOF token.
//
// Digits are folded into the most recently scanned token if that token is
// a number, so "42" yields a single token with value 42. Accumulation is
// 32 bit wide and wraps around on overflow.
//
// The first unrecognized character aborts the scan: Tokenize then returns
// shunt.ErrBadInput and no tokens, not even the ones scanned so far.
func Tokenize(input io.Reader) ([]shunt.Token, error) {
	runeScanner := bufio.NewScanner(input)
	runeScanner.Split(bufio.ScanRunes)
	result := make([]shunt.Token, 0, 16)
	for runeScanner.Scan() {
		r, _ := utf8.DecodeRune(runeScanner.Bytes())
		switch r {
		case ' ': // skip whitespace
		case ';', '\n':
			result = append(result, shunt.Token{Kind: shunt.EOF})
			T().Debugf("lexer hit terminator %#U, scanned %d token(s)", r, len(result))
			return result, nil
		case '*':
			result = append(result, shunt.Oper(shunt.Mul))
		case '/':
			result = append(result, shunt.Oper(shunt.Div))
		case '+':
			result = append(result, shunt.Oper(shunt.Add))
		case '-':
			result = append(result, shunt.Oper(shunt.Sub))
		case '(':
			result = append(result, shunt.Token{Kind: shunt.LeftParen})
		case ')':
			result = append(result, shunt.Token{Kind: shunt.RightParen})
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			result = appendDigit(result, int32(r-'0'))
		default:
			T().Infof("lexer aborts at unrecognized character %#U", r)
			return nil, shunt.ErrBadInput
		}
	}
	if err := runeScanner.Err(); err != nil {
		return nil, err
	}
	T().Debugf("lexer ran out of input, scanned %d token(s)", len(result))
	return result, nil
}

// TokenizeString scans a line of input given as a string.
func TokenizeString(input string) ([]shunt.Token, error) {
	return Tokenize(strings.NewReader(input))
}

// appendDigit folds a digit into the running numeric literal. The merge
// rule inspects the last scanned token only: if it is a number, the digit
// extends it decimally; otherwise a fresh single-digit number is appended.
// There is no separate in-progress-number state.
func appendDigit(tokens []shunt.Token, digit int32) []shunt.Token {
	if n := len(tokens); n > 0 && tokens[n-1].Kind == shunt.Number {
		tokens[n-1] = shunt.Num(tokens[n-1].Value*10 + digit)
		return tokens
	}
	return append(tokens, shunt.Num(digit))
}
