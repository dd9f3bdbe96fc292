/*
Package postfix reorders an infix token sequence into postfix (Reverse
Polish) order, using the shunting-yard method.

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

Clients feed the reorderer the token sequence produced by package lexer:

  tokens, _ := lexer.TokenizeString("(30 + 560) / 4")
  rpn, err := postfix.Reorder(tokens)
  // rpn = [30 560 + 4 /]

Structural tokens do not survive the reordering: parentheses only steer
where operators end up, and an EOF token terminates consumption.

Status

An operator is popped off the auxiliary stack only while the stack's top
operator has strictly greater precedence. Operators of equal precedence
are stacked instead, so chains like "8 - 3 - 2" come out grouped
right-associatively, as [8 3 2 - -]. Evaluators that need conventional
left-to-right grouping of equal-precedence chains have to account for
this. */
package postfix

import (
	"context"

	"github.com/emirpasic/gods/stacks/arraystack"
	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/shunt"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Reorder consumes a token sequence in infix order and produces the same
// tokens in postfix order. Parentheses and the EOF token are structural
// and are not part of the output. An EOF token stops consumption; tokens
// after it are ignored.
//
// A close paren without a matching open paren, or an open paren that is
// never closed, yields shunt.ErrUnmatchedParen and no output sequence.
func Reorder(tokens []shunt.Token) ([]shunt.Token, error) {
	output := make([]shunt.Token, 0, len(tokens))
	stack := borrowStack() // holds Operation and LeftParen tokens only
	defer releaseStack(stack)
	var ok bool
loop:
	for _, t := range tokens {
		switch t.Kind {
		case shunt.Number:
			output = append(output, t)
		case shunt.LeftParen:
			stack.Push(t)
		case shunt.RightParen:
			if output, ok = popUntilParen(stack, output); !ok {
				T().Infof("parser read ')' without an open '(' on the stack")
				return nil, shunt.ErrUnmatchedParen
			}
		case shunt.Operation:
			output = popTighterOps(stack, output, t.Op)
			stack.Push(t)
		case shunt.EOF:
			break loop
		}
	}
	for !stack.Empty() {
		top, _ := stack.Pop()
		t := top.(shunt.Token)
		if t.Kind == shunt.LeftParen {
			T().Infof("parser drained a '(' which was never closed")
			return nil, shunt.ErrUnmatchedParen
		}
		output = append(output, t)
	}
	T().Debugf("parser reordered %d token(s) into %d", len(tokens), len(output))
	return output, nil
}

// popUntilParen pops stacked operators into the output sequence until an
// open paren is popped. The paren itself is discarded, not emitted. Ok is
// false if the stack empties before an open paren turns up.
func popUntilParen(stack *arraystack.Stack, output []shunt.Token) ([]shunt.Token, bool) {
	for {
		top, ok := stack.Pop()
		if !ok {
			return output, false
		}
		t := top.(shunt.Token)
		if t.Kind == shunt.LeftParen {
			return output, true
		}
		output = append(output, t)
	}
}

// popTighterOps pops operators with precedence strictly greater than op's
// into the output sequence. It stops, without popping, at an open paren,
// at an operator of equal or lower precedence, or when the stack is empty.
func popTighterOps(stack *arraystack.Stack, output []shunt.Token, op shunt.Operator) []shunt.Token {
	for {
		top, ok := stack.Peek()
		if !ok {
			return output
		}
		t := top.(shunt.Token)
		if t.Kind != shunt.Operation || t.Op.Precedence() <= op.Precedence() {
			return output
		}
		stack.Pop()
		output = append(output, t)
	}
}

// Operator stacks are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type stackPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalStackPool *stackPool

func init() {
	globalStackPool = &stackPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return arraystack.New(), nil
		})
	globalStackPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalStackPool.opool = pool.NewObjectPool(globalStackPool.ctx, factory, config)
}

// borrowStack returns an empty operator stack from the pool.
func borrowStack() *arraystack.Stack {
	o, _ := globalStackPool.opool.BorrowObject(globalStackPool.ctx)
	return o.(*arraystack.Stack)
}

// Clears the stack and puts it back into the pool.
func releaseStack(stack *arraystack.Stack) {
	stack.Clear()
	_ = globalStackPool.opool.ReturnObject(globalStackPool.ctx, stack)
}
