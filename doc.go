/*
Package shunt is the front end of a minimal expression compiler: it turns a
line of textual arithmetic into postfix (Reverse Polish) token order,
suitable for later stack-based evaluation.

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

The pipeline has two stages, used in sequence. Sub-package lexer scans a
line of input into a sequence of tokens, sub-package postfix reorders that
sequence into postfix order:

  tokens, err := lexer.TokenizeString("3 + 4 * (420 - 69)")
  if err != nil { ... }
  rpn, err := postfix.Reorder(tokens)
  if err != nil { ... }
  // rpn = [3 4 420 69 - * +]

Both stages are pure functions of their input: no state survives a call,
so independent input lines may be processed concurrently without locking.

The base package shunt provides the token model shared by the two stages:
operators with their precedence ranks, the token variants, and the two
error values the stages may report.

Status

The expression language is deliberately small: decimal integer literals,
the four operators + - * /, and parentheses. There is no evaluation stage
and no code generation; consumers of the postfix sequence are expected to
bring their own. */
package shunt

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
