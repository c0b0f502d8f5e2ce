// Copyright 2014 Alexandre Tuleu
// This file is part of go-rpneval.
//
// go-rpneval is free software: you can redistribute it and/or modify it
// under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-rpneval is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public
// License along with go-rpneval.  If not, see
// <http://www.gnu.org/licenses/>.

/*
Package rpneval evaluates postfix (reverse polish) arithmetic
expressions, one expression per line. A line goes through three
stages: it is lexed into Tokens, the Tokens are built into a syntax
tree (a Node), and the tree is evaluated into a float64.

Operators

Seven binary operators are supported:

	+   addition
	-   subtraction
	*   multiplication
	/   integer division (operands truncated, result floored)
	%   floored modulo
	^   power
	|   real division

Parentheses are accepted by the lexer but ignored by the tree
builder: only the postfix order of operands and operators matters.

State

A State holds what persists from one line to the next: the history of
results and a single memory cell.

"n RES" recalls the n-th most recent result (1 is the previous line).
The history is looked up when the tree is evaluated.

"v MEM" stores the literal v into memory, and the node evaluates to
0. A MEM that does not directly follow a literal recalls the memory
cell as it was when the tree was built. Both the store and the recall
happen in Build, not in Eval, so a store is never rolled back if the
line fails later on.

Basics

A single line can be compiled and evaluated against a fresh State:

	s := rpneval.NewState()
	_, tree, err := rpneval.Compile("7 2 |", s)
	if err != nil {
		// handle error
	}
	res, err := rpneval.Eval(tree, s) // 3.5

Whole inputs are processed with Process, which never stops on a failing
line.

*/
package rpneval
