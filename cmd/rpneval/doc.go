/*
Rpneval evaluates a file of postfix arithmetic expressions, one per
line, and prints the tokens, syntax tree and result of each line.

	% cat ops.txt
	3 4 +
	7 2 /
	7 2 |
	5 MEM
	MEM 3 +
	1 RES 2 *
	1 2
	% rpneval ops.txt
	------------ File ops.txt ------------

	Expression: 3 4 +
	Token String: [NUMBER(3), NUMBER(4), PLUS]
	Syntax Tree: (PLUS (NUM 3) (NUM 4))
	Result: 7

	Expression: 7 2 /
	Token String: [NUMBER(7), NUMBER(2), DIVIDE_INT]
	Syntax Tree: (DIVIDE_INT (NUM 7) (NUM 2))
	Result: 3

	Expression: 7 2 |
	Token String: [NUMBER(7), NUMBER(2), DIVIDE_REAL]
	Syntax Tree: (DIVIDE_REAL (NUM 7) (NUM 2))
	Result: 3.5

	Expression: 5 MEM
	Token String: [NUMBER(5), MEM]
	Syntax Tree: (MEM 0)
	Result: 0

	Expression: MEM 3 +
	Token String: [MEM, NUMBER(3), PLUS]
	Syntax Tree: (PLUS (MEM 5) (NUM 3))
	Result: 8

	Expression: 1 RES 2 *
	Token String: [NUMBER(1), RES, NUMBER(2), TIMES]
	Syntax Tree: (TIMES (RES 1) (NUM 2))
	Result: 16

	Error processing expression '1 2': malformed expression: still got 2 element instead of 1 at the final state

The environment variable RPNEVAL_LOG_LEVEL sets the level of the
logs written to stderr (debug, verbose, info, warning, error).
RPNEVAL_COLOR is one of always, never or auto; auto colors the
output only when it is a terminal.
*/
package main
