package rpneval

import "errors"

var (
	// ErrUnrecognizedToken is returned by the lexer for a word that
	// is neither a symbol, a keyword nor a number.
	ErrUnrecognizedToken = errors.New("unrecognized token")

	// ErrInsufficientOperands is returned when a binary operator
	// finds less than two nodes to work on.
	ErrInsufficientOperands = errors.New("not enough operands")

	// ErrInvalidResReference is returned when RES has no argument,
	// or when its index is out of the results history.
	ErrInvalidResReference = errors.New("invalid reference for RES operation")

	// ErrMalformedExpression is returned when a line does not reduce
	// to exactly one node.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrInvalidSyntaxNode indicates a tree that Build could not have
	// produced.
	ErrInvalidSyntaxNode = errors.New("invalid node in syntax tree")

	// ErrDivisionByZero is returned by /, | and % with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOperandRange is returned by integer division when an operand
	// does not fit an int64.
	ErrOperandRange = errors.New("operand out of integer range")
)
