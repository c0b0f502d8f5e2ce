package rpneval

import (
	"fmt"
	"math"
	"strconv"

	"fortio.org/log"
)

// A Node is a syntax tree node, one of NumNode, BinaryNode, ResNode or
// MemNode. Trees are built by Build and evaluated with Eval.
type Node interface {
	fmt.Stringer
	// Eval evaluates the node. c is only needed by RES nodes and may
	// be nil.
	Eval(c Context) (float64, error)
	node()
}

// Eval evaluates a syntax tree against the results history held by
// c.
func Eval(n Node, c Context) (float64, error) {
	if n == nil {
		return math.NaN(), ErrInvalidSyntaxNode
	}
	return n.Eval(c)
}

// NumNode is a literal.
type NumNode struct {
	Value float64
}

func (NumNode) node() {}

func (e NumNode) Eval(Context) (float64, error) {
	return e.Value, nil
}

func (e NumNode) String() string {
	return "(NUM " + formatNumber(e.Value) + ")"
}

// BinaryNode applies Op, one of the operator token types, to the
// values of Left and Right.
type BinaryNode struct {
	Op          TokenType
	Left, Right Node
}

func (BinaryNode) node() {}

func (e BinaryNode) Eval(c Context) (float64, error) {
	op, ok := operators[e.Op]
	if !ok || e.Left == nil || e.Right == nil {
		return math.NaN(), ErrInvalidSyntaxNode
	}

	valueLeft, err := e.Left.Eval(c)
	if err != nil {
		return math.NaN(), err
	}

	valueRight, err := e.Right.Eval(c)
	if err != nil {
		return math.NaN(), err
	}

	res, err := op(valueLeft, valueRight)
	if err != nil {
		return math.NaN(), fmt.Errorf("%s %s %s: %w",
			formatNumber(valueLeft), e.Op, formatNumber(valueRight), err)
	}
	log.LogVf("eval %s %s %s = %s", formatNumber(valueLeft), e.Op, formatNumber(valueRight), formatNumber(res))
	return res, nil
}

func (e BinaryNode) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Op, e.Left, e.Right)
}

// ResNode recalls the N-th most recent result. The history is only
// looked up at evaluation.
type ResNode struct {
	N int
}

func (ResNode) node() {}

func (e ResNode) Eval(c Context) (float64, error) {
	if c == nil {
		return math.NaN(), fmt.Errorf("%w: RES %d without results history", ErrInvalidResReference, e.N)
	}
	v, err := c.Result(e.N)
	if err != nil {
		return math.NaN(), err
	}
	log.LogVf("eval RES %d = %s", e.N, formatNumber(v))
	return v, nil
}

func (e ResNode) String() string {
	return fmt.Sprintf("(RES %d)", e.N)
}

// MemNode holds the value of the memory cell captured when the tree
// was built. A store leaves a MemNode of value 0.
type MemNode struct {
	Value float64
}

func (MemNode) node() {}

func (e MemNode) Eval(Context) (float64, error) {
	return e.Value, nil
}

func (e MemNode) String() string {
	return "(MEM " + formatNumber(e.Value) + ")"
}

// operators

type binaryEvaluer func(float64, float64) (float64, error)

var operators = map[TokenType]binaryEvaluer{
	TokPlus:       func(a, b float64) (float64, error) { return a + b, nil },
	TokMinus:      func(a, b float64) (float64, error) { return a - b, nil },
	TokTimes:      func(a, b float64) (float64, error) { return a * b, nil },
	TokDivideInt:  divideInt,
	TokModulo:     modulo,
	TokPower:      func(a, b float64) (float64, error) { return math.Pow(a, b), nil },
	TokDivideReal: divideReal,
}

// divideInt truncates both operands toward zero, then divides
// rounding toward negative infinity.
func divideInt(a, b float64) (float64, error) {
	x, err := truncate(a)
	if err != nil {
		return math.NaN(), err
	}
	y, err := truncate(b)
	if err != nil {
		return math.NaN(), err
	}
	if y == 0 {
		return math.NaN(), ErrDivisionByZero
	}
	if x == math.MinInt64 && y == -1 {
		return -float64(math.MinInt64), nil
	}
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return float64(q), nil
}

func truncate(v float64) (int64, error) {
	t := math.Trunc(v)
	if math.IsNaN(t) || t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %s", ErrOperandRange, formatNumber(v))
	}
	return int64(t), nil
}

// modulo is floored: a non-zero result has the sign of b.
func modulo(a, b float64) (float64, error) {
	if b == 0 {
		return math.NaN(), ErrDivisionByZero
	}
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r, nil
}

func divideReal(a, b float64) (float64, error) {
	if b == 0 {
		return math.NaN(), ErrDivisionByZero
	}
	return a / b, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
