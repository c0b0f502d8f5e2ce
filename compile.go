package rpneval

import (
	"fmt"
	"math"

	"fortio.org/log"
	"github.com/goforj/godump"
)

type outQueue struct {
	q []Node
}

func (o *outQueue) unsafePop() Node {
	n := o.q[len(o.q)-1]
	o.q = o.q[0 : len(o.q)-1]
	return n
}

func (o *outQueue) unsafeTop() Node {
	return o.q[len(o.q)-1]
}

func (o *outQueue) push(n Node) {
	log.LogVf("push %s", n)
	o.q = append(o.q, n)
}

func (o *outQueue) size() int {
	return len(o.q)
}

// Build turns a token sequence into a single syntax tree in one left
// to right pass. MEM stores and recalls happen here: a "v MEM" sets
// the memory of s right away, and is not undone if a later token
// fails.
func Build(tokens []Token, s *State) (Node, error) {
	if s == nil {
		s = NewState()
	}
	output := outQueue{}

	for _, t := range tokens {
		switch {
		case t.Type == TokLParen, t.Type == TokRParen:
			continue

		case t.Type == TokNumber:
			output.push(NumNode{Value: t.Number})

		case t.Type.IsOperator():
			if output.size() < 2 {
				return nil, fmt.Errorf("%w for '%s', need 2 element, but only %d provided",
					ErrInsufficientOperands, t.Text, output.size())
			}
			right := output.unsafePop()
			left := output.unsafePop()
			output.push(BinaryNode{Op: t.Type, Left: left, Right: right})

		case t.Type == TokRes:
			if output.size() < 1 {
				return nil, fmt.Errorf("%w: RES without index", ErrInvalidResReference)
			}
			n, err := resIndex(output.unsafePop())
			if err != nil {
				return nil, err
			}
			output.push(ResNode{N: n})

		case t.Type == TokMem:
			if output.size() > 0 {
				if num, ok := output.unsafeTop().(NumNode); ok {
					output.unsafePop()
					log.LogVf("store %s in memory", formatNumber(num.Value))
					s.SetMemory(num.Value)
					output.push(MemNode{Value: 0})
					continue
				}
			}
			output.push(MemNode{Value: s.Memory()})

		default:
			return nil, fmt.Errorf("%w: %s", ErrUnrecognizedToken, t)
		}
	}

	if output.size() != 1 {
		return nil, fmt.Errorf("%w: still got %d element instead of 1 at the final state",
			ErrMalformedExpression, output.size())
	}

	tree := output.unsafePop()
	if log.LogDebug() {
		log.Debugf("syntax tree:\n%s", godump.DumpStr(tree))
	}
	return tree, nil
}

// resIndex truncates the scalar payload of the RES argument. Any
// scalar node is accepted, a BinaryNode has no payload.
func resIndex(n Node) (int, error) {
	var v float64
	switch n := n.(type) {
	case NumNode:
		v = n.Value
	case MemNode:
		v = n.Value
	case ResNode:
		return n.N, nil
	default:
		return 0, fmt.Errorf("%w: RES index must be a single value, got %s",
			ErrInvalidResReference, n)
	}
	t := math.Trunc(v)
	switch {
	case math.IsNaN(t):
		return 0, fmt.Errorf("%w: RES index %s is not a number",
			ErrInvalidResReference, formatNumber(v))
	// saturated indexes are still out of the history at evaluation
	case t >= math.MaxInt:
		return math.MaxInt, nil
	case t <= math.MinInt:
		return math.MinInt, nil
	}
	return int(t), nil
}

// Compile lexes and builds a single line against s.
func Compile(input string, s *State) ([]Token, Node, error) {
	tokens, err := Lex(input)
	if err != nil {
		return nil, nil, err
	}
	log.LogVf("lexed %q into %d token(s)", input, len(tokens))
	tree, err := Build(tokens, s)
	if err != nil {
		return tokens, nil, err
	}
	return tokens, tree, nil
}
