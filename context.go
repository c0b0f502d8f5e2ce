package rpneval

import "fmt"

// A Context gives access to the results of previous lines. You can
// pass it to Eval.
type Context interface {
	// Result returns the n-th most recent result, 1 being the last
	// one, or an error wrapping ErrInvalidResReference.
	Result(n int) (float64, error)
}

// State is what a run carries from one line to the next: the history
// of results and the memory cell. Lines must be processed in order
// against a single State; it is not safe for concurrent use.
type State struct {
	results []float64
	memory  float64
}

// NewState creates a State with an empty history and a zero memory
// cell.
func NewState() *State {
	return &State{}
}

// Result implements Context.
func (s *State) Result(n int) (float64, error) {
	if n < 1 || n > len(s.results) {
		return 0, fmt.Errorf("%w: RES %d with %d result(s) available",
			ErrInvalidResReference, n, len(s.results))
	}
	return s.results[len(s.results)-n], nil
}

// Results returns a copy of the history, oldest first.
func (s *State) Results() []float64 {
	return append([]float64(nil), s.results...)
}

// Append records the result of a completed line.
func (s *State) Append(v float64) {
	s.results = append(s.results, v)
}

// Memory returns the current value of the memory cell.
func (s *State) Memory() float64 {
	return s.memory
}

// SetMemory sets the memory cell.
func (s *State) SetMemory(v float64) {
	s.memory = v
}
