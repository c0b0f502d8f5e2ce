package rpneval

import (
	"bytes"
	"errors"
	"strings"

	. "gopkg.in/check.v1"
)

type RunSuite struct{}

var _ = Suite(&RunSuite{})

func evalLines(s *State, lines ...string) []Line {
	var out []Line
	for _, l := range lines {
		out = append(out, s.EvalLine(l))
	}
	return out
}

func (s *RunSuite) TestMemAcrossLines(c *C) {
	st := NewState()
	out := evalLines(st, "5 MEM", "MEM 3 +")

	c.Assert(out[0].Err, IsNil)
	c.Check(out[0].Result, Equals, 0.0)
	c.Assert(out[1].Err, IsNil)
	c.Check(out[1].Result, Equals, 8.0)
	c.Check(st.Results(), DeepEquals, []float64{0, 8})
	c.Check(st.Memory(), Equals, 5.0)
}

func (s *RunSuite) TestResAcrossLines(c *C) {
	st := NewState()
	out := evalLines(st, "1 1 +", "2 2 +", "1 RES")
	c.Check(out[2].Err, IsNil)
	c.Check(out[2].Result, Equals, 4.0)

	st = NewState()
	out = evalLines(st, "1 1 +", "2 2 +", "3 RES")
	c.Check(errors.Is(out[2].Err, ErrInvalidResReference), Equals, true)
	c.Check(st.Results(), DeepEquals, []float64{2, 4})
}

func (s *RunSuite) TestFailingLineKeepsState(c *C) {
	st := NewState()
	out := evalLines(st,
		"2 3 *",
		"1 2",
		"7 MEM +",
		"1 0 |",
		"1 RES MEM +",
	)
	c.Check(out[1].Err, NotNil)
	c.Check(out[2].Err, NotNil)
	c.Check(out[3].Err, NotNil)
	c.Assert(out[4].Err, IsNil)
	// 6 from the first line, 7 stored by the line that failed
	c.Check(out[4].Result, Equals, 13.0)
	c.Check(st.Results(), DeepEquals, []float64{6, 13})
}

func (s *RunSuite) TestEvalLineReport(c *C) {
	l := NewState().EvalLine("  3 4 +\r")
	c.Assert(l.Err, IsNil)
	c.Check(l.Expression, Equals, "3 4 +")
	c.Check(l.Tokens, HasLen, 3)
	c.Check(l.Tree.String(), Equals, "(PLUS (NUM 3) (NUM 4))")
	c.Check(l.Result, Equals, 7.0)

	l = NewState().EvalLine("1 0 /")
	c.Check(l.Tokens, HasLen, 3)
	c.Check(l.Tree, IsNil)

	l = NewState().EvalLine("1 x")
	c.Check(l.Tokens, IsNil)
	c.Check(errors.Is(l.Err, ErrUnrecognizedToken), Equals, true)
}

func (s *RunSuite) TestRunOutput(c *C) {
	in := "1 2 +\n1 2\nRES\n\n1 RES 3 *\n"
	var out bytes.Buffer
	err := Process("ops.txt", strings.NewReader(in), &out, nil)
	c.Assert(err, IsNil)
	c.Check(out.String(), Equals, `------------ File ops.txt ------------

Expression: 1 2 +
Token String: [NUMBER(1), NUMBER(2), PLUS]
Syntax Tree: (PLUS (NUM 1) (NUM 2))
Result: 3

Error processing expression '1 2': malformed expression: still got 2 element instead of 1 at the final state
Error processing expression 'RES': invalid reference for RES operation: RES without index
Error processing expression '': malformed expression: still got 0 element instead of 1 at the final state
Expression: 1 RES 3 *
Token String: [NUMBER(1), RES, NUMBER(3), TIMES]
Syntax Tree: (TIMES (RES 1) (NUM 3))
Result: 9

`)
}

func (s *RunSuite) TestRunEmptyInput(c *C) {
	var out bytes.Buffer
	c.Assert(Process("empty.txt", strings.NewReader(""), &out, nil), IsNil)
	c.Check(out.String(), Equals, "------------ File empty.txt ------------\n\n")
}

func (s *RunSuite) TestRunColor(c *C) {
	var out bytes.Buffer
	err := Process("c.txt", strings.NewReader("1 1 +\nfoo\n"), &out, &Options{Color: true})
	c.Assert(err, IsNil)
	c.Check(strings.Contains(out.String(), green("Result: 2")), Equals, true)
	c.Check(strings.Contains(out.String(), red("Error processing expression 'foo': unrecognized token: foo")), Equals, true)
}

type failingWriter struct {
	n int
}

var errWrite = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errWrite
	}
	w.n--
	return len(p), nil
}

func (s *RunSuite) TestRunReportsWriteError(c *C) {
	w := &failingWriter{n: 3}
	err := Process("w.txt", strings.NewReader("1 1 +\n2 2 +\n"), w, nil)
	c.Check(err, Equals, errWrite)
}

func (s *RunSuite) TestSplitLines(c *C) {
	c.Check(splitLines(""), HasLen, 0)
	c.Check(splitLines("a"), DeepEquals, []string{"a"})
	c.Check(splitLines("a\n"), DeepEquals, []string{"a"})
	c.Check(splitLines("a\n\nb"), DeepEquals, []string{"a", "", "b"})
	c.Check(splitLines("\n"), DeepEquals, []string{""})
	c.Check(splitLines("a\r\nb\r\n"), DeepEquals, []string{"a", "b"})
	c.Check(splitLines("a\rb\r"), DeepEquals, []string{"a", "b"})
	c.Check(splitLines("a\r\rb\n\rc"), DeepEquals, []string{"a", "", "b", "", "c"})
}

func (s *RunSuite) TestProcessCarriageReturnLines(c *C) {
	var out bytes.Buffer
	c.Assert(Process("cr.txt", strings.NewReader("5 MEM\rMEM 3 +\r"), &out, nil), IsNil)
	c.Check(strings.Contains(out.String(), "Expression: MEM 3 +\n"), Equals, true)
	c.Check(strings.Contains(out.String(), "Result: 8\n"), Equals, true)
	c.Check(strings.Contains(out.String(), "Error processing"), Equals, false)
}
