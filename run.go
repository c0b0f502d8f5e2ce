package rpneval

import (
	"io"
	"strings"

	"fortio.org/log"
)

// Line is the outcome of processing one input line. On failure Err is
// set; Tokens may still be set if lexing succeeded, but Tree and
// Result are not.
type Line struct {
	Expression string
	Tokens     []Token
	Tree       Node
	Result     float64
	Err        error
}

// EvalLine runs the whole pipeline on a single line. The result is
// appended to the history only on success. Memory stores done while
// building the tree stay in effect even if the line fails.
func (s *State) EvalLine(line string) Line {
	out := Line{Expression: strings.TrimSpace(line)}

	tokens, tree, err := Compile(out.Expression, s)
	out.Tokens = tokens
	if err != nil {
		out.Err = err
		log.Warnf("can't build %q: %v", out.Expression, err)
		return out
	}

	res, err := Eval(tree, s)
	if err != nil {
		out.Err = err
		log.Warnf("can't eval %q: %v", out.Expression, err)
		return out
	}

	out.Tree = tree
	out.Result = res
	s.Append(res)
	log.LogVf("line %q = %s, %d result(s) in history", out.Expression, formatNumber(res), len(s.results))
	return out
}

// Process reads all of r, then processes its lines in order against a
// fresh State, writing the report to w. A failing line never stops
// the run; Process only returns read or write errors.
func Process(name string, r io.Reader, w io.Writer, opt *Options) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	lines := splitLines(string(data))
	log.LogVf("read %d line(s) from %s", len(lines), name)

	p := newPrinter(w, opt.normalize())
	p.header(name)

	s := NewState()
	for _, l := range lines {
		p.line(s.EvalLine(l))
	}
	return p.err
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// splitLines ends lines at "\r\n", "\r" or "\n"; a final line ending
// does not start a new line.
func splitLines(data string) []string {
	if data == "" {
		return nil
	}
	data = lineEndings.Replace(data)
	data = strings.TrimSuffix(data, "\n")
	return strings.Split(data, "\n")
}
