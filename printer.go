package rpneval

import (
	"fmt"
	"io"
	"strings"
)

// Options controls the report written by Process.
type Options struct {
	// Color enables ANSI colors.
	Color bool
}

// normalize normalizes the Options.
func (o *Options) normalize() Options {
	if o == nil {
		return Options{}
	}

	return *o
}

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

// FormatTokens renders a token sequence as "[NUMBER(3.5), RES]".
func FormatTokens(tokens []Token) string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.String()
	}
	return "[" + strings.Join(words, ", ") + "]"
}

// printer keeps the first write error and ignores everything after
// it.
type printer struct {
	w   io.Writer
	opt Options
	err error
}

func newPrinter(w io.Writer, opt Options) *printer {
	return &printer{w: w, opt: opt}
}

func (p *printer) printf(color func(string) string, format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	s := fmt.Sprintf(format, args...)
	if p.opt.Color && color != nil {
		s = color(s)
	}
	_, p.err = io.WriteString(p.w, s+"\n")
}

func (p *printer) header(name string) {
	p.printf(blue, "------------ File %s ------------", name)
	p.printf(nil, "")
}

func (p *printer) line(l Line) {
	if l.Err != nil {
		p.printf(red, "Error processing expression '%s': %v", l.Expression, l.Err)
		return
	}
	p.printf(nil, "Expression: %s", l.Expression)
	p.printf(nil, "Token String: %s", FormatTokens(l.Tokens))
	p.printf(nil, "Syntax Tree: %s", l.Tree)
	p.printf(green, "Result: %s", formatNumber(l.Result))
	p.printf(nil, "")
}
