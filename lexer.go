package rpneval

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	TokNumber TokenType = iota
	TokPlus
	TokMinus
	TokTimes
	TokDivideInt
	TokModulo
	TokPower
	TokDivideReal
	TokLParen
	TokRParen
	TokRes
	TokMem
)

var tokenNames = map[TokenType]string{
	TokNumber:     "NUMBER",
	TokPlus:       "PLUS",
	TokMinus:      "MINUS",
	TokTimes:      "TIMES",
	TokDivideInt:  "DIVIDE_INT",
	TokModulo:     "MODULO",
	TokPower:      "POWER",
	TokDivideReal: "DIVIDE_REAL",
	TokLParen:     "LPAREN",
	TokRParen:     "RPAREN",
	TokRes:        "RES",
	TokMem:        "MEM",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// IsOperator reports whether t is one of the seven binary operators.
func (t TokenType) IsOperator() bool {
	_, ok := operators[t]
	return ok
}

// A Token is a lexed word. Number is only meaningful for TokNumber.
type Token struct {
	Type   TokenType
	Text   string
	Number float64
}

func NewToken(t TokenType, text string) Token {
	return Token{Type: t, Text: text}
}

func NewNumberToken(v float64) Token {
	return Token{Type: TokNumber, Text: formatNumber(v), Number: v}
}

func (t Token) String() string {
	if t.Type == TokNumber {
		return fmt.Sprintf("%s(%s)", t.Type, formatNumber(t.Number))
	}
	return t.Type.String()
}

// Lex splits a whole line into its tokens.
func Lex(input string) ([]Token, error) {
	l := NewLexer(input)
	var tokens []Token
	for {
		t, err := l.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
}

type Lexer struct {
	input      string
	tokens     chan Token
	errors     chan error
	action     lActionFn
	start, pos int
	width      int
}

type lActionFn func(l *Lexer) lActionFn

func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		errors: make(chan error, 1),
		tokens: make(chan Token, 2),
		action: lexWS,
	}
}

// Next returns the next token of the input, or io.EOF once the input
// is exhausted or after the first error.
func (l *Lexer) Next() (Token, error) {
	for {
		select {
		case err := <-l.errors:
			return Token{}, err
		case t := <-l.tokens:
			return t, nil
		default:
			if l.action == nil {
				return Token{}, io.EOF
			}
			l.action = l.action(l)
		}
	}
}

const eof rune = -1

// Actions

func lexWS(l *Lexer) lActionFn {
	var ru rune
	for {
		ru = l.next()
		if !unicode.IsSpace(ru) {
			break
		}
	}
	l.backup()
	l.ignore()

	if ru == eof {
		return nil
	}

	// parenthesis are words on their own, whatever surrounds them
	if t, ok := parenToken[ru]; ok {
		l.next()
		l.emit(t)
		return lexWS
	}

	return lexWord
}

func lexWord(l *Lexer) lActionFn {
	for {
		ru := l.next()
		if ru == eof || unicode.IsSpace(ru) {
			break
		}
		if _, ok := parenToken[ru]; ok {
			break
		}
	}
	l.backup()

	word := l.current()
	if t, ok := wordToken[word]; ok {
		l.emit(t)
		return lexWS
	}

	if !isNumber(word) {
		return l.errorf("%w: %s", ErrUnrecognizedToken, word)
	}
	v, err := strconv.ParseFloat(word, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return l.errorf("%w: %s", ErrUnrecognizedToken, word)
	}
	l.tokens <- Token{Type: TokNumber, Text: word, Number: v}
	l.ignore()
	return lexWS
}

// static data

const numeric = "0123456789"

var parenToken = map[rune]TokenType{
	'(': TokLParen,
	')': TokRParen,
}

var wordToken = map[string]TokenType{
	"+":   TokPlus,
	"-":   TokMinus,
	"*":   TokTimes,
	"/":   TokDivideInt,
	"%":   TokModulo,
	"^":   TokPower,
	"|":   TokDivideReal,
	"RES": TokRes,
	"MEM": TokMem,
}

// isNumber accepts digits with at most one decimal point. There is
// no sign: a leading '-' is never part of a literal.
func isNumber(word string) bool {
	digits, dots := 0, 0
	for _, ru := range word {
		switch {
		case ru == '.':
			dots++
		case strings.ContainsRune(numeric, ru):
			digits++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

// helpers

func (l *Lexer) current() string {
	return l.input[l.start:l.pos]
}

func (l *Lexer) emit(t TokenType) {
	l.tokens <- NewToken(t, l.current())
	l.ignore()
}

func (l *Lexer) error(err error) lActionFn {
	if len(l.errors) == 0 {
		l.errors <- err
	}
	return nil
}

func (l *Lexer) errorf(format string, args ...interface{}) lActionFn {
	return l.error(fmt.Errorf(format, args...))
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	var ru rune
	ru, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return ru
}

func (l *Lexer) backup() {
	l.pos -= l.width
}

func (l *Lexer) ignore() {
	l.start = l.pos
}
