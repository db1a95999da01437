package dsl

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/arr-ai/combgen/charset"
	"github.com/arr-ai/combgen/parser"
)

// literals holds the sub-lexers that take apart string and character-set tokens of the main
// grammar. None of them skip whitespace. They share the main token-id registry but are
// otherwise isolated: they run over the text of a single main token.
type literals struct {
	esc     *parser.Lexer
	str     *parser.Lexer
	set     *parser.Lexer

	escLong  parser.Mapping[rune] // \UHHHHHHHH
	escShort parser.Mapping[rune] // \uHHHH
	escByte  parser.Mapping[rune] // \xHH
	escChar  parser.Mapping[rune] // \n, \r, \t, \b or any escaped char

	strChr parser.Mapping[rune]

	setChr parser.Mapping[rune]
	dash   parser.Recognizer
}

func newLiterals(main *parser.Lexer) *literals {
	l := &literals{
		esc: main.Sub(),
		str: main.Sub(),
		set: main.Sub(),
	}

	escContext := parser.NewContext(l.esc)
	l.escLong = parser.Mapped(escContext, `\U`, `\\U[0-9A-Fa-f]{8}`, escHex)
	l.escShort = parser.Mapped(escContext, `\u`, `\\u[0-9A-Fa-f]{4}`, escHex)
	l.escByte = parser.Mapped(escContext, `\x`, `\\x[0-9A-Fa-f]{2}`, escHex)
	l.escChar = parser.Mapped(escContext, "escape", `\\(?s:.)`, escChar)

	stringContext := parser.NewContext(l.str)
	l.strChr = parser.Mapped(stringContext, "string char", `[^\\"]`, firstRune)

	charSetContext := parser.NewContext(l.set)
	l.setChr = parser.Mapped(charSetContext, "set char", `[^\\\]]`, firstRune)
	l.dash = charSetContext.Text("-")

	return l
}

func hexDigit(ch rune) rune {
	switch {
	case ch <= '9':
		return ch - '0'
	case ch <= 'F':
		return ch - 'A' + 10
	default:
		return ch - 'a' + 10
	}
}

// escHex reads the digits following the two-byte prefix \x, \u or \U.
func escHex(s parser.Scanner) (rune, error) {
	var ret int64
	for _, ch := range s.String()[2:] {
		ret = ret*16 + int64(hexDigit(ch))
	}
	if ret > charset.MaxRune {
		return 0, fmt.Errorf("escape %s is beyond the last codepoint", s)
	}
	return rune(ret), nil
}

func escChar(s parser.Scanner) (rune, error) {
	ch := []rune(s.String())[1]
	switch ch {
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'b':
		return '\b', nil
	}
	return ch, nil
}

func firstRune(s parser.Scanner) (rune, error) {
	return []rune(s.String())[0], nil
}

func (l *literals) escapeUnit(st *parser.Stream) (rune, bool) {
	for _, m := range []parser.Mapping[rune]{l.escLong, l.escShort, l.escByte, l.escChar} {
		if r, ok := m.Parse(st); ok {
			return r, true
		}
	}
	return 0, false
}

// escape reads one escape. A high surrogate must be followed by a low surrogate escape and
// the pair stands for one codepoint; any other surrogate is an error.
func (l *literals) escape(st *parser.Stream) (rune, bool, error) {
	begin := st.Remaining()
	r, ok := l.escapeUnit(st)
	if !ok || !utf16.IsSurrogate(r) {
		return r, ok, nil
	}
	if r < 0xdc00 {
		if lo, ok := l.escapeUnit(st); ok && utf16.IsSurrogate(lo) && lo >= 0xdc00 {
			return utf16.DecodeRune(r, lo), true, nil
		}
	}
	text := begin.Slice(0, st.Remaining().Offset()-begin.Offset())
	return 0, false, fmt.Errorf("escape %s is an unpaired surrogate", text)
}

// unquoteRaw strips the quotes of '...' and resolves \\ and \'. Every other character,
// including a backslash before anything else, is kept as is.
func unquoteRaw(s parser.Scanner) (string, error) {
	seq := []rune(s.String())
	var sb strings.Builder
	for i := 1; i < len(seq)-1; i++ {
		if seq[i] == '\\' && i+1 < len(seq)-1 && (seq[i+1] == '\'' || seq[i+1] == '\\') {
			i++
		}
		sb.WriteRune(seq[i])
	}
	return sb.String(), nil
}

// unquoteEscaped decodes a "..." token.
func (l *literals) unquoteEscaped(s parser.Scanner) (string, error) {
	st := parser.NewStream(s.Slice(1, s.Len()-1))
	var sb strings.Builder
	for !st.AtEnd(l.str) {
		r, ok := l.strChr.Parse(st)
		if !ok {
			var err error
			if r, ok, err = l.escape(st); err != nil {
				return "", err
			} else if !ok {
				return "", st.Error("string")
			}
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

func (l *literals) setItemChar(st *parser.Stream) (rune, bool, error) {
	if r, ok := l.setChr.Parse(st); ok {
		return r, true, nil
	}
	return l.escape(st)
}

// setItem reads a char or a lo-hi interval. A dash with nothing after it is a plain char.
func (l *literals) setItem(st *parser.Stream) (charset.Set, bool, error) {
	lo, ok, err := l.setItemChar(st)
	if !ok {
		return charset.Set{}, false, err
	}
	mark := st.Mark()
	if l.dash.Recognize(st) {
		hi, ok, err := l.setItemChar(st)
		switch {
		case err != nil:
			return charset.Set{}, false, err
		case ok:
			return charset.Range(lo, hi), true, nil
		}
		st.Reset(mark)
	}
	return charset.Chars(lo), true, nil
}

// charSet decodes a [...] or [^...] token.
func (l *literals) charSet(s parser.Scanner) (charset.Set, error) {
	start, invert := 1, false
	if strings.HasPrefix(s.String(), "[^") {
		start, invert = 2, true
	}
	st := parser.NewStream(s.Slice(start, s.Len()-1))
	set := charset.Empty()
	for !st.AtEnd(l.set) {
		item, ok, err := l.setItem(st)
		switch {
		case err != nil:
			return charset.Set{}, err
		case !ok:
			return charset.Set{}, st.Error("charSet")
		}
		set = set.Union(item)
	}
	if invert {
		set = set.Invert()
	}
	return set, nil
}
