package parser

import (
	"fmt"
	"strings"

	"github.com/arr-ai/combgen/gotree"
)

// ParseError reports that a rule did not match. There is no recovery: the position is the
// furthest token that was successfully consumed before every alternative failed.
type ParseError struct {
	rule     string
	at       Scanner
	expected []string
	rejected error
}

func (p *ParseError) Rule() string       { return p.rule }
func (p *ParseError) At() Scanner        { return p.at }
func (p *ParseError) Expected() []string { return p.expected }

func (p *ParseError) Error() string {
	tree := gotree.New("parse failed")
	p.walkErrors(tree)

	return "\n" + tree.Print()
}

func (p *ParseError) walkErrors(parent gotree.Tree) {
	x := parent.Add(fmt.Sprintf(`rule(%s) - no match %s`, p.rule, p.where()))
	if len(p.expected) > 0 {
		x.Add("expect: " + strings.Join(p.expected, " | "))
	}
	if p.rejected != nil {
		x.Add(p.rejected.Error())
	}
	if p.at.Len() > 0 {
		x.Add("source: " + p.at.Context(DefaultLimit))
	}
}

func (p *ParseError) where() string {
	if p.at.src == nil {
		return "at start of input"
	}
	line, col := p.at.Position()
	if p.at.Len() == 0 {
		return fmt.Sprintf("at %s:%d:%d", p.at.Filename(), line, col)
	}
	return fmt.Sprintf("after %q at %s:%d:%d [%d:%d]",
		p.at.String(), p.at.Filename(), line, col, p.at.Offset(), p.at.End())
}
