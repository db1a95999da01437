package parser

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/sirupsen/logrus"
)

// TokenID identifies a token registered with a Tokenizer.
type TokenID int

// Tokenizer compiles regular expressions into token ids and reports which tokens match at
// the start of an input.
type Tokenizer interface {
	// Add registers pattern and returns its id.
	Add(pattern string) (TokenID, error)
	// Match returns the ids of all tokens sharing the longest non-empty match and its length.
	Match(input string) ([]TokenID, int)
	// Skip returns the number of leading bytes covered by skipped tokens.
	Skip(input string) int
}

type registry struct {
	next TokenID
}

func (r *registry) allocate() TokenID {
	id := r.next
	r.next++
	return id
}

type lexerToken struct {
	id TokenID
	re *regexp.Regexp
}

// Lexer is a Tokenizer over Go regular expressions. The choice between tokens is longest
// match; each token on its own keeps Go's leftmost-first semantics, so an alternation inside
// one pattern takes its first matching branch and non-greedy repeats stay minimal.
type Lexer struct {
	ids     *registry
	tokens  []lexerToken
	skipped map[TokenID]bool
}

var _ Tokenizer = &Lexer{}

func NewLexer() *Lexer {
	return &Lexer{ids: &registry{}, skipped: map[TokenID]bool{}}
}

// Sub returns an empty lexer drawing ids from the same registry as l. Tokens of a sub-lexer
// never collide with l's, but the two lexers match independently.
func (l *Lexer) Sub() *Lexer {
	return &Lexer{ids: l.ids, skipped: map[TokenID]bool{}}
}

func (l *Lexer) Add(pattern string) (TokenID, error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return 0, fmt.Errorf("token /%s/: %w", pattern, err)
	}
	id := l.ids.allocate()
	l.tokens = append(l.tokens, lexerToken{id: id, re: re})
	logrus.WithField("id", id).Debugf("token /%s/", pattern)
	return id, nil
}

// AddSkipped marks id as invisible to Match; Skip consumes it instead.
func (l *Lexer) AddSkipped(id TokenID) {
	l.skipped[id] = true
}

func (l *Lexer) Match(input string) ([]TokenID, int) {
	var ids []TokenID
	longest := 0
	for _, t := range l.tokens {
		if l.skipped[t.id] {
			continue
		}
		loc := t.re.FindStringIndex(input)
		if loc == nil || loc[1] == 0 || loc[1] < longest {
			continue
		}
		if loc[1] > longest {
			longest = loc[1]
			ids = ids[:0]
		}
		ids = append(ids, t.id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, longest
}

func (l *Lexer) Skip(input string) int {
	total := 0
	for {
		n := 0
		for _, t := range l.tokens {
			if !l.skipped[t.id] {
				continue
			}
			if loc := t.re.FindStringIndex(input[total:]); loc != nil && loc[1] > n {
				n = loc[1]
			}
		}
		if n == 0 {
			return total
		}
		total += n
	}
}
