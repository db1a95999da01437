// Package charset holds sets of codepoints as sorted, merged, closed intervals.
package charset

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// MaxRune is the largest codepoint a set can hold.
const MaxRune = unicode.MaxRune

// Interval is the closed range [Lo, Hi].
type Interval struct {
	Lo, Hi rune
}

// Set is a normalised list of disjoint, non-adjacent intervals in ascending order.
type Set struct {
	intervals []Interval
}

func Empty() Set {
	return Set{}
}

// All contains every codepoint.
func All() Set {
	return Set{intervals: []Interval{{0, MaxRune}}}
}

func Chars(chars ...rune) Set {
	intervals := make([]Interval, 0, len(chars))
	for _, c := range chars {
		intervals = append(intervals, Interval{c, c})
	}
	return normalise(intervals)
}

// Range returns [lo, hi], with the bounds swapped if given backwards.
func Range(lo, hi rune) Set {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Set{intervals: []Interval{{lo, hi}}}
}

func (s Set) Intervals() []Interval {
	return append([]Interval(nil), s.intervals...)
}

func (s Set) IsEmpty() bool {
	return len(s.intervals) == 0
}

func (s Set) Contains(c rune) bool {
	i := sort.Search(len(s.intervals), func(i int) bool { return s.intervals[i].Hi >= c })
	return i < len(s.intervals) && s.intervals[i].Lo <= c
}

func (s Set) Union(t Set) Set {
	return normalise(append(s.Intervals(), t.intervals...))
}

// Invert returns the complement within [0, MaxRune].
func (s Set) Invert() Set {
	var out []Interval
	next := rune(0)
	for _, iv := range s.intervals {
		if iv.Lo > next {
			out = append(out, Interval{next, iv.Lo - 1})
		}
		next = iv.Hi + 1
	}
	if next <= MaxRune {
		out = append(out, Interval{next, MaxRune})
	}
	return Set{intervals: out}
}

func (s Set) Equal(t Set) bool {
	if len(s.intervals) != len(t.intervals) {
		return false
	}
	for i, iv := range s.intervals {
		if iv != t.intervals[i] {
			return false
		}
	}
	return true
}

func (s Set) String() string {
	parts := make([]string, 0, len(s.intervals))
	for _, iv := range s.intervals {
		if iv.Lo == iv.Hi {
			parts = append(parts, fmt.Sprintf("%#x", iv.Lo))
		} else {
			parts = append(parts, fmt.Sprintf("%#x-%#x", iv.Lo, iv.Hi))
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func normalise(intervals []Interval) Set {
	if len(intervals) == 0 {
		return Set{}
	}
	sort.Slice(intervals, func(i, j int) bool { return intervals[i].Lo < intervals[j].Lo })
	out := []Interval{intervals[0]}
	for _, iv := range intervals[1:] {
		last := &out[len(out)-1]
		if iv.Lo <= last.Hi+1 {
			if iv.Hi > last.Hi {
				last.Hi = iv.Hi
			}
			continue
		}
		out = append(out, iv)
	}
	return Set{intervals: out}
}
