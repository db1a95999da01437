// Package gotree builds and prints text trees for diagnostics.
package gotree

import "strings"

const (
	newLine      = "\n"
	emptySpace   = "    "
	middleItem   = "├── "
	continueItem = "│   "
	lastItem     = "└── "
)

type (
	tree struct {
		text  string
		items []Tree
	}

	// Tree is a labelled node with ordered children.
	Tree interface {
		Add(text string) Tree
		AddTree(tree Tree)
		Items() []Tree
		Text() string
		Print() string
	}
)

// New returns a childless tree labelled text.
func New(text string) Tree {
	return &tree{text: text}
}

// Add appends a new leaf and returns it.
func (t *tree) Add(text string) Tree {
	n := New(text)
	t.items = append(t.items, n)
	return n
}

func (t *tree) AddTree(tree Tree) {
	t.items = append(t.items, tree)
}

func (t *tree) Text() string {
	return t.text
}

func (t *tree) Items() []Tree {
	return t.items
}

// Print renders the tree, one line per label line.
func (t *tree) Print() string {
	var sb strings.Builder
	sb.WriteString(t.text)
	sb.WriteString(newLine)
	printItems(&sb, t.items, nil)
	return sb.String()
}

func printText(sb *strings.Builder, text string, spaces []bool, last bool) {
	var indent strings.Builder
	for _, space := range spaces {
		if space {
			indent.WriteString(emptySpace)
		} else {
			indent.WriteString(continueItem)
		}
	}

	indicator := middleItem
	if last {
		indicator = lastItem
	}
	for i, line := range strings.Split(text, newLine) {
		if i == 1 {
			if last {
				indicator = emptySpace
			} else {
				indicator = continueItem
			}
		}
		sb.WriteString(indent.String())
		sb.WriteString(indicator)
		sb.WriteString(line)
		sb.WriteString(newLine)
	}
}

func printItems(sb *strings.Builder, items []Tree, spaces []bool) {
	for i, item := range items {
		last := i == len(items)-1
		printText(sb, item.Text(), spaces, last)
		if len(item.Items()) > 0 {
			printItems(sb, item.Items(), append(spaces[:len(spaces):len(spaces)], last))
		}
	}
}
