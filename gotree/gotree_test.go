package gotree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	root := New("root")
	a := root.Add("a")
	a.Add("a1")
	a.Add("a2\nmore")
	root.Add("b")

	assert.Equal(t,
		"root\n"+
			"├── a\n"+
			"│   ├── a1\n"+
			"│   └── a2\n"+
			"│       more\n"+
			"└── b\n",
		root.Print())
}

func TestAddTree(t *testing.T) {
	root := New("x")
	sub := New("y")
	sub.Add("z")
	root.AddTree(sub)

	assert.Len(t, root.Items(), 1)
	assert.Equal(t, "x\n└── y\n    └── z\n", root.Print())
}
