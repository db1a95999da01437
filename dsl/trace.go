package dsl

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

type tracer struct {
	c    *Compiler
	name string
}

func (c *Compiler) enterf(format string, args ...interface{}) tracer {
	if !logrus.IsLevelEnabled(logrus.TraceLevel) {
		return tracer{}
	}
	name := fmt.Sprintf(format, args...)
	logrus.Tracef("%s--> %s", strings.Repeat("  ", c.depth), name)
	c.depth++
	return tracer{c: c, name: name}
}

func (t tracer) exit(ok *bool) {
	if t.c == nil {
		return
	}
	t.c.depth--
	logrus.Tracef("%s<-- %s %v", strings.Repeat("  ", t.c.depth), t.name, *ok)
}
