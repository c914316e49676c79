package sample

import (
	"fmt"
	"strings"
)

const MaxItems = 64

var DefaultName = "sample"
var ratio = 0.5

type Greeter interface {
	Greet(name string) string
}

type Counter struct {
	Label string
	n     int
}

func (c *Counter) Add(delta int) int {
	c.n += delta
	return c.n
}

func (c *Counter) Reset() {
	c.n = 0
}

func Describe(g Greeter) string {
	return g.Greet(DefaultName)
}

func Join(parts []string, sep string) string {
	return strings.Join(parts, sep)
}

func Banner(width int) string {
	if ratio > 0 {
		return fmt.Sprintf("[%s]", strings.Repeat("=", width))
	}
	return "[]"
}
