// Package demo walks through the same Stack code serving integers, text and user-defined points.
package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/lifo-cli/lifo/stack"
	"github.com/lifo-cli/lifo/style"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Section names accepted by Run.
const (
	Ints    = "ints"
	Strings = "strings"
	Points  = "points"
)

// Sections lists the demo sections in the order they run by default.
var Sections = []string{Ints, Strings, Points}

var sections = map[string]func(io.Writer){
	Ints:    ints,
	Strings: texts,
	Points:  points,
}

// Point is a user-defined element type.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("Point { x: %d, y: %d }", p.X, p.Y)
}

// Run writes the requested sections to w, or all of them when none are given.
func Run(w io.Writer, names ...string) error {
	if len(names) == 0 {
		names = Sections
	}

	for _, name := range names {
		if _, ok := sections[name]; !ok {
			return fmt.Errorf("unknown demo section %q, available sections: %s", name, strings.Join(Sections, ", "))
		}
	}

	for i, name := range lo.Uniq(names) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		sections[name](w)
	}
	return nil
}

func title(w io.Writer, s string) {
	fmt.Fprintln(w, style.Title(s))
	fmt.Fprintln(w)
}

func ints(w io.Writer) {
	title(w, "Integer Stack")

	s := stack.New[int]()
	fmt.Fprintln(w, "Pushing 1, 2, 3...")
	s.Push(1)
	s.Push(2)
	s.Push(3)

	fmt.Fprintln(w, s.Dump())
	fmt.Fprintf(w, "Size: %d\n", s.Size())
	fmt.Fprintf(w, "Peek: %s\n", describe(s.Peek()))

	fmt.Fprintln(w, "Popping items...")
	for item, ok := s.Pop().Get(); ok; item, ok = s.Pop().Get() {
		fmt.Fprintf(w, "Popped: %d\n", item)
	}

	fmt.Fprintf(w, "Is empty? %t\n", s.IsEmpty())
}

func texts(w io.Writer) {
	title(w, "String Stack")

	s := stack.New[string]()
	s.Push("Hello")
	s.Push("Rust")
	s.Push("World")

	fmt.Fprintln(w, s.Dump())
	if top, ok := s.Borrow().Get(); ok {
		fmt.Fprintf(w, "Top of stack: %s\n", top.Get())
	}
}

func points(w io.Writer) {
	title(w, "Custom Type Stack")

	s := stack.New[Point]()
	s.Push(Point{X: 0, Y: 0})
	s.Push(Point{X: 10, Y: 20})
	s.Push(Point{X: 5, Y: 15})

	fmt.Fprintln(w, s.Dump())

	fmt.Fprintln(w, style.Faint("One Stack implementation serves int, string and Point."))
}

func describe[T any](o mo.Option[T]) string {
	if v, ok := o.Get(); ok {
		return fmt.Sprintf("Some(%v)", v)
	}
	return "None"
}
