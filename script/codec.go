// Package script parses and executes line-oriented stack programs.
//
// A program is a sequence of statements separated by newlines or semicolons:
//
//	push 1 2 3   # comments run to the end of the line
//	pop; peek
//	push "hello world"
//	size; empty; dump; clear
//
// Every statement operates on a single stack.Stack whose element type is chosen
// with a Codec.
package script

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Codec converts statement arguments to stack elements and back.
type Codec[T any] struct {
	Name   string
	Parse  func(string) (T, error)
	Format func(T) string
}

var (
	String = Codec[string]{
		Name:   "string",
		Parse:  func(s string) (string, error) { return s, nil },
		Format: func(s string) string { return s },
	}

	Int = Codec[int]{
		Name:   "int",
		Parse:  strconv.Atoi,
		Format: strconv.Itoa,
	}

	Float = Codec[float64]{
		Name:   "float",
		Parse:  func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
		Format: func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) },
	}

	Bool = Codec[bool]{
		Name:   "bool",
		Parse:  strconv.ParseBool,
		Format: strconv.FormatBool,
	}
)

// runners maps a type name to execute instantiated with the matching codec.
var runners = map[string]func(context.Context, *Options) (*Output, error){
	String.Name: func(ctx context.Context, o *Options) (*Output, error) { return execute(ctx, o, String) },
	Int.Name:    func(ctx context.Context, o *Options) (*Output, error) { return execute(ctx, o, Int) },
	Float.Name:  func(ctx context.Context, o *Options) (*Output, error) { return execute(ctx, o, Float) },
	Bool.Name:   func(ctx context.Context, o *Options) (*Output, error) { return execute(ctx, o, Bool) },
}

// Types returns the names of the built-in codecs, sorted.
func Types() []string {
	names := lo.Keys(runners)
	sort.Strings(names)
	return names
}

// errUnknownType reports a type name with no registered codec.
func errUnknownType(name string) error {
	return fmt.Errorf("unknown element type %q, available types: %s", name, strings.Join(Types(), ", "))
}
