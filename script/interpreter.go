package script

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/lifo-cli/lifo/stack"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/mo"
)

// ErrEmptyAccess is returned in strict mode when pop or peek finds an empty stack.
var ErrEmptyAccess = errors.New("empty stack access")

// Step is the outcome of one executed instruction.
type Step struct {
	Line      int    `json:"line"`
	Statement string `json:"statement"`
	Op        Op     `json:"op"`
	// Result is absent for push and clear, and for pop or peek on an empty stack.
	Result mo.Option[string] `json:"result"`
	// Size is the number of elements left after the instruction.
	Size int `json:"size"`
}

// Interpreter executes instructions against a stack it owns.
type Interpreter[T any] struct {
	codec     Codec[T]
	stack     *stack.Stack[T]
	undo      *stack.Stack[[]T]
	strict    bool
	dumpWidth uint
}

// NewInterpreter returns an interpreter over an empty stack.
func NewInterpreter[T any](codec Codec[T], strict bool, dumpWidth uint) *Interpreter[T] {
	return &Interpreter[T]{
		codec:     codec,
		stack:     stack.New[T](),
		undo:      stack.New[[]T](),
		strict:    strict,
		dumpWidth: dumpWidth,
	}
}

// Contents returns the formatted elements from bottom to top.
func (in *Interpreter[T]) Contents() []string {
	var contents []string
	for item := range in.stack.All() {
		contents = append(contents, in.codec.Format(item))
	}
	return contents
}

// Snapshot copies the current elements from bottom to top.
func (in *Interpreter[T]) Snapshot() []T {
	return slices.Collect(in.stack.All())
}

// Restore replaces the stack contents with snapshot.
func (in *Interpreter[T]) Restore(snapshot []T) {
	in.stack.Clear()
	for _, item := range snapshot {
		in.stack.Push(item)
	}
}

// Type returns the name of the element codec.
func (in *Interpreter[T]) Type() string {
	return in.codec.Name
}

// Size returns the number of elements on the stack.
func (in *Interpreter[T]) Size() int {
	return in.stack.Size()
}

// ExecLine parses line and executes its statements in order, stopping at the first error.
// A line that parses records an undo checkpoint before anything runs, even if a statement later fails.
func (in *Interpreter[T]) ExecLine(line string, n int) ([]Step, error) {
	instructions, err := ParseLine(line, n)
	if err != nil {
		return nil, err
	}

	if len(instructions) > 0 {
		in.undo.Push(in.Snapshot())
	}

	steps := make([]Step, 0, len(instructions))
	for _, ins := range instructions {
		step, err := in.Exec(ins)
		if err != nil {
			return steps, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// Undo restores the stack to its state before the last line passed to ExecLine.
// It reports false when there is nothing to undo.
func (in *Interpreter[T]) Undo() bool {
	snapshot, ok := in.undo.Pop().Get()
	if !ok {
		return false
	}
	in.Restore(snapshot)
	return true
}

// Exec runs a single instruction.
func (in *Interpreter[T]) Exec(ins Instruction) (Step, error) {
	step := Step{
		Line:      ins.Line,
		Statement: ins.String(),
		Op:        ins.Op,
		Result:    mo.None[string](),
	}

	switch ins.Op {
	case OpPush:
		items := make([]T, 0, len(ins.Args))
		for _, arg := range ins.Args {
			item, err := in.codec.Parse(arg)
			if err != nil {
				return step, fmt.Errorf("line %d: invalid %s value %q: %w", ins.Line, in.codec.Name, arg, err)
			}
			items = append(items, item)
		}

		for _, item := range items {
			in.stack.Push(item)
		}
	case OpPop:
		step.Result = in.format(in.stack.Pop())
	case OpPeek:
		step.Result = in.format(in.stack.Peek())
	case OpSize:
		step.Result = mo.Some(strconv.Itoa(in.stack.Size()))
	case OpEmpty:
		step.Result = mo.Some(strconv.FormatBool(in.stack.IsEmpty()))
	case OpDump:
		dump := stack.DumpFunc(in.stack, in.codec.Format)
		if in.dumpWidth > 0 {
			dump = truncate.StringWithTail(dump, in.dumpWidth, "…")
		}
		step.Result = mo.Some(dump)
	case OpClear:
		in.stack.Clear()
	default:
		return step, fmt.Errorf("line %d: unsupported operation %q", ins.Line, ins.Op)
	}

	if in.strict && (ins.Op == OpPop || ins.Op == OpPeek) && step.Result.IsAbsent() {
		return step, fmt.Errorf("line %d: %s: %w", ins.Line, ins.Op, ErrEmptyAccess)
	}

	step.Size = in.stack.Size()
	return step, nil
}

func (in *Interpreter[T]) format(item mo.Option[T]) mo.Option[string] {
	if v, ok := item.Get(); ok {
		return mo.Some(in.codec.Format(v))
	}
	return mo.None[string]()
}
