package script

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func exec[T any](in *Interpreter[T], line string) []Step {
	steps, err := in.ExecLine(line, 1)
	So(err, ShouldBeNil)
	return steps
}

func TestInterpreter(t *testing.T) {
	Convey("Given an integer interpreter", t, func() {
		in := NewInterpreter(Int, false, 0)

		Convey("Pushed values pop in reverse order, then absent", func() {
			exec(in, "push 1 2 3")
			steps := exec(in, "pop; pop; pop; pop")
			So(steps, ShouldHaveLength, 4)
			So(steps[0].Result.MustGet(), ShouldEqual, "3")
			So(steps[1].Result.MustGet(), ShouldEqual, "2")
			So(steps[2].Result.MustGet(), ShouldEqual, "1")
			So(steps[3].Result.IsAbsent(), ShouldBeTrue)
			So(steps[3].Size, ShouldEqual, 0)
		})

		Convey("An empty stack reports absent, empty and zero size", func() {
			steps := exec(in, "pop; peek; empty; size")
			So(steps[0].Result.IsAbsent(), ShouldBeTrue)
			So(steps[1].Result.IsAbsent(), ShouldBeTrue)
			So(steps[2].Result.MustGet(), ShouldEqual, "true")
			So(steps[3].Result.MustGet(), ShouldEqual, "0")
		})

		Convey("An invalid value pushes nothing", func() {
			_, err := in.ExecLine("push 1 two 3", 7)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "line 7")
			So(err.Error(), ShouldContainSubstring, `"two"`)
			So(in.Size(), ShouldEqual, 0)
			So(in.Contents(), ShouldBeEmpty)
		})

		Convey("Dump renders bottom to top", func() {
			exec(in, "push 1 2 3")
			So(exec(in, "dump")[0].Result.MustGet(), ShouldEqual, "Stack (bottom to top): [1 2 3]")
		})

		Convey("Clear empties it", func() {
			exec(in, "push 1 2; clear")
			So(in.Size(), ShouldEqual, 0)
			So(in.Contents(), ShouldBeEmpty)
		})

		Convey("Snapshot and Restore round trip", func() {
			exec(in, "push 4 5")
			snap := in.Snapshot()
			exec(in, "pop; push 9 9 9")
			in.Restore(snap)
			So(in.Contents(), ShouldResemble, []string{"4", "5"})
		})

		Convey("Undo reverts whole lines, newest first", func() {
			exec(in, "push 1 2")
			exec(in, "pop; push 7 8")
			So(in.Contents(), ShouldResemble, []string{"1", "7", "8"})

			So(in.Undo(), ShouldBeTrue)
			So(in.Contents(), ShouldResemble, []string{"1", "2"})
			So(in.Undo(), ShouldBeTrue)
			So(in.Size(), ShouldEqual, 0)
			So(in.Undo(), ShouldBeFalse)
		})

		Convey("A line that fails to parse leaves nothing to undo", func() {
			_, err := in.ExecLine("pusj 1", 1)
			So(err, ShouldNotBeNil)
			So(in.Undo(), ShouldBeFalse)
		})

		Convey("A line that fails midway can be undone", func() {
			exec(in, "push 1")
			_, err := in.ExecLine("pop; push x", 2)
			So(err, ShouldNotBeNil)
			So(in.Size(), ShouldEqual, 0)
			So(in.Undo(), ShouldBeTrue)
			So(in.Contents(), ShouldResemble, []string{"1"})
		})
	})

	Convey("Given a string interpreter", t, func() {
		in := NewInterpreter(String, false, 0)
		exec(in, `push Hello Rust World`)

		Convey("Peek does not change the size", func() {
			steps := exec(in, "peek; peek; size; pop; size")
			So(steps[0].Result.MustGet(), ShouldEqual, "World")
			So(steps[1].Result.MustGet(), ShouldEqual, "World")
			So(steps[2].Result.MustGet(), ShouldEqual, "3")
			So(steps[3].Result.MustGet(), ShouldEqual, "World")
			So(steps[4].Result.MustGet(), ShouldEqual, "2")
		})

		Convey("Steps record the statement", func() {
			steps := exec(in, `push "a b"`)
			So(steps[0].Statement, ShouldEqual, `push "a b"`)
			So(steps[0].Result.IsAbsent(), ShouldBeTrue)
			So(steps[0].Size, ShouldEqual, 4)
		})
	})

	Convey("Given a strict interpreter", t, func() {
		in := NewInterpreter(Bool, true, 0)

		Convey("Pop on an empty stack is an error", func() {
			_, err := in.ExecLine("pop", 3)
			So(errors.Is(err, ErrEmptyAccess), ShouldBeTrue)
		})

		Convey("Peek on an empty stack is an error", func() {
			_, err := in.ExecLine("peek", 3)
			So(errors.Is(err, ErrEmptyAccess), ShouldBeTrue)
		})

		Convey("Non-empty access works", func() {
			steps := exec(in, "push true; pop")
			So(steps[1].Result.MustGet(), ShouldEqual, "true")
		})
	})

	Convey("Given a narrow dump width", t, func() {
		in := NewInterpreter(Float, false, 20)
		exec(in, "push 1.5 2.25 3 4 5 6 7")

		Convey("Dump is truncated", func() {
			dump := exec(in, "dump")[0].Result.MustGet()
			So(dump, ShouldEndWith, "…")
			So(len([]rune(dump)), ShouldBeLessThanOrEqualTo, 20)
		})
	})
}
