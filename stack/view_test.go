package stack

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBorrow(t *testing.T) {
	Convey("Given a view of the top element", t, func() {
		s := New[string]()
		s.Push("a")
		s.Push("b")
		view := s.Borrow().MustGet()

		Convey("It reads the top while the stack is untouched", func() {
			So(view.Valid(), ShouldBeTrue)
			So(view.Get(), ShouldEqual, "b")
			So(view.Get(), ShouldEqual, "b")
			So(s.Size(), ShouldEqual, 2)
		})

		Convey("Peek and other reads keep it valid", func() {
			s.Peek()
			s.Size()
			s.Dump()
			So(view.Valid(), ShouldBeTrue)
		})

		Convey("A push invalidates it", func() {
			s.Push("c")
			So(view.Valid(), ShouldBeFalse)
			So(func() { view.Get() }, ShouldPanicWith, ErrStaleView)
		})

		Convey("A pop invalidates it", func() {
			s.Pop()
			So(view.Valid(), ShouldBeFalse)
			So(func() { view.Get() }, ShouldPanicWith, ErrStaleView)
		})

		Convey("Clear invalidates it", func() {
			s.Clear()
			So(func() { view.Get() }, ShouldPanicWith, ErrStaleView)
		})
	})

	Convey("The zero View is never valid", t, func() {
		var v View[int]
		So(v.Valid(), ShouldBeFalse)
		So(func() { v.Get() }, ShouldPanicWith, ErrStaleView)
	})
}
