package history

import (
	"testing"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/script"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func session(typeName, line string) script.Session {
	s, err := script.NewSession(typeName, false, 0)
	So(err, ShouldBeNil)
	if line != "" {
		_, err = s.ExecLine(line, 1)
		So(err, ShouldBeNil)
	}
	return s
}

func TestHistory(t *testing.T) {
	Convey("Given an empty history", t, func() {
		So(cacher.Set(map[string]*Saved{}), ShouldBeNil)

		Convey("Nothing is restored", func() {
			restored, err := Restore(session("int", ""))
			So(err, ShouldBeNil)
			So(restored, ShouldBeFalse)
		})

		Convey("When a session is saved", func() {
			So(Save(session("int", `push 1 2 3`)), ShouldBeNil)

			Convey("It is listed by type", func() {
				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved, ShouldContainKey, "int")
				So(saved["int"].Contents, ShouldResemble, []string{"1", "2", "3"})
			})

			Convey("A new session of that type gets the same stack", func() {
				s := session("int", "push 9")
				restored, err := Restore(s)
				So(err, ShouldBeNil)
				So(restored, ShouldBeTrue)
				So(s.Contents(), ShouldResemble, []string{"9", "1", "2", "3"})
			})

			Convey("Other types are unaffected", func() {
				s := session("string", "")
				restored, err := Restore(s)
				So(err, ShouldBeNil)
				So(restored, ShouldBeFalse)
			})

			Convey("Restoring does not add an undo step", func() {
				s := session("int", "")
				_, err := Restore(s)
				So(err, ShouldBeNil)
				So(s.Undo(), ShouldBeFalse)
			})

			Convey("Saving an empty session forgets it", func() {
				So(Save(session("int", "")), ShouldBeNil)
				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved, ShouldNotContainKey, "int")
			})

			Convey("Remove forgets it", func() {
				So(Remove("int"), ShouldBeNil)
				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved, ShouldBeEmpty)
			})
		})

		Convey("Values with spaces survive a round trip", func() {
			So(Save(session("string", `push "hello world" x`)), ShouldBeNil)
			s := session("string", "")
			_, err := Restore(s)
			So(err, ShouldBeNil)
			So(s.Contents(), ShouldResemble, []string{"hello world", "x"})
		})
	})
}
