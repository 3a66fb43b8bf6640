package script

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewSession(t *testing.T) {
	Convey("NewSession", t, func() {
		Convey("Builds a session for every type", func() {
			for _, name := range Types() {
				session, err := NewSession(name, false, 0)
				So(err, ShouldBeNil)
				So(session.Type(), ShouldEqual, name)
			}
		})

		Convey("Parses values with the chosen codec", func() {
			session, err := NewSession("float", false, 0)
			So(err, ShouldBeNil)

			steps, err := session.ExecLine("push 0.5 1e3; peek", 1)
			So(err, ShouldBeNil)
			So(steps[1].Result.MustGet(), ShouldEqual, "1000")
			So(session.Contents(), ShouldResemble, []string{"0.5", "1000"})
		})

		Convey("Rejects unknown types", func() {
			_, err := NewSession("complex", false, 0)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "bool, float, int, string")
		})
	})
}
