package filesystem

import (
	"os"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestReadAll(t *testing.T) {
	Convey("Given an in-memory backend", t, func() {
		SetMemMapFs()
		So(API().WriteFile("/scripts/a.lifo", []byte("push 1"), 0644), ShouldBeNil)

		Convey("ReadAll reads a file", func() {
			data, err := ReadAll("/scripts/a.lifo")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "push 1")
		})

		Convey("ReadAll fails for a missing file", func() {
			_, err := ReadAll("/scripts/missing.lifo")
			So(err, ShouldNotBeNil)
		})

		Convey("ReadAll reads stdin for -", func() {
			SetStdin(strings.NewReader("pop"))
			data, err := ReadAll(Stdin)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "pop")
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("GacheFs writes through the active backend", t, func() {
		SetMemMapFs()
		var fs GacheFs
		So(fs.MkdirAll("/cache", 0755), ShouldBeNil)

		f, err := fs.OpenFile("/cache/x.json", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		So(err, ShouldBeNil)
		_, err = f.Write([]byte("{}"))
		So(err, ShouldBeNil)
		So(f.Close(), ShouldBeNil)

		ok, err := API().Exists("/cache/x.json")
		So(err, ShouldBeNil)
		So(ok, ShouldBeTrue)
	})
}
