package util

import (
	"testing"

	"github.com/lifo-cli/lifo/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.lua"), ShouldEqual, "file_name_.lua")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("my  stack  script"), ShouldEqual, "my_stack_script")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "item", "items"), ShouldEqual, "1 item")
		So(Quantify(0, "item", "items"), ShouldEqual, "0 items")
		So(Quantify(2, "item", "items"), ShouldEqual, "2 items")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/script.lua"), ShouldEqual, "script")
		So(FileStem("script"), ShouldEqual, "script")
	})
}

func TestDelete(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		So(fs.MkdirAll("/cache/nested", 0o755), ShouldBeNil)
		So(afero.WriteFile(fs, "/cache/nested/a.json", []byte("{}"), 0o644), ShouldBeNil)
		So(afero.WriteFile(fs, "/cache/b.json", []byte("{}"), 0o644), ShouldBeNil)

		Convey("Delete removes a single file", func() {
			So(Delete("/cache/b.json"), ShouldBeNil)
			exists, _ := afero.Exists(fs, "/cache/b.json")
			So(exists, ShouldBeFalse)
		})

		Convey("Delete removes a directory recursively", func() {
			So(Delete("/cache"), ShouldBeNil)
			exists, _ := afero.Exists(fs, "/cache/nested/a.json")
			So(exists, ShouldBeFalse)
		})

		Convey("Delete fails on a missing path", func() {
			So(Delete("/missing"), ShouldNotBeNil)
		})
	})
}
