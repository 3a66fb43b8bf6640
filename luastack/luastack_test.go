package luastack

import (
	"bytes"
	"context"
	"testing"

	"github.com/lifo-cli/lifo/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	lua "github.com/yuin/gopher-lua"
)

func init() {
	filesystem.SetMemMapFs()
}

func runSource(name, source string, preload bool) (string, error) {
	path := "/scripts/" + name + ".lua"
	So(filesystem.API().WriteFile(path, []byte(source), 0644), ShouldBeNil)

	var buf bytes.Buffer
	err := Run(context.Background(), path, &Options{Out: &buf, PreloadLibs: preload})
	return buf.String(), err
}

func TestModule(t *testing.T) {
	Convey("Given a Lua state with the module preloaded", t, func() {
		L := lua.NewState()
		defer L.Close()
		Preload(L)

		Convey("Values pop in reverse order and then nil", func() {
			err := L.DoString(`
				local s = require("stack").new()
				s:push(1, 2)
				s:push(3)
				a, b, c, d = s:pop(), s:pop(), s:pop(), s:pop()
			`)
			So(err, ShouldBeNil)
			So(L.GetGlobal("a"), ShouldEqual, lua.LNumber(3))
			So(L.GetGlobal("b"), ShouldEqual, lua.LNumber(2))
			So(L.GetGlobal("c"), ShouldEqual, lua.LNumber(1))
			So(L.GetGlobal("d"), ShouldEqual, lua.LNil)
		})

		Convey("Peek leaves the size unchanged", func() {
			err := L.DoString(`
				local s = require("stack").new()
				s:push("Hello", "Rust", "World")
				top, again, n = s:peek(), s:peek(), s:size()
				empty = s:is_empty()
			`)
			So(err, ShouldBeNil)
			So(L.GetGlobal("top").String(), ShouldEqual, "World")
			So(L.GetGlobal("again").String(), ShouldEqual, "World")
			So(L.GetGlobal("n"), ShouldEqual, lua.LNumber(3))
			So(L.GetGlobal("empty"), ShouldEqual, lua.LFalse)
		})

		Convey("An empty stack answers nil and true", func() {
			err := L.DoString(`
				local s = require("stack").new()
				p, k, e = s:pop(), s:peek(), s:is_empty()
			`)
			So(err, ShouldBeNil)
			So(L.GetGlobal("p"), ShouldEqual, lua.LNil)
			So(L.GetGlobal("k"), ShouldEqual, lua.LNil)
			So(L.GetGlobal("e"), ShouldEqual, lua.LTrue)
		})

		Convey("Dump and tostring render bottom to top", func() {
			err := L.DoString(`
				local s = require("stack").new()
				s:push(1, "two", true)
				d, t = s:dump(), tostring(s)
				s:clear()
				after = s:size()
			`)
			So(err, ShouldBeNil)
			So(L.GetGlobal("d").String(), ShouldEqual, "Stack (bottom to top): [1 two true]")
			So(L.GetGlobal("t").String(), ShouldEqual, L.GetGlobal("d").String())
			So(L.GetGlobal("after"), ShouldEqual, lua.LNumber(0))
		})

		Convey("Methods reject other receivers", func() {
			err := L.DoString(`
				local s = require("stack").new()
				s.pop({})
			`)
			So(err, ShouldNotBeNil)
		})

		Convey("Nil cannot be pushed", func() {
			err := L.DoString(`
				s = require("stack").new()
				s:push(1, nil, 2)
			`)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "cannot push nil")

			So(L.DoString(`n, top = s:size(), s:peek()`), ShouldBeNil)
			So(L.GetGlobal("n"), ShouldEqual, lua.LNumber(0))
			So(L.GetGlobal("top"), ShouldEqual, lua.LNil)
		})

		Convey("Popping until nil drains every element", func() {
			err := L.DoString(`
				local s = require("stack").new()
				s:push(1, false, "x")
				popped = 0
				while s:pop() ~= nil do
					popped = popped + 1
				end
				left = s:size()
			`)
			So(err, ShouldBeNil)
			So(L.GetGlobal("popped"), ShouldEqual, lua.LNumber(3))
			So(L.GetGlobal("left"), ShouldEqual, lua.LNumber(0))
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Run", t, func() {
		Convey("Should print through the configured writer", func() {
			out, err := runSource("print", `
				local s = require("stack").new()
				s:push(1, 2, 3)
				print(s:dump())
				while not s:is_empty() do
					print("popped", s:pop())
				end
			`, false)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "Stack (bottom to top): [1 2 3]\npopped\t3\npopped\t2\npopped\t1\n")
		})

		Convey("Should expose the extended libraries when preloaded", func() {
			out, err := runSource("libs", `
				local strings = require("strings")
				local s = require("stack").new()
				s:push("a,b")
				print(#strings.split(s:pop(), ","))
			`, true)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "2\n")
		})

		Convey("Should report runtime errors", func() {
			_, err := runSource("broken", `error("boom")`, false)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "boom")
		})

		Convey("Should report syntax errors", func() {
			_, err := runSource("syntax", `local = 1`, false)
			So(err, ShouldNotBeNil)
		})

		Convey("Should fail for a missing file", func() {
			err := Run(context.Background(), "/scripts/none.lua", &Options{})
			So(err, ShouldNotBeNil)
		})
	})
}
