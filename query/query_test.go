package query

import (
	"testing"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func reset() {
	_ = filesystem.API().Remove(where.Queries())
	clear(suggestionCache)
	So(cacher.Set(map[string]*queryRecord{}), ShouldBeNil)
}

func TestQuery(t *testing.T) {
	Convey("Given remembered statements", t, func() {
		viper.Set(key.REPLShowSuggestions, true)
		viper.Set(key.REPLHistorySize, 100)
		reset()

		So(Remember("push 1 2 3"), ShouldBeNil)
		So(Remember("push   hello"), ShouldBeNil)
		So(Remember("push hello"), ShouldBeNil)
		So(Remember("pop"), ShouldBeNil)

		Convey("Suggest prefers the highest rank", func() {
			So(Suggest("push").MustGet(), ShouldEqual, "push hello")
		})

		Convey("SuggestMany lists every fuzzy match", func() {
			So(SuggestMany("push"), ShouldResemble, []string{"push hello", "push 1 2 3"})
			So(SuggestMany("ph3"), ShouldResemble, []string{"push 1 2 3"})
		})

		Convey("An exact statement is not suggested to itself", func() {
			So(Suggest("pop").IsAbsent(), ShouldBeTrue)
		})

		Convey("Empty input suggests nothing", func() {
			So(SuggestMany("   "), ShouldBeEmpty)
			So(Remember("  "), ShouldBeNil)
		})

		Convey("Suggestions can be disabled", func() {
			viper.Set(key.REPLShowSuggestions, false)
			So(Suggest("push").IsAbsent(), ShouldBeTrue)
		})

		Convey("New statements show up after being remembered", func() {
			So(SuggestMany("peek"), ShouldBeEmpty)
			So(Remember("peek; peek"), ShouldBeNil)
			So(SuggestMany("peek"), ShouldResemble, []string{"peek; peek"})
		})

		Convey("The history is capped by rank", func() {
			viper.Set(key.REPLHistorySize, 2)
			So(Remember("dump"), ShouldBeNil)

			cached, _, err := cacher.Get()
			So(err, ShouldBeNil)
			So(cached, ShouldHaveLength, 2)
			So(cached, ShouldContainKey, "push hello")
		})
	})
}
