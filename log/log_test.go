package log

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/where"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Nothing is enabled and entries discard", func() {
			So(Enabled(), ShouldBeFalse)
			entry := WithField("run", "x")
			So(entry.Logger, ShouldEqual, discard)
			entry.Info("ignored")
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		viper.Set(key.LogsJson, true)
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeTrue)
		So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)

		Convey("Records land in a dated file under the logs directory", func() {
			WithField("run", "abc").Info("hello")

			files := lo.Must(filesystem.API().ReadDir(where.Logs()))
			So(files, ShouldNotBeEmpty)

			data := lo.Must(filesystem.API().ReadFile(filepath.Join(where.Logs(), files[0].Name())))
			So(strings.Contains(string(data), `"run":"abc"`), ShouldBeTrue)
		})

		Convey("An unknown level falls back to info", func() {
			viper.Set(key.LogsLevel, "loud")
			So(Setup(), ShouldBeNil)
			So(logrus.GetLevel(), ShouldEqual, logrus.InfoLevel)
		})
	})
}
