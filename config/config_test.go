package config

import (
	"encoding/json"
	"testing"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.ScriptType), ShouldEqual, "string")
			So(viper.GetInt(key.DumpMaxWidth), ShouldEqual, 80)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("repl.show_suggestions"), ShouldEqual, "repl_show_suggestions")
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given the defaults", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("Validate accepts them", func() {
			So(Validate(), ShouldBeNil)
		})

		Convey("Validate rejects an unknown enumerated value", func() {
			viper.Set(key.ScriptType, "complex")
			defer viper.Set(key.ScriptType, Default[key.ScriptType].Value)

			err := Validate()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.ScriptType)
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the script type field", t, func() {
		field := Default[key.ScriptType]

		Convey("Env has the application prefix", func() {
			So(field.Env(), ShouldEqual, "LIFO_SCRIPT_TYPE")
		})

		Convey("JSON includes the allowed values", func() {
			data, err := json.Marshal(&field)
			So(err, ShouldBeNil)

			var decoded map[string]any
			So(json.Unmarshal(data, &decoded), ShouldBeNil)
			So(decoded["key"], ShouldEqual, key.ScriptType)
			So(decoded["type"], ShouldEqual, "string")
			So(decoded["allowed"], ShouldHaveLength, 4)
		})

		Convey("Pretty mentions the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.ScriptType)
		})
	})
}

func TestFile(t *testing.T) {
	Convey("File points into the config directory", t, func() {
		So(File(), ShouldEndWith, "lifo.toml")
	})
}
