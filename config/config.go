// Package config registers the settings lifo understands and loads them through viper.
//
// Values resolve from flags, then LIFO_* environment variables, then lifo.toml in the config directory.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lifo-cli/lifo/constant"
	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys such as repl.prompt to environment names such as REPL_PROMPT.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup installs defaults and environment bindings, then reads the config file when one exists.
func Setup() error {
	viper.SetFs(filesystem.API())
	viper.SetConfigName(constant.Lifo)
	viper.SetConfigType("toml")
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Lifo)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.SetTypeByDefaultValue(true)

	for _, f := range fields {
		viper.SetDefault(f.Key, f.Value)
		viper.MustBindEnv(f.Key)
	}

	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); errors.As(err, &notFound) {
		return nil
	} else if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	return Validate()
}

// File returns the path of lifo.toml, whether or not it exists yet.
func File() string {
	return filepath.Join(where.Config(), constant.Lifo+".toml")
}

// Validate reports the first enumerated field whose current value is not allowed.
func Validate() error {
	for _, f := range fields {
		if len(f.Allowed) == 0 {
			continue
		}

		if value := viper.GetString(f.Key); !lo.Contains(f.Allowed, value) {
			return fmt.Errorf("invalid value %q for %s, expected one of: %s", value, f.Key, strings.Join(f.Allowed, ", "))
		}
	}
	return nil
}
