// Package where resolves the directories and files lifo keeps on disk.
//
// Directories are created on first use through the active filesystem.
package where

import (
	"os"
	"path/filepath"

	"github.com/lifo-cli/lifo/constant"
	"github.com/lifo-cli/lifo/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the config directory when set.
const EnvConfigPath = "LIFO_CONFIG_PATH"

func mkdir(parts ...string) string {
	dir := filepath.Join(parts...)
	lo.Must0(filesystem.API().MkdirAll(dir, os.ModePerm))
	return dir
}

// Config is the directory holding lifo.toml, scripts and logs.
func Config() string {
	if dir, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(dir)
	}
	return mkdir(lo.Must(os.UserConfigDir()), constant.Lifo)
}

// Cache holds data that lifo can rebuild or lose without harm.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = "cache"
	}
	return mkdir(base, constant.Lifo)
}

func Logs() string {
	return mkdir(Config(), "logs")
}

// Scripts is where lua new creates scripts and lua looks them up by name.
func Scripts() string {
	return mkdir(Config(), "scripts")
}

// Queries is the file of remembered REPL statements.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// History is the file of saved sessions, one per element type.
func History() string {
	return filepath.Join(Cache(), "history.json")
}
