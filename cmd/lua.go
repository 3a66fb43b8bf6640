package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/constant"
	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/luastack"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/util"
	"github.com/lifo-cli/lifo/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(luaCmd)

	luaCmd.Flags().Bool("preload", true, "Preload the extended Lua libraries (strings, json, regexp...)")
	lo.Must0(viper.BindPFlag(key.LuaPreloadLibs, luaCmd.Flags().Lookup("preload")))
}

// luaCmd runs a Lua script with the stack module available.
var luaCmd = &cobra.Command{
	Use:   "lua [file]",
	Short: "Run a Lua script that uses the stack module",
	Long: `Run a Lua 5.1 script with the stack module available through require("stack").
The file may also name a script created with "lifo lua new", or - for stdin.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionScripts,
	Example:           "  lifo lua ./example.lua",
	Run: func(cmd *cobra.Command, args []string) {
		options := luastack.Options{
			Out:         os.Stdout,
			PreloadLibs: viper.GetBool(key.LuaPreloadLibs),
		}
		handleErr(luastack.Run(cmd.Context(), resolveScript(args[0]), &options))
	},
}

// resolveScript returns path if it exists, otherwise the matching script in where.Scripts().
func resolveScript(path string) string {
	if path == filesystem.Stdin {
		return path
	}

	if exists, _ := filesystem.API().Exists(path); exists {
		return path
	}

	named := filepath.Join(where.Scripts(), util.SanitizeFilename(util.FileStem(path))+".lua")
	if exists, _ := filesystem.API().Exists(named); exists {
		return named
	}
	return path
}

// scripts lists the names of the saved Lua scripts.
func scripts() ([]string, error) {
	files, err := filesystem.API().ReadDir(where.Scripts())
	if err != nil {
		return nil, err
	}

	var names []string
	for _, file := range files {
		if !file.IsDir() && filepath.Ext(file.Name()) == ".lua" {
			names = append(names, util.FileStem(file.Name()))
		}
	}
	return names, nil
}

func completionScripts(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names, err := scripts()
	if err != nil {
		return nil, cobra.ShellCompDirectiveDefault
	}
	return names, cobra.ShellCompDirectiveDefault
}

func init() {
	luaCmd.AddCommand(luaNewCmd)
	luaNewCmd.Flags().BoolP("force", "f", false, "Overwrite an existing script")
}

// luaNewCmd scaffolds a Lua script into the scripts directory.
var luaNewCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new Lua stack script from a template",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := util.SanitizeFilename(args[0])
		if name == "" {
			handleErr(fmt.Errorf("invalid script name %q", args[0]))
		}

		path := filepath.Join(where.Scripts(), name+".lua")
		if exists, _ := filesystem.API().Exists(path); exists && !lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(fmt.Errorf("script %s already exists, use --force to overwrite it", path))
		}

		handleErr(writeScript(path, name))
		fmt.Printf(
			"%s created %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(path),
		)
	},
}

var luaTemplate = template.Must(template.New("lua").Funcs(template.FuncMap{
	"repeat": strings.Repeat,
	"plus":   func(a, b int) int { return a + b },
}).Parse(constant.LuaTemplate))

func writeScript(path, name string) error {
	file, err := filesystem.API().Create(path)
	if err != nil {
		return err
	}
	defer util.Ignore(file.Close)

	return luaTemplate.Execute(file, struct {
		Name    string
		Created string
		Module  string
	}{
		Name:    name,
		Created: time.Now().Format(time.DateOnly),
		Module:  constant.LuaModule,
	})
}

func init() {
	luaCmd.AddCommand(luaListCmd)
}

// luaListCmd prints the saved Lua scripts.
var luaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the scripts created with lua new",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		names, err := scripts()
		handleErr(err)

		if len(names) == 0 {
			handleErr(errors.New("no scripts found, create one with lifo lua new <name>"))
		}

		for _, name := range names {
			fmt.Printf("%s %s\n", icon.Get(icon.Lua), name)
		}
	},
}
