package cmd

import (
	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/config"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type location struct {
	title  string
	flag   string
	short  string
	path   func() string
	hidden bool
}

var locations = []location{
	{title: "Config", flag: "config", short: "c", path: where.Config},
	{title: "Config file", flag: "config-file", short: "f", path: config.File, hidden: true},
	{title: "Scripts", flag: "scripts", short: "s", path: where.Scripts},
	{title: "Logs", flag: "logs", short: "l", path: where.Logs},
	{title: "Cache", flag: "cache", path: where.Cache, hidden: true},
	{title: "Queries", flag: "queries", path: where.Queries, hidden: true},
	{title: "History", flag: "history", path: where.History, hidden: true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	flags := whereCmd.Flags()
	for _, l := range locations {
		flags.BoolP(l.flag, l.short, false, "Print only the "+l.title+" path")
		if l.hidden {
			lo.Must0(flags.MarkHidden(l.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string {
		return l.flag
	})...)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where lifo keeps its files",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if l, ok := lo.Find(locations, func(l location) bool {
			return lo.Must(cmd.Flags().GetBool(l.flag))
		}); ok {
			cmd.Println(l.path())
			return
		}

		heading := style.New().Bold(true).Foreground(color.HiPurple).Render
		flag := style.Fg(color.Yellow)

		listed := lo.Reject(locations, func(l location, _ int) bool {
			return l.hidden
		})
		for i, l := range listed {
			if i > 0 {
				cmd.Println()
			}
			cmd.Println(heading(l.title+"?"), flag("--"+l.flag))
			cmd.Println(l.path())
		}
	},
}
