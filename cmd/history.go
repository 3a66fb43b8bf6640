package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/history"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/script"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Print the saved stacks as JSON")

	historyCmd.AddCommand(historyRemoveCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the stacks saved for --continue",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		saved, err := history.Get()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(saved))
			return
		}

		if len(saved) == 0 {
			cmd.Println(style.Faint("No saved stacks"))
			return
		}

		for _, typeName := range script.Types() {
			s, ok := saved[typeName]
			if !ok {
				continue
			}

			cmd.Printf("%s %s %s\n",
				style.Fg(color.Purple)(s.Type),
				util.Quantify(len(s.Contents), "item", "items"),
				style.Faint(s.SavedAt.Format(time.DateTime)),
			)
			cmd.Println(style.Fg(color.Yellow)(fmt.Sprint(s.Contents)))
		}
	},
}

var historyRemoveCmd = &cobra.Command{
	Use:       "remove <type>",
	Short:     "Forget the stack saved for an element type",
	Args:      cobra.ExactArgs(1),
	ValidArgs: script.Types(),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(history.Remove(args[0]))
		cmd.Printf("%s Removed the saved %s stack\n", icon.Get(icon.Success), args[0])
	},
}
