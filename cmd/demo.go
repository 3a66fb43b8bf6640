package cmd

import (
	"os"

	"github.com/lifo-cli/lifo/demo"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringSliceP("section", "s", []string{}, "Run only the given sections")
	lo.Must0(demoCmd.RegisterFlagCompletionFunc("section", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return demo.Sections, cobra.ShellCompDirectiveNoFileComp
	}))
}

// demoCmd shows the same stack serving several element types.
var demoCmd = &cobra.Command{
	Use:     "demo",
	Short:   "Walk through stacks of integers, strings and points",
	Args:    cobra.NoArgs,
	Example: "  lifo demo --section ints,points",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(demo.Run(os.Stdout, lo.Must(cmd.Flags().GetStringSlice("section"))...))
	},
}
