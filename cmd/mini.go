package cmd

import (
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/mini"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(miniCmd)
	miniCmd.Flags().BoolP("continue", "c", false, "Continue with the stack saved by the previous session")
}

// miniCmd launches a menu driven session for terminals where the full REPL does not fit.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Drive a stack from simple menus",
	Long:  `Start a menu driven session over a single stack, one prompt at a time.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		options := mini.Options{
			Type:     viper.GetString(key.ScriptType),
			Strict:   viper.GetBool(key.ScriptStrict),
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
		}
		handleErr(mini.Run(&options))
	},
}
