package cmd

import (
	"os"

	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/config"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)

	envCmd.Flags().BoolP("set-only", "s", false, "Only list variables defined in the environment")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only list variables missing from the environment")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envVariables is every environment variable lifo reads, sorted by name.
func envVariables() []string {
	names := []string{where.EnvConfigPath}
	for _, k := range config.EnvExposed {
		field := config.Default[k]
		names = append(names, field.Env())
	}

	slices.Sort(names)
	return names
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables lifo reads",
	Long:  `List the environment variables lifo reads together with their values in the current process.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			setOnly   = lo.Must(cmd.Flags().GetBool("set-only"))
			unsetOnly = lo.Must(cmd.Flags().GetBool("unset-only"))
			name      = style.New().Bold(true).Foreground(color.Purple).Render
		)

		for _, env := range envVariables() {
			value, present := os.LookupEnv(env)
			switch {
			case setOnly && !present, unsetOnly && present:
				continue
			case present:
				cmd.Println(name(env) + "=" + style.Fg(color.Green)(value))
			default:
				cmd.Println(name(env) + "=" + style.Fg(color.Red)("unset"))
			}
		}
	},
}
