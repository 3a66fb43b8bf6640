package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/script"
	"github.com/lifo-cli/lifo/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("exec", "e", "", "Run the given statements instead of a file")
	runCmd.Flags().BoolP("json", "j", false, "Print the run as a JSON document")
	runCmd.Flags().StringP("output", "o", "", "Write the results to a file instead of stdout")

	runCmd.Flags().Bool("echo", false, "Print each statement before its result")
	lo.Must0(viper.BindPFlag(key.ScriptEcho, runCmd.Flags().Lookup("echo")))

	runCmd.MarkFlagsMutuallyExclusive("echo", "json")
}

// runCmd executes a stack script from a file, stdin or the command line.
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a stack script",
	Long: `Run a script of stack statements separated by newlines or semicolons.
Use - as the file to read the script from stdin. Piped input is read
even without it.

Statements: push <value>..., pop, peek, size, empty, dump, clear.
A # starts a comment, quotes keep spaces inside a value.`,
	Args: cobra.MaximumNArgs(1),
	Example: `  lifo run ./numbers.stack -t int
  echo "push a b; pop" | lifo run -
  lifo run -e 'push "hello world"; peek' --json`,
	Run: func(cmd *cobra.Command, args []string) {
		var source string

		switch {
		case cmd.Flags().Changed("exec"):
			source = lo.Must(cmd.Flags().GetString("exec"))
		case len(args) == 1:
			contents, err := filesystem.ReadAll(args[0])
			handleErr(err)
			source = string(contents)
		case util.StdinPiped():
			contents, err := filesystem.ReadAll(filesystem.Stdin)
			handleErr(err)
			source = string(contents)
		default:
			handleErr(errors.New("a script file, - for stdin, or --exec is required"))
		}

		var out io.Writer = os.Stdout
		if path := lo.Must(cmd.Flags().GetString("output")); path != "" {
			file, err := filesystem.API().Create(path)
			handleErr(err)
			defer util.Ignore(file.Close)
			out = file
		}

		options := script.Options{
			Out:       out,
			Source:    source,
			Type:      viper.GetString(key.ScriptType),
			Json:      lo.Must(cmd.Flags().GetBool("json")),
			Echo:      viper.GetBool(key.ScriptEcho),
			Strict:    viper.GetBool(key.ScriptStrict),
			DumpWidth: viper.GetUint(key.DumpMaxWidth),
		}
		handleErr(script.Run(cmd.Context(), &options))
	},
}

func init() {
	runCmd.AddCommand(runSchemaCmd)
}

// runSchemaCmd prints the JSON schema of the document produced by run --json.
var runSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of run --json output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(script.Schema()))
	},
}
