package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bastiangx/typehint/internal/cli"
)

var (
	estimatePrefix string
	estimateLimit  int
	estimateAll    bool
)

func init() {
	estimateCmd.Flags().StringVarP(&estimatePrefix, "prefix", "p", "", "Only show hints starting with prefix")
	estimateCmd.Flags().IntVarP(&estimateLimit, "limit", "n", 0, "Number of suggestions to show (0 for all)")
	estimateCmd.Flags().BoolVarP(&estimateAll, "all", "a", false, "Also list the remaining built-in and typing hints")
}

var estimateCmd = &cobra.Command{
	Use:   "estimate <param> <file>",
	Short: "Estimate the type hints of one parameter",
	Long: `Estimate the type hints of one parameter using the text of <file>.
The directory holding <file> is the workspace searched for similar parameters.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := resolvePath(args[1])
		if err != nil {
			return err
		}
		a, err := newApp(filepath.Dir(file))
		if err != nil {
			return err
		}
		defer a.stop()

		cfg := a.store.Config()
		h := cli.NewInputHandler(a.completer, a.ws, cmd.InOrStdin(), cmd.OutOrStdout(),
			cfg.Server.MaxParamLength, estimateLimit, estimateAll)
		return h.Estimate(cmd.Context(), args[0], file, estimatePrefix)
	},
}
