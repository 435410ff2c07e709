package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bastiangx/typehint/internal/cli"
)

var (
	cliRoot  string
	cliLimit int
)

func init() {
	cliCmd.Flags().StringVar(&cliRoot, "root", "", "Workspace root (defaults to the working dir)")
	cliCmd.Flags().IntVar(&cliLimit, "limit", 0, "Number of suggestions to show (0 for all)")
}

// CLI is mainly used for testing and dbg purposes.
var cliCmd = &cobra.Command{
	Use:   "cli",
	Short: "Interactive prompt for testing estimations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cliRoot)
		if err != nil {
			return err
		}
		defer a.stop()

		cfg := a.store.Config()
		log.SetReportTimestamp(false)
		log.Debug("Input info:", "limit", cliLimit, "showRemaining", cfg.CLI.ShowRemaining)

		h := cli.NewInputHandler(a.completer, a.ws, cmd.InOrStdin(), cmd.OutOrStdout(),
			cfg.Server.MaxParamLength, cliLimit, cfg.CLI.ShowRemaining)
		return h.Start(cmd.Context())
	},
}
