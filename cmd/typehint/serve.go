package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bastiangx/typehint/internal/logger"
	"github.com/bastiangx/typehint/pkg/config"
	"github.com/bastiangx/typehint/pkg/server"
)

var serveRoot string

func init() {
	serveCmd.Flags().StringVar(&serveRoot, "root", "", "Workspace root (defaults to the working dir)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the msgpack IPC server on stdin/stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(serveRoot)
		if err != nil {
			return err
		}
		defer a.stop()

		showStartupInfo(a.ws.Root(), config.GetActiveConfigPath(a.store.Path()))

		log.Debug("spawning IPC")
		srv := server.NewServer(a.completer, a.store, a.ws)
		return srv.Start(cmd.Context())
	},
}

// showStartupInfo logs basic info about the init process to stderr.
func showStartupInfo(root, cfgPath string) {
	l := logger.New("")
	l.SetLevel(log.InfoLevel)
	l.Infof("Version: %s", Version)
	l.Infof("Process ID: [ %d ]", os.Getpid())
	l.Infof("workspace: ( %s )", root)
	l.Infof("config: ( %s )", cfgPath)
	l.Info("status: ready")
}
