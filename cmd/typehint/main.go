/*
Package main implements typehint, a heuristic type hint estimator for Python
parameters.

typehint looks at the text around a parameter being annotated (its name,
earlier annotations of the same name, classes, assignments and typing imports)
and suggests the most likely annotations. Nothing is parsed or executed; every
estimate is a text match.

# Usage

	typehint [command] [flags]

Commands:

	serve       Run the msgpack IPC server on stdin/stdout
	cli         Interactive prompt for testing estimations
	estimate    Estimate a single parameter of a file and exit
	config      Show the active config (--rebuild resets it)
	version     Show the current version

Global flags:

	-d, --debug      Toggle debug logging (stderr)
	    --config     Path to a custom TOML config file

# Configuration

The config file lives at the OS config dir (e.g. ~/.config/typehint/config.toml)
and is created with defaults on first run:

	[workspace]
	search_enabled = true
	search_limit = 10

	[server]
	max_param_length = 256
	max_document_bytes = 4194304

	[cli]
	show_remaining = true

A malformed file is recovered field by field; anything that cannot be read
falls back to the default.

# IPC Protocol

The server speaks MessagePack over stdin/stdout. Logs never go to stdout.
After startup it sends {"status": "ready"}. Requests carry an optional "id"
that is echoed back.

Estimate:

	{"id": "1", "param": "count", "uri": "file:///src/app.py", "text": "<document text>", "l": 10}

Response:

	{"id": "1", "s": [{"h": "int", "r": 1, "e": true}, ...], "c": 12, "t": 180}

Config:

	{"id": "2", "action": "get_config"}
	{"id": "3", "action": "set_config", "search_enabled": false, "search_limit": 5}

Errors come back as {"id": "...", "e": "message", "c": code}.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bastiangx/typehint/internal/logger"
)

const (
	Version = "0.1.0-beta"
	AppName = "typehint"
	gh      = "https://github.com/bastiangx/typehint"
)

var (
	debugMode  bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   AppName,
	Short: "Heuristic type hint estimation for Python parameters",
	Long: `typehint suggests type hints for Python parameters by matching the
surrounding text: parameter names, earlier annotations, classes, assignments
and typing imports. Run "typehint serve" to speak msgpack over stdin/stdout.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Setup(debugMode)
	},
}

// sigHandler cancels the command context on interrupt and exits normally.
func sigHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		cancel()
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
	return ctx
}

// main registers the subcommands and global flags and runs the root command.
func main() {
	ctx := sigHandler()
	rootCmd.Version = Version

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(cliCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "Toggle debug mode")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a custom config file")

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
