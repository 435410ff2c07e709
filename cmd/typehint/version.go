package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bastiangx/typehint/internal/logger"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the current version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		l := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)
		l.SetOutput(cmd.OutOrStdout())

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		l.SetStyles(styles)

		l.Print("")
		l.Print("[ TypeHint ] Guesses Python type hints from the text around them")
		l.Print("", "version", Version)
		l.Print("")
		l.Print("use -h or --help to see available options")
		l.Print("Github Repo", "gh", gh)
	},
}
