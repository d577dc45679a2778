package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var versionLabelStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("14")).
	Bold(true)

func newVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s) %s\n",
				versionLabelStyle.Render("runestone"), info.Version, info.Commit, info.Date)
		},
	}
}
