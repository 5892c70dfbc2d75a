package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agentdesk",
	Short: "Loan collection dashboard for the terminal",
	Long: `agentdesk is the terminal client for the loan collection platform.
It manages collection cases, contact trails, payment links, agencies,
and users against the platform REST API, either through subcommands or
through the full-screen dashboard ('agentdesk dashboard').`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a cancellable context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
