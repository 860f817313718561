package main

import (
	"os"

	"github.com/spf13/cobra"

	"helperdesk/internal/interfaces/cli/admin"
	"helperdesk/internal/interfaces/cli/migrate"
	"helperdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "helperdesk",
		Short: "Helperdesk - support helper tracking console",
		Long:  `Helperdesk tracks support helpers, their tickets and warnings, with a rank-gated admin console API.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
