package main

//	@title			Olympus HUB API
//	@version		0.1.0
//	@description	Observability console for the Olympus data platform: KPI derivation, module dashboards, alerting and task workbench.
//	@BasePath		/api/v1

import (
	"context"
	"fmt"
	"os"

	_ "github.com/HerbHall/olympushub/api/swagger"
	"github.com/HerbHall/olympushub/internal/version"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Running the binary without a
// subcommand serves the API.
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "olympushub",
		Short:         "Olympus HUB observability console backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to configuration file")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}

	root.AddCommand(serveCmd, newSnapshotCmd(), versionCmd)
	return root
}
