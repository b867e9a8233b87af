package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"appstarter/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "appgen",
		Short: "Generate app starter projects from a one-line idea",
		Long: `appgen turns a short app idea into a FastAPI backend, a static or React
frontend and a README, writes them to the workspace and optionally pushes
them to the configured git remote.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.AnalyzeCmd())
	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.ServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
