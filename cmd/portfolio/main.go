// Package main provides the portfolio CLI: the metrics API server plus offline inspection commands.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Customer success portfolio metrics",
	Long:  "Portfolio serves and inspects the customer success metrics behind the portfolio site: a JSON API, summaries, listings and data validation.",

	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
