package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lumen-edu/lumen/internal/interfaces/cli/migrate"
	"github.com/lumen-edu/lumen/internal/interfaces/cli/seed"
	"github.com/lumen-edu/lumen/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "lumen",
		Short:        "Lumen - course storefront service",
		Long:         `Lumen sells course content by subject: carts, bundles, offer codes and checkout, with server, migration and seed commands.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
