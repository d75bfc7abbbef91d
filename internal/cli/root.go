package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the classbookctl command tree
func NewRootCommand(version string) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "classbookctl",
		Short: "Classbook - class registration backend",
		Long: `classbookctl runs and operates the classbook API.

It serves the HTTP API, applies the embedded schema migrations and
grants the first admin role without going through the API.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", filepath.Join("configs", "config.yaml"), "path to the YAML config file")

	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(migrateCmd(&configPath))
	rootCmd.AddCommand(bootstrapAdminCmd(&configPath))

	return rootCmd
}
