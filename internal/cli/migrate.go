package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	appMigrations "github.com/yigit/classbook/internal/app/migrations"
	"github.com/yigit/classbook/internal/bootstrap"
)

func migrateCmd(configPath *string) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Long: `Apply the SQL migrations compiled into the binary.

Examples:
  classbookctl migrate
  classbookctl migrate --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
			if err != nil {
				return err
			}

			database, err := bootstrap.ConnectDatabase(cfg, lgr)
			if err != nil {
				return err
			}
			defer database.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			migrator := appMigrations.NewMigrator(database.Pool, lgr)
			if !dryRun {
				return migrator.Migrate(ctx)
			}

			pending, err := migrator.Pending(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(pending) == 0 {
				fmt.Fprintln(out, "No pending migrations")
				return nil
			}
			fmt.Fprintf(out, "%d pending migration(s):\n", len(pending))
			for _, file := range pending {
				fmt.Fprintf(out, "  %s\n", file)
			}
			fmt.Fprintln(out, "Dry run - no changes made")
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list pending migrations without applying them")
	return cmd
}
