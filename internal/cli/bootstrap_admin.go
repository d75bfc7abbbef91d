package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	appAuth "github.com/yigit/classbook/internal/app/auth"
	appRepos "github.com/yigit/classbook/internal/app/repositories"
	appServices "github.com/yigit/classbook/internal/app/services"
	"github.com/yigit/classbook/internal/bootstrap"
)

func bootstrapAdminCmd(configPath *string) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "bootstrap-admin",
		Short: "Grant the admin role to an email, creating the user if needed",
		Long: `Grant the admin role to an email, creating the user if needed.

Runs pending migrations first. Safe to repeat.

Examples:
  classbookctl bootstrap-admin --email root@example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
			if err != nil {
				return err
			}

			database, err := bootstrap.SetupDatabase(cfg, lgr)
			if err != nil {
				return err
			}
			defer database.Close()

			userRepo := appRepos.NewUserRepository(database.Pool)
			users := appServices.NewUserService(userRepo, appAuth.NewAuthorizationService(userRepo), lgr)

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			created, err := users.BootstrapAdmin(ctx, email)
			if err != nil {
				return err
			}

			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s as admin\n", email)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Granted admin to existing user %s\n", email)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "email to make admin")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
