package seed

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	appServices "github.com/yigit/classbook/internal/app/services"
)

// AdminBootstrapper grants the admin role to an email, creating the user when missing
type AdminBootstrapper interface {
	BootstrapAdmin(ctx context.Context, email string) (created bool, err error)
}

var _ AdminBootstrapper = (appServices.UserService)(nil)

// CreateDefaultData makes the configured bootstrap email an admin. An empty email is a no-op.
// Failures are returned so the caller can decide whether to continue starting up.
func CreateDefaultData(ctx context.Context, users AdminBootstrapper, adminEmail string, lgr zerolog.Logger) error {
	adminEmail = strings.TrimSpace(adminEmail)
	if adminEmail == "" {
		lgr.Debug().Msg("No bootstrap admin configured, skipping")
		return nil
	}

	lgr.Info().Str("email", adminEmail).Msg("Checking/Creating bootstrap admin...")
	created, err := users.BootstrapAdmin(ctx, adminEmail)
	if err != nil {
		lgr.Error().Err(err).Str("email", adminEmail).Msg("Error bootstrapping admin user")
		return err
	}

	if created {
		lgr.Info().Str("email", adminEmail).Msg("Bootstrap admin user created")
	} else {
		lgr.Info().Str("email", adminEmail).Msg("Bootstrap admin user already existed, role ensured")
	}
	return nil
}
