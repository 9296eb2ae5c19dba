package components

import (
	"context"
	"log/slog"

	"rentdesk/internal/domain/user"
	"rentdesk/internal/pkg/config"
	"rentdesk/internal/usecase"
)

// SeedAdmin creates the initial admin account from ADMIN_USERNAME and
// ADMIN_PASSWORD when no users exist yet. Without both variables the
// store starts empty and accounts must be created some other way.
func SeedAdmin(cfg config.Config, users usecase.UserUseCase, logger *slog.Logger) error {
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		return nil
	}

	ctx := context.Background()
	existing, err := users.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	_, err = users.Create(ctx, usecase.UserParams{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
		Role:     user.RoleAdmin,
	})
	if err != nil {
		return err
	}

	logger.Info("seeded initial admin account", "username", cfg.Admin.Username)
	return nil
}
