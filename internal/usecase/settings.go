package usecase

import (
	"context"

	"rentdesk/internal/domain/settings"
	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/usecase/shared"
)

type SettingsUseCase interface {
	Get(ctx context.Context) (settings.Settings, error)
	Save(ctx context.Context, s settings.Settings) (settings.Settings, error)
}

type settingsUseCaseImpl struct {
	store shared.Store
}

func NewSettingsUseCase(store shared.Store) SettingsUseCase {
	return &settingsUseCaseImpl{store: store}
}

func (u *settingsUseCaseImpl) Get(ctx context.Context) (settings.Settings, error) {
	var result settings.Settings
	err := u.store.View(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Settings().Get(ctx)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result = s
		return nil
	})
	if err != nil {
		return settings.Settings{}, err
	}
	return result, nil
}

func (u *settingsUseCaseImpl) Save(ctx context.Context, s settings.Settings) (settings.Settings, error) {
	if err := s.Validate(); err != nil {
		return settings.Settings{}, errs.Mark(err, ErrDomainValidationFailed)
	}

	err := u.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Settings().Save(ctx, s); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return settings.Settings{}, err
	}
	return s, nil
}
