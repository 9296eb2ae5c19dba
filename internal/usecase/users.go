package usecase

import (
	"context"
	"errors"

	"rentdesk/internal/domain/user"
	"rentdesk/internal/infra"
	"rentdesk/internal/pkg/clock"
	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/pkg/jwt"
	"rentdesk/internal/pkg/password"
	"rentdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type UserParams struct {
	Username string
	Name     string
	Email    string
	Password string
	Role     user.Role
}

type UpdateUserParams struct {
	Name     *string
	Email    *string
	Password *string
	Role     *user.Role
}

// TokenValidator is the narrow surface the auth middleware depends on.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type UserUseCase interface {
	Login(ctx context.Context, username, plainPassword string) (string, *user.User, error)
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
	GetCurrentUser(ctx context.Context, id uuid.UUID) (*user.User, error)

	List(ctx context.Context) ([]*user.User, error)
	Create(ctx context.Context, params UserParams) (*user.User, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateUserParams) (*user.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userUseCaseImpl struct {
	store      shared.Store
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewUserUseCase(store shared.Store, jwtService *jwt.Service, clk clock.Clock) UserUseCase {
	return &userUseCaseImpl{store: store, jwtService: jwtService, clock: clk}
}

func (u *userUseCaseImpl) Login(ctx context.Context, username, plainPassword string) (string, *user.User, error) {
	var account *user.User
	err := u.store.View(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Users().FindByUsername(ctx, username)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvalidCredentials
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		account = found
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	if err := password.ComparePassword(account.PasswordHash, plainPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateToken(account.ID, account.Role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}
	return token, account, nil
}

func (u *userUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := u.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}
	return claims.UserID, role, nil
}

func (u *userUseCaseImpl) GetCurrentUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var account *user.User
	err := u.store.View(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Users().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		account = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (u *userUseCaseImpl) List(ctx context.Context) ([]*user.User, error) {
	var result []*user.User
	err := u.store.View(ctx, func(ctx context.Context, tx shared.Tx) error {
		users, err := tx.Users().List(ctx)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result = users
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *userUseCaseImpl) Create(ctx context.Context, params UserParams) (*user.User, error) {
	hash, err := password.HashPassword(params.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	account, err := user.NewUser(params.Username, params.Name, params.Email, hash, params.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	account.CreatedAt = u.clock.Now()
	account.UpdatedAt = u.clock.Now()

	err = u.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, account); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateUsername
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (u *userUseCaseImpl) Update(ctx context.Context, id uuid.UUID, params UpdateUserParams) (*user.User, error) {
	var updated *user.User
	err := u.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		account, err := tx.Users().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if params.Name != nil {
			account.Name = *params.Name
		}
		if params.Email != nil {
			account.Email = *params.Email
		}
		if params.Password != nil {
			hash, err := password.HashPassword(*params.Password)
			if err != nil {
				return errs.Mark(err, ErrDomainValidationFailed)
			}
			account.PasswordHash = hash
		}
		if params.Role != nil {
			role, err := user.NewRole(params.Role.String())
			if err != nil {
				return errs.Mark(err, ErrDomainValidationFailed)
			}
			account.Role = role
		}

		account.UpdatedAt = u.clock.Now()
		if err := tx.Users().Update(ctx, account); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		updated = account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (u *userUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return u.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
