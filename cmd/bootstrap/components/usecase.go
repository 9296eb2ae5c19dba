package components

import (
	"rentdesk/internal/pkg/clock"
	"rentdesk/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,

		usecase.NewOrderUseCase,
		usecase.NewCatalogUseCase,
		usecase.NewCustomerUseCase,
		usecase.NewExpenseUseCase,
		usecase.NewUserUseCase,
		usecase.NewSettingsUseCase,
		usecase.NewReportsUseCase,

		func(u usecase.UserUseCase) usecase.TokenValidator { return u },
	),
)
