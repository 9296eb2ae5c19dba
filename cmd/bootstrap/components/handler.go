package components

import (
	"rentdesk/internal/handler"
	"rentdesk/internal/handler/api"
	"rentdesk/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOrderHandler,
		api.NewCatalogHandler,
		api.NewCustomerHandler,
		api.NewExpenseHandler,
		api.NewUserHandler,
		api.NewSettingsHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	order *api.OrderHandler,
	catalog *api.CatalogHandler,
	customer *api.CustomerHandler,
	expense *api.ExpenseHandler,
	user *api.UserHandler,
	settings *api.SettingsHandler,
	report *api.ReportHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Order:    order,
		Catalog:  catalog,
		Customer: customer,
		Expense:  expense,
		User:     user,
		Settings: settings,
		Report:   report,
	}
}
