package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rentdesk/internal/domain/user"
	"rentdesk/internal/handler/api"
	"rentdesk/internal/handler/middleware"
	"rentdesk/internal/pkg/config"
	"rentdesk/internal/usecase/shared"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Order    *api.OrderHandler
	Catalog  *api.CatalogHandler
	Customer *api.CustomerHandler
	Expense  *api.ExpenseHandler
	User     *api.UserHandler
	Settings *api.SettingsHandler
	Report   *api.ReportHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, store shared.Store) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware, store)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, store shared.Store) {
	engine.GET("/health", healthCheck(cfg, store))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		protected := apiGroup.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			addRoutes(protected.Group("/orders"), []route{
				{Method: http.MethodPost, Path: "", Handler: h.Order.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Order.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Order.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Order.Delete},
				{Method: http.MethodPost, Path: "/:id/convert", Handler: h.Order.Convert},
				{Method: http.MethodPost, Path: "/:id/return", Handler: h.Order.ProcessReturn},
				{Method: http.MethodGet, Path: "/:id/invoice", Handler: h.Order.Invoice},
			})

			addRoutes(protected.Group("/equipment"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListEquipment},
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateEquipment},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetEquipment},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.UpdateEquipment},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeleteEquipment},
			})

			addRoutes(protected.Group("/categories"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListCategories},
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateCategory},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeleteCategory},
			})

			addRoutes(protected.Group("/customers"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Customer.List},
				{Method: http.MethodPost, Path: "", Handler: h.Customer.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Customer.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Customer.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Customer.Delete},
			})

			addRoutes(protected.Group("/expenses"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Expense.List},
				{Method: http.MethodPost, Path: "", Handler: h.Expense.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Expense.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Expense.Delete},
			})

			addRoutes(protected.Group("/settings"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Settings.Get},
				{Method: http.MethodPut, Path: "", Handler: h.Settings.Save},
			})

			addRoutes(protected.Group("/reports"), []route{
				{Method: http.MethodGet, Path: "/summary", Handler: h.Report.Summary},
			})

			// User management stays admin-only.
			adminOnly := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}
			addRoutes(protected.Group("/users"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.User.List, Mw: adminOnly},
				{Method: http.MethodPost, Path: "", Handler: h.User.Create, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: h.User.Update, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.User.Delete, Mw: adminOnly},
			})
		}
	}
}

// @Summary Health check
// @Description Check service health and which persistence backend is active
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(cfg config.Config, store shared.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"
		if err := store.Healthy(c.Request.Context()); err != nil {
			status = "degraded"
		}

		body := gin.H{
			"status": status,
			"store":  store.Driver(),
		}
		// A memory store under a postgres configuration means the database
		// was unreachable at startup and writes are not durable.
		if cfg.Store.Driver == "postgres" && store.Driver() == "memory" {
			body["status"] = "degraded"
			body["detail"] = "running on the in-memory store, data is not durable"
		}
		c.JSON(http.StatusOK, body)
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
