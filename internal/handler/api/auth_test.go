package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rentdesk/internal/domain/settings"
	"rentdesk/internal/domain/user"
	"rentdesk/internal/handler/api"
	"rentdesk/internal/handler/middleware"
	"rentdesk/internal/infra/memstore"
	"rentdesk/internal/pkg/clock"
	"rentdesk/internal/pkg/jwt"
	"rentdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memstore.NewStore(settings.Default(5))
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	jwtService := jwt.NewService("test-secret", time.Hour)
	users := usecase.NewUserUseCase(store, jwtService, clk)

	_, err := users.Create(t.Context(), usecase.UserParams{
		Username: "manager",
		Name:     "Warehouse Manager",
		Password: "rental-pass",
		Role:     user.RoleAdmin,
	})
	require.NoError(t, err)

	h := api.NewAuthHandler(users)
	authMw := middleware.NewAuthMiddleware(users)

	router := gin.New()
	router.POST("/auth/login", h.Login)
	me := router.Group("")
	me.Use(authMw.RequireAuth())
	me.GET("/auth/me", h.Me)
	return router
}

func login(t *testing.T, router *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginEndpoint(t *testing.T) {
	router := newAuthRouter(t)

	t.Run("valid credentials", func(t *testing.T) {
		rec := login(t, router, "manager", "rental-pass")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp struct {
			AccessToken string `json:"access_token"`
			User        struct {
				Username string `json:"username"`
				Role     string `json:"role"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "manager", resp.User.Username)
		assert.Equal(t, "admin", resp.User.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := login(t, router, "manager", "wrong")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		rec := login(t, router, "nobody", "rental-pass")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	router := newAuthRouter(t)

	t.Run("no token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		rec := login(t, router, "manager", "rental-pass")
		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			AccessToken string `json:"access_token"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
		meRec := httptest.NewRecorder()
		router.ServeHTTP(meRec, req)
		require.Equal(t, http.StatusOK, meRec.Code, meRec.Body.String())

		var me struct {
			Username string `json:"username"`
		}
		require.NoError(t, json.Unmarshal(meRec.Body.Bytes(), &me))
		assert.Equal(t, "manager", me.Username)
	})
}
