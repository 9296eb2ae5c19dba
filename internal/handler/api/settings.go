package api

import (
	"net/http"

	reqdto "rentdesk/internal/handler/dto/request"
	resdto "rentdesk/internal/handler/dto/response"
	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsUseCase usecase.SettingsUseCase
}

func NewSettingsHandler(settingsUseCase usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: settingsUseCase,
	}
}

// @Summary Get company settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SettingsResponse
// @Failure 401 {object} map[string]string
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	current, err := h.settingsUseCase.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettings(current))
}

// @Summary Save company settings
// @Description Replace company identity and the tax rate for new orders
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SettingsRequest true "Settings request"
// @Success 200 {object} resdto.SettingsResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /settings [put]
func (h *SettingsHandler) Save(c *gin.Context) {
	var req reqdto.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	saved, err := h.settingsUseCase.Save(c.Request.Context(), req.ToDomain())
	if err != nil {
		if errs.Is(err, usecase.ErrDomainValidationFailed) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettings(saved))
}
