package api

import (
	"net/http"

	resdto "rentdesk/internal/handler/dto/response"
	"rentdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportsUseCase usecase.ReportsUseCase
}

func NewReportHandler(reportsUseCase usecase.ReportsUseCase) *ReportHandler {
	return &ReportHandler{
		reportsUseCase: reportsUseCase,
	}
}

// @Summary Business summary
// @Description Aggregate sales, collections, expenses and stock counts in one snapshot
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReportSummaryResponse
// @Failure 401 {object} map[string]string
// @Router /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.reportsUseCase.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReportSummary(summary))
}
