package api

import (
	"net/http"

	reqdto "rentdesk/internal/handler/dto/request"
	resdto "rentdesk/internal/handler/dto/response"
	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	expenseUseCase usecase.ExpenseUseCase
}

func NewExpenseHandler(expenseUseCase usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{
		expenseUseCase: expenseUseCase,
	}
}

// @Summary List expenses
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ExpenseResponse
// @Failure 401 {object} map[string]string
// @Router /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.expenseUseCase.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromExpenses(expenses))
}

// @Summary Create expense
// @Description Record an operational expense, optionally linked to an order
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ExpenseRequest true "Expense request"
// @Success 201 {object} resdto.ExpenseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req reqdto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	created, err := h.expenseUseCase.Create(c.Request.Context(), params)
	if err != nil {
		h.respondExpenseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromExpense(created))
}

// @Summary Update expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Param request body reqdto.ExpenseRequest true "Expense request"
// @Success 200 {object} resdto.ExpenseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	updated, err := h.expenseUseCase.Update(c.Request.Context(), id, params)
	if err != nil {
		h.respondExpenseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromExpense(updated))
}

// @Summary Delete expense
// @Tags expenses
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.expenseUseCase.Delete(c.Request.Context(), id); err != nil {
		h.respondExpenseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ExpenseHandler) respondExpenseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, usecase.ErrExpenseNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Expense not found",
		})
	case errs.Is(err, usecase.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Linked order not found",
		})
	case errs.Is(err, usecase.ErrDomainValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
