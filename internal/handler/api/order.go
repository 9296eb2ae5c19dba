package api

import (
	"errors"
	"net/http"

	"rentdesk/internal/domain/billing"
	"rentdesk/internal/domain/equipment"
	"rentdesk/internal/domain/order"
	reqdto "rentdesk/internal/handler/dto/request"
	resdto "rentdesk/internal/handler/dto/response"
	"rentdesk/internal/handler/httperr"
	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderUseCase usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

// @Summary Create order
// @Description Create a rental order or a quotation
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
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

	created, err := h.orderUseCase.Create(c.Request.Context(), params)
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrder(created))
}

// @Summary List orders
// @Description List all orders, or only settled ones with ?view=history
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param view query string false "Set to 'history' for settled orders only"
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var (
		orders []*order.Order
		err    error
	)
	if c.Query("view") == "history" {
		orders, err = h.orderUseCase.History(c.Request.Context())
	} else {
		orders, err = h.orderUseCase.List(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrders(orders))
}

// @Summary Get order
// @Description Get order by ID
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	found, err := h.orderUseCase.Get(c.Request.Context(), id)
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrder(found))
}

// @Summary Update order
// @Description Adjust items, dates, fees, payments or notes on an order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderRequest true "Update request"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} map[string]string
// @Router /orders/{id} [put]
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateOrderRequest
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

	updated, err := h.orderUseCase.Update(c.Request.Context(), id, params)
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrder(updated))
}

// @Summary Delete order
// @Description Delete an order, releasing any stock it still holds
// @Tags orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.orderUseCase.Delete(c.Request.Context(), id); err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Convert quotation
// @Description Convert a quotation into an active order, reserving stock
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} map[string]string
// @Router /orders/{id}/convert [post]
func (h *OrderHandler) Convert(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	converted, err := h.orderUseCase.ConvertQuotation(c.Request.Context(), id)
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrder(converted))
}

// @Summary Process return
// @Description Record a return visit: settle lines, restock good units, bill damage and late fees
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.ReturnRequest true "Return request"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders/{id}/return [post]
func (h *OrderHandler) ProcessReturn(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	processed, err := h.orderUseCase.ProcessReturn(c.Request.Context(), id, req.ToParams())
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrder(processed))
}

// @Summary Get invoice
// @Description Get the order together with customer and company details for invoicing
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/invoice [get]
func (h *OrderHandler) Invoice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	data, err := h.orderUseCase.Invoice(c.Request.Context(), id)
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoice(data))
}

func (h *OrderHandler) respondOrderError(c *gin.Context, err error) {
	var conflict *equipment.StockConflictError
	switch {
	case errors.As(err, &conflict):
		httperr.AbortWithError(c, err, httperr.New(http.StatusConflict, "Insufficient stock").WithDetail(gin.H{
			"equipment_id": conflict.EquipmentID,
			"name":         conflict.Name,
			"requested":    conflict.Requested,
			"available":    conflict.Available,
			"shortfall":    conflict.Shortfall(),
		}))
	case errs.Is(err, usecase.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
	case errs.Is(err, usecase.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Customer not found",
		})
	case errs.Is(err, usecase.ErrEquipmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Equipment not found",
		})
	case errs.Is(err, order.ErrItemsFrozen):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Items and dates are locked once a return has been processed",
		})
	case errs.Is(err, order.ErrNotQuotation):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Order is not a quotation",
		})
	case errs.Is(err, order.ErrNotReturnable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Order has no outstanding rentals to return",
		})
	case errs.Is(err, billing.ErrInvalidDiscount):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
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

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
