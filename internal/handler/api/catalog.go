package api

import (
	"net/http"

	"rentdesk/internal/domain/equipment"
	reqdto "rentdesk/internal/handler/dto/request"
	resdto "rentdesk/internal/handler/dto/response"
	"rentdesk/internal/pkg/errs"
	"rentdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

// @Summary List equipment
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EquipmentResponse
// @Failure 401 {object} map[string]string
// @Router /equipment [get]
func (h *CatalogHandler) ListEquipment(c *gin.Context) {
	items, err := h.catalogUseCase.ListEquipment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEquipmentList(items))
}

// @Summary Get equipment
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /equipment/{id} [get]
func (h *CatalogHandler) GetEquipment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, err := h.catalogUseCase.GetEquipment(c.Request.Context(), id)
	if err != nil {
		h.respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEquipment(item))
}

// @Summary Create equipment
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEquipmentRequest true "Equipment request"
// @Success 201 {object} resdto.EquipmentResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /equipment [post]
func (h *CatalogHandler) CreateEquipment(c *gin.Context) {
	var req reqdto.CreateEquipmentRequest
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

	item, err := h.catalogUseCase.CreateEquipment(c.Request.Context(), params)
	if err != nil {
		h.respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEquipment(item))
}

// @Summary Update equipment
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Param request body reqdto.UpdateEquipmentRequest true "Update request"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /equipment/{id} [put]
func (h *CatalogHandler) UpdateEquipment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateEquipmentRequest
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

	item, err := h.catalogUseCase.UpdateEquipment(c.Request.Context(), id, params)
	if err != nil {
		h.respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEquipment(item))
}

// @Summary Delete equipment
// @Tags equipment
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /equipment/{id} [delete]
func (h *CatalogHandler) DeleteEquipment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.catalogUseCase.DeleteEquipment(c.Request.Context(), id); err != nil {
		h.respondCatalogError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CategoryResponse
// @Failure 401 {object} map[string]string
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogUseCase.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCategories(categories))
}

// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCategoryRequest true "Category request"
// @Success 201 {object} resdto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req reqdto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	category, err := h.catalogUseCase.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		h.respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCategory(category))
}

// @Summary Delete category
// @Description Delete a category that no equipment references
// @Tags categories
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.catalogUseCase.DeleteCategory(c.Request.Context(), id); err != nil {
		h.respondCatalogError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) respondCatalogError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, usecase.ErrEquipmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Equipment not found",
		})
	case errs.Is(err, usecase.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Category not found",
		})
	case errs.Is(err, usecase.ErrDuplicateCategory):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Category already exists",
		})
	case errs.Is(err, equipment.ErrCategoryInUse):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Category is still referenced by equipment",
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
