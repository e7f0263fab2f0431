package handlers

import (
	"barnmonitor-backend/domain"
	"barnmonitor-backend/internal/api/presenters"
	"barnmonitor-backend/pkg/sale"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SaleHandler interface {
		GetSales(c *fiber.Ctx) error
		GetSaleByID(c *fiber.Ctx) error
		AddSale(c *fiber.Ctx) error
		UpdateSale(c *fiber.Ctx) error
		DeleteSale(c *fiber.Ctx) error
	}

	saleHandler struct {
		saleService sale.SaleService
		validator   *validator.Validate
	}
)

func NewSaleHandler(saleService sale.SaleService, validator *validator.Validate) SaleHandler {
	return &saleHandler{
		saleService: saleService,
		validator:   validator,
	}
}

// GetSales handles GET /sales
// @Summary List sale records
// @Tags Sales
// @Produce json
// @Success 200 {object} presenters.Response{data=[]domain.SaleResponse}
// @Failure 500 {object} presenters.Response
// @Router /sales [get]
func (h *saleHandler) GetSales(c *fiber.Ctx) error {
	res, err := h.saleService.GetSales(c.Context())
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetSales, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSales)
}

// GetSaleByID handles GET /sales/:id
// @Summary Get a sale record
// @Tags Sales
// @Produce json
// @Param id path int true "Sale record ID"
// @Success 200 {object} presenters.Response{data=domain.SaleDetailResponse}
// @Failure 404 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Router /sales/{id} [get]
func (h *saleHandler) GetSaleByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedGetSales, domain.ErrSaleNotFound)
	}

	res, err := h.saleService.GetSaleByID(c.Context(), id)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetSales, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSales)
}

// AddSale handles POST /sales
// @Summary Create a sale record
// @Tags Sales
// @Accept json
// @Produce json
// @Param request body domain.CreateSaleRequest true "Sale record to create"
// @Success 201 {object} presenters.Response{data=domain.SaleResponse}
// @Failure 400 {object} presenters.Response
// @Failure 401 {object} presenters.Response
// @Failure 422 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Security SessionCookie
// @Router /sales [post]
func (h *saleHandler) AddSale(c *fiber.Ctx) error {
	req := new(domain.CreateSaleRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.MessageFailedAddSale, missingField(err))
	}

	res, err := h.saleService.CreateSale(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedAddSale, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddSale)
}

// UpdateSale handles PATCH /sales/:id
// @Summary Update a sale record
// @Tags Sales
// @Accept json
// @Produce json
// @Param id path int true "Sale record ID"
// @Param request body object true "Fields to change; null clears an optional field"
// @Success 200 {object} presenters.Response{data=domain.SaleResponse}
// @Failure 400 {object} presenters.Response
// @Failure 401 {object} presenters.Response
// @Failure 404 {object} presenters.Response
// @Failure 422 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Security SessionCookie
// @Router /sales/{id} [patch]
func (h *saleHandler) UpdateSale(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedUpdateSale, domain.ErrSaleNotFound)
	}

	patch, err := parsePatch(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.saleService.UpdateSale(c.Context(), id, patch)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateSale, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateSale)
}

// DeleteSale handles DELETE /sales/:id
// @Summary Delete a sale record
// @Tags Sales
// @Produce json
// @Param id path int true "Sale record ID"
// @Success 200 {object} presenters.Response
// @Failure 401 {object} presenters.Response
// @Failure 404 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Security SessionCookie
// @Router /sales/{id} [delete]
func (h *saleHandler) DeleteSale(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedDeleteSale, domain.ErrSaleNotFound)
	}

	if err := h.saleService.DeleteSale(c.Context(), id); err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteSale, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteSale)
}
