package handlers

import (
	"barnmonitor-backend/domain"
	"barnmonitor-backend/internal/api/presenters"
	"barnmonitor-backend/pkg/production"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductionHandler interface {
		GetProductions(c *fiber.Ctx) error
		GetProductionByID(c *fiber.Ctx) error
		AddProduction(c *fiber.Ctx) error
		UpdateProduction(c *fiber.Ctx) error
		DeleteProduction(c *fiber.Ctx) error
	}

	productionHandler struct {
		productionService production.ProductionService
		validator         *validator.Validate
	}
)

func NewProductionHandler(productionService production.ProductionService, validator *validator.Validate) ProductionHandler {
	return &productionHandler{
		productionService: productionService,
		validator:         validator,
	}
}

// GetProductions handles GET /productions
// @Summary List production records
// @Tags Productions
// @Produce json
// @Success 200 {object} presenters.Response{data=[]domain.ProductionResponse}
// @Failure 500 {object} presenters.Response
// @Router /productions [get]
func (h *productionHandler) GetProductions(c *fiber.Ctx) error {
	res, err := h.productionService.GetProductions(c.Context())
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetProductions, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProductions)
}

// GetProductionByID handles GET /productions/:id
// @Summary Get a production record
// @Tags Productions
// @Produce json
// @Param id path int true "Production record ID"
// @Success 200 {object} presenters.Response{data=domain.ProductionDetailResponse}
// @Failure 404 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Router /productions/{id} [get]
func (h *productionHandler) GetProductionByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedGetProductions, domain.ErrProductionNotFound)
	}

	res, err := h.productionService.GetProductionByID(c.Context(), id)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetProductions, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProductions)
}

// AddProduction handles POST /productions
// @Summary Create a production record
// @Tags Productions
// @Accept json
// @Produce json
// @Param request body domain.CreateProductionRequest true "Production record to create"
// @Success 201 {object} presenters.Response{data=domain.ProductionResponse}
// @Failure 400 {object} presenters.Response
// @Failure 401 {object} presenters.Response
// @Failure 422 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Security SessionCookie
// @Router /productions [post]
func (h *productionHandler) AddProduction(c *fiber.Ctx) error {
	req := new(domain.CreateProductionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.MessageFailedAddProduction, missingField(err))
	}

	res, err := h.productionService.CreateProduction(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedAddProduction, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddProduction)
}

// UpdateProduction handles PATCH /productions/:id
// @Summary Update a production record
// @Tags Productions
// @Accept json
// @Produce json
// @Param id path int true "Production record ID"
// @Param request body object true "Fields to change; null clears an optional field"
// @Success 200 {object} presenters.Response{data=domain.ProductionResponse}
// @Failure 400 {object} presenters.Response
// @Failure 401 {object} presenters.Response
// @Failure 404 {object} presenters.Response
// @Failure 422 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Security SessionCookie
// @Router /productions/{id} [patch]
func (h *productionHandler) UpdateProduction(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedUpdateProduction, domain.ErrProductionNotFound)
	}

	patch, err := parsePatch(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.productionService.UpdateProduction(c.Context(), id, patch)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateProduction, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateProduction)
}

// DeleteProduction handles DELETE /productions/:id
// @Summary Delete a production record
// @Description Sales linked to the production are deleted with it.
// @Tags Productions
// @Produce json
// @Param id path int true "Production record ID"
// @Success 200 {object} presenters.Response
// @Failure 401 {object} presenters.Response
// @Failure 404 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Security SessionCookie
// @Router /productions/{id} [delete]
func (h *productionHandler) DeleteProduction(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedDeleteProduction, domain.ErrProductionNotFound)
	}

	if err := h.productionService.DeleteProduction(c.Context(), id); err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteProduction, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProduction)
}
