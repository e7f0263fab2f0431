package handlers

import (
	"barnmonitor-backend/domain"
	"barnmonitor-backend/internal/api/presenters"
	"barnmonitor-backend/pkg/health"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	HealthRecordHandler interface {
		GetHealthRecords(c *fiber.Ctx) error
		GetHealthRecordByID(c *fiber.Ctx) error
		AddHealthRecord(c *fiber.Ctx) error
		UpdateHealthRecord(c *fiber.Ctx) error
		DeleteHealthRecord(c *fiber.Ctx) error
	}

	healthRecordHandler struct {
		healthRecordService health.HealthRecordService
		validator           *validator.Validate
	}
)

func NewHealthRecordHandler(healthRecordService health.HealthRecordService, validator *validator.Validate) HealthRecordHandler {
	return &healthRecordHandler{
		healthRecordService: healthRecordService,
		validator:           validator,
	}
}

// GetHealthRecords handles GET /health_records
// @Summary List health records
// @Tags HealthRecords
// @Produce json
// @Success 200 {object} presenters.Response{data=[]domain.HealthRecordResponse}
// @Failure 500 {object} presenters.Response
// @Router /health_records [get]
func (h *healthRecordHandler) GetHealthRecords(c *fiber.Ctx) error {
	res, err := h.healthRecordService.GetHealthRecords(c.Context())
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetHealthRecords, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHealthRecords)
}

// GetHealthRecordByID handles GET /health_records/:id
// @Summary Get a health record
// @Tags HealthRecords
// @Produce json
// @Param id path int true "Health record ID"
// @Success 200 {object} presenters.Response{data=domain.HealthRecordResponse}
// @Failure 404 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Router /health_records/{id} [get]
func (h *healthRecordHandler) GetHealthRecordByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedGetHealthRecords, domain.ErrHealthRecordNotFound)
	}

	res, err := h.healthRecordService.GetHealthRecordByID(c.Context(), id)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetHealthRecords, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHealthRecords)
}

// AddHealthRecord handles POST /health_records
// @Summary Create a health record
// @Description The animal is named by animal_id or by its unique name. name wins when both are sent.
// @Tags HealthRecords
// @Accept json
// @Produce json
// @Param request body domain.CreateHealthRecordRequest true "Health record to create"
// @Success 201 {object} presenters.Response{data=domain.HealthRecordResponse}
// @Failure 400 {object} presenters.Response
// @Failure 401 {object} presenters.Response
// @Failure 422 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Security SessionCookie
// @Router /health_records [post]
func (h *healthRecordHandler) AddHealthRecord(c *fiber.Ctx) error {
	req := new(domain.CreateHealthRecordRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.MessageFailedAddHealthRecord, missingField(err))
	}

	res, err := h.healthRecordService.CreateHealthRecord(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedAddHealthRecord, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddHealthRecord)
}

// UpdateHealthRecord handles PATCH /health_records/:id
// @Summary Update a health record
// @Tags HealthRecords
// @Accept json
// @Produce json
// @Param id path int true "Health record ID"
// @Param request body object true "Fields to change; null clears an optional field"
// @Success 200 {object} presenters.Response{data=domain.HealthRecordResponse}
// @Failure 400 {object} presenters.Response
// @Failure 401 {object} presenters.Response
// @Failure 404 {object} presenters.Response
// @Failure 422 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Security SessionCookie
// @Router /health_records/{id} [patch]
func (h *healthRecordHandler) UpdateHealthRecord(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedUpdateHealthRecord, domain.ErrHealthRecordNotFound)
	}

	patch, err := parsePatch(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.healthRecordService.UpdateHealthRecord(c.Context(), id, patch)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateHealthRecord, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateHealthRecord)
}

// DeleteHealthRecord handles DELETE /health_records/:id
// @Summary Delete a health record
// @Tags HealthRecords
// @Produce json
// @Param id path int true "Health record ID"
// @Success 200 {object} presenters.Response
// @Failure 401 {object} presenters.Response
// @Failure 404 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Security SessionCookie
// @Router /health_records/{id} [delete]
func (h *healthRecordHandler) DeleteHealthRecord(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedDeleteHealthRecord, domain.ErrHealthRecordNotFound)
	}

	if err := h.healthRecordService.DeleteHealthRecord(c.Context(), id); err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteHealthRecord, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteHealthRecord)
}
