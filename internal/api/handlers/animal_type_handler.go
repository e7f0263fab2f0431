package handlers

import (
	"barnmonitor-backend/domain"
	"barnmonitor-backend/internal/api/presenters"
	"barnmonitor-backend/pkg/animaltype"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AnimalTypeHandler interface {
		GetAnimalTypes(c *fiber.Ctx) error
		GetAnimalTypeByID(c *fiber.Ctx) error
		AddAnimalType(c *fiber.Ctx) error
		UpdateAnimalType(c *fiber.Ctx) error
		DeleteAnimalType(c *fiber.Ctx) error
	}

	animalTypeHandler struct {
		animalTypeService animaltype.AnimalTypeService
		validator         *validator.Validate
	}
)

func NewAnimalTypeHandler(animalTypeService animaltype.AnimalTypeService, validator *validator.Validate) AnimalTypeHandler {
	return &animalTypeHandler{
		animalTypeService: animalTypeService,
		validator:         validator,
	}
}

// GetAnimalTypes handles GET /animal_types
// @Summary List animal types
// @Tags AnimalTypes
// @Produce json
// @Success 200 {object} presenters.Response{data=[]domain.AnimalTypeResponse}
// @Failure 500 {object} presenters.Response
// @Router /animal_types [get]
func (h *animalTypeHandler) GetAnimalTypes(c *fiber.Ctx) error {
	res, err := h.animalTypeService.GetAnimalTypes(c.Context())
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetAnimalTypes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAnimalTypes)
}

// GetAnimalTypeByID handles GET /animal_types/:id
// @Summary Get an animal type
// @Tags AnimalTypes
// @Produce json
// @Param id path int true "Animal type ID"
// @Success 200 {object} presenters.Response{data=domain.AnimalTypeResponse}
// @Failure 404 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Router /animal_types/{id} [get]
func (h *animalTypeHandler) GetAnimalTypeByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedGetAnimalTypes, domain.ErrAnimalTypeNotFound)
	}

	res, err := h.animalTypeService.GetAnimalTypeByID(c.Context(), id)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetAnimalTypes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAnimalTypes)
}

// AddAnimalType handles POST /animal_types
// @Summary Create an animal type
// @Tags AnimalTypes
// @Accept json
// @Produce json
// @Param request body domain.CreateAnimalTypeRequest true "Animal type to create"
// @Success 201 {object} presenters.Response{data=domain.AnimalTypeResponse}
// @Failure 400 {object} presenters.Response
// @Failure 401 {object} presenters.Response
// @Failure 422 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Security SessionCookie
// @Router /animal_types [post]
func (h *animalTypeHandler) AddAnimalType(c *fiber.Ctx) error {
	req := new(domain.CreateAnimalTypeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.MessageFailedAddAnimalType, missingField(err))
	}

	res, err := h.animalTypeService.CreateAnimalType(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedAddAnimalType, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddAnimalType)
}

// UpdateAnimalType serves both PUT and PATCH with merge semantics.
// @Summary Update an animal type
// @Tags AnimalTypes
// @Accept json
// @Produce json
// @Param id path int true "Animal type ID"
// @Param request body object true "Fields to change; null clears an optional field"
// @Success 200 {object} presenters.Response{data=domain.AnimalTypeResponse}
// @Failure 400 {object} presenters.Response
// @Failure 401 {object} presenters.Response
// @Failure 404 {object} presenters.Response
// @Failure 422 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Security SessionCookie
// @Router /animal_types/{id} [patch]
// @Router /animal_types/{id} [put]
func (h *animalTypeHandler) UpdateAnimalType(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedUpdateAnimalType, domain.ErrAnimalTypeNotFound)
	}

	patch, err := parsePatch(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.animalTypeService.UpdateAnimalType(c.Context(), id, patch)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateAnimalType, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateAnimalType)
}

// DeleteAnimalType handles DELETE /animal_types/:id
// @Summary Delete an animal type
// @Description Animals of this type are kept with animal_type_id cleared.
// @Tags AnimalTypes
// @Produce json
// @Param id path int true "Animal type ID"
// @Success 200 {object} presenters.Response
// @Failure 401 {object} presenters.Response
// @Failure 404 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Security SessionCookie
// @Router /animal_types/{id} [delete]
func (h *animalTypeHandler) DeleteAnimalType(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedDeleteAnimalType, domain.ErrAnimalTypeNotFound)
	}

	if err := h.animalTypeService.DeleteAnimalType(c.Context(), id); err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteAnimalType, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteAnimalType)
}
