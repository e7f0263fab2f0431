package handlers

import (
	"barnmonitor-backend/domain"
	"barnmonitor-backend/internal/api/presenters"
	"barnmonitor-backend/internal/middleware"
	"barnmonitor-backend/pkg/animal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AnimalHandler interface {
		GetAnimals(c *fiber.Ctx) error
		GetAnimalByID(c *fiber.Ctx) error
		AddAnimal(c *fiber.Ctx) error
		UpdateAnimal(c *fiber.Ctx) error
		DeleteAnimal(c *fiber.Ctx) error
		UploadAnimalImage(c *fiber.Ctx) error
	}

	animalHandler struct {
		animalService animal.AnimalService
		validator     *validator.Validate
	}
)

func NewAnimalHandler(animalService animal.AnimalService, validator *validator.Validate) AnimalHandler {
	return &animalHandler{
		animalService: animalService,
		validator:     validator,
	}
}

// GetAnimals handles GET /animals
// @Summary List animals
// @Tags Animals
// @Produce json
// @Success 200 {object} presenters.Response{data=[]domain.AnimalResponse}
// @Failure 500 {object} presenters.Response
// @Router /animals [get]
func (h *animalHandler) GetAnimals(c *fiber.Ctx) error {
	res, err := h.animalService.GetAnimals(c.Context())
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetAnimals, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAnimals)
}

// GetAnimalByID handles GET /animals/:id
// @Summary Get an animal
// @Tags Animals
// @Produce json
// @Param id path int true "Animal ID"
// @Success 200 {object} presenters.Response{data=domain.AnimalDetailResponse}
// @Failure 404 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Router /animals/{id} [get]
func (h *animalHandler) GetAnimalByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedGetAnimals, domain.ErrAnimalNotFound)
	}

	res, err := h.animalService.GetAnimalByID(c.Context(), id)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetAnimals, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAnimals)
}

// AddAnimal handles POST /animals
// @Summary Create an animal
// @Description Without farmer_id the animal belongs to the session farmer. birth_date must be before today.
// @Tags Animals
// @Accept json
// @Produce json
// @Param request body domain.CreateAnimalRequest true "Animal to create"
// @Success 201 {object} presenters.Response{data=domain.AnimalResponse}
// @Failure 400 {object} presenters.Response
// @Failure 401 {object} presenters.Response
// @Failure 422 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Security SessionCookie
// @Router /animals [post]
func (h *animalHandler) AddAnimal(c *fiber.Ctx) error {
	req := new(domain.CreateAnimalRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.MessageFailedAddAnimal, missingField(err))
	}

	ownerID, _ := middleware.FarmerID(c)
	res, err := h.animalService.CreateAnimal(c.Context(), *req, ownerID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedAddAnimal, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddAnimal)
}

// UpdateAnimal handles PATCH /animals/:id
// @Summary Update an animal
// @Tags Animals
// @Accept json
// @Produce json
// @Param id path int true "Animal ID"
// @Param request body object true "Fields to change; null clears an optional field"
// @Success 200 {object} presenters.Response{data=domain.AnimalResponse}
// @Failure 400 {object} presenters.Response
// @Failure 401 {object} presenters.Response
// @Failure 404 {object} presenters.Response
// @Failure 422 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Security SessionCookie
// @Router /animals/{id} [patch]
func (h *animalHandler) UpdateAnimal(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedUpdateAnimal, domain.ErrAnimalNotFound)
	}

	patch, err := parsePatch(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.animalService.UpdateAnimal(c.Context(), id, patch)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateAnimal, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateAnimal)
}

// DeleteAnimal handles DELETE /animals/:id
// @Summary Delete an animal
// @Description Deletes the animal with its feed, health, production and sale records.
// @Tags Animals
// @Produce json
// @Param id path int true "Animal ID"
// @Success 200 {object} presenters.Response
// @Failure 401 {object} presenters.Response
// @Failure 404 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Security SessionCookie
// @Router /animals/{id} [delete]
func (h *animalHandler) DeleteAnimal(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedDeleteAnimal, domain.ErrAnimalNotFound)
	}

	if err := h.animalService.DeleteAnimal(c.Context(), id); err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteAnimal, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteAnimal)
}

// UploadAnimalImage handles POST /animals/:id/image
// @Summary Upload an animal image
// @Tags Animals
// @Accept mpfd
// @Produce json
// @Param id path int true "Animal ID"
// @Param image formData file true "JPEG, PNG, WebP or GIF image"
// @Success 200 {object} presenters.Response{data=domain.AnimalResponse}
// @Failure 400 {object} presenters.Response
// @Failure 401 {object} presenters.Response
// @Failure 404 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Failure 503 {object} presenters.Response
// @Security SessionCookie
// @Router /animals/{id}/image [post]
func (h *animalHandler) UploadAnimalImage(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedUploadImage, domain.ErrAnimalNotFound)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUploadImage, domain.NewMissingField("image"))
	}

	res, err := h.animalService.UploadAnimalImage(c.Context(), id, file)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUploadImage, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadImage)
}
