package handlers

import (
	"barnmonitor-backend/domain"
	"barnmonitor-backend/internal/api/presenters"
	"barnmonitor-backend/pkg/farmer"

	"github.com/gofiber/fiber/v2"
)

type (
	FarmerHandler interface {
		GetFarmers(c *fiber.Ctx) error
		GetFarmerByID(c *fiber.Ctx) error
		DeleteFarmer(c *fiber.Ctx) error
	}

	farmerHandler struct {
		farmerService farmer.FarmerService
	}
)

func NewFarmerHandler(farmerService farmer.FarmerService) FarmerHandler {
	return &farmerHandler{
		farmerService: farmerService,
	}
}

// GetFarmers handles GET /farmers
// @Summary List farmers
// @Tags Farmers
// @Produce json
// @Success 200 {object} presenters.Response{data=[]domain.FarmerResponse}
// @Failure 500 {object} presenters.Response
// @Router /farmers [get]
func (h *farmerHandler) GetFarmers(c *fiber.Ctx) error {
	res, err := h.farmerService.GetFarmers(c.Context())
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetFarmers, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFarmers)
}

// GetFarmerByID handles GET /farmers/:id
// @Summary Get a farmer with their animals
// @Tags Farmers
// @Produce json
// @Param id path int true "Farmer ID"
// @Success 200 {object} presenters.Response{data=domain.FarmerDetailResponse}
// @Failure 404 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Router /farmers/{id} [get]
func (h *farmerHandler) GetFarmerByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedGetFarmer, domain.ErrFarmerNotFound)
	}

	res, err := h.farmerService.GetFarmerByID(c.Context(), id)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetFarmer, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFarmer)
}

// DeleteFarmer handles DELETE /farmers/:id
// @Summary Delete a farmer
// @Description Deletes the farmer, their animals and every record that belongs to those animals.
// @Tags Farmers
// @Produce json
// @Param id path int true "Farmer ID"
// @Success 200 {object} presenters.Response
// @Failure 401 {object} presenters.Response
// @Failure 404 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Security SessionCookie
// @Router /farmers/{id} [delete]
func (h *farmerHandler) DeleteFarmer(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedDeleteFarmer, domain.ErrFarmerNotFound)
	}

	if err := h.farmerService.DeleteFarmer(c.Context(), id); err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteFarmer, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFarmer)
}
