package handlers

import (
	"barnmonitor-backend/domain"
	"barnmonitor-backend/internal/api/presenters"
	"barnmonitor-backend/pkg/feed"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FeedHandler interface {
		GetFeeds(c *fiber.Ctx) error
		GetFeedByID(c *fiber.Ctx) error
		AddFeed(c *fiber.Ctx) error
		DeleteFeed(c *fiber.Ctx) error
	}

	feedHandler struct {
		feedService feed.FeedService
		validator   *validator.Validate
	}
)

func NewFeedHandler(feedService feed.FeedService, validator *validator.Validate) FeedHandler {
	return &feedHandler{
		feedService: feedService,
		validator:   validator,
	}
}

// GetFeeds handles GET /feeds
// @Summary List feed records
// @Tags Feeds
// @Produce json
// @Success 200 {object} presenters.Response{data=[]domain.FeedResponse}
// @Failure 500 {object} presenters.Response
// @Router /feeds [get]
func (h *feedHandler) GetFeeds(c *fiber.Ctx) error {
	res, err := h.feedService.GetFeeds(c.Context())
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetFeeds, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFeeds)
}

// GetFeedByID handles GET /feeds/:id
// @Summary Get a feed record
// @Tags Feeds
// @Produce json
// @Param id path int true "Feed record ID"
// @Success 200 {object} presenters.Response{data=domain.FeedResponse}
// @Failure 404 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Router /feeds/{id} [get]
func (h *feedHandler) GetFeedByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedGetFeeds, domain.ErrFeedNotFound)
	}

	res, err := h.feedService.GetFeedByID(c.Context(), id)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetFeeds, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFeeds)
}

// AddFeed handles POST /feeds
// @Summary Create a feed record
// @Tags Feeds
// @Accept json
// @Produce json
// @Param request body domain.CreateFeedRequest true "Feed record to create"
// @Success 201 {object} presenters.Response{data=domain.FeedResponse}
// @Failure 400 {object} presenters.Response
// @Failure 401 {object} presenters.Response
// @Failure 422 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Security SessionCookie
// @Router /feeds [post]
func (h *feedHandler) AddFeed(c *fiber.Ctx) error {
	req := new(domain.CreateFeedRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.MessageFailedAddFeed, missingField(err))
	}

	res, err := h.feedService.CreateFeed(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedAddFeed, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFeed)
}

// DeleteFeed handles DELETE /feeds/:id
// @Summary Delete a feed record
// @Tags Feeds
// @Produce json
// @Param id path int true "Feed record ID"
// @Success 200 {object} presenters.Response
// @Failure 401 {object} presenters.Response
// @Failure 404 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Security SessionCookie
// @Router /feeds/{id} [delete]
func (h *feedHandler) DeleteFeed(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedDeleteFeed, domain.ErrFeedNotFound)
	}

	if err := h.feedService.DeleteFeed(c.Context(), id); err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteFeed, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFeed)
}
