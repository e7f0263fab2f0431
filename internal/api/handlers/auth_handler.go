package handlers

import (
	"barnmonitor-backend/domain"
	"barnmonitor-backend/internal/api/presenters"
	"barnmonitor-backend/internal/middleware"
	"barnmonitor-backend/pkg/farmer"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		Login(c *fiber.Ctx) error
		Signup(c *fiber.Ctx) error
		CheckSession(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		ClearSession(c *fiber.Ctx) error
	}

	authHandler struct {
		authService  farmer.AuthService
		validator    *validator.Validate
		cookieSecure bool
	}
)

func NewAuthHandler(authService farmer.AuthService, validator *validator.Validate, cookieSecure bool) AuthHandler {
	return &authHandler{
		authService:  authService,
		validator:    validator,
		cookieSecure: cookieSecure,
	}
}

// Login handles POST /login
// @Summary Log in a farmer
// @Description Starts a session and sets the session cookie. Unknown emails and wrong passwords get the same 401.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body domain.LoginRequest true "Email and password"
// @Success 200 {object} presenters.Response{data=domain.AuthResponse}
// @Failure 400 {object} presenters.Response
// @Failure 401 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Router /login [post]
func (h *authHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.MessageFailedLogin, missingField(err))
	}

	res, err := h.authService.Login(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedLogin, err)
	}

	middleware.SetSessionCookie(c, res.Token, res.ExpiresAt, h.cookieSecure)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

// Signup handles POST /signup
// @Summary Register a farmer
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body domain.SignupRequest true "Farmer details"
// @Success 201 {object} presenters.Response{data=domain.AuthResponse}
// @Failure 400 {object} presenters.Response
// @Failure 409 {object} presenters.Response
// @Failure 422 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Router /signup [post]
func (h *authHandler) Signup(c *fiber.Ctx) error {
	req := new(domain.SignupRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.MessageFailedSignup, missingField(err))
	}

	res, err := h.authService.Signup(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedSignup, err)
	}

	middleware.SetSessionCookie(c, res.Token, res.ExpiresAt, h.cookieSecure)
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSignup)
}

// CheckSession handles GET /check_session
// @Summary Current session farmer
// @Tags Auth
// @Produce json
// @Success 200 {object} presenters.Response{data=domain.FarmerResponse}
// @Failure 401 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Router /check_session [get]
func (h *authHandler) CheckSession(c *fiber.Ctx) error {
	farmerID, ok := middleware.FarmerID(c)
	if !ok {
		return presenters.HandleError(c, domain.MessageFailedCheckSession, domain.ErrNotAuthorized)
	}

	res, err := h.authService.CheckSession(c.Context(), farmerID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedCheckSession, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCheckSession)
}

// Logout handles DELETE /logout
// @Summary Log out
// @Tags Auth
// @Produce json
// @Success 200 {object} presenters.Response
// @Failure 500 {object} presenters.Response
// @Router /logout [delete]
func (h *authHandler) Logout(c *fiber.Ctx) error {
	if err := h.endSession(c); err != nil {
		return presenters.HandleError(c, domain.MessageFailedLogout, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogout)
}

// ClearSession is Logout without a response body.
// @Summary Clear the session
// @Tags Auth
// @Produce json
// @Success 204 "No Content"
// @Failure 500 {object} presenters.Response
// @Router /clear_session [delete]
func (h *authHandler) ClearSession(c *fiber.Ctx) error {
	if err := h.endSession(c); err != nil {
		return presenters.HandleError(c, domain.MessageFailedLogout, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *authHandler) endSession(c *fiber.Ctx) error {
	if err := h.authService.Logout(c.Context(), middleware.SessionToken(c)); err != nil {
		return err
	}
	middleware.ClearSessionCookie(c, h.cookieSecure)
	return nil
}
