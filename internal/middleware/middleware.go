package middleware

import (
	"strings"
	"time"

	"barnmonitor-backend/domain"
	"barnmonitor-backend/internal/api/presenters"
	"barnmonitor-backend/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

const (
	SessionCookieName = "barnmonitor_session"

	localFarmerID     = "farmer_id"
	localSessionToken = "session_token"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		SessionMiddleware() fiber.Handler
		AuthMiddleware() fiber.Handler
		RequestLogger() fiber.Handler
	}

	Config struct {
		CORSOrigin   string
		CookieSecure bool
	}

	middleware struct {
		sessionService session.SessionService
		config         Config
		logger         *zap.Logger
	}
)

func NewMiddleware(sessionService session.SessionService, config Config, logger *zap.Logger) Middleware {
	return &middleware{
		sessionService: sessionService,
		config:         config,
		logger:         logger,
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     m.config.CORSOrigin,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}

// SessionMiddleware resolves the session carried by the request, if any,
// and records the bound farmer for later handlers. Requests without a valid
// session continue anonymously.
func (m *middleware) SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, fromCookie := tokenFromRequest(c)
		if token == "" {
			return c.Next()
		}
		c.Locals(localSessionToken, token)

		farmerID, expiresAt, err := m.sessionService.Resolve(c.Context(), token)
		if err != nil {
			if domain.KindOf(err) == domain.KindNotAuthorized {
				return c.Next()
			}
			return presenters.HandleError(c, domain.MessageFailedProcessRequest, err)
		}

		c.Locals(localFarmerID, farmerID)
		if fromCookie {
			SetSessionCookie(c, token, expiresAt, m.config.CookieSecure)
		}
		return c.Next()
	}
}

func (m *middleware) AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := FarmerID(c); !ok {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageNotAuthorized, domain.ErrNotAuthorized)
		}
		return c.Next()
	}
}

func (m *middleware) RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		m.logger.Info("http request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.IP()),
		)
		return err
	}
}

func tokenFromRequest(c *fiber.Ctx) (string, bool) {
	if token := c.Cookies(SessionCookieName); token != "" {
		return token, true
	}
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:]), false
	}
	return "", false
}

// FarmerID returns the farmer bound to the request's session.
func FarmerID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(localFarmerID).(uint)
	return id, ok && id != 0
}

// SessionToken returns the token the request carried, whether or not it
// resolved to a live session.
func SessionToken(c *fiber.Ctx) string {
	if token, ok := c.Locals(localSessionToken).(string); ok {
		return token
	}
	token, _ := tokenFromRequest(c)
	return token
}

func SetSessionCookie(c *fiber.Ctx, token string, expiresAt time.Time, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: sameSite(secure),
	})
}

func ClearSessionCookie(c *fiber.Ctx, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: sameSite(secure),
	})
}

// Browsers reject SameSite=None on cookies that are not Secure.
func sameSite(secure bool) string {
	if secure {
		return fiber.CookieSameSiteNoneMode
	}
	return fiber.CookieSameSiteLaxMode
}
