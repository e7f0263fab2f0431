package handlers

import (
	"errors"
	"strconv"

	"barnmonitor-backend/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// parseID reads the :id route parameter. Ids that are not positive integers
// cannot name a row.
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func parsePatch(c *fiber.Ctx) (domain.Patch, error) {
	return domain.ParsePatch(c.Body())
}

// missingField turns a presence failure from the validator into a
// MissingField error naming the first absent key.
func missingField(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return domain.NewMissingField(verrs[0].Field())
	}
	return &domain.AppError{Kind: domain.KindMissingField, Message: err.Error()}
}
