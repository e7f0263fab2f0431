package utils

import (
	"errors"

	"barnmonitor-backend/domain"

	"gorm.io/gorm"
)

// TranslateStorageError turns a constraint violation reported by the
// database into a domain validation error. Anything else is internal.
func TranslateStorageError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return err
	}
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &domain.ValidationError{Field: "record", Reason: "violates a uniqueness constraint"}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &domain.ValidationError{Field: "record", Reason: "references a row that does not exist"}
	default:
		return domain.NewInternal(err)
	}
}
