package domain

import (
	"fmt"
	"strings"
	"time"

	"barnmonitor-backend/entities"
)

const DateLayout = "2006-01-02"

// MaxPasswordBytes is the longest password bcrypt will hash.
const MaxPasswordBytes = 72

// ValidationError names the field whose invariant was broken.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// ParseCheckupDate accepts a plain date or a full RFC3339 timestamp.
func ParseCheckupDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// Today is midnight UTC of the current local calendar date, the reference
// point for birth date checks.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validateNonEmpty(field, value string) *ValidationError {
	if strings.TrimSpace(value) == "" {
		return invalid(field, "must be a non-empty string")
	}
	return nil
}

func validateNonNegative(field string, value int) *ValidationError {
	if value < 0 {
		return invalid(field, "must be a non-negative integer")
	}
	return nil
}

func validateDate(field, value string) *ValidationError {
	if _, err := ParseDate(value); err != nil {
		return invalid(field, "must be in the format YYYY-MM-DD")
	}
	return nil
}

func first(errs ...*ValidationError) *ValidationError {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func ValidateFarmer(f *entities.Farmer) *ValidationError {
	return first(
		validateNonEmpty("name", f.Name),
		validateNonEmpty("email", f.Email),
		validateNonEmpty("phone", f.Phone),
	)
}

func ValidatePassword(password string) *ValidationError {
	if len(password) > MaxPasswordBytes {
		return invalid("password", fmt.Sprintf("must be at most %d bytes", MaxPasswordBytes))
	}
	return nil
}

func ValidateAnimalType(t *entities.AnimalType) *ValidationError {
	return validateNonEmpty("type_name", t.TypeName)
}

// ValidateAnimal checks the animal as it would be written. The birth date
// must fall strictly before today.
func ValidateAnimal(a *entities.Animal, today time.Time) *ValidationError {
	if err := validateNonEmpty("name", a.Name); err != nil {
		return err
	}
	if a.Age != nil && *a.Age < 0 {
		return invalid("age", "must be a non-negative integer")
	}
	birthDate, err := ParseDate(a.BirthDate)
	if err != nil {
		return invalid("birth_date", "must be in the format YYYY-MM-DD")
	}
	if !birthDate.Before(today) {
		return invalid("birth_date", "cannot be in the future")
	}
	return nil
}

func ValidateFeed(f *entities.Feed) *ValidationError {
	return first(
		validateNonEmpty("feed_type", f.FeedType),
		validateNonNegative("quantity", f.Quantity),
		validateDate("date", f.Date),
	)
}

func ValidateHealthRecord(h *entities.HealthRecord) *ValidationError {
	if h.CheckupDate.IsZero() {
		return invalid("checkup_date", "is required")
	}
	return first(
		validateNonEmpty("treatment", h.Treatment),
		validateNonEmpty("vet_name", h.VetName),
	)
}

func ValidateProduction(p *entities.Production) *ValidationError {
	return first(
		validateNonEmpty("product_type", p.ProductType),
		validateNonNegative("quantity", p.Quantity),
		validateDate("production_date", p.ProductionDate),
	)
}

func ValidateSale(s *entities.Sale) *ValidationError {
	err := first(
		validateNonEmpty("product_type", s.ProductType),
		validateNonNegative("quantity_sold", s.QuantitySold),
		validateDate("sale_date", s.SaleDate),
	)
	if err != nil {
		return err
	}
	if s.Amount < 0 {
		return invalid("amount", "must be a non-negative number")
	}
	return nil
}
