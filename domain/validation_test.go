package domain

import (
	"strings"
	"testing"
	"time"

	"barnmonitor-backend/entities"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestValidateAnimalBirthDate(t *testing.T) {
	today := Today(time.Date(2024, 5, 10, 15, 30, 0, 0, time.Local))

	cases := []struct {
		birthDate string
		field     string
	}{
		{"2024-05-09", ""},
		{"2024-05-10", "birth_date"},
		{"2024-05-11", "birth_date"},
		{"10/05/2024", "birth_date"},
	}
	for _, tc := range cases {
		err := ValidateAnimal(&entities.Animal{Name: "Bessie", BirthDate: tc.birthDate}, today)
		if tc.field == "" {
			assert.Nil(t, err, tc.birthDate)
			continue
		}
		if assert.NotNil(t, err, tc.birthDate) {
			assert.Equal(t, tc.field, err.Field)
		}
	}
}

func TestValidateAnimalFields(t *testing.T) {
	today := Today(time.Now())

	err := ValidateAnimal(&entities.Animal{Name: "  ", BirthDate: "2020-01-01"}, today)
	if assert.NotNil(t, err) {
		assert.Equal(t, "name", err.Field)
	}

	err = ValidateAnimal(&entities.Animal{Name: "Bessie", Age: ptr(-1), BirthDate: "2020-01-01"}, today)
	if assert.NotNil(t, err) {
		assert.Equal(t, "age", err.Field)
	}

	assert.Nil(t, ValidateAnimal(&entities.Animal{Name: "Bessie", Age: ptr(0), BirthDate: "2020-01-01"}, today))
}

func TestValidateSale(t *testing.T) {
	valid := entities.Sale{ProductType: "milk", QuantitySold: 0, SaleDate: "2024-01-01", Amount: 0}
	assert.Nil(t, ValidateSale(&valid))

	negative := valid
	negative.QuantitySold = -1
	if err := ValidateSale(&negative); assert.NotNil(t, err) {
		assert.Equal(t, "quantity_sold", err.Field)
	}

	negative = valid
	negative.Amount = -0.5
	if err := ValidateSale(&negative); assert.NotNil(t, err) {
		assert.Equal(t, "amount", err.Field)
	}

	badDate := valid
	badDate.SaleDate = "yesterday"
	if err := ValidateSale(&badDate); assert.NotNil(t, err) {
		assert.Equal(t, "sale_date", err.Field)
	}
}

func TestValidateFeedAndProduction(t *testing.T) {
	assert.Nil(t, ValidateFeed(&entities.Feed{FeedType: "hay", Quantity: 0, Date: "2024-01-01"}))
	if err := ValidateFeed(&entities.Feed{FeedType: "hay", Quantity: -3, Date: "2024-01-01"}); assert.NotNil(t, err) {
		assert.Equal(t, "quantity", err.Field)
	}

	assert.Nil(t, ValidateProduction(&entities.Production{ProductType: "milk", Quantity: 12, ProductionDate: "2024-01-01"}))
	if err := ValidateProduction(&entities.Production{ProductType: "", Quantity: 12, ProductionDate: "2024-01-01"}); assert.NotNil(t, err) {
		assert.Equal(t, "product_type", err.Field)
	}
}

func TestValidateHealthRecord(t *testing.T) {
	if err := ValidateHealthRecord(&entities.HealthRecord{Treatment: "x", VetName: "y"}); assert.NotNil(t, err) {
		assert.Equal(t, "checkup_date", err.Field)
	}
	assert.Nil(t, ValidateHealthRecord(&entities.HealthRecord{CheckupDate: time.Now(), Treatment: "x", VetName: "y"}))
}

func TestValidatePassword(t *testing.T) {
	assert.Nil(t, ValidatePassword(strings.Repeat("a", MaxPasswordBytes)))

	err := ValidatePassword(strings.Repeat("a", MaxPasswordBytes+1))
	if assert.NotNil(t, err) {
		assert.Equal(t, "password", err.Field)
	}
}

func TestParseCheckupDate(t *testing.T) {
	d, err := ParseCheckupDate("2024-03-01")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseCheckupDate("2024-03-01T10:00:00Z")
	assert.NoError(t, err)

	_, err = ParseCheckupDate("March 1st")
	assert.Error(t, err)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(ErrAnimalNotFound))
	assert.Equal(t, KindDomainValidation, KindOf(&ValidationError{Field: "age"}))
	assert.Equal(t, KindMissingField, KindOf(NewMissingField("name")))
	assert.Equal(t, KindInternal, KindOf(assert.AnError))
	assert.Equal(t, "Missing field: name", NewMissingField("name").Error())
}
