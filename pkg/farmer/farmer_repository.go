package farmer

import (
	"context"
	"errors"

	"barnmonitor-backend/entities"
	"barnmonitor-backend/pkg/cascade"

	"gorm.io/gorm"
)

type (
	FarmerRepository interface {
		GetFarmers(ctx context.Context) ([]*entities.Farmer, error)
		GetFarmerByID(ctx context.Context, id uint) (*entities.Farmer, error)
		GetFarmerByEmail(ctx context.Context, email string) (*entities.Farmer, error)
		CreateFarmer(ctx context.Context, farmer *entities.Farmer) error
		DeleteFarmer(ctx context.Context, id uint) error
		FarmerExists(ctx context.Context, id uint) (bool, error)
	}

	farmerRepository struct {
		db *gorm.DB
	}
)

func NewFarmerRepository(db *gorm.DB) FarmerRepository {
	return &farmerRepository{db: db}
}

func (r *farmerRepository) GetFarmers(ctx context.Context) ([]*entities.Farmer, error) {
	var farmers []*entities.Farmer
	if err := r.db.WithContext(ctx).Order("id").Find(&farmers).Error; err != nil {
		return nil, err
	}
	return farmers, nil
}

func (r *farmerRepository) GetFarmerByID(ctx context.Context, id uint) (*entities.Farmer, error) {
	var farmer entities.Farmer
	err := r.db.WithContext(ctx).
		Preload("Animals", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("id = ?", id).
		First(&farmer).Error
	if err != nil {
		return nil, err
	}
	return &farmer, nil
}

func (r *farmerRepository) GetFarmerByEmail(ctx context.Context, email string) (*entities.Farmer, error) {
	var farmer entities.Farmer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&farmer).Error; err != nil {
		return nil, err
	}
	return &farmer, nil
}

func (r *farmerRepository) CreateFarmer(ctx context.Context, farmer *entities.Farmer) error {
	return r.db.WithContext(ctx).Create(farmer).Error
}

// DeleteFarmer removes the farmer and every dependent row in one
// transaction. A missing farmer yields gorm.ErrRecordNotFound.
func (r *farmerRepository) DeleteFarmer(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var farmer entities.Farmer
		if err := tx.Select("id").Where("id = ?", id).First(&farmer).Error; err != nil {
			return err
		}
		return cascade.DeleteFarmer(tx, id)
	})
}

func (r *farmerRepository) FarmerExists(ctx context.Context, id uint) (bool, error) {
	var farmer entities.Farmer
	err := r.db.WithContext(ctx).Select("id").Where("id = ?", id).First(&farmer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}
