package production

import (
	"context"

	"barnmonitor-backend/entities"
	"barnmonitor-backend/pkg/cascade"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	ProductionRepository interface {
		GetProductions(ctx context.Context) ([]*entities.Production, error)
		GetProductionByID(ctx context.Context, id uint) (*entities.Production, error)
		GetProductionDetails(ctx context.Context, id uint) (*entities.Production, error)
		ProductionExists(ctx context.Context, id uint) (bool, error)
		CreateProduction(ctx context.Context, production *entities.Production) error
		UpdateProduction(ctx context.Context, production *entities.Production) error
		DeleteProduction(ctx context.Context, id uint) error
	}

	productionRepository struct {
		db *gorm.DB
	}
)

func NewProductionRepository(db *gorm.DB) ProductionRepository {
	return &productionRepository{db: db}
}

func (r *productionRepository) GetProductions(ctx context.Context) ([]*entities.Production, error) {
	var productions []*entities.Production
	if err := r.db.WithContext(ctx).Order("id").Find(&productions).Error; err != nil {
		return nil, err
	}
	return productions, nil
}

func (r *productionRepository) GetProductionByID(ctx context.Context, id uint) (*entities.Production, error) {
	var production entities.Production
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&production).Error; err != nil {
		return nil, err
	}
	return &production, nil
}

func (r *productionRepository) GetProductionDetails(ctx context.Context, id uint) (*entities.Production, error) {
	var production entities.Production
	err := r.db.WithContext(ctx).
		Preload("Animal").
		Preload("Sales", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("id = ?", id).
		First(&production).Error
	if err != nil {
		return nil, err
	}
	return &production, nil
}

func (r *productionRepository) ProductionExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Production{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *productionRepository) CreateProduction(ctx context.Context, production *entities.Production) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(production).Error
	})
}

func (r *productionRepository) UpdateProduction(ctx context.Context, production *entities.Production) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Save(production).Error
	})
}

// DeleteProduction removes the record together with the sales that
// reference it.
func (r *productionRepository) DeleteProduction(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var production entities.Production
		if err := tx.Select("id").Where("id = ?", id).First(&production).Error; err != nil {
			return err
		}
		return cascade.DeleteProductions(tx, id)
	})
}
