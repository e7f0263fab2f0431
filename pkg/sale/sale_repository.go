package sale

import (
	"context"

	"barnmonitor-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	SaleRepository interface {
		GetSales(ctx context.Context) ([]*entities.Sale, error)
		GetSaleByID(ctx context.Context, id uint) (*entities.Sale, error)
		GetSaleDetails(ctx context.Context, id uint) (*entities.Sale, error)
		CreateSale(ctx context.Context, sale *entities.Sale) error
		UpdateSale(ctx context.Context, sale *entities.Sale) error
		DeleteSale(ctx context.Context, id uint) error
	}

	saleRepository struct {
		db *gorm.DB
	}
)

func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) GetSales(ctx context.Context) ([]*entities.Sale, error) {
	var sales []*entities.Sale
	if err := r.db.WithContext(ctx).Order("id").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *saleRepository) GetSaleByID(ctx context.Context, id uint) (*entities.Sale, error) {
	var sale entities.Sale
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&sale).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) GetSaleDetails(ctx context.Context, id uint) (*entities.Sale, error) {
	var sale entities.Sale
	err := r.db.WithContext(ctx).
		Preload("Animal").
		Preload("Production").
		Where("id = ?", id).
		First(&sale).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) CreateSale(ctx context.Context, sale *entities.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(sale).Error
	})
}

func (r *saleRepository) UpdateSale(ctx context.Context, sale *entities.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Save(sale).Error
	})
}

func (r *saleRepository) DeleteSale(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&entities.Sale{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
