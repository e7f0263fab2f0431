package health

import (
	"context"

	"barnmonitor-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	HealthRecordRepository interface {
		GetHealthRecords(ctx context.Context) ([]*entities.HealthRecord, error)
		GetHealthRecordByID(ctx context.Context, id uint) (*entities.HealthRecord, error)
		CreateHealthRecord(ctx context.Context, record *entities.HealthRecord) error
		UpdateHealthRecord(ctx context.Context, record *entities.HealthRecord) error
		DeleteHealthRecord(ctx context.Context, id uint) error
	}

	healthRecordRepository struct {
		db *gorm.DB
	}
)

func NewHealthRecordRepository(db *gorm.DB) HealthRecordRepository {
	return &healthRecordRepository{db: db}
}

func (r *healthRecordRepository) GetHealthRecords(ctx context.Context) ([]*entities.HealthRecord, error) {
	var records []*entities.HealthRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *healthRecordRepository) GetHealthRecordByID(ctx context.Context, id uint) (*entities.HealthRecord, error) {
	var record entities.HealthRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *healthRecordRepository) CreateHealthRecord(ctx context.Context, record *entities.HealthRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(record).Error
	})
}

func (r *healthRecordRepository) UpdateHealthRecord(ctx context.Context, record *entities.HealthRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Save(record).Error
	})
}

func (r *healthRecordRepository) DeleteHealthRecord(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&entities.HealthRecord{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
