package animaltype

import (
	"context"
	"errors"

	"barnmonitor-backend/entities"
	"barnmonitor-backend/pkg/cascade"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	AnimalTypeRepository interface {
		GetAnimalTypes(ctx context.Context) ([]*entities.AnimalType, error)
		GetAnimalTypeByID(ctx context.Context, id uint) (*entities.AnimalType, error)
		AnimalTypeExists(ctx context.Context, id uint) (bool, error)
		TypeNameTaken(ctx context.Context, typeName string, exceptID uint) (bool, error)
		CreateAnimalType(ctx context.Context, animalType *entities.AnimalType) error
		UpdateAnimalType(ctx context.Context, animalType *entities.AnimalType) error
		DeleteAnimalType(ctx context.Context, id uint) error
	}

	animalTypeRepository struct {
		db *gorm.DB
	}
)

func NewAnimalTypeRepository(db *gorm.DB) AnimalTypeRepository {
	return &animalTypeRepository{db: db}
}

func (r *animalTypeRepository) GetAnimalTypes(ctx context.Context) ([]*entities.AnimalType, error) {
	var animalTypes []*entities.AnimalType
	if err := r.db.WithContext(ctx).Order("id").Find(&animalTypes).Error; err != nil {
		return nil, err
	}
	return animalTypes, nil
}

func (r *animalTypeRepository) GetAnimalTypeByID(ctx context.Context, id uint) (*entities.AnimalType, error) {
	var animalType entities.AnimalType
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&animalType).Error; err != nil {
		return nil, err
	}
	return &animalType, nil
}

func (r *animalTypeRepository) AnimalTypeExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.AnimalType{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *animalTypeRepository) TypeNameTaken(ctx context.Context, typeName string, exceptID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.AnimalType{}).
		Where("type_name = ? AND id <> ?", typeName, exceptID).
		Count(&count).Error
	return count > 0, err
}

func (r *animalTypeRepository) CreateAnimalType(ctx context.Context, animalType *entities.AnimalType) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(animalType).Error
	})
}

func (r *animalTypeRepository) UpdateAnimalType(ctx context.Context, animalType *entities.AnimalType) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Save(animalType).Error
	})
}

// DeleteAnimalType removes the type and detaches its animals. A missing type
// yields gorm.ErrRecordNotFound.
func (r *animalTypeRepository) DeleteAnimalType(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var animalType entities.AnimalType
		if err := tx.Select("id").Where("id = ?", id).First(&animalType).Error; err != nil {
			return err
		}
		return cascade.DeleteAnimalType(tx, id)
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
