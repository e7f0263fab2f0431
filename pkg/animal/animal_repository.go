package animal

import (
	"context"

	"barnmonitor-backend/entities"
	"barnmonitor-backend/pkg/cascade"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	AnimalRepository interface {
		GetAnimals(ctx context.Context) ([]*entities.Animal, error)
		GetAnimalByID(ctx context.Context, id uint) (*entities.Animal, error)
		GetAnimalDetails(ctx context.Context, id uint) (*entities.Animal, error)
		GetAnimalByName(ctx context.Context, name string) (*entities.Animal, error)
		AnimalExists(ctx context.Context, id uint) (bool, error)
		NameTaken(ctx context.Context, name string, exceptID uint) (bool, error)
		CreateAnimal(ctx context.Context, animal *entities.Animal) error
		UpdateAnimal(ctx context.Context, animal *entities.Animal) error
		DeleteAnimal(ctx context.Context, id uint) (*entities.Animal, error)
	}

	animalRepository struct {
		db *gorm.DB
	}
)

func NewAnimalRepository(db *gorm.DB) AnimalRepository {
	return &animalRepository{db: db}
}

func byID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func (r *animalRepository) GetAnimals(ctx context.Context) ([]*entities.Animal, error) {
	var animals []*entities.Animal
	if err := r.db.WithContext(ctx).Order("id").Find(&animals).Error; err != nil {
		return nil, err
	}
	return animals, nil
}

func (r *animalRepository) GetAnimalByID(ctx context.Context, id uint) (*entities.Animal, error) {
	var animal entities.Animal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&animal).Error; err != nil {
		return nil, err
	}
	return &animal, nil
}

// GetAnimalDetails loads the animal with every relation one level deep.
func (r *animalRepository) GetAnimalDetails(ctx context.Context, id uint) (*entities.Animal, error) {
	var animal entities.Animal
	err := r.db.WithContext(ctx).
		Preload("Farmer").
		Preload("AnimalType").
		Preload("HealthRecords", byID).
		Preload("Production", byID).
		Preload("FeedRecords", byID).
		Preload("Sales", byID).
		Where("id = ?", id).
		First(&animal).Error
	if err != nil {
		return nil, err
	}
	return &animal, nil
}

func (r *animalRepository) GetAnimalByName(ctx context.Context, name string) (*entities.Animal, error) {
	var animal entities.Animal
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&animal).Error; err != nil {
		return nil, err
	}
	return &animal, nil
}

func (r *animalRepository) AnimalExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Animal{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *animalRepository) NameTaken(ctx context.Context, name string, exceptID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Animal{}).
		Where("name = ? AND id <> ?", name, exceptID).
		Count(&count).Error
	return count > 0, err
}

func (r *animalRepository) CreateAnimal(ctx context.Context, animal *entities.Animal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(animal).Error
	})
}

func (r *animalRepository) UpdateAnimal(ctx context.Context, animal *entities.Animal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Save(animal).Error
	})
}

// DeleteAnimal removes the animal with all of its records and returns the
// row as it was before deletion.
func (r *animalRepository) DeleteAnimal(ctx context.Context, id uint) (*entities.Animal, error) {
	var animal entities.Animal
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&animal).Error; err != nil {
			return err
		}
		return cascade.DeleteAnimals(tx, id)
	})
	if err != nil {
		return nil, err
	}
	return &animal, nil
}
