// Package cascade removes a record together with everything that depends on
// it. Every function expects to run inside the caller's transaction.
package cascade

import (
	"barnmonitor-backend/entities"

	"gorm.io/gorm"
)

// DeleteFarmer removes the farmer, the farmer's animals with all of their
// records, and every session bound to the farmer.
func DeleteFarmer(tx *gorm.DB, farmerID uint) error {
	var animalIDs []uint
	if err := tx.Model(&entities.Animal{}).Where("farmer_id = ?", farmerID).Pluck("id", &animalIDs).Error; err != nil {
		return err
	}
	if err := DeleteAnimals(tx, animalIDs...); err != nil {
		return err
	}
	if err := tx.Where("farmer_id = ?", farmerID).Delete(&entities.Session{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entities.Farmer{}, farmerID).Error
}

// DeleteAnimals removes the animals and their health, feed, production and
// sale records.
func DeleteAnimals(tx *gorm.DB, animalIDs ...uint) error {
	if len(animalIDs) == 0 {
		return nil
	}

	var productionIDs []uint
	if err := tx.Model(&entities.Production{}).Where("animal_id IN ?", animalIDs).Pluck("id", &productionIDs).Error; err != nil {
		return err
	}
	if err := DeleteProductions(tx, productionIDs...); err != nil {
		return err
	}

	for _, model := range []any{&entities.Sale{}, &entities.Feed{}, &entities.HealthRecord{}} {
		if err := tx.Where("animal_id IN ?", animalIDs).Delete(model).Error; err != nil {
			return err
		}
	}
	return tx.Where("id IN ?", animalIDs).Delete(&entities.Animal{}).Error
}

// DeleteProductions removes the production records and every sale that
// references them.
func DeleteProductions(tx *gorm.DB, productionIDs ...uint) error {
	if len(productionIDs) == 0 {
		return nil
	}
	if err := tx.Where("production_id IN ?", productionIDs).Delete(&entities.Sale{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", productionIDs).Delete(&entities.Production{}).Error
}

// DeleteAnimalType removes the type. Animals of that type survive with no
// type.
func DeleteAnimalType(tx *gorm.DB, animalTypeID uint) error {
	err := tx.Model(&entities.Animal{}).
		Where("animal_type_id = ?", animalTypeID).
		Update("animal_type_id", nil).Error
	if err != nil {
		return err
	}
	return tx.Delete(&entities.AnimalType{}, animalTypeID).Error
}
