package entities

import "time"

type HealthRecord struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AnimalID    uint      `gorm:"index;not null" json:"animal_id"`
	CheckupDate time.Time `gorm:"not null" json:"checkup_date"`
	Treatment   string    `gorm:"not null" json:"treatment"`
	Notes       *string   `json:"notes"`
	VetName     string    `gorm:"not null" json:"vet_name"`

	Animal *Animal `gorm:"foreignKey:AnimalID" json:"animal,omitempty"`
	Timestamp
}

func (HealthRecord) TableName() string {
	return "health_records"
}
