package entities

type Animal struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Image        *string `json:"image"`
	Breed        *string `json:"breed"`
	Age          *int    `json:"age"`
	HealthStatus *string `json:"health_status"`
	BirthDate    string  `gorm:"size:10;not null" json:"birth_date"` // YYYY-MM-DD

	FarmerID     *uint `gorm:"index" json:"farmer_id"`
	AnimalTypeID *uint `gorm:"index" json:"animal_type_id"`

	Farmer        *Farmer         `gorm:"foreignKey:FarmerID" json:"farmer,omitempty"`
	AnimalType    *AnimalType     `gorm:"foreignKey:AnimalTypeID" json:"animal_type,omitempty"`
	HealthRecords []*HealthRecord `gorm:"foreignKey:AnimalID" json:"health_records,omitempty"`
	Production    []*Production   `gorm:"foreignKey:AnimalID" json:"production,omitempty"`
	FeedRecords   []*Feed         `gorm:"foreignKey:AnimalID" json:"feed_records,omitempty"`
	Sales         []*Sale         `gorm:"foreignKey:AnimalID" json:"sales,omitempty"`
	Timestamp
}

func (Animal) TableName() string {
	return "animals"
}
