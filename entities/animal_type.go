package entities

type AnimalType struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	TypeName    string  `gorm:"size:255;uniqueIndex;not null" json:"type_name"`
	Description *string `json:"description"`

	Animals []*Animal `gorm:"foreignKey:AnimalTypeID" json:"animals,omitempty"`
	Timestamp
}

func (AnimalType) TableName() string {
	return "animal_types"
}
