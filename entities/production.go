package entities

type Production struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	AnimalID       uint   `gorm:"index;not null" json:"animal_id"`
	ProductType    string `gorm:"not null" json:"product_type"`
	Quantity       int    `gorm:"not null" json:"quantity"`
	ProductionDate string `gorm:"size:10;not null" json:"production_date"` // YYYY-MM-DD

	Animal *Animal `gorm:"foreignKey:AnimalID" json:"animal,omitempty"`
	Sales  []*Sale `gorm:"foreignKey:ProductionID" json:"sales,omitempty"`
	Timestamp
}

func (Production) TableName() string {
	return "productions"
}
