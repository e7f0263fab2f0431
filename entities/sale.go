package entities

type Sale struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	AnimalID     uint    `gorm:"index;not null" json:"animal_id"`
	ProductType  string  `gorm:"not null" json:"product_type"`
	QuantitySold int     `gorm:"not null" json:"quantity_sold"`
	SaleDate     string  `gorm:"size:10;not null" json:"sale_date"` // YYYY-MM-DD
	Amount       float64 `gorm:"not null" json:"amount"`
	ProductionID *uint   `gorm:"index" json:"production_id"`

	Animal     *Animal     `gorm:"foreignKey:AnimalID" json:"animal,omitempty"`
	Production *Production `gorm:"foreignKey:ProductionID" json:"production,omitempty"`
	Timestamp
}

func (Sale) TableName() string {
	return "sales"
}
