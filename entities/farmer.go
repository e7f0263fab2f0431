package entities

type Farmer struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string  `gorm:"not null" json:"name"`
	Email    string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone    string  `gorm:"not null" json:"phone"`
	Address  *string `json:"address"`
	Password string  `gorm:"not null" json:"-"`

	Animals []*Animal `gorm:"foreignKey:FarmerID" json:"animals,omitempty"`
	Timestamp
}

func (Farmer) TableName() string {
	return "farmers"
}
