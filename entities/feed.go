package entities

type Feed struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	AnimalID uint   `gorm:"index;not null" json:"animal_id"`
	FeedType string `gorm:"not null" json:"feed_type"`
	Quantity int    `gorm:"not null" json:"quantity"`
	Date     string `gorm:"size:10;not null" json:"date"` // YYYY-MM-DD

	Animal *Animal `gorm:"foreignKey:AnimalID" json:"animal,omitempty"`
	Timestamp
}

func (Feed) TableName() string {
	return "feeds"
}
