package entities

import "time"

// Session is the server side half of a login. A NULL FarmerID means the
// session was logged out; the row stays until it expires.
type Session struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	FarmerID  *uint     `gorm:"index" json:"farmer_id"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
	Timestamp
}

func (Session) TableName() string {
	return "sessions"
}
