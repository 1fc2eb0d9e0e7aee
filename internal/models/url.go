package models

import (
	"time"
)

// URL is a stored bookmark entry. The cache mirror keeps a JSON copy of
// this struct under url_data:{id}.
type URL struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null;size:100;index" json:"title"`
	Description string    `gorm:"size:500" json:"description"`
	Author      string    `gorm:"not null;size:50" json:"author"`
	Rating      int       `json:"rating"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (URL) TableName() string {
	return "urls"
}
