package models

import "time"

type Banner struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ImageURL      string    `gorm:"not null" json:"image_url"`
	Title         string    `json:"title"`
	Subtitle      string    `json:"subtitle"`
	Description   string    `json:"description"`
	Brand         string    `json:"brand"`
	ButtonText    string    `gorm:"default:'Shop Now'" json:"button_text"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"original_price"`
	Link          string    `json:"link"`
	Active        bool      `gorm:"default:true" json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
