package models

import "time"

type Sale struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null;index" json:"name"`
	Description string    `json:"description"`
	Discount    float64   `gorm:"not null" json:"discount"`
	StartTime   time.Time `gorm:"not null" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	CreatedBy   string    `gorm:"not null" json:"created_by"`
	Active      bool      `gorm:"default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Overlaps reports whether [start, end] intersects the sale's own window.
func (s *Sale) Overlaps(start, end time.Time) bool {
	return !s.StartTime.After(end) && !s.EndTime.Before(start)
}
