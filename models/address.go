package models

import "time"

// Address is a shipping address. At most one address per user carries
// IsDefault=true; any write that sets the flag clears it on the user's other
// addresses inside the same transaction.
type Address struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     string    `gorm:"not null;index" json:"user_id"`
	FullName   string    `gorm:"not null" json:"full_name"`
	Phone      string    `gorm:"not null" json:"phone"`
	City       string    `gorm:"not null" json:"city"`
	Street     string    `gorm:"not null" json:"street"`
	PostalCode string    `json:"postal_code"`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
