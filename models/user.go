package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           string      `gorm:"primaryKey" json:"id"`
	Name         string      `gorm:"not null" json:"name"`
	Email        string      `gorm:"unique;not null" json:"email"`
	Password     string      `gorm:"not null" json:"-"`
	Role         Role        `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	IsBlocked    bool        `json:"is_blocked"`
	ProfilePhoto string      `json:"profile_photo"`
	Listings     []Furniture `gorm:"foreignKey:OwnerID" json:"listings,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
