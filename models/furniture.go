package models

import "time"

type ListingStatus string

const (
	// Listing statuses (approval lifecycle)
	ListingPending     ListingStatus = "pending"     // Submitted, awaiting admin review
	ListingApproved    ListingStatus = "approved"    // Published and publicly visible
	ListingDeactivated ListingStatus = "deactivated" // Soft-deleted, hidden but kept for cart/wishlist history
)

const (
	ConditionNew     = "new"
	ConditionUsed    = "used"
	ConditionDamaged = "damaged"
)

// ValidCondition reports whether s is one of the accepted item conditions.
func ValidCondition(s string) bool {
	return s == ConditionNew || s == ConditionUsed || s == ConditionDamaged
}

type Furniture struct {
	ID              uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string           `gorm:"not null" json:"title"`
	Description     string           `json:"description"`
	Price           float64          `gorm:"not null" json:"price"`
	CategoryID      uint             `gorm:"not null;index" json:"category_id"`
	Category        Category         `gorm:"foreignKey:CategoryID" json:"category"`
	Condition       string           `gorm:"type:VARCHAR(10);not null" json:"condition"`
	Location        string           `json:"location"`
	Images          []FurnitureImage `gorm:"foreignKey:FurnitureID;constraint:OnDelete:CASCADE" json:"images"`
	OwnerID         string           `gorm:"not null;index" json:"owner_id"`
	Owner           User             `gorm:"foreignKey:OwnerID" json:"owner"`
	Status          ListingStatus    `gorm:"type:VARCHAR(12);default:'pending';index" json:"status"`
	SaleID          *uint            `json:"sale_id"`
	Sale            *Sale            `gorm:"foreignKey:SaleID" json:"sale,omitempty"`
	Stock           int              `json:"stock"`
	Discount        float64          `json:"discount"`
	Rating          float64          `json:"rating"`
	NoOfSold        int              `json:"no_of_sold"`
	NumberOfReviews int              `json:"number_of_reviews"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// FurnitureImage keeps uploaded image paths ordered by Position.
type FurnitureImage struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FurnitureID uint   `gorm:"index" json:"furniture_id"`
	Path        string `gorm:"not null" json:"path"`
	Position    int    `json:"position"`
}

// SaleActiveAt reports whether the listing's associated sale is in effect at t.
// Sale membership is validated at write time only; whether the sale window is
// currently open is always resolved at read time.
func (f *Furniture) SaleActiveAt(t time.Time) bool {
	if f.Sale == nil || !f.Sale.Active {
		return false
	}
	return !t.Before(f.Sale.StartTime) && !t.After(f.Sale.EndTime)
}

// EffectiveDiscount returns the sale discount while the sale window is open,
// falling back to the listing's own discount otherwise.
func (f *Furniture) EffectiveDiscount(t time.Time) float64 {
	if f.SaleActiveAt(t) {
		return f.Sale.Discount
	}
	return f.Discount
}
