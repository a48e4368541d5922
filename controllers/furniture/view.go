package furnitureControllers

import (
	"time"

	"gorm.io/gorm"

	"github.com/furnimarket/furniture-market-api/models"
)

// listingView decorates a listing with the read-time sale resolution: whether
// the associated sale window is open right now and which discount applies.
type listingView struct {
	models.Furniture
	SaleActive        bool    `json:"sale_active"`
	EffectiveDiscount float64 `json:"effective_discount"`
}

func viewOf(f models.Furniture, now time.Time) listingView {
	return listingView{
		Furniture:         f,
		SaleActive:        f.SaleActiveAt(now),
		EffectiveDiscount: f.EffectiveDiscount(now),
	}
}

func viewsOf(items []models.Furniture, now time.Time) []listingView {
	views := make([]listingView, 0, len(items))
	for _, f := range items {
		views = append(views, viewOf(f, now))
	}
	return views
}

// withListingAssocs preloads the associations every listing read needs.
// Owner is narrowed to public columns.
func withListingAssocs(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Images", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Preload("Category").
		Preload("Sale").
		Preload("Owner", func(tx *gorm.DB) *gorm.DB { return tx.Select("id", "name", "email") })
}
