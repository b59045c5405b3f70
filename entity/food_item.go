package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FoodItem struct {
	gorm.Model
	VendorID uint   `json:"vendorId"`
	Vendor   Vendor `json:"-"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	FoodTitle   string          `gorm:"size:100" json:"foodTitle"`
	Slug        string          `gorm:"size:150;uniqueIndex" json:"slug"`
	Description string          `gorm:"size:500" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(8,2)" json:"price"`
	Image       string          `json:"image"`
	// No DB-side default: gorm drops zero-valued fields that carry a
	// default tag on Create, which would make false unsavable.
	IsAvailable bool `json:"isAvailable"`
}
