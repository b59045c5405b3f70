package entity

import (
	"gorm.io/gorm"
)

type Vendor struct {
	gorm.Model
	VendorName string `json:"vendorName"`
	VendorSlug string `gorm:"size:100;uniqueIndex" json:"vendorSlug"`
	IsApproved bool   `json:"isApproved"`
	IsActive   bool   `json:"isActive"`
	License    string `json:"-"`

	UserID uint `json:"-"` // owner (users.id)
	User   User `json:"-"`

	Categories   []Category    `json:"-"`
	FoodItems    []FoodItem    `json:"-"`
	OpeningHours []OpeningHour `json:"-"`
}
