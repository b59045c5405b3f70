package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	VendorID uint   `gorm:"uniqueIndex:idx_vendor_category_name" json:"vendorId"`
	Vendor   Vendor `json:"-"`

	CategoryName string `gorm:"size:50;uniqueIndex:idx_vendor_category_name" json:"categoryName"`
	Slug         string `gorm:"size:100;uniqueIndex" json:"slug"`
	Description  string `gorm:"size:250" json:"description"`

	FoodItems []FoodItem `json:"foodItems,omitempty"`
}
