package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `gorm:"not null;default:customer" json:"role"`
	IsActive    bool   `json:"isActive"`

	// Profile used to pre-fill the checkout order form.
	Address  string `json:"address"`
	Country  string `json:"country"`
	Division string `json:"division"`
	City     string `json:"city"`
	PinCode  string `json:"pinCode"`

	VendorsOwned []Vendor   `gorm:"foreignKey:UserID" json:"-"`
	CartItems    []CartItem `json:"-"`
}
