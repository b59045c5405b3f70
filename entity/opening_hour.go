package entity

import (
	"gorm.io/gorm"
)

// Day is an ISO weekday, 1 = Monday through 7 = Sunday.
type OpeningHour struct {
	gorm.Model
	VendorID uint   `json:"vendorId"`
	Vendor   Vendor `json:"-"`

	Day      int    `json:"day"`
	FromHour string `json:"fromHour"`
	ToHour   string `json:"toHour"`
	IsClosed bool   `json:"isClosed"`
}
