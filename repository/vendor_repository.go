package repository

import (
	"strings"

	"foodmarket/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VendorRepository struct{ DB *gorm.DB }

func NewVendorRepository(db *gorm.DB) *VendorRepository { return &VendorRepository{DB: db} }

// FindListed returns approved, active vendors newest first. limit <= 0
// means no limit.
func (r *VendorRepository) FindListed(limit int) ([]entity.Vendor, error) {
	q := r.DB.
		Where("is_approved = ? AND is_active = ?", true, true).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var vendors []entity.Vendor
	err := q.Find(&vendors).Error
	return vendors, err
}

func (r *VendorRepository) FindListedBySlug(slug string) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := r.DB.
		Where("vendor_slug = ? AND is_approved = ? AND is_active = ?", slug, true, true).
		First(&vendor).Error
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *VendorRepository) FindByID(id uint) (*entity.Vendor, error) {
	var vendor entity.Vendor
	if err := r.DB.First(&vendor, id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// SearchByKeyword matches the vendor name or the title of any available
// food item, case-insensitively. Only approved, active vendors qualify;
// the subquery keeps the union free of duplicate rows.
func (r *VendorRepository) SearchByKeyword(keyword string) ([]entity.Vendor, error) {
	pat := "%" + strings.ToLower(keyword) + "%"
	byFood := r.DB.Model(&entity.FoodItem{}).
		Select("vendor_id").
		Where("is_available = ? AND LOWER(food_title) LIKE ?", true, pat)

	var vendors []entity.Vendor
	err := r.DB.
		Where("is_approved = ? AND is_active = ?", true, true).
		Where("(LOWER(vendor_name) LIKE ? OR id IN (?))", pat, byFood).
		Order("created_at DESC").
		Find(&vendors).Error
	return vendors, err
}

func (r *VendorRepository) OpeningHours(vendorID uint) ([]entity.OpeningHour, error) {
	var hours []entity.OpeningHour
	err := r.DB.
		Where("vendor_id = ?", vendorID).
		Order("day, from_hour").
		Find(&hours).Error
	return hours, err
}

func (r *VendorRepository) OpeningHoursForDay(vendorID uint, day int) ([]entity.OpeningHour, error) {
	var hours []entity.OpeningHour
	err := r.DB.
		Where("vendor_id = ? AND day = ?", vendorID, day).
		Order("from_hour").
		Find(&hours).Error
	return hours, err
}

// PriceRange returns the min and max price over the vendor's available
// items; zeros when the vendor has none.
func (r *VendorRepository) PriceRange(vendorID uint) (decimal.Decimal, decimal.Decimal, error) {
	var agg struct {
		Min decimal.NullDecimal
		Max decimal.NullDecimal
	}
	err := r.DB.Model(&entity.FoodItem{}).
		Select("MIN(price) AS min, MAX(price) AS max").
		Where("vendor_id = ? AND is_available = ?", vendorID, true).
		Scan(&agg).Error
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	min, max := decimal.Zero, decimal.Zero
	if agg.Min.Valid {
		min = agg.Min.Decimal
	}
	if agg.Max.Valid {
		max = agg.Max.Decimal
	}
	return min, max, nil
}
