package services

import (
	"errors"
	"strconv"
	"time"

	"foodmarket/entity"
	"foodmarket/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogService answers the customer-facing reads: vendor listings,
// vendor detail pages and food filtering.
type CatalogService struct {
	VendorRepo  *repository.VendorRepository
	CatalogRepo *repository.CatalogRepository
}

func NewCatalogService(vr *repository.VendorRepository, cr *repository.CatalogRepository) *CatalogService {
	return &CatalogService{VendorRepo: vr, CatalogRepo: cr}
}

// ListVendors returns approved, active vendors newest first; limit <= 0
// returns them all.
func (s *CatalogService) ListVendors(limit int) ([]entity.Vendor, error) {
	return s.VendorRepo.FindListed(limit)
}

func (s *CatalogService) SearchVendors(keyword string) ([]entity.Vendor, error) {
	return s.VendorRepo.SearchByKeyword(keyword)
}

// VendorPage is everything the vendor detail page needs in one shot.
type VendorPage struct {
	Vendor       *entity.Vendor       `json:"vendor"`
	Categories   []entity.Category    `json:"categories"`
	OpeningHours []entity.OpeningHour `json:"openingHours"`
	TodayHours   []entity.OpeningHour `json:"todayHours"`
	MinPrice     decimal.Decimal      `json:"minPrice"`
	MaxPrice     decimal.Decimal      `json:"maxPrice"`
}

// VendorDetail resolves an approved, active vendor by slug with its
// categories (available foods preloaded), the full opening-hour table and
// the rows for today's ISO weekday, plus the vendor-wide price range.
func (s *CatalogService) VendorDetail(slug string) (*VendorPage, error) {
	vendor, err := s.VendorRepo.FindListedBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}

	cats, err := s.CatalogRepo.CategoriesWithFoods(vendor.ID)
	if err != nil {
		return nil, err
	}
	hours, err := s.VendorRepo.OpeningHours(vendor.ID)
	if err != nil {
		return nil, err
	}
	today, err := s.VendorRepo.OpeningHoursForDay(vendor.ID, isoWeekday(time.Now()))
	if err != nil {
		return nil, err
	}
	min, max, err := s.VendorRepo.PriceRange(vendor.ID)
	if err != nil {
		return nil, err
	}

	return &VendorPage{
		Vendor:       vendor,
		Categories:   cats,
		OpeningHours: hours,
		TodayHours:   today,
		MinPrice:     min,
		MaxPrice:     max,
	}, nil
}

// VendorCategory resolves a category id scoped to the vendor.
func (s *CatalogService) VendorCategory(vendorID, id uint) (*entity.Category, error) {
	cat, err := s.CatalogRepo.FindCategory(id, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return cat, nil
}

// FoodQuery carries the raw filter strings from the request. Values that
// fail to parse are dropped rather than rejected.
type FoodQuery struct {
	Search   string
	Category string
	MinPrice string
	MaxPrice string
}

// FilterFoods resolves the vendor by slug and applies the parsed filters.
func (s *CatalogService) FilterFoods(vendorSlug string, q FoodQuery) ([]entity.FoodItem, error) {
	vendor, err := s.VendorRepo.FindListedBySlug(vendorSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	return s.CatalogRepo.FilterFoods(vendor.ID, parseFoodFilter(q))
}

// FilterVendorFoods is FilterFoods for an already-resolved vendor.
func (s *CatalogService) FilterVendorFoods(vendorID uint, q FoodQuery) ([]entity.FoodItem, error) {
	return s.CatalogRepo.FilterFoods(vendorID, parseFoodFilter(q))
}

func parseFoodFilter(q FoodQuery) repository.FoodFilter {
	f := repository.FoodFilter{Search: q.Search}
	if q.Category != "" {
		if id, err := strconv.ParseUint(q.Category, 10, 64); err == nil {
			f.CategoryID = uint(id)
		}
	}
	if q.MinPrice != "" {
		if d, err := decimal.NewFromString(q.MinPrice); err == nil {
			f.MinPrice = &d
		}
	}
	if q.MaxPrice != "" {
		if d, err := decimal.NewFromString(q.MaxPrice); err == nil {
			f.MaxPrice = &d
		}
	}
	return f
}

func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
