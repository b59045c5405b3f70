package repository

import (
	"errors"
	"fmt"
	"strings"

	"foodmarket/entity"
	"foodmarket/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrSlugTaken is returned when a caller-supplied slug collides with an
// existing record; generated slugs are retried instead.
var ErrSlugTaken = errors.New("slug already in use")

// ErrDuplicateCategory is returned when the vendor already has a category
// with the same name.
var ErrDuplicateCategory = errors.New("category name already exists for this vendor")

// ErrSlugEmpty is returned when no slug was supplied and the name contains
// nothing slugifiable (e.g. punctuation only). Slugs must never be empty.
var ErrSlugEmpty = errors.New("name does not produce a usable slug")

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

// CreateCategory persists cat, assigning a slug when none is set: the name
// is slugified and inserted under the unique index, and on a duplicate-key
// error the insert is retried with "-1", "-2", … appended. Insert-then-retry
// keeps two concurrent writers from ever committing the same slug, which a
// look-before-insert check cannot guarantee.
func (r *CatalogRepository) CreateCategory(cat *entity.Category) error {
	return createWithSlug(cat.Slug, utils.Slugify(cat.CategoryName), func(slug string) error {
		cat.Slug = slug
		err := r.DB.Create(cat).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// The duplicate may be on the (vendor, name) index rather than
			// the slug; retrying slugs can never fix that one.
			count, cntErr := r.CountCategoryName(cat.VendorID, cat.CategoryName)
			if cntErr == nil && count > 0 {
				return ErrDuplicateCategory
			}
		}
		return err
	})
}

// CreateFoodItem persists item with the same slug policy as CreateCategory,
// derived from the food title.
func (r *CatalogRepository) CreateFoodItem(item *entity.FoodItem) error {
	return createWithSlug(item.Slug, utils.Slugify(item.FoodTitle), func(slug string) error {
		item.Slug = slug
		return r.DB.Create(item).Error
	})
}

func createWithSlug(explicit, base string, insert func(slug string) error) error {
	if explicit != "" {
		err := insert(explicit)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSlugTaken
		}
		return err
	}
	if base == "" {
		return ErrSlugEmpty
	}
	for n := 0; ; n++ {
		candidate := base
		if n > 0 {
			candidate = fmt.Sprintf("%s-%d", base, n)
		}
		err := insert(candidate)
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
}

func (r *CatalogRepository) FindCategory(id, vendorID uint) (*entity.Category, error) {
	var cat entity.Category
	err := r.DB.Where("id = ? AND vendor_id = ?", id, vendorID).First(&cat).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CatalogRepository) CountCategoryName(vendorID uint, name string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Category{}).
		Where("vendor_id = ? AND category_name = ?", vendorID, name).
		Count(&count).Error
	return count, err
}

// CategoriesWithFoods returns the vendor's categories, each preloaded with
// its available food items only.
func (r *CatalogRepository) CategoriesWithFoods(vendorID uint) ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.
		Where("vendor_id = ?", vendorID).
		Preload("FoodItems", "is_available = ?", true).
		Find(&cats).Error
	return cats, err
}

func (r *CatalogRepository) FindFoodByID(id uint) (*entity.FoodItem, error) {
	var item entity.FoodItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FoodFilter holds the parsed food filters; zero values mean "not set".
type FoodFilter struct {
	Search     string
	CategoryID uint
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

// FilterFoods applies the storefront filter policy: available items of the
// vendor, AND-combined with a case-insensitive substring match on title or
// description, an exact category match, and inclusive price bounds.
func (r *CatalogRepository) FilterFoods(vendorID uint, f FoodFilter) ([]entity.FoodItem, error) {
	q := r.DB.Where("vendor_id = ? AND is_available = ?", vendorID, true)

	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.Search != "" {
		pat := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("(LOWER(food_title) LIKE ? OR LOWER(description) LIKE ?)", pat, pat)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", f.MaxPrice)
	}

	var foods []entity.FoodItem
	err := q.Order("created_at").Find(&foods).Error
	return foods, err
}
