package services

import (
	"errors"

	"foodmarket/entity"
	"foodmarket/repository"
	"foodmarket/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuService is the write side of the catalog: vendors building out their
// categories and food items.
type MenuService struct {
	CatalogRepo *repository.CatalogRepository
}

func NewMenuService(cr *repository.CatalogRepository) *MenuService {
	return &MenuService{CatalogRepo: cr}
}

type CreateCategoryIn struct {
	VendorID    uint
	Name        string
	Slug        string
	Description string
}

// CreateCategory stores a category under the vendor. Names are stored
// capitalized and must be unique per vendor; the slug is generated from the
// name when none is supplied.
func (s *MenuService) CreateCategory(in CreateCategoryIn) (*entity.Category, error) {
	cat := &entity.Category{
		VendorID:     in.VendorID,
		CategoryName: utils.Capitalize(in.Name),
		Slug:         in.Slug,
		Description:  in.Description,
	}
	if err := s.CatalogRepo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

type CreateFoodItemIn struct {
	VendorID    uint
	CategoryID  uint
	Title       string
	Slug        string
	Description string
	Price       decimal.Decimal
	Image       string
	IsAvailable bool
}

// CreateFoodItem stores a food item after checking the category belongs to
// the vendor.
func (s *MenuService) CreateFoodItem(in CreateFoodItemIn) (*entity.FoodItem, error) {
	if _, err := s.CatalogRepo.FindCategory(in.CategoryID, in.VendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	item := &entity.FoodItem{
		VendorID:    in.VendorID,
		CategoryID:  in.CategoryID,
		FoodTitle:   in.Title,
		Slug:        in.Slug,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		IsAvailable: in.IsAvailable,
	}
	if err := s.CatalogRepo.CreateFoodItem(item); err != nil {
		return nil, err
	}
	return item, nil
}
