package services

import (
	"fmt"
	"strings"
	"testing"

	"foodmarket/entity"
	"foodmarket/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a per-test in-memory database. cache=shared keeps gorm's
// pooled connections on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Vendor{}, &entity.OpeningHour{},
		&entity.Category{}, &entity.FoodItem{},
		&entity.CartItem{},
	))
	return db
}

func newCatalogService(db *gorm.DB) *CatalogService {
	return NewCatalogService(repository.NewVendorRepository(db), repository.NewCatalogRepository(db))
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewCatalogRepository(db), "0")
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Role: "customer", IsActive: true}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedVendor(t *testing.T, db *gorm.DB, name, slug string, approved, active bool) *entity.Vendor {
	t.Helper()
	owner := seedUser(t, db, slug+"@owner.test")
	v := &entity.Vendor{
		VendorName: name,
		VendorSlug: slug,
		IsApproved: approved,
		IsActive:   active,
		UserID:     owner.ID,
	}
	require.NoError(t, db.Create(v).Error)
	return v
}

func seedCategory(t *testing.T, db *gorm.DB, vendor *entity.Vendor, name, slug string) *entity.Category {
	t.Helper()
	c := &entity.Category{VendorID: vendor.ID, CategoryName: name, Slug: slug}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedFood(t *testing.T, db *gorm.DB, vendor *entity.Vendor, cat *entity.Category, title, slug, price string, available bool) *entity.FoodItem {
	t.Helper()
	f := &entity.FoodItem{
		VendorID:    vendor.ID,
		CategoryID:  cat.ID,
		FoodTitle:   title,
		Slug:        slug,
		Price:       decimal.RequireFromString(price),
		IsAvailable: available,
	}
	require.NoError(t, db.Create(f).Error)
	return f
}
