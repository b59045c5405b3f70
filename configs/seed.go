package configs

import (
	"log"

	"foodmarket/entity"
	"foodmarket/utils"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
		IsActive:  true,
	}
	return db.Create(&admin).Error
}

// SeedDemo loads a small demo marketplace so the storefront has something
// to show on a fresh database. Idempotent via FirstOrCreate on slugs.
func SeedDemo() error {
	db := DB()

	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	owner := entity.User{Email: "owner@pizzaplace.test"}
	db.Where(&owner).Attrs(entity.User{
		Password:  string(hash),
		FirstName: "Pia",
		LastName:  "Zaro",
		Role:      "vendor",
		IsActive:  true,
	}).FirstOrCreate(&owner)

	vendor := entity.Vendor{VendorSlug: "pizza-place"}
	db.Where(&vendor).Attrs(entity.Vendor{
		VendorName: "Pizza Place",
		IsApproved: true,
		IsActive:   true,
		UserID:     owner.ID,
	}).FirstOrCreate(&vendor)

	mains := entity.Category{Slug: "mains"}
	db.Where(&mains).Attrs(entity.Category{
		VendorID:     vendor.ID,
		CategoryName: utils.Capitalize("mains"),
		Description:  "House mains",
	}).FirstOrCreate(&mains)

	foods := []entity.FoodItem{
		{Slug: "margherita", FoodTitle: "Margherita", Description: "Tomato, mozzarella, basil", Price: decimal.RequireFromString("8.00")},
		{Slug: "quattro-formaggi", FoodTitle: "Quattro Formaggi", Description: "Four cheeses", Price: decimal.RequireFromString("11.50")},
	}
	for _, f := range foods {
		row := entity.FoodItem{Slug: f.Slug}
		db.Where(&row).Attrs(entity.FoodItem{
			VendorID:    vendor.ID,
			CategoryID:  mains.ID,
			FoodTitle:   f.FoodTitle,
			Description: f.Description,
			Price:       f.Price,
			IsAvailable: true,
		}).FirstOrCreate(&row)
	}

	for day := 1; day <= 7; day++ {
		h := entity.OpeningHour{VendorID: vendor.ID, Day: day}
		db.Where(&h).Attrs(entity.OpeningHour{
			FromHour: "10:00",
			ToHour:   "22:00",
			IsClosed: day == 7,
		}).FirstOrCreate(&h)
	}

	log.Println("demo marketplace seeded")
	return nil
}
