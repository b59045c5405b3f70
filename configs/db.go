package configs

import (
	"foodmarket/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	// TranslateError maps the driver's unique-violation into
	// gorm.ErrDuplicatedKey, which the slug retry loop depends on.
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{},
		&entity.Vendor{}, &entity.OpeningHour{},
		&entity.Category{}, &entity.FoodItem{},
		&entity.CartItem{},
	)
}
