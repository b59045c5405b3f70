package repository

import (
	"foodmarket/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// FindByUser returns the user's rows oldest first with foods preloaded.
func (r *CartRepository) FindByUser(userID uint) ([]entity.CartItem, error) {
	var rows []entity.CartItem
	err := r.DB.
		Where("user_id = ?", userID).
		Preload("FoodItem").
		Order("created_at").
		Find(&rows).Error
	return rows, err
}

func (r *CartRepository) FindRow(tx *gorm.DB, userID, foodID uint) (*entity.CartItem, error) {
	var row entity.CartItem
	err := tx.Where("user_id = ? AND food_item_id = ?", userID, foodID).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *CartRepository) FindRowByID(tx *gorm.DB, userID, rowID uint) (*entity.CartItem, error) {
	var row entity.CartItem
	err := tx.Where("id = ? AND user_id = ?", rowID, userID).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *CartRepository) Create(tx *gorm.DB, row *entity.CartItem) error {
	return tx.Create(row).Error
}

func (r *CartRepository) Save(tx *gorm.DB, row *entity.CartItem) error {
	return tx.Save(row).Error
}

func (r *CartRepository) Delete(tx *gorm.DB, row *entity.CartItem) error {
	return tx.Delete(row).Error
}

// FoodIDsInCart lists the food item ids currently in the user's cart, for
// marking filtered foods as in_cart.
func (r *CartRepository) FoodIDsInCart(userID uint) (map[uint]bool, error) {
	var ids []uint
	err := r.DB.Model(&entity.CartItem{}).
		Where("user_id = ?", userID).
		Pluck("food_item_id", &ids).Error
	if err != nil {
		return nil, err
	}
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// RowsWithFoods loads the row set inside tx, used by the aggregate
// recomputation after each mutation.
func (r *CartRepository) RowsWithFoods(tx *gorm.DB, userID uint) ([]entity.CartItem, error) {
	var rows []entity.CartItem
	err := tx.
		Where("user_id = ?", userID).
		Preload("FoodItem").
		Find(&rows).Error
	return rows, err
}
