package services

import (
	"errors"

	"foodmarket/entity"
	"foodmarket/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartService owns the per-user cart state machine: one row per
// (user, food item), quantity >= 1, row deleted when the quantity drops to
// zero. Every mutation runs in one transaction and recomputes the
// aggregates from the rows inside it, so counter and amounts never drift
// from the row set.
type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
	TaxPct      decimal.Decimal
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, catr *repository.CatalogRepository, taxPct string) *CartService {
	pct, err := decimal.NewFromString(taxPct)
	if err != nil {
		pct = decimal.Zero
	}
	return &CartService{DB: db, CartRepo: cr, CatalogRepo: catr, TaxPct: pct}
}

// CartAmounts is the monetary breakdown returned with every mutation.
type CartAmounts struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// MutationResult reports the state after a cart mutation: the row's new
// quantity (0 when it was deleted), the counter (sum of quantities) and the
// amounts.
type MutationResult struct {
	Quantity int
	Counter  int
	Amounts  CartAmounts
}

// Add puts one unit of the food item in the user's cart, creating the row
// or bumping its quantity. Returns ErrFoodNotFound for unknown items.
func (s *CartService) Add(userID, foodID uint) (*MutationResult, bool, error) {
	if _, err := s.CatalogRepo.FindFoodByID(foodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrFoodNotFound
		}
		return nil, false, err
	}

	var res *MutationResult
	var created bool
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		row, err := s.CartRepo.FindRow(tx, userID, foodID)
		switch {
		case err == nil:
			row.Quantity++
			if err := s.CartRepo.Save(tx, row); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = &entity.CartItem{UserID: userID, FoodItemID: foodID, Quantity: 1}
			if err := s.CartRepo.Create(tx, row); err != nil {
				return err
			}
			created = true
		default:
			return err
		}

		res, err = s.result(tx, userID, row.Quantity)
		return err
	})
	return res, created, err
}

// Decrease takes one unit out of the cart; the row is deleted at quantity
// one. Returns ErrNotInCart when the user has no row for the item.
func (s *CartService) Decrease(userID, foodID uint) (*MutationResult, error) {
	var res *MutationResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		row, err := s.CartRepo.FindRow(tx, userID, foodID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotInCart
			}
			return err
		}

		if row.Quantity > 1 {
			row.Quantity--
			if err := s.CartRepo.Save(tx, row); err != nil {
				return err
			}
		} else {
			if err := s.CartRepo.Delete(tx, row); err != nil {
				return err
			}
			row.Quantity = 0
		}

		res, err = s.result(tx, userID, row.Quantity)
		return err
	})
	return res, err
}

// Remove deletes a cart row by id; the row must belong to the user.
func (s *CartService) Remove(userID, rowID uint) (*MutationResult, error) {
	var res *MutationResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		row, err := s.CartRepo.FindRowByID(tx, userID, rowID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartItemNotFound
			}
			return err
		}
		if err := s.CartRepo.Delete(tx, row); err != nil {
			return err
		}

		res, err = s.result(tx, userID, 0)
		return err
	})
	return res, err
}

// List returns the user's cart rows oldest first.
func (s *CartService) List(userID uint) ([]entity.CartItem, error) {
	return s.CartRepo.FindByUser(userID)
}

// Totals recomputes the aggregates outside any mutation (cart page,
// checkout gate).
func (s *CartService) Totals(userID uint) (int, CartAmounts, error) {
	rows, err := s.CartRepo.RowsWithFoods(s.DB, userID)
	if err != nil {
		return 0, CartAmounts{}, err
	}
	counter, amounts := s.aggregate(rows)
	return counter, amounts, nil
}

// InCartFoodIDs exposes the id set for marking filtered foods.
func (s *CartService) InCartFoodIDs(userID uint) (map[uint]bool, error) {
	return s.CartRepo.FoodIDsInCart(userID)
}

func (s *CartService) result(tx *gorm.DB, userID uint, qty int) (*MutationResult, error) {
	rows, err := s.CartRepo.RowsWithFoods(tx, userID)
	if err != nil {
		return nil, err
	}
	counter, amounts := s.aggregate(rows)
	return &MutationResult{Quantity: qty, Counter: counter, Amounts: amounts}, nil
}

func (s *CartService) aggregate(rows []entity.CartItem) (int, CartAmounts) {
	counter := 0
	subtotal := decimal.Zero
	for _, row := range rows {
		counter += row.Quantity
		subtotal = subtotal.Add(row.FoodItem.Price.Mul(decimal.NewFromInt(int64(row.Quantity))))
	}
	tax := subtotal.Mul(s.TaxPct).Div(decimal.NewFromInt(100)).Round(2)
	return counter, CartAmounts{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal.Add(tax),
	}
}
