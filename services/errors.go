package services

import "errors"

// Lookup outcomes surfaced to controllers. Each failed lookup maps to one
// sentinel so handlers can answer the storefront contract without string
// matching or catching everything.
var (
	ErrVendorNotFound   = errors.New("vendor does not exist")
	ErrCategoryNotFound = errors.New("category does not exist")
	ErrFoodNotFound     = errors.New("food item does not exist")
	ErrNotInCart        = errors.New("item is not in the cart")
	ErrCartItemNotFound = errors.New("cart item does not exist")
)
