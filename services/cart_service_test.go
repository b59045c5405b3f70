package services

import (
	"testing"

	"foodmarket/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCartScenario(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	v := seedVendor(t, db, "Pizza Place", "pizza-place", true, true)
	mains := seedCategory(t, db, v, "Mains", "mains")
	food := seedFood(t, db, v, mains, "Margherita", "margherita", "8.00", true)
	user := seedUser(t, db, "u@test")

	res, created, err := svc.Add(user.ID, food.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, res.Quantity)
	assert.Equal(t, 1, res.Counter)
	assert.Equal(t, "8.00", res.Amounts.Subtotal.StringFixed(2))
	assert.Equal(t, "8.00", res.Amounts.GrandTotal.StringFixed(2))

	res, created, err = svc.Add(user.ID, food.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 2, res.Quantity)
	assert.Equal(t, 2, res.Counter)
	assert.Equal(t, "16.00", res.Amounts.Subtotal.StringFixed(2))

	res, err = svc.Decrease(user.ID, food.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Quantity)
	assert.Equal(t, 1, res.Counter)
	assert.Equal(t, "8.00", res.Amounts.Subtotal.StringFixed(2))
}

func TestAddUnknownFood(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "u@test")

	_, _, err := svc.Add(user.ID, 9999)
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestAddThenDecreaseRestoresState(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	v := seedVendor(t, db, "Pizza Place", "pizza-place", true, true)
	mains := seedCategory(t, db, v, "Mains", "mains")
	food := seedFood(t, db, v, mains, "Margherita", "margherita", "8.00", true)
	other := seedFood(t, db, v, mains, "Calzone", "calzone", "12.50", true)
	user := seedUser(t, db, "u@test")

	_, _, err := svc.Add(user.ID, other.ID)
	require.NoError(t, err)
	beforeCounter, beforeAmounts, err := svc.Totals(user.ID)
	require.NoError(t, err)

	_, _, err = svc.Add(user.ID, food.ID)
	require.NoError(t, err)
	res, err := svc.Decrease(user.ID, food.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Quantity)
	assert.Equal(t, beforeCounter, res.Counter)
	assert.True(t, beforeAmounts.Subtotal.Equal(res.Amounts.Subtotal))

	rows, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, other.ID, rows[0].FoodItemID)
}

func TestDecreaseAtOneDeletesRow(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	v := seedVendor(t, db, "Pizza Place", "pizza-place", true, true)
	mains := seedCategory(t, db, v, "Mains", "mains")
	food := seedFood(t, db, v, mains, "Margherita", "margherita", "8.00", true)
	user := seedUser(t, db, "u@test")

	_, _, err := svc.Add(user.ID, food.ID)
	require.NoError(t, err)

	res, err := svc.Decrease(user.ID, food.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Quantity)
	assert.Equal(t, 0, res.Counter)
	assert.Equal(t, "0.00", res.Amounts.Subtotal.StringFixed(2))

	_, err = svc.Decrease(user.ID, food.ID)
	assert.ErrorIs(t, err, ErrNotInCart)

	// The row is gone for real, so re-adding starts a fresh one.
	res2, created, err := svc.Add(user.ID, food.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, res2.Quantity)
}

func TestRemoveChecksOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	v := seedVendor(t, db, "Pizza Place", "pizza-place", true, true)
	mains := seedCategory(t, db, v, "Mains", "mains")
	food := seedFood(t, db, v, mains, "Margherita", "margherita", "8.00", true)
	owner := seedUser(t, db, "owner@test")
	intruder := seedUser(t, db, "intruder@test")

	_, _, err := svc.Add(owner.ID, food.ID)
	require.NoError(t, err)
	rows, err := svc.List(owner.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, err = svc.Remove(intruder.ID, rows[0].ID)
	assert.ErrorIs(t, err, ErrCartItemNotFound)

	res, err := svc.Remove(owner.ID, rows[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Counter)
}

func TestCartTaxApplied(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewCatalogRepository(db), "10")

	v := seedVendor(t, db, "Pizza Place", "pizza-place", true, true)
	mains := seedCategory(t, db, v, "Mains", "mains")
	food := seedFood(t, db, v, mains, "Margherita", "margherita", "8.00", true)
	user := seedUser(t, db, "u@test")

	res, _, err := svc.Add(user.ID, food.ID)
	require.NoError(t, err)
	assert.Equal(t, "8.00", res.Amounts.Subtotal.StringFixed(2))
	assert.Equal(t, "0.80", res.Amounts.Tax.StringFixed(2))
	assert.Equal(t, "8.80", res.Amounts.GrandTotal.StringFixed(2))
}

func TestListOrdersByCreation(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	v := seedVendor(t, db, "Pizza Place", "pizza-place", true, true)
	mains := seedCategory(t, db, v, "Mains", "mains")
	first := seedFood(t, db, v, mains, "Margherita", "margherita", "8.00", true)
	second := seedFood(t, db, v, mains, "Calzone", "calzone", "12.50", true)
	user := seedUser(t, db, "u@test")

	_, _, err := svc.Add(user.ID, first.ID)
	require.NoError(t, err)
	_, _, err = svc.Add(user.ID, second.ID)
	require.NoError(t, err)

	rows, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first.ID, rows[0].FoodItemID)
	assert.Equal(t, second.ID, rows[1].FoodItemID)
	assert.Equal(t, "Margherita", rows[0].FoodItem.FoodTitle)
}
