package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"foodmarket/configs"
	"foodmarket/entity"
	"foodmarket/routes"
	"foodmarket/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Vendor{}, &entity.OpeningHour{},
		&entity.Category{}, &entity.FoodItem{},
		&entity.CartItem{},
	))

	cfg := &configs.Config{JWTSecret: testSecret, JWTTTL: time.Hour, CartTaxPct: "0"}
	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)
	return r, db
}

func seedMargherita(t *testing.T, db *gorm.DB) (*entity.User, *entity.FoodItem) {
	t.Helper()
	user := &entity.User{Email: "customer@test", Role: "customer", IsActive: true}
	require.NoError(t, db.Create(user).Error)

	vendor := &entity.Vendor{VendorName: "Pizza Place", VendorSlug: "pizza-place", IsApproved: true, IsActive: true, UserID: user.ID}
	require.NoError(t, db.Create(vendor).Error)
	cat := &entity.Category{VendorID: vendor.ID, CategoryName: "Mains", Slug: "mains"}
	require.NoError(t, db.Create(cat).Error)
	food := &entity.FoodItem{
		VendorID:    vendor.ID,
		CategoryID:  cat.ID,
		FoodTitle:   "Margherita",
		Slug:        "margherita",
		Price:       decimal.RequireFromString("8.00"),
		IsAvailable: true,
	}
	require.NoError(t, db.Create(food).Error)
	return user, food
}

func doCart(t *testing.T, r *gin.Engine, path, token string, ajax bool) map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if ajax {
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// The AJAX contract rides on the status field, never the HTTP code.
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCartAddRequiresLogin(t *testing.T) {
	r, db := newTestRouter(t)
	_, food := seedMargherita(t, db)

	body := doCart(t, r, fmt.Sprintf("/cart/add/%d", food.ID), "", true)
	assert.Equal(t, "login_required", body["status"])
}

func TestCartAddRequiresAJAX(t *testing.T) {
	r, db := newTestRouter(t)
	user, food := seedMargherita(t, db)
	token, err := utils.GenerateToken(user.ID, user.Role, testSecret, time.Hour)
	require.NoError(t, err)

	body := doCart(t, r, fmt.Sprintf("/cart/add/%d", food.ID), token, false)
	assert.Equal(t, "failed", body["status"])
	assert.Equal(t, "Invalid request", body["message"])
}

func TestCartAddAndDecreaseFlow(t *testing.T) {
	r, db := newTestRouter(t)
	user, food := seedMargherita(t, db)
	token, err := utils.GenerateToken(user.ID, user.Role, testSecret, time.Hour)
	require.NoError(t, err)

	body := doCart(t, r, fmt.Sprintf("/cart/add/%d", food.ID), token, true)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Added the food to the cart", body["message"])
	assert.EqualValues(t, 1, body["qty"])
	assert.EqualValues(t, 1, body["cart_counter"])
	amount, ok := body["cart_amount"].(map[string]any)
	require.True(t, ok)
	sub, err := decimal.NewFromString(fmt.Sprint(amount["subtotal"]))
	require.NoError(t, err)
	assert.Equal(t, "8.00", sub.StringFixed(2))

	body = doCart(t, r, fmt.Sprintf("/cart/add/%d", food.ID), token, true)
	assert.Equal(t, "Increased the cart quantity", body["message"])
	assert.EqualValues(t, 2, body["qty"])

	body = doCart(t, r, fmt.Sprintf("/cart/decrease/%d", food.ID), token, true)
	assert.Equal(t, "success", body["status"])
	assert.EqualValues(t, 1, body["qty"])
}

func TestCartAddUnknownFood(t *testing.T) {
	r, db := newTestRouter(t)
	user, _ := seedMargherita(t, db)
	token, err := utils.GenerateToken(user.ID, user.Role, testSecret, time.Hour)
	require.NoError(t, err)

	body := doCart(t, r, "/cart/add/424242", token, true)
	assert.Equal(t, "failed", body["status"])
	assert.Equal(t, "This food does not exist!", body["message"])
}

func TestCartDecreaseNotInCart(t *testing.T) {
	r, db := newTestRouter(t)
	user, food := seedMargherita(t, db)
	token, err := utils.GenerateToken(user.ID, user.Role, testSecret, time.Hour)
	require.NoError(t, err)

	body := doCart(t, r, fmt.Sprintf("/cart/decrease/%d", food.ID), token, true)
	assert.Equal(t, "failed", body["status"])
	assert.Equal(t, "You do not have this item in your cart!", body["message"])
}

func TestFilterEndpointRejectsPlainRequests(t *testing.T) {
	r, db := newTestRouter(t)
	seedMargherita(t, db)

	req := httptest.NewRequest(http.MethodGet, "/marketplace/pizza-place/filter", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "failed", body["status"])
}

func TestFilterEndpointReturnsFoods(t *testing.T) {
	r, db := newTestRouter(t)
	seedMargherita(t, db)

	req := httptest.NewRequest(http.MethodGet, "/marketplace/pizza-place/filter?search=margh", nil)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
		Foods  []struct {
			Title  string `json:"title"`
			InCart bool   `json:"in_cart"`
		} `json:"foods"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "Margherita", body.Foods[0].Title)
	assert.False(t, body.Foods[0].InCart)
}

func TestSearchRedirectsWithoutKeyword(t *testing.T) {
	r, db := newTestRouter(t)
	seedMargherita(t, db)

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/marketplace", w.Header().Get("Location"))
}

func TestCheckoutRedirectsWhenCartEmpty(t *testing.T) {
	r, db := newTestRouter(t)
	user, _ := seedMargherita(t, db)
	token, err := utils.GenerateToken(user.ID, user.Role, testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/marketplace", w.Header().Get("Location"))
}
