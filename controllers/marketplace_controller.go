package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"foodmarket/entity"
	"foodmarket/pkg/resp"
	"foodmarket/services"
	"foodmarket/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MarketplaceController struct {
	Catalog *services.CatalogService
	Cart    *services.CartService
}

func NewMarketplaceController(catalog *services.CatalogService, cart *services.CartService) *MarketplaceController {
	return &MarketplaceController{Catalog: catalog, Cart: cart}
}

// GET / — the homepage shows the eight newest listed vendors.
func (h *MarketplaceController) Home(c *gin.Context) {
	vendors, err := h.Catalog.ListVendors(8)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

// GET /marketplace
func (h *MarketplaceController) Marketplace(c *gin.Context) {
	vendors, err := h.Catalog.ListVendors(0)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": vendors, "vendor_count": len(vendors)})
}

// GET /marketplace/:vendor_slug — vendor detail. ?search= filters the
// displayed foods by text; otherwise ?category= filters by category id.
func (h *MarketplaceController) VendorDetail(c *gin.Context) {
	page, err := h.Catalog.VendorDetail(c.Param("vendor_slug"))
	if err != nil {
		if errors.Is(err, services.ErrVendorNotFound) {
			resp.NotFound(c, "vendor not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	search := strings.TrimSpace(c.Query("search"))
	categoryParam := strings.TrimSpace(c.Query("category"))

	var filtered []entity.FoodItem
	var selected *entity.Category
	if search != "" {
		filtered, err = h.Catalog.FilterVendorFoods(page.Vendor.ID, services.FoodQuery{Search: search})
		if err != nil {
			resp.ServerError(c, err)
			return
		}
	} else if categoryParam != "" {
		if id, convErr := strconv.ParseUint(categoryParam, 10, 64); convErr == nil {
			cat, catErr := h.Catalog.VendorCategory(page.Vendor.ID, uint(id))
			if catErr == nil {
				selected = cat
				filtered, err = h.Catalog.FilterVendorFoods(page.Vendor.ID, services.FoodQuery{Category: categoryParam})
				if err != nil {
					resp.ServerError(c, err)
					return
				}
			}
		}
	}

	body := gin.H{
		"vendor":            page.Vendor,
		"categories":        page.Categories,
		"opening_hours":     page.OpeningHours,
		"today_hours":       page.TodayHours,
		"min_price":         page.MinPrice,
		"max_price":         page.MaxPrice,
		"search_query":      search,
		"filtered_foods":    filtered,
		"selected_category": selected,
	}
	if uid := utils.CurrentUserID(c); uid != 0 {
		items, listErr := h.Cart.List(uid)
		if listErr == nil {
			body["cart_items"] = items
		}
	}
	c.JSON(http.StatusOK, body)
}

type filteredFood struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	InCart      bool            `json:"in_cart"`
}

// GET /marketplace/:vendor_slug/filter — AJAX food filter. Category, text
// and price bounds AND-combine; malformed numbers are dropped.
func (h *MarketplaceController) FilterFoods(c *gin.Context) {
	foods, err := h.Catalog.FilterFoods(c.Param("vendor_slug"), services.FoodQuery{
		Search:   strings.TrimSpace(c.Query("search")),
		Category: strings.TrimSpace(c.Query("category")),
		MinPrice: strings.TrimSpace(c.Query("min_price")),
		MaxPrice: strings.TrimSpace(c.Query("max_price")),
	})
	if err != nil {
		if errors.Is(err, services.ErrVendorNotFound) {
			resp.Failed(c, "Vendor not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	inCart := map[uint]bool{}
	if uid := utils.CurrentUserID(c); uid != 0 {
		if set, idsErr := h.Cart.InCartFoodIDs(uid); idsErr == nil {
			inCart = set
		}
	}

	out := make([]filteredFood, 0, len(foods))
	for _, f := range foods {
		out = append(out, filteredFood{
			ID:          f.ID,
			Title:       f.FoodTitle,
			Price:       f.Price,
			Description: f.Description,
			Image:       f.Image,
			InCart:      inCart[f.ID],
		})
	}
	resp.Success(c, gin.H{"foods": out, "count": len(out)})
}

// GET /search?keyword= — keyword search over vendors; without the keyword
// parameter the client is sent back to the marketplace listing.
func (h *MarketplaceController) Search(c *gin.Context) {
	if !c.Request.URL.Query().Has("keyword") {
		c.Redirect(http.StatusFound, "/marketplace")
		return
	}

	vendors, err := h.Catalog.SearchVendors(c.Query("keyword"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": vendors, "vendor_count": len(vendors)})
}
