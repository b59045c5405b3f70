package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"foodmarket/pkg/resp"
	"foodmarket/services"
	"foodmarket/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc  *services.CartService
	Auth *services.AuthService
}

func NewCartController(cart *services.CartService, auth *services.AuthService) *CartController {
	return &CartController{Svc: cart, Auth: auth}
}

// ajaxGate applies the storefront cart preamble: login first, then the
// XMLHttpRequest check, in that order — an anonymous browser gets
// login_required even on a plain request.
func ajaxGate(c *gin.Context) (uint, bool) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.LoginRequired(c)
		return 0, false
	}
	if !utils.IsAJAX(c) {
		resp.Failed(c, "Invalid request")
		return 0, false
	}
	return uid, true
}

// POST /cart/add/:food_id
func (h *CartController) Add(c *gin.Context) {
	uid, ok := ajaxGate(c)
	if !ok {
		return
	}
	foodID, err := strconv.ParseUint(c.Param("food_id"), 10, 64)
	if err != nil {
		resp.Failed(c, "This food does not exist!")
		return
	}

	res, created, err := h.Svc.Add(uid, uint(foodID))
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			resp.Failed(c, "This food does not exist!")
			return
		}
		resp.ServerError(c, err)
		return
	}

	message := "Increased the cart quantity"
	if created {
		message = "Added the food to the cart"
	}
	resp.Success(c, gin.H{
		"message":      message,
		"cart_counter": res.Counter,
		"qty":          res.Quantity,
		"cart_amount":  res.Amounts,
	})
}

// POST /cart/decrease/:food_id
func (h *CartController) Decrease(c *gin.Context) {
	uid, ok := ajaxGate(c)
	if !ok {
		return
	}
	foodID, err := strconv.ParseUint(c.Param("food_id"), 10, 64)
	if err != nil {
		resp.Failed(c, "This food does not exist!")
		return
	}

	res, err := h.Svc.Decrease(uid, uint(foodID))
	if err != nil {
		if errors.Is(err, services.ErrNotInCart) {
			resp.Failed(c, "You do not have this item in your cart!")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Success(c, gin.H{
		"cart_counter": res.Counter,
		"qty":          res.Quantity,
		"cart_amount":  res.Amounts,
	})
}

// POST /cart/delete/:cart_id
func (h *CartController) Delete(c *gin.Context) {
	uid, ok := ajaxGate(c)
	if !ok {
		return
	}
	cartID, err := strconv.ParseUint(c.Param("cart_id"), 10, 64)
	if err != nil {
		resp.Failed(c, "Cart item does not exist!")
		return
	}

	res, err := h.Svc.Remove(uid, uint(cartID))
	if err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			resp.Failed(c, "Cart item does not exist!")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Success(c, gin.H{
		"message":      "Cart item has been deleted!",
		"cart_counter": res.Counter,
		"cart_amount":  res.Amounts,
	})
}

// GET /cart — authenticated cart listing.
func (h *CartController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	items, err := h.Svc.List(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	counter, amounts, err := h.Svc.Totals(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cart_items":   items,
		"cart_counter": counter,
		"cart_amount":  amounts,
	})
}

// GET /checkout — authenticated; bounces back to the marketplace when the
// cart is empty, otherwise pre-fills the order form from the profile.
func (h *CartController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	items, err := h.Svc.List(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(items) == 0 {
		c.Redirect(http.StatusFound, "/marketplace")
		return
	}

	user, err := h.Auth.GetProfile(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	_, amounts, err := h.Svc.Totals(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_form": gin.H{
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"phone":      user.PhoneNumber,
			"email":      user.Email,
			"address":    user.Address,
			"country":    user.Country,
			"division":   user.Division,
			"city":       user.City,
			"pin_code":   user.PinCode,
		},
		"cart_items":  items,
		"cart_amount": amounts,
	})
}
