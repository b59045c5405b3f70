package controllers

import (
	"errors"

	"foodmarket/pkg/resp"
	"foodmarket/repository"
	"foodmarket/services"
	"foodmarket/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// MenuController is the vendor-facing menu builder.
type MenuController struct {
	Svc        *services.MenuService
	VendorRepo *repository.VendorRepository
}

func NewMenuController(svc *services.MenuService, vr *repository.VendorRepository) *MenuController {
	return &MenuController{Svc: svc, VendorRepo: vr}
}

// vendorForCaller loads the vendor and enforces that non-admin callers own
// it.
func (h *MenuController) vendorForCaller(c *gin.Context, vendorID uint) bool {
	vendor, err := h.VendorRepo.FindByID(vendorID)
	if err != nil {
		resp.NotFound(c, "vendor not found")
		return false
	}
	if utils.CurrentRole(c) != "admin" && vendor.UserID != utils.CurrentUserID(c) {
		resp.Forbidden(c, "not your vendor")
		return false
	}
	return true
}

type createCategoryReq struct {
	VendorID    uint   `json:"vendorId" validate:"required"`
	Name        string `json:"name" validate:"required,min=2,max=50"`
	Slug        string `json:"slug" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"max=250"`
}

// POST /partner/menu/categories
func (h *MenuController) CreateCategory(c *gin.Context) {
	var req createCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !h.vendorForCaller(c, req.VendorID) {
		return
	}

	cat, err := h.Svc.CreateCategory(services.CreateCategoryIn{
		VendorID:    req.VendorID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) || errors.Is(err, repository.ErrSlugTaken) || errors.Is(err, repository.ErrSlugEmpty) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

type createFoodReq struct {
	VendorID    uint   `json:"vendorId" validate:"required"`
	CategoryID  uint   `json:"categoryId" validate:"required"`
	Title       string `json:"title" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"omitempty,max=150"`
	Description string `json:"description" validate:"max=500"`
	Price       string `json:"price" validate:"required"`
	ImageBase64 string `json:"imageBase64"`
	IsAvailable *bool  `json:"isAvailable"`
}

// POST /partner/menu/foods
func (h *MenuController) CreateFood(c *gin.Context) {
	var req createFoodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !h.vendorForCaller(c, req.VendorID) {
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		resp.BadRequest(c, "invalid price")
		return
	}

	image := ""
	if req.ImageBase64 != "" {
		image, err = utils.SaveBase64Image(req.ImageBase64, "uploads/foodimages")
		if err != nil {
			resp.BadRequest(c, "invalid image")
			return
		}
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	item, err := h.Svc.CreateFoodItem(services.CreateFoodItemIn{
		VendorID:    req.VendorID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       price,
		Image:       image,
		IsAvailable: available,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			resp.NotFound(c, "category not found")
		case errors.Is(err, repository.ErrSlugTaken), errors.Is(err, repository.ErrSlugEmpty):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, item)
}
