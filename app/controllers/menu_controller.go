package controllers

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/verandah/app/repositories"
	"github.com/shashiranjanraj/verandah/app/services"
	"github.com/shashiranjanraj/verandah/pkg/bind"
	"github.com/shashiranjanraj/verandah/pkg/response"
)

const maxImageBytes = 5 << 20 // 5 MB

// MenuController serves public menu browsing and admin menu management.
type MenuController struct {
	menu *services.MenuService
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{menu: services.NewMenuService(db)}
}

func (c *MenuController) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.menu.Categories()
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Categories fetched", map[string]interface{}{"categories": categories})
}

func (c *MenuController) CategoriesWithMenus(w http.ResponseWriter, r *http.Request) {
	categories, err := c.menu.CategoriesWithItems(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Menu fetched", map[string]interface{}{"categories": categories})
}

func (c *MenuController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in services.CategoryInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	category, err := c.menu.CreateCategory(r.Context(), in)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Created(w, "Category created", map[string]interface{}{"category": category})
}

func (c *MenuController) Items(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, limit := pageParams(r)

	filter := repositories.MenuItemFilter{
		Search:        q.Get("search"),
		OnlyAvailable: q.Get("includeUnavailable") != "true",
	}
	if raw := q.Get("categoryId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			filter.CategoryID = uint(id)
		}
	}
	if raw := q.Get("vegetarian"); raw != "" {
		veg := raw == "true"
		filter.Vegetarian = &veg
	}

	// Only admins may see unavailable items.
	if _, isAdmin := caller(r); !isAdmin {
		filter.OnlyAvailable = true
	}

	items, pagination, err := c.menu.Items(filter, page, limit)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Menu items fetched", map[string]interface{}{
		"items":      items,
		"pagination": pagination,
	})
}

func (c *MenuController) Item(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid menu item id")
		return
	}

	item, err := c.menu.Item(id)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Menu item fetched", map[string]interface{}{"item": item})
}

func (c *MenuController) CreateItem(w http.ResponseWriter, r *http.Request) {
	var in services.MenuItemInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	item, err := c.menu.CreateItem(r.Context(), in)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Created(w, "Menu item created", map[string]interface{}{"item": item})
}

func (c *MenuController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid menu item id")
		return
	}

	var in services.MenuItemInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	item, err := c.menu.UpdateItem(r.Context(), id, in)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Menu item updated", map[string]interface{}{"item": item})
}

func (c *MenuController) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid menu item id")
		return
	}

	disabled, err := c.menu.DeleteItem(r.Context(), id)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	msg := "Menu item deleted"
	if disabled {
		msg = "Menu item disabled (referenced by existing orders)"
	}
	response.Success(w, msg, nil)
}

// UploadImage accepts multipart form-data with an "image" file field.
func (c *MenuController) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid menu item id")
		return
	}

	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.BadRequest(w, "Missing image file")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		response.BadRequest(w, "Unsupported image type")
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		response.ServerError(w, "Failed to read upload")
		return
	}

	item, err := c.menu.UploadImage(r.Context(), id, ext, content)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Image uploaded", map[string]interface{}{"item": item})
}
