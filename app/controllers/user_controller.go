package controllers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/verandah/app/services"
	"github.com/shashiranjanraj/verandah/pkg/bind"
	"github.com/shashiranjanraj/verandah/pkg/response"
)

// UserController is the admin user-management surface.
type UserController struct {
	users *services.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{users: services.NewUserService(db)}
}

func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	users, pagination, err := c.users.List(r.URL.Query().Get("search"), page, limit)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Users fetched", map[string]interface{}{
		"users":      users,
		"pagination": pagination,
	})
}

func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid user id")
		return
	}

	user, orders, err := c.users.Get(id)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "User fetched", map[string]interface{}{
		"user":   user,
		"orders": orders,
	})
}

func (c *UserController) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid user id")
		return
	}

	var in struct {
		IsActive *bool `json:"isActive"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}
	if in.IsActive == nil {
		response.BadRequest(w, "isActive is required")
		return
	}

	user, err := c.users.SetActive(id, *in.IsActive)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "User status updated", map[string]interface{}{"user": user})
}
