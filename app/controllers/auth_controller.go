package controllers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/verandah/app/services"
	"github.com/shashiranjanraj/verandah/pkg/bind"
	"github.com/shashiranjanraj/verandah/pkg/response"
)

// AuthController handles registration, login, and the caller's profile.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{auth: services.NewAuthService(db)}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.auth.Register(in)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	response.Created(w, "Registered successfully", map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.auth.Login(in.Email, in.Password)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	response.Success(w, "Logged in successfully", map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := caller(r)
	user, err := c.auth.Me(userID)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Profile fetched", map[string]interface{}{"user": user})
}

func (c *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var in services.ProfileInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	userID, _ := caller(r)
	user, err := c.auth.UpdateProfile(userID, in)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Profile updated", map[string]interface{}{"user": user})
}
