// Package controllers is the HTTP boundary: bind + validate input, call a
// service, map its errors to statuses, and write the response envelope.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/verandah/app/services"
	"github.com/shashiranjanraj/verandah/pkg/logger"
	"github.com/shashiranjanraj/verandah/pkg/middleware"
	"github.com/shashiranjanraj/verandah/pkg/response"
	"github.com/shashiranjanraj/verandah/pkg/router"
)

// uintParam parses a URL parameter as an id.
func uintParam(r *http.Request, key string) (uint, bool) {
	raw := router.Param(r, key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// pageParams reads ?page= and ?limit= with sane defaults.
func pageParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

// caller returns the authenticated user's id and whether they are an admin.
func caller(r *http.Request) (userID uint, isAdmin bool) {
	userID, _ = middleware.UserIDFromCtx(r)
	role, _ := middleware.RoleFromCtx(r)
	return userID, role == "admin"
}

// serviceError maps a service-layer error to the HTTP envelope.
func serviceError(w http.ResponseWriter, r *http.Request, err error) {
	var unavailable *services.ItemUnavailableError
	switch {
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrCategoryNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Unauthorized(w, err.Error())
	case errors.Is(err, services.ErrAccountDisabled),
		errors.Is(err, services.ErrNotOwner):
		response.Forbidden(w, err.Error())
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrTableOccupied),
		errors.Is(err, services.ErrDuplicatePayment):
		response.Conflict(w, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPaymentMethod),
		errors.As(err, &unavailable):
		response.BadRequest(w, err.Error())
	default:
		logger.WithCtx(r.Context()).Error("unhandled service error", "error", err.Error())
		response.ServerError(w, "Something went wrong")
	}
}
