package controllers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/verandah/pkg/response"
)

// HealthController reports liveness and database reachability.
type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	dbStatus := "up"
	if sqlDB, err := c.db.DB(); err != nil || sqlDB.PingContext(r.Context()) != nil {
		dbStatus = "down"
	}

	if dbStatus != "up" {
		response.Error(w, http.StatusServiceUnavailable, "Service degraded")
		return
	}
	response.Success(w, "OK", map[string]interface{}{"database": dbStatus})
}
