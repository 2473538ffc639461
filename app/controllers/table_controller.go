package controllers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/verandah/app/services"
	"github.com/shashiranjanraj/verandah/pkg/bind"
	"github.com/shashiranjanraj/verandah/pkg/response"
)

// TableController serves table listings and occupancy changes.
type TableController struct {
	tables *services.TableService
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{tables: services.NewTableService(db)}
}

func (c *TableController) List(w http.ResponseWriter, r *http.Request) {
	tables, err := c.tables.All()
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Tables fetched", map[string]interface{}{"tables": tables})
}

func (c *TableController) Available(w http.ResponseWriter, r *http.Request) {
	tables, err := c.tables.Available()
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Available tables fetched", map[string]interface{}{"tables": tables})
}

func (c *TableController) Occupy(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid table id")
		return
	}

	userID, _ := caller(r)
	table, err := c.tables.Occupy(id, userID)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Table occupied", map[string]interface{}{"table": table})
}

func (c *TableController) Release(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid table id")
		return
	}

	table, err := c.tables.Release(id)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Table released", map[string]interface{}{"table": table})
}

func (c *TableController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.TableInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	table, err := c.tables.Create(in)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Created(w, "Table created", map[string]interface{}{"table": table})
}

func (c *TableController) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid table id")
		return
	}

	var in services.AdminUpdateInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	table, err := c.tables.AdminUpdate(id, in)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Table updated", map[string]interface{}{"table": table})
}
