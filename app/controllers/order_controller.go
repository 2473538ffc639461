package controllers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/verandah/app/services"
	"github.com/shashiranjanraj/verandah/pkg/bind"
	"github.com/shashiranjanraj/verandah/pkg/response"
)

// OrderController serves order creation, browsing, and the status machine.
type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{orders: services.NewOrderService(db)}
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreateOrderInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	userID, _ := caller(r)
	order, err := c.orders.Create(userID, in)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Created(w, "Order placed", map[string]interface{}{"order": order})
}

func (c *OrderController) MyOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := caller(r)
	page, limit := pageParams(r)

	orders, pagination, err := c.orders.MyOrders(userID, page, limit)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Orders fetched", map[string]interface{}{
		"orders":     orders,
		"pagination": pagination,
	})
}

func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid order id")
		return
	}

	userID, isAdmin := caller(r)
	order, err := c.orders.Get(id, userID, isAdmin)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Order fetched", map[string]interface{}{"order": order})
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	orders, pagination, err := c.orders.All(r.URL.Query().Get("status"), page, limit)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Orders fetched", map[string]interface{}{
		"orders":     orders,
		"pagination": pagination,
	})
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid order id")
		return
	}

	var in struct {
		Status string `json:"status" validate:"required"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.orders.UpdateStatus(id, in.Status)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Order status updated", map[string]interface{}{"order": order})
}

func (c *OrderController) UpdateItemStatus(w http.ResponseWriter, r *http.Request) {
	itemID, ok := uintParam(r, "itemId")
	if !ok {
		response.BadRequest(w, "Invalid order item id")
		return
	}

	var in struct {
		ItemStatus string `json:"itemStatus" validate:"required"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	item, err := c.orders.UpdateItemStatus(itemID, in.ItemStatus)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Order item status updated", map[string]interface{}{"item": item})
}
