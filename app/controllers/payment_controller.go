package controllers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/verandah/app/services"
	"github.com/shashiranjanraj/verandah/pkg/bind"
	"github.com/shashiranjanraj/verandah/pkg/response"
)

// PaymentController serves payment creation, lookups, and admin settlement.
type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{payments: services.NewPaymentService(db)}
}

func (c *PaymentController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreatePaymentInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	userID, _ := caller(r)
	payment, err := c.payments.Create(userID, in)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Created(w, "Payment recorded", map[string]interface{}{"payment": payment})
}

func (c *PaymentController) ByOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := uintParam(r, "orderId")
	if !ok {
		response.BadRequest(w, "Invalid order id")
		return
	}

	userID, isAdmin := caller(r)
	payment, err := c.payments.ByOrder(orderID, userID, isAdmin)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Payment fetched", map[string]interface{}{"payment": payment})
}

func (c *PaymentController) MyPayments(w http.ResponseWriter, r *http.Request) {
	userID, _ := caller(r)
	page, limit := pageParams(r)

	payments, pagination, err := c.payments.ByUser(userID, page, limit)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Payments fetched", map[string]interface{}{
		"payments":   payments,
		"pagination": pagination,
	})
}

func (c *PaymentController) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	payments, pagination, err := c.payments.All(r.URL.Query().Get("status"), page, limit)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Payments fetched", map[string]interface{}{
		"payments":   payments,
		"pagination": pagination,
	})
}

// OrdersWithPayments is the counter view for settling pay_at_counter orders.
func (c *PaymentController) OrdersWithPayments(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	orders, pagination, err := c.payments.OrdersWithPayments(page, limit)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Orders fetched", map[string]interface{}{
		"orders":     orders,
		"pagination": pagination,
	})
}

func (c *PaymentController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid payment id")
		return
	}

	var in struct {
		PaymentStatus string `json:"paymentStatus" validate:"required"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	payment, err := c.payments.UpdateStatus(id, in.PaymentStatus)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	response.Success(w, "Payment status updated", map[string]interface{}{"payment": payment})
}
