package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/verandah/app/models"
	"github.com/shashiranjanraj/verandah/app/repositories"
	"github.com/shashiranjanraj/verandah/pkg/event"
	"github.com/shashiranjanraj/verandah/pkg/metrics"
)

// EventPaymentRecorded is fired after a payment is created.
const EventPaymentRecorded = "payment.recorded"

// PaymentService implements the one-payment-per-order lifecycle. Creation
// runs in a transaction: the duplicate check, the payment row, and the
// order's pending→confirmed bump commit or roll back together. The unique
// index on payments.order_id backstops the in-transaction check.
type PaymentService struct {
	db       *gorm.DB
	payments *repositories.PaymentRepository
	orders   *repositories.OrderRepository
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{
		db:       db,
		payments: repositories.NewPaymentRepository(db),
		orders:   repositories.NewOrderRepository(db),
	}
}

// CreatePaymentInput is the payload for Create. There is no amount field:
// the amount is always copied from the order's total.
type CreatePaymentInput struct {
	OrderID       uint   `json:"orderId" validate:"required,integer,gt=0"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
	Notes         string `json:"notes" validate:"nullable,max=2000"`
}

// Create records the payment for an order. pay_at_counter produces an
// unpaid placeholder settled later at the counter; every other method is
// treated as settled immediately with a transaction id and date. A pending
// order advances to confirmed in the same transaction.
func (s *PaymentService) Create(userID uint, in CreatePaymentInput) (*models.Payment, error) {
	if !models.ValidPaymentMethod(in.PaymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}

	var paymentID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, in.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if order.UserID != userID {
			return ErrNotOwner
		}

		var existing models.Payment
		err := tx.Where("order_id = ?", in.OrderID).First(&existing).Error
		if err == nil {
			return ErrDuplicatePayment
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		payment := models.Payment{
			OrderID:       order.ID,
			UserID:        userID,
			Amount:        order.TotalAmount,
			PaymentMethod: in.PaymentMethod,
			Notes:         in.Notes,
		}

		if in.PaymentMethod == models.PayAtCounter {
			payment.PaymentStatus = models.PaymentUnpaid
		} else {
			now := time.Now()
			txn := newTransactionID()
			payment.PaymentStatus = models.PaymentCompleted
			payment.PaymentDate = &now
			payment.TransactionID = &txn
		}

		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		if order.Status == models.OrderPending {
			res := tx.Model(&models.Order{}).
				Where("id = ? AND status = ?", order.ID, models.OrderPending).
				Update("status", models.OrderConfirmed)
			if res.Error != nil {
				return res.Error
			}
			// RowsAffected 0 means the order already moved on; fine either way.
		}

		paymentID = payment.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	payment, err := s.payments.FindByID(paymentID)
	if err != nil {
		return nil, err
	}

	metrics.PaymentsRecorded.WithLabelValues(payment.PaymentMethod, payment.PaymentStatus).Inc()
	event.Fire(EventPaymentRecorded, payment)
	return payment, nil
}

func newTransactionID() string {
	return "TXN-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:16])
}

// UpdateStatus sets a payment's status (admin). Entering completed or done
// stamps the payment date if it is not already set. No other entity is
// touched.
func (s *PaymentService) UpdateStatus(id uint, status string) (*models.Payment, error) {
	if !models.ValidPaymentStatus(status) {
		return nil, ErrInvalidStatus
	}

	payment, err := s.payments.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	payment.PaymentStatus = status
	if (status == models.PaymentCompleted || status == models.PaymentDone) && payment.PaymentDate == nil {
		now := time.Now()
		payment.PaymentDate = &now
	}

	if err := s.payments.Update(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// ByOrder returns the payment for an order, enforcing ownership for
// non-admin callers.
func (s *PaymentService) ByOrder(orderID, userID uint, isAdmin bool) (*models.Payment, error) {
	payment, err := s.payments.FindByOrderID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !isAdmin && payment.UserID != userID {
		return nil, ErrNotOwner
	}
	return payment, nil
}

// ByUser returns a page of the caller's payments.
func (s *PaymentService) ByUser(userID uint, page, limit int) ([]models.Payment, repositories.Pagination, error) {
	return s.payments.ByUser(userID, page, limit)
}

// All returns a page of all payments, optionally filtered by status (admin).
func (s *PaymentService) All(status string, page, limit int) ([]models.Payment, repositories.Pagination, error) {
	if status != "" && !models.ValidPaymentStatus(status) {
		return nil, repositories.Pagination{}, ErrInvalidStatus
	}
	return s.payments.All(status, page, limit)
}

// OrdersWithPayments returns a page of orders with their payments attached,
// the counter view for settling pay_at_counter orders (admin).
func (s *PaymentService) OrdersWithPayments(page, limit int) ([]models.Order, repositories.Pagination, error) {
	return s.orders.All("", page, limit)
}
