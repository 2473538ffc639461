package repositories

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/verandah/app/models"
)

// PaymentRepository handles database operations for payments.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// FindByID loads a payment with its order.
func (r *PaymentRepository) FindByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.Preload("Order").First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// FindByOrderID returns the payment attached to an order, if any.
func (r *PaymentRepository) FindByOrderID(orderID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.Where("order_id = ?", orderID).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// ByUser returns a page of a user's payments, newest first.
func (r *PaymentRepository) ByUser(userID uint, page, limit int) ([]models.Payment, Pagination, error) {
	query := r.db.Model(&models.Payment{}).
		Preload("Order").
		Where("user_id = ?", userID).
		Order("created_at desc")

	var payments []models.Payment
	pagination, err := paginate(query, &payments, page, limit)
	return payments, pagination, err
}

// All returns a page of all payments, newest first, optionally filtered by
// status.
func (r *PaymentRepository) All(status string, page, limit int) ([]models.Payment, Pagination, error) {
	query := r.db.Model(&models.Payment{}).
		Preload("Order").
		Preload("User").
		Order("created_at desc")
	if status != "" {
		query = query.Where("payment_status = ?", status)
	}

	var payments []models.Payment
	pagination, err := paginate(query, &payments, page, limit)
	return payments, pagination, err
}

// Update persists changes to a payment.
func (r *PaymentRepository) Update(payment *models.Payment) error {
	return r.db.Save(payment).Error
}
