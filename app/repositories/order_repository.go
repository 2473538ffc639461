package repositories

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/verandah/app/models"
)

// OrderRepository handles database operations for orders and order items.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// FindByID loads an order with items (and their menu items), table, and
// payment preloaded.
func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.
		Preload("Items.MenuItem").
		Preload("Table").
		Preload("Payment").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ByUser returns a page of a user's orders, newest first.
func (r *OrderRepository) ByUser(userID uint, page, limit int) ([]models.Order, Pagination, error) {
	query := r.db.Model(&models.Order{}).
		Preload("Items.MenuItem").
		Preload("Table").
		Preload("Payment").
		Where("user_id = ?", userID).
		Order("created_at desc")

	var orders []models.Order
	pagination, err := paginate(query, &orders, page, limit)
	return orders, pagination, err
}

// All returns a page of all orders, newest first, optionally filtered by
// status.
func (r *OrderRepository) All(status string, page, limit int) ([]models.Order, Pagination, error) {
	query := r.db.Model(&models.Order{}).
		Preload("Items.MenuItem").
		Preload("Table").
		Preload("User").
		Preload("Payment").
		Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	pagination, err := paginate(query, &orders, page, limit)
	return orders, pagination, err
}

// FindItemByID loads one order line.
func (r *OrderRepository) FindItemByID(id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem persists changes to an order line.
func (r *OrderRepository) UpdateItem(item *models.OrderItem) error {
	return r.db.Save(item).Error
}
