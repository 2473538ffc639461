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

// Event names fired by the order service.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventItemStatusChanged  = "order.item_status_changed"
)

// Fallback preparation estimate (minutes) when no line item carries a
// positive preparation time.
const defaultPrepMinutes = 15

// Buffer added on top of the slowest item's preparation time.
const prepBufferMinutes = 10

// OrderService implements the order lifecycle: transactional creation with
// server-side pricing, and the forward-only status machine.
type OrderService struct {
	db     *gorm.DB
	orders *repositories.OrderRepository
	tables *repositories.TableRepository
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		db:     db,
		orders: repositories.NewOrderRepository(db),
		tables: repositories.NewTableRepository(db),
	}
}

// OrderLineInput is one cart line.
type OrderLineInput struct {
	MenuItemID          uint   `json:"menuItemId" validate:"required,integer,gt=0"`
	Quantity            int    `json:"quantity" validate:"required,integer,gt=0"`
	SpecialInstructions string `json:"specialInstructions" validate:"nullable,max=2000"`
}

// CreateOrderInput is the payload for Create. Any client-supplied total is
// absent on purpose: the server recomputes money from current menu prices.
type CreateOrderInput struct {
	Items               []OrderLineInput `json:"items"`
	TableID             uint             `json:"tableId" validate:"nullable,integer,gte=0"`
	TableNumber         int              `json:"tableNumber" validate:"nullable,integer,gte=0"`
	OrderType           string           `json:"orderType" validate:"nullable,in=dine-in,takeaway"`
	SpecialInstructions string           `json:"specialInstructions" validate:"nullable,max=2000"`
}

// Create places an order. Pricing, the order row, and the item rows are all
// written in one transaction, so a rejected line leaves nothing behind.
func (s *OrderService) Create(userID uint, in CreateOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	orderType := in.OrderType
	if orderType == "" {
		orderType = models.OrderTypeDineIn
	}

	var orderID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		tableID, err := s.resolveTable(tx, in, orderType)
		if err != nil {
			return err
		}

		var (
			items   []models.OrderItem
			total   float64
			maxPrep int
		)
		for _, line := range in.Items {
			var item models.MenuItem
			if err := tx.First(&item, line.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ItemUnavailableError{MenuItemID: line.MenuItemID, Reason: "not found"}
				}
				return err
			}
			if !item.IsAvailable {
				return &ItemUnavailableError{MenuItemID: line.MenuItemID, Reason: "unavailable"}
			}

			lineTotal := item.Price * float64(line.Quantity)
			total += lineTotal
			if item.PreparationTime > maxPrep {
				maxPrep = item.PreparationTime
			}

			items = append(items, models.OrderItem{
				MenuItemID:          item.ID,
				Quantity:            line.Quantity,
				UnitPrice:           item.Price,
				TotalPrice:          lineTotal,
				SpecialInstructions: line.SpecialInstructions,
				ItemStatus:          models.ItemPending,
			})
		}

		prep := defaultPrepMinutes
		if maxPrep > 0 {
			prep = maxPrep + prepBufferMinutes
		}

		order := models.Order{
			OrderNumber:              newOrderNumber(),
			UserID:                   userID,
			TableID:                  tableID,
			TotalAmount:              total,
			Status:                   models.OrderPending,
			SpecialInstructions:      in.SpecialInstructions,
			OrderType:                orderType,
			EstimatedPreparationTime: prep,
			Items:                    items,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreated.WithLabelValues(order.OrderType).Inc()
	event.Fire(EventOrderCreated, order)
	return order, nil
}

// resolveTable picks the table an order binds to: explicit id, then table
// number (dine-in), then the first table as a walk-in fallback, then none
// at all when the café has no tables. Takeaway orders without an explicit
// id get no table.
func (s *OrderService) resolveTable(tx *gorm.DB, in CreateOrderInput, orderType string) (*uint, error) {
	if in.TableID != 0 {
		var table models.Table
		if err := tx.First(&table, in.TableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return &table.ID, nil
	}

	if orderType != models.OrderTypeDineIn {
		return nil, nil
	}

	if in.TableNumber != 0 {
		var table models.Table
		err := tx.Where("table_number = ?", in.TableNumber).First(&table).Error
		if err == nil {
			return &table.ID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// Unknown number: fall through to the walk-in fallback.
	}

	var table models.Table
	err := tx.Order("table_number").First(&table).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &table.ID, nil
}

func newOrderNumber() string {
	frag := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "ORD-" + time.Now().Format("20060102") + "-" + frag
}

// Get returns an order, enforcing ownership for non-admin callers.
func (s *OrderService) Get(id, userID uint, isAdmin bool) (*models.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !isAdmin && order.UserID != userID {
		return nil, ErrNotOwner
	}
	return order, nil
}

// MyOrders returns a page of the caller's orders.
func (s *OrderService) MyOrders(userID uint, page, limit int) ([]models.Order, repositories.Pagination, error) {
	return s.orders.ByUser(userID, page, limit)
}

// All returns a page of all orders, optionally filtered by status (admin).
func (s *OrderService) All(status string, page, limit int) ([]models.Order, repositories.Pagination, error) {
	if status != "" && !models.ValidOrderStatus(status) {
		return nil, repositories.Pagination{}, ErrInvalidStatus
	}
	return s.orders.All(status, page, limit)
}

// UpdateStatus advances an order through the status machine. The write is a
// conditional update guarded on the current status, so a concurrent change
// loses cleanly instead of double-applying. Completing an order stamps
// completedAt and releases its table in the same transaction.
func (s *OrderService) UpdateStatus(id uint, target string) (*models.Order, error) {
	if !models.ValidOrderStatus(target) {
		return nil, ErrInvalidStatus
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if !models.CanTransition(order.Status, target) {
			return ErrInvalidTransition
		}

		updates := map[string]interface{}{"status": target}
		if target == models.OrderCompleted {
			now := time.Now()
			updates["completed_at"] = &now
		}

		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", id, order.Status).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Status moved under us between the read and the write.
			return ErrInvalidTransition
		}

		if target == models.OrderCompleted && order.TableID != nil {
			err := tx.Model(&models.Table{}).
				Where("id = ?", *order.TableID).
				Updates(map[string]interface{}{
					"status":      models.TableAvailable,
					"occupied_by": nil,
				}).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	order, err := s.orders.FindByID(id)
	if err != nil {
		return nil, err
	}

	if models.IsTerminalOrderStatus(target) {
		metrics.OrdersCompleted.WithLabelValues(target).Inc()
	}
	if count, err := s.tables.CountOccupied(); err == nil {
		metrics.TablesOccupied.Set(float64(count))
	}
	event.Fire(EventOrderStatusChanged, order)
	return order, nil
}

// UpdateItemStatus sets the kitchen status of one order line. Line status
// is independent of the order-level status: marking every line served does
// not advance the order, and vice versa.
func (s *OrderService) UpdateItemStatus(itemID uint, status string) (*models.OrderItem, error) {
	if !models.ValidItemStatus(status) {
		return nil, ErrInvalidStatus
	}

	item, err := s.orders.FindItemByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	item.ItemStatus = status
	if err := s.orders.UpdateItem(item); err != nil {
		return nil, err
	}

	event.Fire(EventItemStatusChanged, item)
	return item, nil
}
