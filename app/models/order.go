package models

import "time"

// Order statuses. Orders move forward through the chain and may be
// cancelled from any non-terminal status.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderServed    = "served"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// Order types.
const (
	OrderTypeDineIn   = "dine-in"
	OrderTypeTakeaway = "takeaway"
)

// orderTransitions is the allowed status adjacency: one forward step at a
// time, plus cancellation from any non-terminal status.
var orderTransitions = map[string][]string{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderReady, OrderCancelled},
	OrderReady:     {OrderServed, OrderCancelled},
	OrderServed:    {OrderCompleted, OrderCancelled},
	OrderCompleted: {},
	OrderCancelled: {},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalOrderStatus reports whether status accepts no further transitions.
func IsTerminalOrderStatus(status string) bool {
	return status == OrderCompleted || status == OrderCancelled
}

// ValidOrderStatus reports whether status is one of the seven order statuses.
func ValidOrderStatus(status string) bool {
	_, ok := orderTransitions[status]
	return ok
}

// Order is a placed order. TotalAmount is always computed server-side from
// current menu prices; client-supplied totals are ignored.
type Order struct {
	Model
	OrderNumber              string     `gorm:"uniqueIndex;size:64;not null" json:"orderNumber"`
	UserID                   uint       `gorm:"not null;index" json:"userId"`
	TableID                  *uint      `gorm:"index" json:"tableId"`
	TotalAmount              float64    `gorm:"not null" json:"totalAmount"`
	Status                   string     `gorm:"size:50;default:pending;index" json:"status"`
	SpecialInstructions      string     `gorm:"type:text" json:"specialInstructions"`
	OrderType                string     `gorm:"size:20;default:dine-in" json:"orderType"`
	EstimatedPreparationTime int        `json:"estimatedPreparationTime"`
	CompletedAt              *time.Time `json:"completedAt"`

	User    *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Table   *Table      `gorm:"foreignKey:TableID" json:"table,omitempty"`
	Items   []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Payment *Payment    `gorm:"foreignKey:OrderID" json:"payment,omitempty"`
}

// Order item statuses, tracked per line by the kitchen. Independent of the
// order-level status.
const (
	ItemPending   = "pending"
	ItemPreparing = "preparing"
	ItemReady     = "ready"
	ItemServed    = "served"
)

// ValidItemStatus reports whether status is a recognised line-item status.
func ValidItemStatus(status string) bool {
	switch status {
	case ItemPending, ItemPreparing, ItemReady, ItemServed:
		return true
	}
	return false
}

// OrderItem is one line of an order. UnitPrice snapshots the menu price at
// creation; TotalPrice = UnitPrice × Quantity.
type OrderItem struct {
	Model
	OrderID             uint    `gorm:"not null;index" json:"orderId"`
	MenuItemID          uint    `gorm:"not null;index" json:"menuItemId"`
	Quantity            int     `gorm:"not null" json:"quantity"`
	UnitPrice           float64 `gorm:"not null" json:"unitPrice"`
	TotalPrice          float64 `gorm:"not null" json:"totalPrice"`
	SpecialInstructions string  `gorm:"type:text" json:"specialInstructions"`
	ItemStatus          string  `gorm:"size:50;default:pending" json:"itemStatus"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID" json:"menuItem,omitempty"`
}
