package models

import "time"

// Payment methods.
const (
	PayCash       = "cash"
	PayCard       = "card"
	PayUPI        = "upi"
	PayNetBanking = "netbanking"
	PayAtCounter  = "pay_at_counter"
)

// Payment statuses.
const (
	PaymentPending    = "pending"
	PaymentProcessing = "processing"
	PaymentCompleted  = "completed"
	PaymentFailed     = "failed"
	PaymentRefunded   = "refunded"
	PaymentUnpaid     = "unpaid"
	PaymentRequested  = "requested"
	PaymentDone       = "done"
)

// ValidPaymentMethod reports whether method is accepted at checkout.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PayCash, PayCard, PayUPI, PayNetBanking, PayAtCounter:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether status is a recognised payment status.
func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentPending, PaymentProcessing, PaymentCompleted, PaymentFailed,
		PaymentRefunded, PaymentUnpaid, PaymentRequested, PaymentDone:
		return true
	}
	return false
}

// Payment is the single payment attached to an order. The unique index on
// OrderID enforces at most one payment per order at the database level; the
// payment service also checks inside its transaction so callers get a clean
// conflict error instead of a driver-specific constraint failure.
type Payment struct {
	Model
	OrderID       uint       `gorm:"uniqueIndex;not null" json:"orderId"`
	UserID        uint       `gorm:"not null;index" json:"userId"`
	Amount        float64    `gorm:"not null" json:"amount"`
	PaymentMethod string     `gorm:"size:50;not null" json:"paymentMethod"`
	PaymentStatus string     `gorm:"size:50;default:pending" json:"paymentStatus"`
	TransactionID *string    `gorm:"uniqueIndex;size:64" json:"transactionId"`
	PaymentDate   *time.Time `json:"paymentDate"`
	Notes         string     `gorm:"type:text" json:"notes"`

	Order *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
