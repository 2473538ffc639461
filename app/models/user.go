package models

// User roles.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User is a café account: staff (admin) or customer. Users are never
// hard-deleted; deactivation flips IsActive.
type User struct {
	Model
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	Phone    string `gorm:"size:20" json:"phone"`
	Role     string `gorm:"size:50;default:customer" json:"role"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
