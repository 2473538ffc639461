package models

// Category groups menu items (e.g. "Hot Beverages", "Snacks").
type Category struct {
	Model
	Name        string `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"size:500" json:"image"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	MenuItems []MenuItem `gorm:"foreignKey:CategoryID" json:"menuItems,omitempty"`
}
