package models

// MenuItem is one orderable item on the menu. PreparationTime is in
// minutes and feeds the order's estimated preparation time.
type MenuItem struct {
	Model
	Name            string  `gorm:"size:255;not null;index" json:"name"`
	Description     string  `gorm:"type:text" json:"description"`
	Price           float64 `gorm:"not null" json:"price"`
	CategoryID      uint    `gorm:"not null;index" json:"categoryId"`
	Image           string  `gorm:"size:500" json:"image"`
	IsVegetarian    bool    `gorm:"default:false" json:"isVegetarian"`
	IsAvailable     bool    `gorm:"default:true" json:"isAvailable"`
	PreparationTime int     `gorm:"default:0" json:"preparationTime"`
	Ingredients     string  `gorm:"type:text" json:"ingredients"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (MenuItem) TableName() string { return "menu_items" }
