package seeders

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/verandah/app/models"
	"github.com/shashiranjanraj/verandah/pkg/auth"
)

func init() {
	Register("admin_user", SeedAdminUser)
	Register("categories", SeedCategories)
	Register("menu_items", SeedMenuItems)
	Register("tables", SeedTables)
}

// SeedAdminUser creates the default admin account if it does not exist.
// Change the password immediately after the first login.
func SeedAdminUser(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", "admin@verandah.local").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword("admin123")
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Name:     "Admin",
		Email:    "admin@verandah.local",
		Password: hash,
		Role:     models.RoleAdmin,
		IsActive: true,
	}).Error
}

// SeedCategories inserts the starter categories.
func SeedCategories(db *gorm.DB) error {
	categories := []models.Category{
		{Name: "Hot Beverages", Description: "Coffee, tea, and hot chocolate", IsActive: true},
		{Name: "Cold Beverages", Description: "Iced coffees, shakes, and juices", IsActive: true},
		{Name: "Snacks", Description: "Quick bites and sides", IsActive: true},
		{Name: "Desserts", Description: "Cakes, pastries, and sweets", IsActive: true},
	}

	for _, c := range categories {
		var existing models.Category
		err := db.Where("name = ?", c.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&c).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}

// SeedMenuItems inserts the starter menu.
func SeedMenuItems(db *gorm.DB) error {
	var hot models.Category
	if err := db.Where("name = ?", "Hot Beverages").First(&hot).Error; err != nil {
		return err
	}
	var snacks models.Category
	if err := db.Where("name = ?", "Snacks").First(&snacks).Error; err != nil {
		return err
	}

	items := []models.MenuItem{
		{Name: "Espresso", Description: "Single shot", Price: 3.50, CategoryID: hot.ID, IsVegetarian: true, IsAvailable: true, PreparationTime: 3},
		{Name: "Latte", Description: "Espresso with steamed milk", Price: 4.75, CategoryID: hot.ID, IsVegetarian: true, IsAvailable: true, PreparationTime: 5},
		{Name: "Cappuccino", Description: "Espresso, steamed milk, foam", Price: 4.50, CategoryID: hot.ID, IsVegetarian: true, IsAvailable: true, PreparationTime: 5},
		{Name: "Grilled Sandwich", Description: "Vegetables and cheese", Price: 6.25, CategoryID: snacks.ID, IsVegetarian: true, IsAvailable: true, PreparationTime: 12},
		{Name: "Fries", Description: "Salted, with dip", Price: 3.95, CategoryID: snacks.ID, IsVegetarian: true, IsAvailable: true, PreparationTime: 8},
	}

	for _, item := range items {
		var existing models.MenuItem
		err := db.Where("name = ? AND category_id = ?", item.Name, item.CategoryID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&item).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}

// SeedTables inserts the café floor: eight tables of mixed capacity.
func SeedTables(db *gorm.DB) error {
	for n := 1; n <= 8; n++ {
		var existing models.Table
		err := db.Where("table_number = ?", n).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		capacity := 2
		if n%3 == 0 {
			capacity = 4
		}
		location := "indoor"
		if n > 6 {
			location = "patio"
		}

		table := models.Table{
			TableNumber: n,
			Capacity:    capacity,
			Status:      models.TableAvailable,
			Location:    location,
		}
		if err := db.Create(&table).Error; err != nil {
			return err
		}
	}
	return nil
}
