package repositories

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/verandah/app/models"
)

// MenuRepository handles database operations for categories and menu items.
type MenuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// ActiveCategories returns all active categories ordered by name.
func (r *MenuRepository) ActiveCategories() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("is_active = ?", true).Order("name").Find(&categories).Error
	return categories, err
}

// CategoriesWithItems returns active categories with their available items
// preloaded. Feeds the public menu tree.
func (r *MenuRepository) CategoriesWithItems() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.
		Preload("MenuItems", "is_available = ?", true).
		Where("is_active = ?", true).
		Order("name").
		Find(&categories).Error
	return categories, err
}

// FindCategoryByID looks up a category by primary key.
func (r *MenuRepository) FindCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory persists a new category.
func (r *MenuRepository) CreateCategory(category *models.Category) error {
	return r.db.Create(category).Error
}

// MenuItemFilter narrows SearchItems.
type MenuItemFilter struct {
	CategoryID    uint
	Search        string
	OnlyAvailable bool
	Vegetarian    *bool
}

// SearchItems returns a page of menu items matching filter, with their
// category preloaded.
func (r *MenuRepository) SearchItems(filter MenuItemFilter, page, limit int) ([]models.MenuItem, Pagination, error) {
	query := r.db.Model(&models.MenuItem{}).Preload("Category").Order("name")

	if filter.OnlyAvailable {
		query = query.Where("is_available = ?", true)
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if filter.Vegetarian != nil {
		query = query.Where("is_vegetarian = ?", *filter.Vegetarian)
	}

	var items []models.MenuItem
	pagination, err := paginate(query, &items, page, limit)
	return items, pagination, err
}

// FindItemByID looks up a menu item with its category.
func (r *MenuRepository) FindItemByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.Preload("Category").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem persists a new menu item.
func (r *MenuRepository) CreateItem(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

// UpdateItem persists changes to a menu item.
func (r *MenuRepository) UpdateItem(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

// DeleteItem hard-deletes a menu item.
func (r *MenuRepository) DeleteItem(item *models.MenuItem) error {
	return r.db.Unscoped().Delete(item).Error
}

// ItemReferencedByOrders reports whether any order line references the item.
// Referenced items are soft-disabled instead of deleted so order history
// keeps resolving.
func (r *MenuRepository) ItemReferencedByOrders(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.OrderItem{}).Where("menu_item_id = ?", id).Count(&count).Error
	return count > 0, err
}
