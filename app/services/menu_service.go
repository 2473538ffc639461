package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/verandah/app/models"
	"github.com/shashiranjanraj/verandah/app/repositories"
	"github.com/shashiranjanraj/verandah/pkg/cache"
	"github.com/shashiranjanraj/verandah/pkg/logger"
	"github.com/shashiranjanraj/verandah/pkg/storage"
)

const (
	menuTreeCacheKey = "menu:tree"
	menuTreeCacheTTL = 5 * time.Minute
)

// MenuService covers public menu browsing and admin menu management.
type MenuService struct {
	menu *repositories.MenuRepository
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{menu: repositories.NewMenuRepository(db)}
}

// Categories returns the active categories.
func (s *MenuService) Categories() ([]models.Category, error) {
	return s.menu.ActiveCategories()
}

// CategoriesWithItems returns the menu tree: active categories with their
// available items. Served from Redis when warm; falls back to the database.
func (s *MenuService) CategoriesWithItems(ctx context.Context) ([]models.Category, error) {
	if raw, ok := cache.Get(ctx, menuTreeCacheKey); ok {
		var categories []models.Category
		if err := json.Unmarshal([]byte(raw), &categories); err == nil {
			return categories, nil
		}
		// Corrupt cache entry: drop it and fall through to the database.
		cache.Del(ctx, menuTreeCacheKey)
	}

	categories, err := s.menu.CategoriesWithItems()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(categories); err == nil {
		cache.Set(ctx, menuTreeCacheKey, string(data), menuTreeCacheTTL)
	}
	return categories, nil
}

// CategoryInput is the payload for CreateCategory.
type CategoryInput struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description" validate:"nullable,max=2000"`
	Image       string `json:"image" validate:"nullable,max=500"`
}

// CreateCategory adds a category and invalidates the menu tree cache.
func (s *MenuService) CreateCategory(ctx context.Context, in CategoryInput) (*models.Category, error) {
	category := &models.Category{
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		IsActive:    true,
	}
	if err := s.menu.CreateCategory(category); err != nil {
		return nil, err
	}

	cache.Del(ctx, menuTreeCacheKey)
	return category, nil
}

// Items returns a page of menu items matching filter.
func (s *MenuService) Items(filter repositories.MenuItemFilter, page, limit int) ([]models.MenuItem, repositories.Pagination, error) {
	return s.menu.SearchItems(filter, page, limit)
}

// Item returns one menu item by id.
func (s *MenuService) Item(id uint) (*models.MenuItem, error) {
	item, err := s.menu.FindItemByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// MenuItemInput is the payload for CreateItem and UpdateItem.
type MenuItemInput struct {
	Name            string  `json:"name" validate:"required,min=2,max=255"`
	Description     string  `json:"description" validate:"nullable,max=2000"`
	Price           float64 `json:"price" validate:"required,numeric,gt=0"`
	CategoryID      uint    `json:"categoryId" validate:"required,integer,gt=0"`
	Image           string  `json:"image" validate:"nullable,max=500"`
	IsVegetarian    bool    `json:"isVegetarian"`
	IsAvailable     *bool   `json:"isAvailable"`
	PreparationTime int     `json:"preparationTime" validate:"nullable,integer,gte=0"`
	Ingredients     string  `json:"ingredients" validate:"nullable,max=2000"`
}

// CreateItem adds a menu item after verifying its category exists.
func (s *MenuService) CreateItem(ctx context.Context, in MenuItemInput) (*models.MenuItem, error) {
	if _, err := s.menu.FindCategoryByID(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	item := &models.MenuItem{
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		CategoryID:      in.CategoryID,
		Image:           in.Image,
		IsVegetarian:    in.IsVegetarian,
		IsAvailable:     available,
		PreparationTime: in.PreparationTime,
		Ingredients:     in.Ingredients,
	}
	if err := s.menu.CreateItem(item); err != nil {
		return nil, err
	}

	cache.Del(ctx, menuTreeCacheKey)
	return s.menu.FindItemByID(item.ID)
}

// UpdateItem replaces a menu item's fields.
func (s *MenuService) UpdateItem(ctx context.Context, id uint, in MenuItemInput) (*models.MenuItem, error) {
	item, err := s.Item(id)
	if err != nil {
		return nil, err
	}

	if in.CategoryID != item.CategoryID {
		if _, err := s.menu.FindCategoryByID(in.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
	}

	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	item.CategoryID = in.CategoryID
	if in.Image != "" {
		item.Image = in.Image
	}
	item.IsVegetarian = in.IsVegetarian
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	item.PreparationTime = in.PreparationTime
	item.Ingredients = in.Ingredients

	if err := s.menu.UpdateItem(item); err != nil {
		return nil, err
	}

	cache.Del(ctx, menuTreeCacheKey)
	return s.menu.FindItemByID(item.ID)
}

// DeleteItem removes a menu item. Items referenced by order history are
// soft-disabled (marked unavailable) so old orders keep resolving; the
// returned flag reports whether the item was disabled rather than deleted.
func (s *MenuService) DeleteItem(ctx context.Context, id uint) (disabled bool, err error) {
	item, err := s.Item(id)
	if err != nil {
		return false, err
	}

	referenced, err := s.menu.ItemReferencedByOrders(id)
	if err != nil {
		return false, err
	}

	if referenced {
		item.IsAvailable = false
		if err := s.menu.UpdateItem(item); err != nil {
			return false, err
		}
	} else if err := s.menu.DeleteItem(item); err != nil {
		return false, err
	}

	cache.Del(ctx, menuTreeCacheKey)
	return referenced, nil
}

// UploadImage stores an item image on the configured disk and points the
// item at its public URL. ext must include the dot (".jpg").
func (s *MenuService) UploadImage(ctx context.Context, id uint, ext string, content []byte) (*models.MenuItem, error) {
	item, err := s.Item(id)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%d-%s%s", id, uuid.NewString()[:8], ext)
	key := path.Join("menu", name)
	if err := storage.Put(key, content); err != nil {
		logger.WithCtx(ctx).Error("menu image upload failed", "item", id, "error", err.Error())
		return nil, err
	}

	item.Image = storage.URL(key)
	if err := s.menu.UpdateItem(item); err != nil {
		return nil, err
	}

	cache.Del(ctx, menuTreeCacheKey)
	return item, nil
}
