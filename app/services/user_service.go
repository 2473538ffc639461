package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/verandah/app/models"
	"github.com/shashiranjanraj/verandah/app/repositories"
)

// UserService covers the admin user-management surface.
type UserService struct {
	users  *repositories.UserRepository
	orders *repositories.OrderRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		users:  repositories.NewUserRepository(db),
		orders: repositories.NewOrderRepository(db),
	}
}

// List returns a page of users matching the search term.
func (s *UserService) List(search string, page, limit int) ([]models.User, repositories.Pagination, error) {
	return s.users.Search(search, page, limit)
}

// Get returns a user with a first page of their order history.
func (s *UserService) Get(id uint) (*models.User, []models.Order, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	orders, _, err := s.orders.ByUser(id, 1, 10)
	if err != nil {
		return nil, nil, err
	}
	return user, orders, nil
}

// SetActive activates or deactivates a user account.
func (s *UserService) SetActive(id uint, active bool) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	user.IsActive = active
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
