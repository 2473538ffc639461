package repositories

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/verandah/app/models"
)

// UserRepository handles database operations for User.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail looks up a user by email address.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create persists a new user record.
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Update persists changes to an existing user.
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Search returns a page of users, optionally filtered by a name/email
// substring.
func (r *UserRepository) Search(term string, page, limit int) ([]models.User, Pagination, error) {
	query := r.db.Model(&models.User{}).Order("created_at desc")
	if term != "" {
		like := "%" + term + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}

	var users []models.User
	pagination, err := paginate(query, &users, page, limit)
	return users, pagination, err
}
