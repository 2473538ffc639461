package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/verandah/app/models"
	"github.com/shashiranjanraj/verandah/app/repositories"
	"github.com/shashiranjanraj/verandah/pkg/auth"
)

// AuthService handles registration, login, and profile management.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{users: repositories.NewUserRepository(db)}
}

// RegisterInput is the payload for Register.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"nullable,min=7,max=20"`
	Role     string `json:"role" validate:"nullable,in=user,customer,admin"`
}

// Register creates a user and returns it with a signed token. The legacy
// role name "user" maps to customer; missing role defaults to customer.
func (s *AuthService) Register(in RegisterInput) (*models.User, string, error) {
	if _, err := s.users.FindByEmail(in.Email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	role := in.Role
	switch role {
	case "", "user":
		role = models.RoleCustomer
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Phone:    in.Phone,
		Role:     role,
		IsActive: true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with a signed token.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", ErrAccountDisabled
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Me returns the authenticated user's record.
func (s *AuthService) Me(userID uint) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// ProfileInput is the payload for UpdateProfile. Empty fields are left
// unchanged.
type ProfileInput struct {
	Name  string `json:"name" validate:"nullable,min=2,max=255"`
	Phone string `json:"phone" validate:"nullable,min=7,max=20"`
}

// UpdateProfile updates the caller's own name and phone.
func (s *AuthService) UpdateProfile(userID uint, in ProfileInput) (*models.User, error) {
	user, err := s.Me(userID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
