package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"FinKeeper/internal/model"
	"FinKeeper/internal/repo"
)

// UserService инкапсулирует регистрацию и вход.
type UserService struct {
	repo repo.UserRepository
}

// NewUserService создаёт сервис пользователей.
func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт пользователя с bcrypt-хешем пароля.
// Занятый логин — ErrLoginTaken.
func (s *UserService) Register(ctx context.Context, login, password string) (*model.User, error) {
	if login == "" || password == "" {
		ve := NewValidationError()
		if login == "" {
			ve.Add("login", "login is required")
		}
		if password == "" {
			ve.Add("password", "password is required")
		}
		return nil, ve
	}

	existing, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrLoginTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.CreateUser(ctx, &model.User{Login: login, Password: string(hash)})
}

// Login проверяет учётные данные. Любое несовпадение — ErrInvalidCredentials,
// без уточнения, логин или пароль неверен.
func (s *UserService) Login(ctx context.Context, login, password string) (*model.User, error) {
	u, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
