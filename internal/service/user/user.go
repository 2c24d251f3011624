package user

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) CreateUser(ctx context.Context, userModify entities.UserModify) (int64, error) {
	if userModify.Name == nil ||
		userModify.Lastname == nil ||
		userModify.Email == nil ||
		userModify.Phone == nil ||
		userModify.Type == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidText(*userModify.Name, entities.MaxNameLength) {
		return 0, ErrInvalidName
	}
	if !isValidText(*userModify.Lastname, entities.MaxLastnameLength) {
		return 0, ErrInvalidLastname
	}
	if !isValidEmail(*userModify.Email) {
		return 0, ErrInvalidEmail
	}
	if !isValidPhone(*userModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !userModify.Type.Valid() {
		return 0, ErrInvalidUserType
	}

	id, err := s.repository.Create(ctx, userModify)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	return id, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}

	user, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (s *Service) GetUsers(ctx context.Context, filter entities.UserFilter) ([]entities.User, error) {
	if filter.Type != nil && !filter.Type.Valid() {
		return nil, ErrInvalidUserType
	}

	users, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return users, nil
}

// GetDrivers возвращает всех пользователей с ролью водителя.
func (s *Service) GetDrivers(ctx context.Context) ([]entities.User, error) {
	driverType := entities.UserDriver
	return s.GetUsers(ctx, entities.UserFilter{Type: &driverType})
}
