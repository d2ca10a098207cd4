package service

import (
	"context"

	"github.com/supporthub/api/internal/domain"
	"github.com/supporthub/api/internal/repository"
	"github.com/supporthub/api/pkg/util"
)

type UserCreateInput struct {
	TenantID string          `json:"tenant_id" validate:"required"`
	Name     string          `json:"name" validate:"required"`
	Email    string          `json:"email" validate:"required"`
	Role     domain.UserRole `json:"role" validate:"required"`
}

type UserUpdateInput struct {
	Name  *string          `json:"name"`
	Email *string          `json:"email"`
	Role  *domain.UserRole `json:"role"`
}

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Create(ctx context.Context, input UserCreateInput) (*domain.User, error) {
	if err := requireFields(input, "tenant_id, name, email, and role are required"); err != nil {
		return nil, err
	}
	if !input.Role.Valid() {
		return nil, util.NewValidationError("Role must be one of: admin, agent, customer")
	}
	user := &domain.User{
		TenantID: input.TenantID,
		Name:     input.Name,
		Email:    input.Email,
		Role:     input.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id string, input UserUpdateInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Role != nil && !input.Role.Valid() {
		return nil, util.NewValidationError("Role must be one of: admin, agent, customer")
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (*domain.User, error) {
	return s.users.Delete(ctx, id)
}
