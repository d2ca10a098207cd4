package service

import (
	"context"

	"github.com/supporthub/api/internal/domain"
	"github.com/supporthub/api/internal/repository"
)

type CategoryCreateInput struct {
	TenantID    string  `json:"tenant_id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type CategoryUpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type CategoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) Create(ctx context.Context, input CategoryCreateInput) (*domain.Category, error) {
	if err := requireFields(input, "tenant_id and name are required"); err != nil {
		return nil, err
	}
	category := &domain.Category{
		TenantID:    input.TenantID,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, id string, input CategoryUpdateInput) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = input.Description
	}
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.Delete(ctx, id)
}
