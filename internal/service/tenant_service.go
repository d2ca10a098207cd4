package service

import (
	"context"

	"github.com/supporthub/api/internal/domain"
	"github.com/supporthub/api/internal/repository"
)

type TenantCreateInput struct {
	Name string `json:"name" validate:"required"`
}

type TenantUpdateInput struct {
	Name *string `json:"name"`
}

type TenantService struct {
	tenants repository.TenantRepository
}

func NewTenantService(tenants repository.TenantRepository) *TenantService {
	return &TenantService{tenants: tenants}
}

func (s *TenantService) Create(ctx context.Context, input TenantCreateInput) (*domain.Tenant, error) {
	if err := requireFields(input, "Name is required"); err != nil {
		return nil, err
	}
	tenant := &domain.Tenant{Name: input.Name}
	if err := s.tenants.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *TenantService) List(ctx context.Context) ([]domain.Tenant, error) {
	return s.tenants.List(ctx)
}

func (s *TenantService) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	return s.tenants.GetByID(ctx, id)
}

func (s *TenantService) Update(ctx context.Context, id string, input TenantUpdateInput) (*domain.Tenant, error) {
	tenant, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		tenant.Name = *input.Name
	}
	if err := s.tenants.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *TenantService) Delete(ctx context.Context, id string) (*domain.Tenant, error) {
	return s.tenants.Delete(ctx, id)
}
