package service

import (
	"context"

	"github.com/supporthub/api/internal/domain"
	"github.com/supporthub/api/internal/repository"
)

type EscalationTypeCreateInput struct {
	TenantID string `json:"tenant_id" validate:"required"`
	Label    string `json:"label" validate:"required"`
}

type EscalationTypeUpdateInput struct {
	Label *string `json:"label"`
}

type EscalationTypeService struct {
	types repository.EscalationTypeRepository
}

func NewEscalationTypeService(types repository.EscalationTypeRepository) *EscalationTypeService {
	return &EscalationTypeService{types: types}
}

func (s *EscalationTypeService) Create(ctx context.Context, input EscalationTypeCreateInput) (*domain.EscalationType, error) {
	if err := requireFields(input, "tenant_id and label are required"); err != nil {
		return nil, err
	}
	escType := &domain.EscalationType{TenantID: input.TenantID, Label: input.Label}
	if err := s.types.Create(ctx, escType); err != nil {
		return nil, err
	}
	return escType, nil
}

func (s *EscalationTypeService) List(ctx context.Context) ([]domain.EscalationType, error) {
	return s.types.List(ctx)
}

func (s *EscalationTypeService) GetByID(ctx context.Context, id string) (*domain.EscalationType, error) {
	return s.types.GetByID(ctx, id)
}

func (s *EscalationTypeService) Update(ctx context.Context, id string, input EscalationTypeUpdateInput) (*domain.EscalationType, error) {
	escType, err := s.types.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Label != nil {
		escType.Label = *input.Label
	}
	if err := s.types.Update(ctx, escType); err != nil {
		return nil, err
	}
	return escType, nil
}

func (s *EscalationTypeService) Delete(ctx context.Context, id string) (*domain.EscalationType, error) {
	return s.types.Delete(ctx, id)
}
