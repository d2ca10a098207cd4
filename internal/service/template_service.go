package service

import (
	"context"

	"github.com/supporthub/api/internal/domain"
	"github.com/supporthub/api/internal/repository"
	"github.com/supporthub/api/pkg/util"
)

type TemplateCreateInput struct {
	TenantID   string              `json:"tenant_id" validate:"required"`
	CategoryID string              `json:"category_id" validate:"required"`
	Title      string              `json:"title" validate:"required"`
	Body       string              `json:"body" validate:"required"`
	Type       domain.TemplateType `json:"type" validate:"required"`
}

type TemplateUpdateInput struct {
	CategoryID *string              `json:"category_id"`
	Title      *string              `json:"title"`
	Body       *string              `json:"body"`
	Type       *domain.TemplateType `json:"type"`
}

type TemplateService struct {
	templates  repository.TemplateRepository
	categories repository.CategoryRepository
}

func NewTemplateService(templates repository.TemplateRepository, categories repository.CategoryRepository) *TemplateService {
	return &TemplateService{templates: templates, categories: categories}
}

func (s *TemplateService) Create(ctx context.Context, input TemplateCreateInput) (*domain.Template, error) {
	if err := requireFields(input, "tenant_id, category_id, title, body, and type are required"); err != nil {
		return nil, err
	}
	if !input.Type.Valid() {
		return nil, util.NewValidationError("Type must be one of: email, sms, push")
	}
	if _, err := s.categories.GetByIDInTenant(ctx, input.CategoryID, input.TenantID); err != nil {
		return nil, scopeError(err, "Category does not belong to the specified tenant")
	}
	template := &domain.Template{
		TenantID:   input.TenantID,
		CategoryID: input.CategoryID,
		Title:      input.Title,
		Body:       input.Body,
		Type:       input.Type,
	}
	if err := s.templates.Create(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *TemplateService) List(ctx context.Context) ([]domain.Template, error) {
	return s.templates.List(ctx)
}

func (s *TemplateService) GetByID(ctx context.Context, id string) (*domain.Template, error) {
	return s.templates.GetByID(ctx, id)
}

func (s *TemplateService) Update(ctx context.Context, id string, input TemplateUpdateInput) (*domain.Template, error) {
	template, err := s.templates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Type != nil && !input.Type.Valid() {
		return nil, util.NewValidationError("Type must be one of: email, sms, push")
	}
	if input.CategoryID != nil {
		// The replacement category must live in the template's own tenant.
		if _, err := s.categories.GetByIDInTenant(ctx, *input.CategoryID, template.TenantID); err != nil {
			return nil, scopeError(err, "Category does not belong to the specified tenant")
		}
		template.CategoryID = *input.CategoryID
	}
	if input.Title != nil {
		template.Title = *input.Title
	}
	if input.Body != nil {
		template.Body = *input.Body
	}
	if input.Type != nil {
		template.Type = *input.Type
	}
	if err := s.templates.Update(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *TemplateService) Delete(ctx context.Context, id string) (*domain.Template, error) {
	return s.templates.Delete(ctx, id)
}
