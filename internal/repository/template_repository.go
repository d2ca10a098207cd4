package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/supporthub/api/internal/domain"
)

const (
	templateConflictMsg   = "A template with this title already exists for this tenant"
	templateInvalidRefMsg = "Invalid tenant_id or category_id"
)

// TemplateRepository encapsulates template persistence.
type TemplateRepository interface {
	Create(ctx context.Context, template *domain.Template) error
	List(ctx context.Context) ([]domain.Template, error)
	GetByID(ctx context.Context, id string) (*domain.Template, error)
	Update(ctx context.Context, template *domain.Template) error
	Delete(ctx context.Context, id string) (*domain.Template, error)
}

type templateRepository struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository instantiates repository.
func NewTemplateRepository(pool *pgxpool.Pool) TemplateRepository {
	return &templateRepository{pool: pool}
}

func scanTemplate(row pgx.Row, template *domain.Template) error {
	return row.Scan(
		&template.ID,
		&template.TenantID,
		&template.CategoryID,
		&template.Title,
		&template.Body,
		&template.Type,
	)
}

func (r *templateRepository) Create(ctx context.Context, template *domain.Template) error {
	id, err := NextID(ctx, r.pool, "templates")
	if err != nil {
		return err
	}
	template.ID = id

	const query = `
        INSERT INTO templates (id, tenant_id, category_id, title, body, type)
        VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.pool.Exec(ctx, query,
		template.ID,
		template.TenantID,
		template.CategoryID,
		template.Title,
		template.Body,
		template.Type,
	)
	return translate(err, "Template", templateConflictMsg, templateInvalidRefMsg)
}

func (r *templateRepository) List(ctx context.Context) ([]domain.Template, error) {
	const query = `
        SELECT id, tenant_id, category_id, title, body, type
        FROM templates ORDER BY title ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translate(err, "Template", templateConflictMsg, templateInvalidRefMsg)
	}
	defer rows.Close()

	result := []domain.Template{}
	for rows.Next() {
		var template domain.Template
		if err := scanTemplate(rows, &template); err != nil {
			return nil, translate(err, "Template", templateConflictMsg, templateInvalidRefMsg)
		}
		result = append(result, template)
	}
	return result, translate(rows.Err(), "Template", templateConflictMsg, templateInvalidRefMsg)
}

func (r *templateRepository) GetByID(ctx context.Context, id string) (*domain.Template, error) {
	const query = `
        SELECT id, tenant_id, category_id, title, body, type
        FROM templates WHERE id=$1`
	var template domain.Template
	if err := scanTemplate(r.pool.QueryRow(ctx, query, id), &template); err != nil {
		return nil, translate(err, "Template", templateConflictMsg, templateInvalidRefMsg)
	}
	return &template, nil
}

func (r *templateRepository) Update(ctx context.Context, template *domain.Template) error {
	const query = `
        UPDATE templates SET category_id=$1, title=$2, body=$3, type=$4
        WHERE id=$5
        RETURNING tenant_id`
	err := r.pool.QueryRow(ctx, query,
		template.CategoryID,
		template.Title,
		template.Body,
		template.Type,
		template.ID,
	).Scan(&template.TenantID)
	return translate(err, "Template", templateConflictMsg, templateInvalidRefMsg)
}

func (r *templateRepository) Delete(ctx context.Context, id string) (*domain.Template, error) {
	const query = `
        DELETE FROM templates WHERE id=$1
        RETURNING id, tenant_id, category_id, title, body, type`
	var template domain.Template
	if err := scanTemplate(r.pool.QueryRow(ctx, query, id), &template); err != nil {
		return nil, translate(err, "Template", templateConflictMsg, templateInvalidRefMsg)
	}
	return &template, nil
}
