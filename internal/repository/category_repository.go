package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/supporthub/api/internal/domain"
)

const (
	categoryConflictMsg   = "A category with this name already exists for this tenant"
	categoryInvalidRefMsg = "Invalid tenant_id"
)

// CategoryRepository encapsulates category persistence.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetByIDInTenant(ctx context.Context, id, tenantID string) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) (*domain.Category, error)
}

type categoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository instantiates repository.
func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &categoryRepository{pool: pool}
}

func scanCategory(row pgx.Row, category *domain.Category) error {
	return row.Scan(&category.ID, &category.TenantID, &category.Name, &category.Description)
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	id, err := NextID(ctx, r.pool, "categories")
	if err != nil {
		return err
	}
	category.ID = id

	const query = `
        INSERT INTO categories (id, tenant_id, name, description)
        VALUES ($1, $2, $3, $4)`
	_, err = r.pool.Exec(ctx, query, category.ID, category.TenantID, category.Name, category.Description)
	return translate(err, "Category", categoryConflictMsg, categoryInvalidRefMsg)
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	const query = `
        SELECT id, tenant_id, name, description
        FROM categories ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translate(err, "Category", categoryConflictMsg, categoryInvalidRefMsg)
	}
	defer rows.Close()

	result := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := scanCategory(rows, &category); err != nil {
			return nil, translate(err, "Category", categoryConflictMsg, categoryInvalidRefMsg)
		}
		result = append(result, category)
	}
	return result, translate(rows.Err(), "Category", categoryConflictMsg, categoryInvalidRefMsg)
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	const query = `
        SELECT id, tenant_id, name, description
        FROM categories WHERE id=$1`
	var category domain.Category
	if err := scanCategory(r.pool.QueryRow(ctx, query, id), &category); err != nil {
		return nil, translate(err, "Category", categoryConflictMsg, categoryInvalidRefMsg)
	}
	return &category, nil
}

func (r *categoryRepository) GetByIDInTenant(ctx context.Context, id, tenantID string) (*domain.Category, error) {
	const query = `
        SELECT id, tenant_id, name, description
        FROM categories WHERE id=$1 AND tenant_id=$2`
	var category domain.Category
	if err := scanCategory(r.pool.QueryRow(ctx, query, id, tenantID), &category); err != nil {
		return nil, translate(err, "Category", categoryConflictMsg, categoryInvalidRefMsg)
	}
	return &category, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	const query = `
        UPDATE categories SET name=$1, description=$2
        WHERE id=$3
        RETURNING tenant_id`
	err := r.pool.QueryRow(ctx, query, category.Name, category.Description, category.ID).
		Scan(&category.TenantID)
	return translate(err, "Category", categoryConflictMsg, categoryInvalidRefMsg)
}

func (r *categoryRepository) Delete(ctx context.Context, id string) (*domain.Category, error) {
	const query = `
        DELETE FROM categories WHERE id=$1
        RETURNING id, tenant_id, name, description`
	var category domain.Category
	if err := scanCategory(r.pool.QueryRow(ctx, query, id), &category); err != nil {
		return nil, translate(err, "Category", categoryConflictMsg, categoryInvalidRefMsg)
	}
	return &category, nil
}
