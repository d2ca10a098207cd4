package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/supporthub/api/internal/domain"
)

const (
	tenantConflictMsg   = "A tenant with this name already exists"
	tenantInvalidRefMsg = "Invalid tenant reference"
)

// TenantRepository encapsulates tenant persistence.
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	List(ctx context.Context) ([]domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	Delete(ctx context.Context, id string) (*domain.Tenant, error)
}

type tenantRepository struct {
	pool *pgxpool.Pool
}

// NewTenantRepository instantiates repository.
func NewTenantRepository(pool *pgxpool.Pool) TenantRepository {
	return &tenantRepository{pool: pool}
}

func (r *tenantRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	id, err := NextID(ctx, r.pool, "tenants")
	if err != nil {
		return err
	}
	tenant.ID = id

	const query = `
        INSERT INTO tenants (id, name, created_at, updated_at)
        VALUES ($1, $2, NOW(), NOW())
        RETURNING created_at, updated_at`
	err = r.pool.QueryRow(ctx, query, tenant.ID, tenant.Name).
		Scan(&tenant.CreatedAt, &tenant.UpdatedAt)
	return translate(err, "Tenant", tenantConflictMsg, tenantInvalidRefMsg)
}

func (r *tenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	const query = `
        SELECT id, name, created_at, updated_at
        FROM tenants ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translate(err, "Tenant", tenantConflictMsg, tenantInvalidRefMsg)
	}
	defer rows.Close()

	result := []domain.Tenant{}
	for rows.Next() {
		var tenant domain.Tenant
		if err := rows.Scan(&tenant.ID, &tenant.Name, &tenant.CreatedAt, &tenant.UpdatedAt); err != nil {
			return nil, translate(err, "Tenant", tenantConflictMsg, tenantInvalidRefMsg)
		}
		result = append(result, tenant)
	}
	return result, translate(rows.Err(), "Tenant", tenantConflictMsg, tenantInvalidRefMsg)
}

func (r *tenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	const query = `
        SELECT id, name, created_at, updated_at
        FROM tenants WHERE id=$1`
	var tenant domain.Tenant
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&tenant.ID, &tenant.Name, &tenant.CreatedAt, &tenant.UpdatedAt)
	if err != nil {
		return nil, translate(err, "Tenant", tenantConflictMsg, tenantInvalidRefMsg)
	}
	return &tenant, nil
}

func (r *tenantRepository) Update(ctx context.Context, tenant *domain.Tenant) error {
	const query = `
        UPDATE tenants SET name=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING created_at, updated_at`
	err := r.pool.QueryRow(ctx, query, tenant.Name, tenant.ID).
		Scan(&tenant.CreatedAt, &tenant.UpdatedAt)
	return translate(err, "Tenant", tenantConflictMsg, tenantInvalidRefMsg)
}

func (r *tenantRepository) Delete(ctx context.Context, id string) (*domain.Tenant, error) {
	const query = `
        DELETE FROM tenants WHERE id=$1
        RETURNING id, name, created_at, updated_at`
	var tenant domain.Tenant
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&tenant.ID, &tenant.Name, &tenant.CreatedAt, &tenant.UpdatedAt)
	if err != nil {
		return nil, translate(err, "Tenant", tenantConflictMsg, tenantInvalidRefMsg)
	}
	return &tenant, nil
}
