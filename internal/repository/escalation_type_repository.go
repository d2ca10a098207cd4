package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/supporthub/api/internal/domain"
)

const (
	escalationTypeConflictMsg   = "An escalation type with this label already exists for this tenant"
	escalationTypeInvalidRefMsg = "Invalid tenant_id"
)

// EscalationTypeRepository encapsulates escalation type persistence.
type EscalationTypeRepository interface {
	Create(ctx context.Context, escType *domain.EscalationType) error
	List(ctx context.Context) ([]domain.EscalationType, error)
	GetByID(ctx context.Context, id string) (*domain.EscalationType, error)
	GetByIDInTenant(ctx context.Context, id, tenantID string) (*domain.EscalationType, error)
	Update(ctx context.Context, escType *domain.EscalationType) error
	Delete(ctx context.Context, id string) (*domain.EscalationType, error)
}

type escalationTypeRepository struct {
	pool *pgxpool.Pool
}

// NewEscalationTypeRepository instantiates repository.
func NewEscalationTypeRepository(pool *pgxpool.Pool) EscalationTypeRepository {
	return &escalationTypeRepository{pool: pool}
}

func scanEscalationType(row pgx.Row, escType *domain.EscalationType) error {
	return row.Scan(&escType.ID, &escType.TenantID, &escType.Label)
}

func (r *escalationTypeRepository) Create(ctx context.Context, escType *domain.EscalationType) error {
	id, err := NextID(ctx, r.pool, "escalation_types")
	if err != nil {
		return err
	}
	escType.ID = id

	const query = `
        INSERT INTO escalation_types (id, tenant_id, label)
        VALUES ($1, $2, $3)`
	_, err = r.pool.Exec(ctx, query, escType.ID, escType.TenantID, escType.Label)
	return translate(err, "Escalation type", escalationTypeConflictMsg, escalationTypeInvalidRefMsg)
}

func (r *escalationTypeRepository) List(ctx context.Context) ([]domain.EscalationType, error) {
	const query = `
        SELECT id, tenant_id, label
        FROM escalation_types ORDER BY label ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translate(err, "Escalation type", escalationTypeConflictMsg, escalationTypeInvalidRefMsg)
	}
	defer rows.Close()

	result := []domain.EscalationType{}
	for rows.Next() {
		var escType domain.EscalationType
		if err := scanEscalationType(rows, &escType); err != nil {
			return nil, translate(err, "Escalation type", escalationTypeConflictMsg, escalationTypeInvalidRefMsg)
		}
		result = append(result, escType)
	}
	return result, translate(rows.Err(), "Escalation type", escalationTypeConflictMsg, escalationTypeInvalidRefMsg)
}

func (r *escalationTypeRepository) GetByID(ctx context.Context, id string) (*domain.EscalationType, error) {
	const query = `
        SELECT id, tenant_id, label
        FROM escalation_types WHERE id=$1`
	var escType domain.EscalationType
	if err := scanEscalationType(r.pool.QueryRow(ctx, query, id), &escType); err != nil {
		return nil, translate(err, "Escalation type", escalationTypeConflictMsg, escalationTypeInvalidRefMsg)
	}
	return &escType, nil
}

func (r *escalationTypeRepository) GetByIDInTenant(ctx context.Context, id, tenantID string) (*domain.EscalationType, error) {
	const query = `
        SELECT id, tenant_id, label
        FROM escalation_types WHERE id=$1 AND tenant_id=$2`
	var escType domain.EscalationType
	if err := scanEscalationType(r.pool.QueryRow(ctx, query, id, tenantID), &escType); err != nil {
		return nil, translate(err, "Escalation type", escalationTypeConflictMsg, escalationTypeInvalidRefMsg)
	}
	return &escType, nil
}

func (r *escalationTypeRepository) Update(ctx context.Context, escType *domain.EscalationType) error {
	const query = `
        UPDATE escalation_types SET label=$1
        WHERE id=$2
        RETURNING tenant_id`
	err := r.pool.QueryRow(ctx, query, escType.Label, escType.ID).Scan(&escType.TenantID)
	return translate(err, "Escalation type", escalationTypeConflictMsg, escalationTypeInvalidRefMsg)
}

func (r *escalationTypeRepository) Delete(ctx context.Context, id string) (*domain.EscalationType, error) {
	const query = `
        DELETE FROM escalation_types WHERE id=$1
        RETURNING id, tenant_id, label`
	var escType domain.EscalationType
	if err := scanEscalationType(r.pool.QueryRow(ctx, query, id), &escType); err != nil {
		return nil, translate(err, "Escalation type", escalationTypeConflictMsg, escalationTypeInvalidRefMsg)
	}
	return &escType, nil
}
