package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/supporthub/api/internal/domain"
	"github.com/supporthub/api/pkg/util"
)

const (
	escalationConflictMsg   = "Ticket is already escalated"
	escalationRecentMsg     = "You have recently escalated this ticket"
	escalationInvalidRefMsg = "Invalid ticket_id, raised_by_user_id, or type_id"
)

// escalationDuplicateWindow is the idempotency window for repeated
// escalations of the same ticket by the same user.
const escalationDuplicateWindow = 10 * time.Minute

// EscalationRepository encapsulates escalation persistence.
type EscalationRepository interface {
	// Create runs the one-per-ticket and duplicate-window prechecks and the
	// insert in one transaction; the unique constraint on ticket_id remains
	// the authoritative guard.
	Create(ctx context.Context, escalation *domain.Escalation) error
	List(ctx context.Context) ([]domain.Escalation, error)
	GetByID(ctx context.Context, id string) (*domain.Escalation, error)
	Update(ctx context.Context, escalation *domain.Escalation) error
	Delete(ctx context.Context, id string) (*domain.Escalation, error)
	ActivityEvents(ctx context.Context, since time.Time) ([]domain.ActivityEvent, error)
}

type escalationRepository struct {
	pool *pgxpool.Pool
}

// NewEscalationRepository instantiates repository.
func NewEscalationRepository(pool *pgxpool.Pool) EscalationRepository {
	return &escalationRepository{pool: pool}
}

func scanEscalation(row pgx.Row, escalation *domain.Escalation) error {
	return row.Scan(
		&escalation.ID,
		&escalation.TicketID,
		&escalation.RaisedByUserID,
		&escalation.TypeID,
		&escalation.Reason,
		&escalation.CreatedAt,
	)
}

func (r *escalationRepository) Create(ctx context.Context, escalation *domain.Escalation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return util.NewInternalError(err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var existing string
	err = tx.QueryRow(ctx,
		`SELECT id FROM escalations WHERE ticket_id=$1`,
		escalation.TicketID,
	).Scan(&existing)
	if err == nil {
		return util.NewConflictError(escalationConflictMsg)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return util.NewInternalError(err)
	}

	err = tx.QueryRow(ctx,
		`SELECT id FROM escalations WHERE ticket_id=$1 AND raised_by_user_id=$2 AND created_at > NOW() - $3::interval`,
		escalation.TicketID, escalation.RaisedByUserID, escalationDuplicateWindow.String(),
	).Scan(&existing)
	if err == nil {
		return util.NewConflictError(escalationRecentMsg)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return util.NewInternalError(err)
	}

	id, err := NextID(ctx, tx, "escalations")
	if err != nil {
		return err
	}
	escalation.ID = id

	const query = `
        INSERT INTO escalations (id, ticket_id, raised_by_user_id, type_id, reason, created_at)
        VALUES ($1, $2, $3, $4, $5, NOW())
        RETURNING created_at`
	err = tx.QueryRow(ctx, query,
		escalation.ID,
		escalation.TicketID,
		escalation.RaisedByUserID,
		escalation.TypeID,
		escalation.Reason,
	).Scan(&escalation.CreatedAt)
	if err != nil {
		return translate(err, "Escalation", escalationConflictMsg, escalationInvalidRefMsg)
	}
	return translate(tx.Commit(ctx), "Escalation", escalationConflictMsg, escalationInvalidRefMsg)
}

func (r *escalationRepository) List(ctx context.Context) ([]domain.Escalation, error) {
	const query = `
        SELECT id, ticket_id, raised_by_user_id, type_id, reason, created_at
        FROM escalations ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translate(err, "Escalation", escalationConflictMsg, escalationInvalidRefMsg)
	}
	defer rows.Close()

	result := []domain.Escalation{}
	for rows.Next() {
		var escalation domain.Escalation
		if err := scanEscalation(rows, &escalation); err != nil {
			return nil, translate(err, "Escalation", escalationConflictMsg, escalationInvalidRefMsg)
		}
		result = append(result, escalation)
	}
	return result, translate(rows.Err(), "Escalation", escalationConflictMsg, escalationInvalidRefMsg)
}

func (r *escalationRepository) GetByID(ctx context.Context, id string) (*domain.Escalation, error) {
	const query = `
        SELECT id, ticket_id, raised_by_user_id, type_id, reason, created_at
        FROM escalations WHERE id=$1`
	var escalation domain.Escalation
	if err := scanEscalation(r.pool.QueryRow(ctx, query, id), &escalation); err != nil {
		return nil, translate(err, "Escalation", escalationConflictMsg, escalationInvalidRefMsg)
	}
	return &escalation, nil
}

func (r *escalationRepository) Update(ctx context.Context, escalation *domain.Escalation) error {
	const query = `
        UPDATE escalations SET reason=$1, type_id=$2
        WHERE id=$3
        RETURNING ticket_id, raised_by_user_id, created_at`
	err := r.pool.QueryRow(ctx, query, escalation.Reason, escalation.TypeID, escalation.ID).
		Scan(&escalation.TicketID, &escalation.RaisedByUserID, &escalation.CreatedAt)
	return translate(err, "Escalation", escalationConflictMsg, escalationInvalidRefMsg)
}

func (r *escalationRepository) Delete(ctx context.Context, id string) (*domain.Escalation, error) {
	const query = `
        DELETE FROM escalations WHERE id=$1
        RETURNING id, ticket_id, raised_by_user_id, type_id, reason, created_at`
	var escalation domain.Escalation
	if err := scanEscalation(r.pool.QueryRow(ctx, query, id), &escalation); err != nil {
		return nil, translate(err, "Escalation", escalationConflictMsg, escalationInvalidRefMsg)
	}
	return &escalation, nil
}

func (r *escalationRepository) ActivityEvents(ctx context.Context, since time.Time) ([]domain.ActivityEvent, error) {
	const query = `
        SELECT 'escalation_raised' AS action, e.id, t.tenant_id, e.raised_by_user_id AS user_id, e.created_at, 'escalation' AS entity_type, 'Escalation raised' AS title
        FROM escalations e JOIN tickets t ON e.ticket_id = t.id
        WHERE e.created_at >= $1`
	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, translate(err, "Escalation", escalationConflictMsg, escalationInvalidRefMsg)
	}
	defer rows.Close()
	return scanActivityEvents(rows)
}
