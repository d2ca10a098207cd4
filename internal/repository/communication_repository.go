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
	communicationConflictMsg   = "A similar communication was recently created for this ticket"
	communicationInvalidRefMsg = "Invalid tenant_id, ticket_id, chat_id, or user_id"
)

// communicationDuplicateWindow is the idempotency window for repeated
// (ticket, type, user) communications.
const communicationDuplicateWindow = 5 * time.Minute

// CommunicationRepository encapsulates communication persistence.
type CommunicationRepository interface {
	// Create runs the duplicate-window precheck and the insert in one
	// transaction.
	Create(ctx context.Context, comm *domain.Communication) error
	List(ctx context.Context) ([]domain.Communication, error)
	GetByID(ctx context.Context, id string) (*domain.Communication, error)
	Update(ctx context.Context, comm *domain.Communication) error
	Delete(ctx context.Context, id string) (*domain.Communication, error)
	ActivityEvents(ctx context.Context, since time.Time) ([]domain.ActivityEvent, error)
}

type communicationRepository struct {
	pool *pgxpool.Pool
}

// NewCommunicationRepository instantiates repository.
func NewCommunicationRepository(pool *pgxpool.Pool) CommunicationRepository {
	return &communicationRepository{pool: pool}
}

func scanCommunication(row pgx.Row, comm *domain.Communication) error {
	return row.Scan(
		&comm.ID,
		&comm.TenantID,
		&comm.TicketID,
		&comm.ChatID,
		&comm.Type,
		&comm.UserID,
		&comm.Summary,
		&comm.CreatedAt,
	)
}

func (r *communicationRepository) Create(ctx context.Context, comm *domain.Communication) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return util.NewInternalError(err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var existing string
	err = tx.QueryRow(ctx,
		`SELECT id FROM communications WHERE ticket_id=$1 AND type=$2 AND user_id=$3 AND created_at > NOW() - $4::interval`,
		comm.TicketID, comm.Type, comm.UserID, communicationDuplicateWindow.String(),
	).Scan(&existing)
	if err == nil {
		return util.NewConflictError(communicationConflictMsg)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return util.NewInternalError(err)
	}

	id, err := NextID(ctx, tx, "communications")
	if err != nil {
		return err
	}
	comm.ID = id

	const query = `
        INSERT INTO communications (id, tenant_id, ticket_id, chat_id, type, user_id, summary, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
        RETURNING created_at`
	err = tx.QueryRow(ctx, query,
		comm.ID,
		comm.TenantID,
		comm.TicketID,
		comm.ChatID,
		comm.Type,
		comm.UserID,
		comm.Summary,
	).Scan(&comm.CreatedAt)
	if err != nil {
		return translate(err, "Communication", communicationConflictMsg, communicationInvalidRefMsg)
	}
	return translate(tx.Commit(ctx), "Communication", communicationConflictMsg, communicationInvalidRefMsg)
}

func (r *communicationRepository) List(ctx context.Context) ([]domain.Communication, error) {
	const query = `
        SELECT id, tenant_id, ticket_id, chat_id, type, user_id, summary, created_at
        FROM communications ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translate(err, "Communication", communicationConflictMsg, communicationInvalidRefMsg)
	}
	defer rows.Close()

	result := []domain.Communication{}
	for rows.Next() {
		var comm domain.Communication
		if err := scanCommunication(rows, &comm); err != nil {
			return nil, translate(err, "Communication", communicationConflictMsg, communicationInvalidRefMsg)
		}
		result = append(result, comm)
	}
	return result, translate(rows.Err(), "Communication", communicationConflictMsg, communicationInvalidRefMsg)
}

func (r *communicationRepository) GetByID(ctx context.Context, id string) (*domain.Communication, error) {
	const query = `
        SELECT id, tenant_id, ticket_id, chat_id, type, user_id, summary, created_at
        FROM communications WHERE id=$1`
	var comm domain.Communication
	if err := scanCommunication(r.pool.QueryRow(ctx, query, id), &comm); err != nil {
		return nil, translate(err, "Communication", communicationConflictMsg, communicationInvalidRefMsg)
	}
	return &comm, nil
}

func (r *communicationRepository) Update(ctx context.Context, comm *domain.Communication) error {
	const query = `
        UPDATE communications SET type=$1, summary=$2
        WHERE id=$3
        RETURNING tenant_id, ticket_id, chat_id, user_id, created_at`
	err := r.pool.QueryRow(ctx, query, comm.Type, comm.Summary, comm.ID).
		Scan(&comm.TenantID, &comm.TicketID, &comm.ChatID, &comm.UserID, &comm.CreatedAt)
	return translate(err, "Communication", communicationConflictMsg, communicationInvalidRefMsg)
}

func (r *communicationRepository) Delete(ctx context.Context, id string) (*domain.Communication, error) {
	const query = `
        DELETE FROM communications WHERE id=$1
        RETURNING id, tenant_id, ticket_id, chat_id, type, user_id, summary, created_at`
	var comm domain.Communication
	if err := scanCommunication(r.pool.QueryRow(ctx, query, id), &comm); err != nil {
		return nil, translate(err, "Communication", communicationConflictMsg, communicationInvalidRefMsg)
	}
	return &comm, nil
}

func (r *communicationRepository) ActivityEvents(ctx context.Context, since time.Time) ([]domain.ActivityEvent, error) {
	const query = `
        SELECT 'communication_created' AS action, id, tenant_id, user_id, created_at, 'communication' AS entity_type, type::VARCHAR AS title
        FROM communications WHERE created_at >= $1`
	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, translate(err, "Communication", communicationConflictMsg, communicationInvalidRefMsg)
	}
	defer rows.Close()
	return scanActivityEvents(rows)
}
