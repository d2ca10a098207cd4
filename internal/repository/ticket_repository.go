package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/supporthub/api/internal/domain"
)

const (
	ticketConflictMsg   = "A ticket with this subject already exists for this tenant"
	ticketInvalidRefMsg = "Invalid tenant_id, category_id, customer_id, or agent_id"
)

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	List(ctx context.Context) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	GetByIDInTenant(ctx context.Context, id, tenantID string) (*domain.Ticket, error)
	Update(ctx context.Context, ticket *domain.Ticket) error
	Delete(ctx context.Context, id string) (*domain.Ticket, error)
	// ActivityEvents projects created and updated events since the cutoff for
	// the recent-activities feed.
	ActivityEvents(ctx context.Context, since time.Time) ([]domain.ActivityEvent, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func scanTicket(row pgx.Row, ticket *domain.Ticket) error {
	return row.Scan(
		&ticket.ID,
		&ticket.TenantID,
		&ticket.Subject,
		&ticket.Description,
		&ticket.Status,
		&ticket.Priority,
		&ticket.CategoryID,
		&ticket.CustomerID,
		&ticket.AgentID,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	id, err := NextID(ctx, r.pool, "tickets")
	if err != nil {
		return err
	}
	ticket.ID = id

	const query = `
        INSERT INTO tickets (id, tenant_id, subject, description, status, priority, category_id, customer_id, agent_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
        RETURNING created_at, updated_at`
	err = r.pool.QueryRow(ctx, query,
		ticket.ID,
		ticket.TenantID,
		ticket.Subject,
		ticket.Description,
		ticket.Status,
		ticket.Priority,
		ticket.CategoryID,
		ticket.CustomerID,
		ticket.AgentID,
	).Scan(&ticket.CreatedAt, &ticket.UpdatedAt)
	return translate(err, "Ticket", ticketConflictMsg, ticketInvalidRefMsg)
}

func (r *ticketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	const query = `
        SELECT id, tenant_id, subject, description, status, priority, category_id, customer_id, agent_id, created_at, updated_at
        FROM tickets ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translate(err, "Ticket", ticketConflictMsg, ticketInvalidRefMsg)
	}
	defer rows.Close()

	result := []domain.Ticket{}
	for rows.Next() {
		var ticket domain.Ticket
		if err := scanTicket(rows, &ticket); err != nil {
			return nil, translate(err, "Ticket", ticketConflictMsg, ticketInvalidRefMsg)
		}
		result = append(result, ticket)
	}
	return result, translate(rows.Err(), "Ticket", ticketConflictMsg, ticketInvalidRefMsg)
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	const query = `
        SELECT id, tenant_id, subject, description, status, priority, category_id, customer_id, agent_id, created_at, updated_at
        FROM tickets WHERE id=$1`
	var ticket domain.Ticket
	if err := scanTicket(r.pool.QueryRow(ctx, query, id), &ticket); err != nil {
		return nil, translate(err, "Ticket", ticketConflictMsg, ticketInvalidRefMsg)
	}
	return &ticket, nil
}

func (r *ticketRepository) GetByIDInTenant(ctx context.Context, id, tenantID string) (*domain.Ticket, error) {
	const query = `
        SELECT id, tenant_id, subject, description, status, priority, category_id, customer_id, agent_id, created_at, updated_at
        FROM tickets WHERE id=$1 AND tenant_id=$2`
	var ticket domain.Ticket
	if err := scanTicket(r.pool.QueryRow(ctx, query, id, tenantID), &ticket); err != nil {
		return nil, translate(err, "Ticket", ticketConflictMsg, ticketInvalidRefMsg)
	}
	return &ticket, nil
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        UPDATE tickets SET subject=$1, description=$2, status=$3, priority=$4, category_id=$5, customer_id=$6, agent_id=$7, updated_at=NOW()
        WHERE id=$8
        RETURNING created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		ticket.Subject,
		ticket.Description,
		ticket.Status,
		ticket.Priority,
		ticket.CategoryID,
		ticket.CustomerID,
		ticket.AgentID,
		ticket.ID,
	).Scan(&ticket.CreatedAt, &ticket.UpdatedAt)
	return translate(err, "Ticket", ticketConflictMsg, ticketInvalidRefMsg)
}

func (r *ticketRepository) Delete(ctx context.Context, id string) (*domain.Ticket, error) {
	const query = `
        DELETE FROM tickets WHERE id=$1
        RETURNING id, tenant_id, subject, description, status, priority, category_id, customer_id, agent_id, created_at, updated_at`
	var ticket domain.Ticket
	if err := scanTicket(r.pool.QueryRow(ctx, query, id), &ticket); err != nil {
		return nil, translate(err, "Ticket", ticketConflictMsg, ticketInvalidRefMsg)
	}
	return &ticket, nil
}

func (r *ticketRepository) ActivityEvents(ctx context.Context, since time.Time) ([]domain.ActivityEvent, error) {
	const query = `
        (SELECT 'ticket_created' AS action, id, tenant_id, customer_id AS user_id, created_at, 'ticket' AS entity_type, subject AS title
         FROM tickets WHERE created_at >= $1)
        UNION ALL
        (SELECT 'ticket_updated' AS action, id, tenant_id, customer_id AS user_id, updated_at AS created_at, 'ticket' AS entity_type, subject AS title
         FROM tickets WHERE updated_at >= $1 AND updated_at != created_at)`
	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, translate(err, "Ticket", ticketConflictMsg, ticketInvalidRefMsg)
	}
	defer rows.Close()
	return scanActivityEvents(rows)
}
