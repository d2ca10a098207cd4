package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/supporthub/api/internal/domain"
)

const (
	chatConflictMsg   = "A chat already exists for this ticket"
	chatInvalidRefMsg = "Invalid tenant_id, ticket_id, started_by_user_id, or assigned_agent_id"
)

// ChatRepository encapsulates chat persistence.
type ChatRepository interface {
	Create(ctx context.Context, chat *domain.Chat) error
	List(ctx context.Context) ([]domain.Chat, error)
	GetByID(ctx context.Context, id string) (*domain.Chat, error)
	// GetWithCustomer returns the chat together with its ticket's customer,
	// needed for chat-message sender authorization.
	GetWithCustomer(ctx context.Context, id string) (*domain.Chat, string, error)
	Update(ctx context.Context, chat *domain.Chat) error
	Delete(ctx context.Context, id string) (*domain.Chat, error)
	ActivityEvents(ctx context.Context, since time.Time) ([]domain.ActivityEvent, error)
}

type chatRepository struct {
	pool *pgxpool.Pool
}

// NewChatRepository instantiates repository.
func NewChatRepository(pool *pgxpool.Pool) ChatRepository {
	return &chatRepository{pool: pool}
}

func scanChat(row pgx.Row, chat *domain.Chat) error {
	return row.Scan(
		&chat.ID,
		&chat.TenantID,
		&chat.TicketID,
		&chat.StartedByUserID,
		&chat.AssignedAgentID,
		&chat.CreatedAt,
		&chat.ClosedAt,
	)
}

func (r *chatRepository) Create(ctx context.Context, chat *domain.Chat) error {
	id, err := NextID(ctx, r.pool, "chats")
	if err != nil {
		return err
	}
	chat.ID = id

	const query = `
        INSERT INTO chats (id, tenant_id, ticket_id, started_by_user_id, assigned_agent_id, created_at)
        VALUES ($1, $2, $3, $4, $5, NOW())
        RETURNING created_at`
	err = r.pool.QueryRow(ctx, query,
		chat.ID,
		chat.TenantID,
		chat.TicketID,
		chat.StartedByUserID,
		chat.AssignedAgentID,
	).Scan(&chat.CreatedAt)
	return translate(err, "Chat", chatConflictMsg, chatInvalidRefMsg)
}

func (r *chatRepository) List(ctx context.Context) ([]domain.Chat, error) {
	const query = `
        SELECT id, tenant_id, ticket_id, started_by_user_id, assigned_agent_id, created_at, closed_at
        FROM chats ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translate(err, "Chat", chatConflictMsg, chatInvalidRefMsg)
	}
	defer rows.Close()

	result := []domain.Chat{}
	for rows.Next() {
		var chat domain.Chat
		if err := scanChat(rows, &chat); err != nil {
			return nil, translate(err, "Chat", chatConflictMsg, chatInvalidRefMsg)
		}
		result = append(result, chat)
	}
	return result, translate(rows.Err(), "Chat", chatConflictMsg, chatInvalidRefMsg)
}

func (r *chatRepository) GetByID(ctx context.Context, id string) (*domain.Chat, error) {
	const query = `
        SELECT id, tenant_id, ticket_id, started_by_user_id, assigned_agent_id, created_at, closed_at
        FROM chats WHERE id=$1`
	var chat domain.Chat
	if err := scanChat(r.pool.QueryRow(ctx, query, id), &chat); err != nil {
		return nil, translate(err, "Chat", chatConflictMsg, chatInvalidRefMsg)
	}
	return &chat, nil
}

func (r *chatRepository) GetWithCustomer(ctx context.Context, id string) (*domain.Chat, string, error) {
	const query = `
        SELECT c.id, c.tenant_id, c.ticket_id, c.started_by_user_id, c.assigned_agent_id, c.created_at, c.closed_at, t.customer_id
        FROM chats c JOIN tickets t ON c.ticket_id = t.id
        WHERE c.id=$1`
	var chat domain.Chat
	var customerID string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&chat.ID,
		&chat.TenantID,
		&chat.TicketID,
		&chat.StartedByUserID,
		&chat.AssignedAgentID,
		&chat.CreatedAt,
		&chat.ClosedAt,
		&customerID,
	)
	if err != nil {
		return nil, "", translate(err, "Chat", chatConflictMsg, chatInvalidRefMsg)
	}
	return &chat, customerID, nil
}

func (r *chatRepository) Update(ctx context.Context, chat *domain.Chat) error {
	const query = `
        UPDATE chats SET assigned_agent_id=$1, closed_at=$2
        WHERE id=$3
        RETURNING tenant_id, ticket_id, started_by_user_id, created_at`
	err := r.pool.QueryRow(ctx, query, chat.AssignedAgentID, chat.ClosedAt, chat.ID).
		Scan(&chat.TenantID, &chat.TicketID, &chat.StartedByUserID, &chat.CreatedAt)
	return translate(err, "Chat", chatConflictMsg, chatInvalidRefMsg)
}

func (r *chatRepository) Delete(ctx context.Context, id string) (*domain.Chat, error) {
	const query = `
        DELETE FROM chats WHERE id=$1
        RETURNING id, tenant_id, ticket_id, started_by_user_id, assigned_agent_id, created_at, closed_at`
	var chat domain.Chat
	if err := scanChat(r.pool.QueryRow(ctx, query, id), &chat); err != nil {
		return nil, translate(err, "Chat", chatConflictMsg, chatInvalidRefMsg)
	}
	return &chat, nil
}

func (r *chatRepository) ActivityEvents(ctx context.Context, since time.Time) ([]domain.ActivityEvent, error) {
	const query = `
        (SELECT 'chat_started' AS action, id, tenant_id, started_by_user_id AS user_id, created_at, 'chat' AS entity_type, 'Chat started' AS title
         FROM chats WHERE created_at >= $1)
        UNION ALL
        (SELECT 'chat_closed' AS action, id, tenant_id, started_by_user_id AS user_id, closed_at AS created_at, 'chat' AS entity_type, 'Chat closed' AS title
         FROM chats WHERE closed_at >= $1)`
	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, translate(err, "Chat", chatConflictMsg, chatInvalidRefMsg)
	}
	defer rows.Close()
	return scanActivityEvents(rows)
}
