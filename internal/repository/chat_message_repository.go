package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/supporthub/api/internal/domain"
)

const (
	chatMessageConflictMsg   = "Duplicate chat message"
	chatMessageInvalidRefMsg = "Invalid chat_id or sender_id"
)

// ChatMessageRepository encapsulates chat message persistence.
type ChatMessageRepository interface {
	Create(ctx context.Context, msg *domain.ChatMessage) error
	List(ctx context.Context) ([]domain.ChatMessage, error)
	GetByID(ctx context.Context, id string) (*domain.ChatMessage, error)
	Update(ctx context.Context, msg *domain.ChatMessage) error
	Delete(ctx context.Context, id string) (*domain.ChatMessage, error)
}

type chatMessageRepository struct {
	pool *pgxpool.Pool
}

// NewChatMessageRepository instantiates repository.
func NewChatMessageRepository(pool *pgxpool.Pool) ChatMessageRepository {
	return &chatMessageRepository{pool: pool}
}

func scanChatMessage(row pgx.Row, msg *domain.ChatMessage) error {
	return row.Scan(&msg.ID, &msg.ChatID, &msg.SenderID, &msg.Message, &msg.SentAt)
}

func (r *chatMessageRepository) Create(ctx context.Context, msg *domain.ChatMessage) error {
	id, err := NextID(ctx, r.pool, "chat_msgs")
	if err != nil {
		return err
	}
	msg.ID = id

	const query = `
        INSERT INTO chat_msgs (id, chat_id, sender_id, message, sent_at)
        VALUES ($1, $2, $3, $4, NOW())
        RETURNING sent_at`
	err = r.pool.QueryRow(ctx, query, msg.ID, msg.ChatID, msg.SenderID, msg.Message).
		Scan(&msg.SentAt)
	return translate(err, "Chat message", chatMessageConflictMsg, chatMessageInvalidRefMsg)
}

func (r *chatMessageRepository) List(ctx context.Context) ([]domain.ChatMessage, error) {
	const query = `
        SELECT id, chat_id, sender_id, message, sent_at
        FROM chat_msgs ORDER BY sent_at ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translate(err, "Chat message", chatMessageConflictMsg, chatMessageInvalidRefMsg)
	}
	defer rows.Close()

	result := []domain.ChatMessage{}
	for rows.Next() {
		var msg domain.ChatMessage
		if err := scanChatMessage(rows, &msg); err != nil {
			return nil, translate(err, "Chat message", chatMessageConflictMsg, chatMessageInvalidRefMsg)
		}
		result = append(result, msg)
	}
	return result, translate(rows.Err(), "Chat message", chatMessageConflictMsg, chatMessageInvalidRefMsg)
}

func (r *chatMessageRepository) GetByID(ctx context.Context, id string) (*domain.ChatMessage, error) {
	const query = `
        SELECT id, chat_id, sender_id, message, sent_at
        FROM chat_msgs WHERE id=$1`
	var msg domain.ChatMessage
	if err := scanChatMessage(r.pool.QueryRow(ctx, query, id), &msg); err != nil {
		return nil, translate(err, "Chat message", chatMessageConflictMsg, chatMessageInvalidRefMsg)
	}
	return &msg, nil
}

func (r *chatMessageRepository) Update(ctx context.Context, msg *domain.ChatMessage) error {
	const query = `
        UPDATE chat_msgs SET message=$1
        WHERE id=$2
        RETURNING chat_id, sender_id, sent_at`
	err := r.pool.QueryRow(ctx, query, msg.Message, msg.ID).
		Scan(&msg.ChatID, &msg.SenderID, &msg.SentAt)
	return translate(err, "Chat message", chatMessageConflictMsg, chatMessageInvalidRefMsg)
}

func (r *chatMessageRepository) Delete(ctx context.Context, id string) (*domain.ChatMessage, error) {
	const query = `
        DELETE FROM chat_msgs WHERE id=$1
        RETURNING id, chat_id, sender_id, message, sent_at`
	var msg domain.ChatMessage
	if err := scanChatMessage(r.pool.QueryRow(ctx, query, id), &msg); err != nil {
		return nil, translate(err, "Chat message", chatMessageConflictMsg, chatMessageInvalidRefMsg)
	}
	return &msg, nil
}
