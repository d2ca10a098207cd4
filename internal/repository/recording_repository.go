package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/supporthub/api/internal/domain"
	"github.com/supporthub/api/pkg/util"
)

const (
	recordingConflictMsg   = "A recording already exists for this ticket and chat combination"
	recordingInvalidRefMsg = "Invalid tenant_id, ticket_id, or chat_id"
)

// RecordingRepository encapsulates recording persistence.
type RecordingRepository interface {
	// Create runs the one-per-(ticket,chat) precheck and the insert in one
	// transaction; the unique constraint remains the authoritative guard.
	Create(ctx context.Context, recording *domain.Recording) error
	List(ctx context.Context) ([]domain.Recording, error)
	GetByID(ctx context.Context, id string) (*domain.Recording, error)
	Update(ctx context.Context, recording *domain.Recording) error
	Delete(ctx context.Context, id string) (*domain.Recording, error)
}

type recordingRepository struct {
	pool *pgxpool.Pool
}

// NewRecordingRepository instantiates repository.
func NewRecordingRepository(pool *pgxpool.Pool) RecordingRepository {
	return &recordingRepository{pool: pool}
}

func scanRecording(row pgx.Row, recording *domain.Recording) error {
	return row.Scan(
		&recording.ID,
		&recording.TenantID,
		&recording.TicketID,
		&recording.ChatID,
		&recording.URL,
		&recording.CreatedAt,
	)
}

func (r *recordingRepository) Create(ctx context.Context, recording *domain.Recording) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return util.NewInternalError(err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var existing string
	err = tx.QueryRow(ctx,
		`SELECT id FROM recordings WHERE ticket_id=$1 AND chat_id=$2`,
		recording.TicketID, recording.ChatID,
	).Scan(&existing)
	if err == nil {
		return util.NewConflictError(recordingConflictMsg)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return util.NewInternalError(err)
	}

	id, err := NextID(ctx, tx, "recordings")
	if err != nil {
		return err
	}
	recording.ID = id

	const query = `
        INSERT INTO recordings (id, tenant_id, ticket_id, chat_id, url, created_at)
        VALUES ($1, $2, $3, $4, $5, NOW())
        RETURNING created_at`
	err = tx.QueryRow(ctx, query,
		recording.ID,
		recording.TenantID,
		recording.TicketID,
		recording.ChatID,
		recording.URL,
	).Scan(&recording.CreatedAt)
	if err != nil {
		return translate(err, "Recording", recordingConflictMsg, recordingInvalidRefMsg)
	}
	return translate(tx.Commit(ctx), "Recording", recordingConflictMsg, recordingInvalidRefMsg)
}

func (r *recordingRepository) List(ctx context.Context) ([]domain.Recording, error) {
	const query = `
        SELECT id, tenant_id, ticket_id, chat_id, url, created_at
        FROM recordings ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translate(err, "Recording", recordingConflictMsg, recordingInvalidRefMsg)
	}
	defer rows.Close()

	result := []domain.Recording{}
	for rows.Next() {
		var recording domain.Recording
		if err := scanRecording(rows, &recording); err != nil {
			return nil, translate(err, "Recording", recordingConflictMsg, recordingInvalidRefMsg)
		}
		result = append(result, recording)
	}
	return result, translate(rows.Err(), "Recording", recordingConflictMsg, recordingInvalidRefMsg)
}

func (r *recordingRepository) GetByID(ctx context.Context, id string) (*domain.Recording, error) {
	const query = `
        SELECT id, tenant_id, ticket_id, chat_id, url, created_at
        FROM recordings WHERE id=$1`
	var recording domain.Recording
	if err := scanRecording(r.pool.QueryRow(ctx, query, id), &recording); err != nil {
		return nil, translate(err, "Recording", recordingConflictMsg, recordingInvalidRefMsg)
	}
	return &recording, nil
}

func (r *recordingRepository) Update(ctx context.Context, recording *domain.Recording) error {
	const query = `
        UPDATE recordings SET url=$1
        WHERE id=$2
        RETURNING tenant_id, ticket_id, chat_id, created_at`
	err := r.pool.QueryRow(ctx, query, recording.URL, recording.ID).
		Scan(&recording.TenantID, &recording.TicketID, &recording.ChatID, &recording.CreatedAt)
	return translate(err, "Recording", recordingConflictMsg, recordingInvalidRefMsg)
}

func (r *recordingRepository) Delete(ctx context.Context, id string) (*domain.Recording, error) {
	const query = `
        DELETE FROM recordings WHERE id=$1
        RETURNING id, tenant_id, ticket_id, chat_id, url, created_at`
	var recording domain.Recording
	if err := scanRecording(r.pool.QueryRow(ctx, query, id), &recording); err != nil {
		return nil, translate(err, "Recording", recordingConflictMsg, recordingInvalidRefMsg)
	}
	return &recording, nil
}
