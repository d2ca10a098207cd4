package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/supporthub/api/internal/domain"
)

const (
	userConflictMsg   = "A user with this email already exists"
	userInvalidRefMsg = "Invalid tenant_id"
)

// UserRepository encapsulates user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByIDInTenant returns the user only when it belongs to the given
	// tenant; pgx.ErrNoRows-backed 404s are translated before returning.
	GetByIDInTenant(ctx context.Context, id, tenantID string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) (*domain.User, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func scanUser(row pgx.Row, user *domain.User) error {
	return row.Scan(
		&user.ID,
		&user.TenantID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	id, err := NextID(ctx, r.pool, "users")
	if err != nil {
		return err
	}
	user.ID = id

	const query = `
        INSERT INTO users (id, tenant_id, name, email, role, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
        RETURNING created_at, updated_at`
	err = r.pool.QueryRow(ctx, query, user.ID, user.TenantID, user.Name, user.Email, user.Role).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	return translate(err, "User", userConflictMsg, userInvalidRefMsg)
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT id, tenant_id, name, email, role, created_at, updated_at
        FROM users ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translate(err, "User", userConflictMsg, userInvalidRefMsg)
	}
	defer rows.Close()

	result := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := scanUser(rows, &user); err != nil {
			return nil, translate(err, "User", userConflictMsg, userInvalidRefMsg)
		}
		result = append(result, user)
	}
	return result, translate(rows.Err(), "User", userConflictMsg, userInvalidRefMsg)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `
        SELECT id, tenant_id, name, email, role, created_at, updated_at
        FROM users WHERE id=$1`
	var user domain.User
	if err := scanUser(r.pool.QueryRow(ctx, query, id), &user); err != nil {
		return nil, translate(err, "User", userConflictMsg, userInvalidRefMsg)
	}
	return &user, nil
}

func (r *userRepository) GetByIDInTenant(ctx context.Context, id, tenantID string) (*domain.User, error) {
	const query = `
        SELECT id, tenant_id, name, email, role, created_at, updated_at
        FROM users WHERE id=$1 AND tenant_id=$2`
	var user domain.User
	if err := scanUser(r.pool.QueryRow(ctx, query, id, tenantID), &user); err != nil {
		return nil, translate(err, "User", userConflictMsg, userInvalidRefMsg)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET name=$1, email=$2, role=$3, updated_at=NOW()
        WHERE id=$4
        RETURNING created_at, updated_at`
	err := r.pool.QueryRow(ctx, query, user.Name, user.Email, user.Role, user.ID).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	return translate(err, "User", userConflictMsg, userInvalidRefMsg)
}

func (r *userRepository) Delete(ctx context.Context, id string) (*domain.User, error) {
	const query = `
        DELETE FROM users WHERE id=$1
        RETURNING id, tenant_id, name, email, role, created_at, updated_at`
	var user domain.User
	if err := scanUser(r.pool.QueryRow(ctx, query, id), &user); err != nil {
		return nil, translate(err, "User", userConflictMsg, userInvalidRefMsg)
	}
	return &user, nil
}
