package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/supporthub/api/internal/persistence"
	"github.com/supporthub/api/pkg/util"
)

// translate maps store-level failures onto the domain error taxonomy. Errors
// already carrying a status pass through unchanged; unique violations become
// the entity-specific conflict message, foreign key violations the
// invalid-reference message.
func translate(err error, entity, conflictMsg, invalidRefMsg string) error {
	if err == nil {
		return nil
	}
	var apiErr *util.APIError
	if errors.As(err, &apiErr) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return util.NewNotFoundError(entity)
	}
	if persistence.IsUniqueViolation(err) {
		return util.NewConflictError(conflictMsg)
	}
	if persistence.IsForeignKeyViolation(err) {
		return util.NewValidationError(invalidRefMsg)
	}
	return util.NewInternalError(err)
}
