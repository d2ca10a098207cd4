package repository

import (
	"github.com/jackc/pgx/v5"

	"github.com/supporthub/api/internal/domain"
)

// scanActivityEvents reads feed projections produced by the per-entity
// ActivityEvents queries, which all share the same column shape.
func scanActivityEvents(rows pgx.Rows) ([]domain.ActivityEvent, error) {
	result := []domain.ActivityEvent{}
	for rows.Next() {
		var event domain.ActivityEvent
		if err := rows.Scan(
			&event.Action,
			&event.ID,
			&event.TenantID,
			&event.UserID,
			&event.CreatedAt,
			&event.EntityType,
			&event.Title,
		); err != nil {
			return nil, translate(err, "Activity", "", "")
		}
		result = append(result, event)
	}
	return result, translate(rows.Err(), "Activity", "", "")
}
