package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/supporthub/api/internal/persistence"
	"github.com/supporthub/api/pkg/util"
)

// idSuffixWidth fixes the zero-padded sequence length. Lexicographic MAX(id)
// only finds the numeric maximum because every suffix has this exact width,
// so the allocator must never emit a wider one.
const idSuffixWidth = 10

const maxIDSequence = 9999999999

var tablePrefixes = map[string]string{
	"tenants":          "TNT",
	"categories":       "CAT",
	"escalation_types": "ESC",
	"users":            "USR",
	"tickets":          "TKT",
	"templates":        "TPL",
	"chats":            "CHT",
	"chat_msgs":        "MSG",
	"recordings":       "REC",
	"communications":   "COM",
	"escalations":      "ESC",
}

// NextID derives the next identifier for a table from its current maximum.
// The read-then-insert pair is not atomic; callers run it inside the insert
// transaction and rely on the primary key constraint as the final guard.
func NextID(ctx context.Context, q persistence.Querier, table string) (string, error) {
	prefix, ok := tablePrefixes[table]
	if !ok {
		return "", util.NewConfigurationError(fmt.Sprintf("no ID prefix registered for table %s", table))
	}

	var maxID string
	// parameterized identifiers are not supported; table comes from the fixed
	// prefix registry above, never from request input
	query := fmt.Sprintf("SELECT id FROM %s ORDER BY id DESC LIMIT 1", table)
	err := q.QueryRow(ctx, query).Scan(&maxID)
	if errors.Is(err, pgx.ErrNoRows) {
		maxID = ""
	} else if err != nil {
		return "", util.NewInternalError(err)
	}

	return nextIDAfter(prefix, maxID)
}

// nextIDAfter computes the successor of maxID for the given prefix. An empty
// maxID starts the sequence at 1.
func nextIDAfter(prefix, maxID string) (string, error) {
	next := int64(1)
	if maxID != "" && strings.HasPrefix(maxID, prefix+"_") {
		seq, err := strconv.ParseInt(maxID[len(prefix)+1:], 10, 64)
		if err != nil {
			return "", util.NewConfigurationError(fmt.Sprintf("malformed identifier %q", maxID))
		}
		next = seq + 1
	}
	if next > maxIDSequence {
		return "", util.NewConfigurationError(fmt.Sprintf("identifier sequence exhausted for prefix %s", prefix))
	}
	return fmt.Sprintf("%s_%0*d", prefix, idSuffixWidth, next), nil
}
