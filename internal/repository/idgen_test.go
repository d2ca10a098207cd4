package repository

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supporthub/api/pkg/util"
)

func TestNextIDAfterEmptyTableStartsAtOne(t *testing.T) {
	id, err := nextIDAfter("TKT", "")
	require.NoError(t, err)
	assert.Equal(t, "TKT_0000000001", id)
}

func TestNextIDAfterIncrementsSequence(t *testing.T) {
	id, err := nextIDAfter("TKT", "TKT_0000000007")
	require.NoError(t, err)
	assert.Equal(t, "TKT_0000000008", id)
}

func TestNextIDAfterOverflowFailsLoudly(t *testing.T) {
	_, err := nextIDAfter("TKT", fmt.Sprintf("TKT_%d", maxIDSequence))
	var apiErr *util.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "identifier sequence exhausted")
}

func TestNextIDAfterMalformedSuffix(t *testing.T) {
	_, err := nextIDAfter("TKT", "TKT_notanumber")
	var apiErr *util.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestNextIDRejectsUnknownTable(t *testing.T) {
	_, err := NextID(context.Background(), nil, "widgets")
	var apiErr *util.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "no ID prefix registered for table widgets", apiErr.Message)
}

func TestTablePrefixRegistryCoversAllEntities(t *testing.T) {
	for _, table := range []string{
		"tenants", "categories", "escalation_types", "users", "templates",
		"tickets", "chats", "chat_msgs", "recordings", "communications", "escalations",
	} {
		assert.Contains(t, tablePrefixes, table)
	}
}
