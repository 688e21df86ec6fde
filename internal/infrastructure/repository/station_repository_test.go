package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStationUpsertRefreshesAllMutableColumns(t *testing.T) {
	// The upsert assignment list must reset deleted_at, or a save onto a
	// soft-deleted ID would update a row the list queries never show.
	assert.Contains(t, stationUpsertColumns, "deleted_at")
	assert.Contains(t, stationUpsertColumns, "updated_at")

	for _, col := range []string{"name", "address", "footer_note", "receipt_width"} {
		assert.Contains(t, stationUpsertColumns, col)
	}

	// id and created_at stay immutable on conflict.
	assert.NotContains(t, stationUpsertColumns, "id")
	assert.NotContains(t, stationUpsertColumns, "created_at")
}
