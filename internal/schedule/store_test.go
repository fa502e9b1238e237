package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minglu-edu/schedule-proxy/internal/dto"
)

func TestStoreReplaceAll(t *testing.T) {
	store := NewStore()
	assert.False(t, store.Loaded())
	assert.Zero(t, store.Len())

	store.ReplaceAll([]dto.CourseRecord{{Name: "一"}, {Name: "二"}})
	assert.True(t, store.Loaded())
	assert.Equal(t, 2, store.Len())

	store.ReplaceAll([]dto.CourseRecord{{Name: "三"}})
	require.Equal(t, 1, store.Len())
	assert.Equal(t, "三", store.Snapshot()[0].Name)

	store.ReplaceAll(nil)
	assert.Zero(t, store.Len())
	assert.True(t, store.Loaded())
}

func TestStoreSnapshotIsIsolated(t *testing.T) {
	store := NewStore()
	source := []dto.CourseRecord{{Name: "原始"}}
	store.ReplaceAll(source)

	source[0].Name = "改动"
	assert.Equal(t, "原始", store.Snapshot()[0].Name)

	snap := store.Snapshot()
	snap[0].Name = "再改"
	assert.Equal(t, "原始", store.Snapshot()[0].Name)
}
