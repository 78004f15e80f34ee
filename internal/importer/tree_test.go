package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commercial-portal/internal/model"
)

func strPtr(s string) *string { return &s }

// byID индексирует результат пересчета для удобства проверок.
func byID(categories []model.Category) map[string]model.Category {
	index := make(map[string]model.Category, len(categories))
	for _, c := range categories {
		index[c.ID] = c
	}
	return index
}

func TestRebuildTree_SingleTree(t *testing.T) {
	categories := []model.Category{
		{ID: "A"},
		{ID: "B", ParentID: strPtr("A")},
		{ID: "C", ParentID: strPtr("A")},
		{ID: "D", ParentID: strPtr("B")},
	}

	result := byID(RebuildTree(categories))

	// A(1..8): B(2..5): D(3..4), C(6..7)
	assert.Equal(t, 1, result["A"].TreeID)
	assert.Equal(t, 1, result["A"].Lft)
	assert.Equal(t, 8, result["A"].Rght)
	assert.Equal(t, 0, result["A"].Level)

	assert.Equal(t, 2, result["B"].Lft)
	assert.Equal(t, 5, result["B"].Rght)
	assert.Equal(t, 1, result["B"].Level)

	assert.Equal(t, 3, result["D"].Lft)
	assert.Equal(t, 4, result["D"].Rght)
	assert.Equal(t, 2, result["D"].Level)

	assert.Equal(t, 6, result["C"].Lft)
	assert.Equal(t, 7, result["C"].Rght)
}

func TestRebuildTree_Forest(t *testing.T) {
	categories := []model.Category{
		{ID: "B"},
		{ID: "A"},
		{ID: "C", ParentID: strPtr("B")},
	}

	result := byID(RebuildTree(categories))

	// Корни нумеруются в порядке кодов: A - первое дерево, B - второе
	assert.Equal(t, 1, result["A"].TreeID)
	assert.Equal(t, 2, result["B"].TreeID)
	assert.Equal(t, 2, result["C"].TreeID)
	assert.Equal(t, 1, result["B"].Lft)
	assert.Equal(t, 4, result["B"].Rght)
}

func TestRebuildTree_UnknownParentBecomesRoot(t *testing.T) {
	categories := []model.Category{
		{ID: "A", ParentID: strPtr("GONE")},
	}

	result := byID(RebuildTree(categories))

	require.Contains(t, result, "A")
	assert.Equal(t, 1, result["A"].TreeID)
	assert.Equal(t, 0, result["A"].Level)
}

func TestRebuildTree_CycleBroken(t *testing.T) {
	// A и B ссылаются друг на друга - дерево все равно строится,
	// каждый узел нумеруется ровно один раз
	categories := []model.Category{
		{ID: "A", ParentID: strPtr("B")},
		{ID: "B", ParentID: strPtr("A")},
	}

	result := byID(RebuildTree(categories))

	require.Len(t, result, 2)
	for id, c := range result {
		assert.Greater(t, c.Rght, c.Lft, "узел %s", id)
		assert.NotZero(t, c.TreeID, "узел %s", id)
	}
}

func TestRebuildTree_Empty(t *testing.T) {
	assert.Empty(t, RebuildTree(nil))
}
