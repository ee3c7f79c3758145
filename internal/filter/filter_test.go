package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/curio-app/curio/internal/models"
)

func testCollections() []models.Collection {
	return []models.Collection{
		{ID: "1", Name: "Logos", Description: "brand assets"},
		{ID: "2", Name: "Stamps", Description: "rare finds"},
		{ID: "3", Name: "Misc", Description: "logo drafts"},
	}
}

func testItems() []models.Item {
	return []models.Item{
		{ID: "1", Name: "Logo A", Description: "main mark", Tags: []string{"png", "primary"}},
		{ID: "2", Name: "Sketch", Description: "early logo", Tags: []string{"jpg"}},
		{ID: "3", Name: "Invoice", Description: "paperwork", Tags: []string{"pdf"}},
	}
}

func TestCollections_BlankQueryReturnsInputUnchanged(t *testing.T) {
	cols := testCollections()

	got := Collections(cols, "")
	assert.Equal(t, cols, got)

	got = Collections(cols, "   ")
	assert.Equal(t, cols, got)
}

func TestCollections_MatchesNameOrDescription(t *testing.T) {
	got := Collections(testCollections(), "logo")

	ids := make([]string, 0, len(got))
	for _, c := range got {
		ids = append(ids, c.ID)
	}
	// Stable: input order preserved.
	assert.Equal(t, []string{"1", "3"}, ids)
}

func TestCollections_CaseInsensitive(t *testing.T) {
	lower := Collections(testCollections(), "logo")
	upper := Collections(testCollections(), "LOGO")
	assert.Equal(t, lower, upper)
}

func TestItems_BlankQueryReturnsInputUnchanged(t *testing.T) {
	items := testItems()
	assert.Equal(t, items, Items(items, ""))
}

func TestItems_MatchesTags(t *testing.T) {
	got := Items(testItems(), "png")

	ids := make([]string, 0, len(got))
	for _, it := range got {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"1"}, ids)
}

func TestItems_CaseInsensitive(t *testing.T) {
	lower := Items(testItems(), "logo")
	upper := Items(testItems(), "LOGO")
	assert.Equal(t, lower, upper)
	assert.Len(t, lower, 2)
}

func TestItems_NoMatch(t *testing.T) {
	got := Items(testItems(), "zzz")
	assert.Empty(t, got)
}
