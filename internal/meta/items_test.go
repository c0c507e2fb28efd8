package meta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixture ids: 29 (boots) resolves but is neither always-interesting
// nor recipe-built; 36 (power treads), 48 (travel boots) and 108
// (manta) are recipe-built; 42/43/188 are the always-interesting
// consumables; 63 resolves to a name missing from the items table;
// 999 is not in the id index at all.

func TestTopItemsFilterThenPad(t *testing.T) {
	d := newTestDataset()

	// 29 outbuys everything but is filler; it comes back only as padding.
	got := d.TopItems(map[int]int{29: 50, 36: 40, 42: 5})

	require.Len(t, got, 3)
	assert.Equal(t, 36, got[0].ID)
	assert.Equal(t, 42, got[1].ID)
	assert.Equal(t, 29, got[2].ID)
}

func TestTopItemsFullFive(t *testing.T) {
	d := newTestDataset()

	got := d.TopItems(map[int]int{29: 50, 36: 40, 1: 30, 42: 5, 43: 2, 188: 1})

	require.Len(t, got, 5)
	// Filtered portion keeps descending purchase-count order
	assert.Equal(t, 36, got[0].ID)
	assert.Equal(t, 42, got[1].ID)
	assert.Equal(t, 43, got[2].ID)
	assert.Equal(t, 188, got[3].ID)
	// Padding comes from the unfiltered pool in rank order
	assert.Equal(t, 29, got[4].ID)
}

func TestTopItemsTruncatesToFive(t *testing.T) {
	d := newTestDataset()

	// Six entries survive the filter; output still has exactly five.
	got := d.TopItems(map[int]int{36: 60, 48: 50, 108: 40, 42: 30, 43: 20, 188: 10})

	require.Len(t, got, 5)
	assert.Equal(t, []int{36, 48, 108, 42, 43},
		[]int{got[0].ID, got[1].ID, got[2].ID, got[3].ID, got[4].ID})
}

func TestTopItemsDropsUnresolvable(t *testing.T) {
	d := newTestDataset()

	// 999 fails the id index, 63 fails the items table; neither may
	// appear, partially populated or otherwise.
	got := d.TopItems(map[int]int{999: 100, 63: 90, 36: 10})

	require.Len(t, got, 1)
	assert.Equal(t, 36, got[0].ID)
	assert.NotEmpty(t, got[0].Dname)
}

func TestTopItemsNoDuplicatePadding(t *testing.T) {
	d := newTestDataset()

	got := d.TopItems(map[int]int{36: 50, 42: 40, 29: 30, 1: 20})

	require.Len(t, got, 4)
	seen := make(map[int]bool)
	for _, item := range got {
		assert.False(t, seen[item.ID], "item %d appears twice", item.ID)
		seen[item.ID] = true
	}
}

func TestTopItemsTieBreaksByAscendingID(t *testing.T) {
	d := newTestDataset()

	got := d.TopItems(map[int]int{43: 7, 42: 7, 188: 7})

	require.Len(t, got, 3)
	assert.Equal(t, 42, got[0].ID)
	assert.Equal(t, 43, got[1].ID)
	assert.Equal(t, 188, got[2].ID)
}

func TestTopItemsEmptyPhase(t *testing.T) {
	d := newTestDataset()

	assert.Empty(t, d.TopItems(map[int]int{}))
	assert.Empty(t, d.TopItems(nil))
}
