package meta

import (
	"sort"

	"github.com/dotameta/internal/services/opendota"
)

// topItemCount is the display length of a phase item list.
const topItemCount = 5

// alwaysInteresting lists item ids kept regardless of the recipe
// heuristic: observer ward, sentry ward, smoke of deceit. Consumables
// every hero buys, so filtering them out would misrepresent the phase.
var alwaysInteresting = map[int]bool{
	42:  true,
	43:  true,
	188: true,
}

// TopItems turns one phase's item-id purchase counters into an ordered
// list of at most five item records, biased toward build-defining
// purchases.
//
// The counters are ranked by count descending (ties by ascending item
// id), resolved through the id index and the item table with
// unresolvable ids dropped, then filtered to always-interesting ids
// and recipe-built items. A short filtered list is padded back up from
// the unfiltered pool in rank order, skipping duplicates. The result
// is shorter than five only when the resolvable pool itself is.
func (d *Dataset) TopItems(counts map[int]int) []opendota.Item {
	// Rank: ascending id first so equal counts order deterministically.
	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	sort.SliceStable(ids, func(i, j int) bool {
		return counts[ids[i]] > counts[ids[j]]
	})

	// Resolve, dropping unknown and retired ids.
	pool := make([]opendota.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := d.resolveItem(id); ok {
			pool = append(pool, item)
		}
	}

	// Filter to the interesting subset.
	picked := make([]opendota.Item, 0, topItemCount)
	seen := make(map[int]bool, topItemCount)
	for _, item := range pool {
		if alwaysInteresting[item.ID] || len(item.Components) > 0 {
			picked = append(picked, item)
			seen[item.ID] = true
		}
	}

	// Pad from the pre-filter pool, first not-yet-included items first.
	for _, item := range pool {
		if len(picked) >= topItemCount {
			break
		}
		if seen[item.ID] {
			continue
		}
		picked = append(picked, item)
		seen[item.ID] = true
	}

	if len(picked) > topItemCount {
		picked = picked[:topItemCount]
	}
	return picked
}
