// Package meta implements the hero snapshot pipeline: hero resolution,
// win rate aggregation and item popularity ranking over a read-only
// reference dataset.
package meta

import (
	"errors"
	"fmt"

	"github.com/dotameta/internal/services/opendota"
)

// ErrIntegrity reports that the roster and the reference tables
// disagree. This is a data error, not a user-facing condition.
var ErrIntegrity = errors.New("reference data inconsistent")

// Dataset is the read-only reference state for one session: the hero
// roster plus the three lookup tables. Built once during bootstrap and
// never mutated afterwards.
type Dataset struct {
	roster  []opendota.HeroStats
	heroes  map[int]opendota.Hero
	items   map[string]opendota.Item
	itemIDs map[int]string
}

// NewDataset builds a Dataset. The roster keeps its fetch order; the
// resolver depends on it.
func NewDataset(
	roster []opendota.HeroStats,
	heroes map[int]opendota.Hero,
	items map[string]opendota.Item,
	itemIDs map[int]string,
) *Dataset {
	return &Dataset{
		roster:  roster,
		heroes:  heroes,
		items:   items,
		itemIDs: itemIDs,
	}
}

// Roster returns the hero roster in fetch order.
func (d *Dataset) Roster() []opendota.HeroStats {
	return d.roster
}

// HeroByID returns hero metadata for a roster hero id. The roster and
// the heroes table come from the same upstream, so a miss means the
// two payloads are out of sync.
func (d *Dataset) HeroByID(id int) (opendota.Hero, error) {
	hero, ok := d.heroes[id]
	if !ok {
		return opendota.Hero{}, fmt.Errorf("%w: hero id %d missing from heroes table", ErrIntegrity, id)
	}
	return hero, nil
}

// resolveItem maps an item id through the id index and the item table.
// Returns false when the id fails either stage; an unknown or retired
// item never yields a partial record.
func (d *Dataset) resolveItem(id int) (opendota.Item, bool) {
	name, ok := d.itemIDs[id]
	if !ok {
		return opendota.Item{}, false
	}
	item, ok := d.items[name]
	if !ok {
		return opendota.Item{}, false
	}
	return item, true
}
