package meta

import (
	"errors"
	"strings"

	"github.com/dotameta/internal/services/opendota"
)

// ErrHeroNotFound reports that no roster hero matched the query.
var ErrHeroNotFound = errors.New("hero not found")

// heroPrefix is the namespace every internal hero name carries.
const heroPrefix = "npc_dota_hero_"

// FindHero returns the first roster hero matching the query, in roster
// order. The query must already be lower-cased and trimmed.
//
// A hero matches when its localized name contains the query, or when
// its internal name with the npc_dota_hero_ prefix stripped contains
// the query. The query "io" is special-cased to an exact localized
// name match: the substring rule would otherwise hand Io searches to
// any hero merely containing the letter pair, like Lion.
func (d *Dataset) FindHero(query string) (*opendota.HeroStats, error) {
	for i := range d.roster {
		h := &d.roster[i]
		localized := strings.ToLower(h.LocalizedName)

		if query == "io" {
			if localized == "io" {
				return h, nil
			}
			continue
		}

		if strings.Contains(localized, query) ||
			strings.Contains(strings.TrimPrefix(h.Name, heroPrefix), query) {
			return h, nil
		}
	}
	return nil, ErrHeroNotFound
}
