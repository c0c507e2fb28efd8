package meta

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/dotameta/internal/services/opendota"
)

// PopularitySource fetches fresh item purchase counters for a hero.
type PopularitySource interface {
	ItemPopularity(heroID int) (*opendota.ItemPopularity, error)
}

// HeroProfile is the snapshot assembled for one user action. It has no
// identity beyond the request and is discarded once rendered.
type HeroProfile struct {
	Hero     opendota.HeroStats
	Portrait opendota.Hero
	WinRate  float64
	NoStats  bool // true when the hero has zero recorded picks

	Early []opendota.Item
	Mid   []opendota.Item
	Late  []opendota.Item
}

// Profiler composes resolver, win rate aggregation and the item
// pipeline into one profile per user action.
type Profiler struct {
	data    *Dataset
	source  PopularitySource
	randInt func(n int) int
}

// NewProfiler creates a Profiler over a bootstrap dataset.
func NewProfiler(data *Dataset, source PopularitySource) *Profiler {
	return &Profiler{
		data:    data,
		source:  source,
		randInt: rand.IntN,
	}
}

// SetRand replaces the random index source (half-open, [0, n)).
// Tests use this to make the random pick deterministic.
func (p *Profiler) SetRand(fn func(n int) int) {
	p.randInt = fn
}

// BuildProfile resolves a hero from a free-text query and assembles
// its snapshot. An empty query behaves exactly like RandomProfile.
func (p *Profiler) BuildProfile(query string) (*HeroProfile, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return p.RandomProfile()
	}
	return p.buildFor(query)
}

// RandomProfile assembles a snapshot for a uniformly random roster
// hero, routed through the resolver as if its internal name had been
// typed.
func (p *Profiler) RandomProfile() (*HeroProfile, error) {
	roster := p.data.Roster()
	if len(roster) == 0 {
		return nil, ErrHeroNotFound
	}
	picked := roster[p.randInt(len(roster))]
	return p.buildFor(strings.TrimPrefix(picked.Name, heroPrefix))
}

func (p *Profiler) buildFor(query string) (*HeroProfile, error) {
	hero, err := p.data.FindHero(query)
	if err != nil {
		return nil, err
	}

	portrait, err := p.data.HeroByID(hero.ID)
	if err != nil {
		return nil, err
	}

	profile := &HeroProfile{
		Hero:     *hero,
		Portrait: portrait,
	}

	rate, err := WinRate(hero)
	if err != nil {
		if !errors.Is(err, ErrNoStats) {
			return nil, err
		}
		profile.NoStats = true
	}
	profile.WinRate = rate

	pop, err := p.source.ItemPopularity(hero.ID)
	if err != nil {
		return nil, fmt.Errorf("item popularity for %s: %w", hero.LocalizedName, err)
	}

	profile.Early = p.data.TopItems(pop.EarlyGameItems)
	profile.Mid = p.data.TopItems(pop.MidGameItems)
	profile.Late = p.data.TopItems(pop.LateGameItems)

	return profile, nil
}
