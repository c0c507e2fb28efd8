package meta

import (
	"errors"
	"math"

	"github.com/dotameta/internal/services/opendota"
)

// ErrNoStats reports that a hero has no recorded picks in any bracket,
// leaving the win rate undefined.
var ErrNoStats = errors.New("no recorded picks")

// WinRate reduces a hero's per-bracket counters to a single percentage
// rounded to two decimals.
func WinRate(h *opendota.HeroStats) (float64, error) {
	picks := h.PickCounts()
	wins := h.WinCounts()

	var totalPicks, totalWins int
	for i := range picks {
		totalPicks += picks[i]
		totalWins += wins[i]
	}

	if totalPicks == 0 {
		return 0, ErrNoStats
	}

	rate := 100 * float64(totalWins) / float64(totalPicks)
	return math.Round(rate*100) / 100, nil
}
