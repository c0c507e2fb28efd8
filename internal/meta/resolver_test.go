package meta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotameta/internal/meta"
)

func TestFindHeroByLocalizedSubstring(t *testing.T) {
	d := newTestDataset()

	hero, err := d.FindHero("anti")
	require.NoError(t, err)
	assert.Equal(t, "Anti-Mage", hero.LocalizedName)
}

func TestFindHeroByInternalName(t *testing.T) {
	d := newTestDataset()

	// "wisp" appears only in Io's internal name
	hero, err := d.FindHero("wisp")
	require.NoError(t, err)
	assert.Equal(t, "Io", hero.LocalizedName)

	// Prefix-stripped internal name, full form
	hero, err = d.FindHero("antimage")
	require.NoError(t, err)
	assert.Equal(t, "Anti-Mage", hero.LocalizedName)
}

func TestFindHeroIoNeverMatchesSubstring(t *testing.T) {
	d := newTestDataset()

	// Lion comes first in roster order and contains "io", but the
	// query "io" must only match the hero actually named Io.
	hero, err := d.FindHero("io")
	require.NoError(t, err)
	assert.Equal(t, "Io", hero.LocalizedName)
}

func TestFindHeroSubstringStillReachesLion(t *testing.T) {
	d := newTestDataset()

	hero, err := d.FindHero("lio")
	require.NoError(t, err)
	assert.Equal(t, "Lion", hero.LocalizedName)
}

func TestFindHeroFirstMatchInRosterOrder(t *testing.T) {
	d := newTestDataset()

	// Both Lion and Gyrocopter contain "o"; Lion is first in the roster.
	hero, err := d.FindHero("o")
	require.NoError(t, err)
	assert.Equal(t, "Lion", hero.LocalizedName)
}

func TestFindHeroDeterministic(t *testing.T) {
	d := newTestDataset()

	first, err := d.FindHero("gyro")
	require.NoError(t, err)
	for range 10 {
		again, err := d.FindHero("gyro")
		require.NoError(t, err)
		assert.Equal(t, first.ID, again.ID)
	}
}

func TestFindHeroNotFound(t *testing.T) {
	d := newTestDataset()

	_, err := d.FindHero("zzzz")
	assert.ErrorIs(t, err, meta.ErrHeroNotFound)
}
