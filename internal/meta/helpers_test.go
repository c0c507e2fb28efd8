package meta_test

import (
	"github.com/dotameta/internal/meta"
	"github.com/dotameta/internal/services/opendota"
)

// testRoster builds a small roster in a fixed order. Order matters:
// Lion sits before Io so the "io" substring trap is real.
func testRoster() []opendota.HeroStats {
	return []opendota.HeroStats{
		{
			ID: 26, Name: "npc_dota_hero_lion", LocalizedName: "Lion", PrimaryAttr: "int",
			Pick1: 200, Win1: 101, Pick2: 300, Win2: 149,
		},
		{
			ID: 91, Name: "npc_dota_hero_wisp", LocalizedName: "Io", PrimaryAttr: "all",
			Pick1: 50, Win1: 25, Pick8: 150, Win8: 80,
		},
		{
			ID: 1, Name: "npc_dota_hero_antimage", LocalizedName: "Anti-Mage", PrimaryAttr: "agi",
			Pick1: 100, Win1: 53, Pick2: 150, Win2: 80,
			Pick3: 125, Win3: 66, Pick4: 125, Win4: 66,
			Pick5: 100, Win5: 53, Pick6: 150, Win6: 80,
			Pick7: 125, Win7: 66, Pick8: 125, Win8: 66,
		},
		{
			ID: 72, Name: "npc_dota_hero_gyrocopter", LocalizedName: "Gyrocopter", PrimaryAttr: "agi",
			Pick1: 10, Win1: 4,
		},
		{
			// Zero recorded picks in every bracket
			ID: 145, Name: "npc_dota_hero_kez", LocalizedName: "Kez", PrimaryAttr: "agi",
		},
		{
			// Present in the roster but absent from the heroes table
			ID: 999, Name: "npc_dota_hero_brokenhero", LocalizedName: "Brokenhero", PrimaryAttr: "str",
			Pick1: 5, Win1: 2,
		},
	}
}

func testHeroes() map[int]opendota.Hero {
	return map[int]opendota.Hero{
		1:   {ID: 1, Name: "npc_dota_hero_antimage", LocalizedName: "Anti-Mage", Img: "/heroes/antimage.png"},
		26:  {ID: 26, Name: "npc_dota_hero_lion", LocalizedName: "Lion", Img: "/heroes/lion.png"},
		72:  {ID: 72, Name: "npc_dota_hero_gyrocopter", LocalizedName: "Gyrocopter", Img: "/heroes/gyrocopter.png"},
		91:  {ID: 91, Name: "npc_dota_hero_wisp", LocalizedName: "Io", Img: "/heroes/wisp.png"},
		145: {ID: 145, Name: "npc_dota_hero_kez", LocalizedName: "Kez", Img: "/heroes/kez.png"},
	}
}

func testItems() map[string]opendota.Item {
	return map[string]opendota.Item{
		"blink":           {ID: 1, Dname: "Blink Dagger", Cost: 2250},
		"boots":           {ID: 29, Dname: "Boots of Speed", Cost: 500},
		"power_treads":    {ID: 36, Dname: "Power Treads", Cost: 1400, Components: []string{"boots", "gloves", "belt_of_strength"}},
		"ward_observer":   {ID: 42, Dname: "Observer Ward"},
		"ward_sentry":     {ID: 43, Dname: "Sentry Ward", Cost: 50},
		"travel_boots":    {ID: 48, Dname: "Boots of Travel", Cost: 2500, Components: []string{"boots", "recipe_travel_boots"}},
		"manta":           {ID: 108, Dname: "Manta Style", Cost: 4600, Components: []string{"yasha", "yasha", "ultimate_orb"}},
		"smoke_of_deceit": {ID: 188, Dname: "Smoke of Deceit", Cost: 50},
	}
}

func testItemIDs() map[int]string {
	return map[int]string{
		1:   "blink",
		29:  "boots",
		36:  "power_treads",
		42:  "ward_observer",
		43:  "ward_sentry",
		48:  "travel_boots",
		63:  "orphan", // indexed but missing from the items table
		108: "manta",
		188: "smoke_of_deceit",
	}
}

func newTestDataset() *meta.Dataset {
	return meta.NewDataset(testRoster(), testHeroes(), testItems(), testItemIDs())
}
