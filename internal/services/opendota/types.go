// Package opendota provides types for OpenDota API responses.
package opendota

// HeroStats represents one roster entry from /heroStats: hero identity
// plus pick/win counters for the eight ranked skill brackets.
type HeroStats struct {
	ID            int    `json:"id"`
	Name          string `json:"name"` // internal name, e.g. npc_dota_hero_antimage
	LocalizedName string `json:"localized_name"`
	PrimaryAttr   string `json:"primary_attr"` // str | agi | int | all
	Img           string `json:"img"`

	Pick1 int `json:"1_pick"`
	Win1  int `json:"1_win"`
	Pick2 int `json:"2_pick"`
	Win2  int `json:"2_win"`
	Pick3 int `json:"3_pick"`
	Win3  int `json:"3_win"`
	Pick4 int `json:"4_pick"`
	Win4  int `json:"4_win"`
	Pick5 int `json:"5_pick"`
	Win5  int `json:"5_win"`
	Pick6 int `json:"6_pick"`
	Win6  int `json:"6_win"`
	Pick7 int `json:"7_pick"`
	Win7  int `json:"7_win"`
	Pick8 int `json:"8_pick"`
	Win8  int `json:"8_win"`
}

// PickCounts returns the per-bracket pick counters, herald through immortal.
func (h *HeroStats) PickCounts() [8]int {
	return [8]int{h.Pick1, h.Pick2, h.Pick3, h.Pick4, h.Pick5, h.Pick6, h.Pick7, h.Pick8}
}

// WinCounts returns the per-bracket win counters, herald through immortal.
func (h *HeroStats) WinCounts() [8]int {
	return [8]int{h.Win1, h.Win2, h.Win3, h.Win4, h.Win5, h.Win6, h.Win7, h.Win8}
}

// Hero represents hero metadata from /constants/heroes, keyed by id.
type Hero struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LocalizedName string `json:"localized_name"`
	Img           string `json:"img"`
	Icon          string `json:"icon"`
}

// Item represents item metadata from /constants/items, keyed by
// internal item name. A non-empty Components list marks a recipe-built
// upgrade as opposed to a base or consumable item.
type Item struct {
	ID         int      `json:"id"`
	Img        string   `json:"img"`
	Dname      string   `json:"dname"`
	Cost       int      `json:"cost"`
	Components []string `json:"components"`
}

// ItemPopularity represents /heroes/{id}/itemPopularity: per game
// phase, item id to purchase count.
type ItemPopularity struct {
	StartGameItems map[int]int `json:"start_game_items"`
	EarlyGameItems map[int]int `json:"early_game_items"`
	MidGameItems   map[int]int `json:"mid_game_items"`
	LateGameItems  map[int]int `json:"late_game_items"`
}
