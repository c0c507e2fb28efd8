// Package data provides bundled OpenDota constants snapshots for DotaMeta.
// Used as an offline fallback when the constants API is unreachable.
package data

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/dotameta/internal/services/opendota"
)

var (
	heroesData     map[int]opendota.Hero
	heroesDataOnce sync.Once
	heroesDataErr  error

	itemsData     map[string]opendota.Item
	itemsDataOnce sync.Once
	itemsDataErr  error

	itemIDsData     map[int]string
	itemIDsDataOnce sync.Once
	itemIDsDataErr  error
)

// LoadHeroes loads the hero metadata snapshot from a JSON file.
func LoadHeroes(filePath string) (map[int]opendota.Hero, error) {
	heroesDataOnce.Do(func() {
		raw, err := os.ReadFile(filePath)
		if err != nil {
			heroesDataErr = err
			return
		}

		var heroes map[int]opendota.Hero
		if err := json.Unmarshal(raw, &heroes); err != nil {
			heroesDataErr = err
			return
		}

		heroesData = heroes
	})

	return heroesData, heroesDataErr
}

// LoadItems loads the item metadata snapshot from a JSON file.
func LoadItems(filePath string) (map[string]opendota.Item, error) {
	itemsDataOnce.Do(func() {
		raw, err := os.ReadFile(filePath)
		if err != nil {
			itemsDataErr = err
			return
		}

		var items map[string]opendota.Item
		if err := json.Unmarshal(raw, &items); err != nil {
			itemsDataErr = err
			return
		}

		itemsData = items
	})

	return itemsData, itemsDataErr
}

// LoadItemIDs loads the item id index snapshot from a JSON file.
func LoadItemIDs(filePath string) (map[int]string, error) {
	itemIDsDataOnce.Do(func() {
		raw, err := os.ReadFile(filePath)
		if err != nil {
			itemIDsDataErr = err
			return
		}

		var itemIDs map[int]string
		if err := json.Unmarshal(raw, &itemIDs); err != nil {
			itemIDsDataErr = err
			return
		}

		itemIDsData = itemIDs
	})

	return itemIDsData, itemIDsDataErr
}
