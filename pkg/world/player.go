// Package world binds a graph, a spawn anchor, a Player and an UberStates
// store; it provides reachability queries and the simulate dispatcher that
// executes actions/commands against world state (spec.md §4.3–§4.5).
//
// Grounded on original_source/wotw_seedgen/src/world/{mod,simulate}.rs,
// restructured into the teacher's small-struct-with-methods idiom
// (pkg/graph.Room / pkg/graph.Graph).
package world

import "github.com/dshills/wotwseedgen/pkg/inventory"

// Player wraps an inventory and settings, and computes requirement
// solutions (spec.md §4.3).
type Player struct {
	Inventory inventory.Inventory
	Settings  inventory.Settings
}

// NewPlayer returns a player with an empty inventory.
func NewPlayer(settings inventory.Settings) Player {
	return Player{Inventory: inventory.New(), Settings: settings}
}

// NewSpawnPlayer returns a player with the vanilla spawn inventory.
func NewSpawnPlayer(settings inventory.Settings) Player {
	return Player{Inventory: inventory.NewSpawn(), Settings: settings}
}

// MaxOrbs returns the player's maximum orb state.
func (p Player) MaxOrbs() inventory.Orbs {
	return p.Inventory.MaxOrbs(p.Settings.Difficulty)
}
