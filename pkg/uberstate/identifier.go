// Package uberstate models the addressable key-value store of client state
// ("uberStates") that a seed's events read and write: the game's save-state
// variables. It mirrors the UberStates store described in spec.md §4.2,
// generalizing dungo's map-keyed entity pattern (pkg/graph.Room/Connector)
// to a typed, triggerable value store.
package uberstate

import "fmt"

// Identifier is an opaque (group, member) key into the uberState store.
type Identifier struct {
	Group  int32
	Member int32
}

func (id Identifier) String() string {
	return fmt.Sprintf("%d|%d", id.Group, id.Member)
}

// IsShop reports whether this identifier addresses a shop slot. Shop
// uberIdentifiers have group 1, 2, or 15 (spec.md §3).
func (id Identifier) IsShop() bool {
	return id.Group == 1 || id.Group == 2 || id.Group == 15
}

// MultiworldGroup is the fixed group used for synthesized cross-world
// handshake uberIdentifiers (spec.md §6 wire conventions).
const MultiworldGroup int32 = 12

// Named identifiers aliased to game concepts, ported from
// original_source/wotw_seedgen_data/src/lib.rs. Only the subset the core
// references by name is reproduced here; the full Resource/Skill/Shard/
// Teleporter/WeaponUpgrade tables with their own identifiers live in
// pkg/inventory (resource.go, skill.go, shard.go, teleporter.go,
// weapon_upgrade.go).
var (
	SpiritLight = Identifier{Group: 3, Member: 0}
	MaxHealth   = Identifier{Group: 3, Member: 1}
	MaxEnergy   = Identifier{Group: 3, Member: 2}
	CleanWater  = Identifier{Group: 6, Member: 2000}

	// Monotone quest states referenced by prevent_uber_state_change
	// (simulate.rs) and named in spec.md §4.5.
	WellspringQuest = Identifier{Group: 14019, Member: 28896}
	KuQuest         = Identifier{Group: 14019, Member: 20667}

	// uber_state_side_effects table entries named in spec.md §4.5.
	LumaPoolsArena1  = Identifier{Group: 5377, Member: 53480}
	LumaPoolsArena2  = Identifier{Group: 5377, Member: 1373}
	WellspringEscape = Identifier{Group: 37858, Member: 12379}
)

// SpawnGroup and IsSpawnAnchor identify the two anchors spec's $WHEREIS
// post-processor (§4.9) treats specially ("group = 3 and id in {0, 1}" -> "Spawn").
const SpawnGroup int32 = 3

func IsSpawnAnchor(id Identifier) bool {
	return id.Group == SpawnGroup && (id.Member == 0 || id.Member == 1)
}
