// Package settings models the per-seed and per-world configuration the
// generator is driven by: the seed string, each world's difficulty/spawn/
// tricks, decoded from YAML the way the teacher decodes its dungeon specs
// (spec.md §6 Inputs).
//
// Grounded on original_source/wotw_seedgen_settings/src/settings.rs,
// trimmed to the fields the core placement engine actually consumes —
// snippet/header configuration belongs to the out-of-scope compiler
// (spec.md §1 Non-goals) and is not modeled here.
package settings

import (
	"fmt"

	"github.com/dshills/wotwseedgen/pkg/inventory"
	"gopkg.in/yaml.v3"
)

// SpawnKind tags a Spawn variant.
type SpawnKind int

const (
	SpawnSet SpawnKind = iota
	SpawnRandom
	SpawnFullyRandom
)

// DefaultSpawnAnchor is the vanilla spawn location that DefaultWorldSettings
// sets. A zero-value Spawn is not resolved to it.
const DefaultSpawnAnchor = "MarshSpawn.Main"

// Spawn describes how a world's starting location is chosen (spec.md §6).
type Spawn struct {
	Kind     SpawnKind
	Location string // SpawnSet
}

func (s Spawn) IsRandom() bool { return s.Kind == SpawnRandom || s.Kind == SpawnFullyRandom }

// UnmarshalYAML decodes a Spawn from either the literal strings "random"/
// "fullyRandom" or an anchor-name string (SpawnSet).
func (s *Spawn) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	switch raw {
	case "", "random":
		*s = Spawn{Kind: SpawnRandom}
	case "fullyRandom":
		*s = Spawn{Kind: SpawnFullyRandom}
	default:
		*s = Spawn{Kind: SpawnSet, Location: raw}
	}
	return nil
}

// MarshalYAML encodes a Spawn back to its string form.
func (s Spawn) MarshalYAML() (interface{}, error) {
	switch s.Kind {
	case SpawnRandom:
		return "random", nil
	case SpawnFullyRandom:
		return "fullyRandom", nil
	case SpawnSet:
		return s.Location, nil
	default:
		return nil, fmt.Errorf("settings: unknown spawn kind %d", s.Kind)
	}
}

// WorldSettings are the seed-relevant settings bound to a single world
// (spec.md §6).
type WorldSettings struct {
	Spawn      Spawn                `yaml:"spawn"`
	Difficulty inventory.Difficulty `yaml:"difficulty"`
	Hard       bool                 `yaml:"hard"`
	Tricks     map[string]bool      `yaml:"tricks,omitempty"`
	Snippets   []string             `yaml:"snippets,omitempty"`
}

// ToInventorySettings projects the fields inventory's combat formulas need.
func (w WorldSettings) ToInventorySettings() inventory.Settings {
	return inventory.Settings{Difficulty: w.Difficulty, Hard: w.Hard}
}

// DefaultWorldSettings returns the vanilla defaults: Moki difficulty, set
// spawn at the vanilla anchor, not hard.
func DefaultWorldSettings() WorldSettings {
	return WorldSettings{
		Spawn:      Spawn{Kind: SpawnSet, Location: DefaultSpawnAnchor},
		Difficulty: inventory.Moki,
	}
}

// UniverseSettings is the whole-seed configuration: the seed string plus one
// WorldSettings per world (spec.md §6).
type UniverseSettings struct {
	Seed          string          `yaml:"seed"`
	WorldSettings []WorldSettings `yaml:"worldSettings"`
	Players       []string        `yaml:"players,omitempty"`
}

// PlayerName returns the display name for worldIndex, falling back to
// "Player N" (1-based) when Players doesn't cover that index.
func (u UniverseSettings) PlayerName(worldIndex int) string {
	if worldIndex >= 0 && worldIndex < len(u.Players) && u.Players[worldIndex] != "" {
		return u.Players[worldIndex]
	}
	return fmt.Sprintf("Player %d", worldIndex+1)
}

// NewUniverseSettings returns single-world settings with vanilla defaults.
func NewUniverseSettings(seed string) UniverseSettings {
	return UniverseSettings{Seed: seed, WorldSettings: []WorldSettings{DefaultWorldSettings()}}
}

// WorldCount returns the number of worlds this seed generates for.
func (u UniverseSettings) WorldCount() int { return len(u.WorldSettings) }
