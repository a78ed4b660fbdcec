package placement

// Tuning constants for the placement orchestrator, ported verbatim from
// original_source/wotw_seedgen/src/constants.rs.
const (
	// spawnSlots is how many item slots the spawn anchor itself offers when
	// a world runs out of reachable pickup locations mid-placement.
	spawnSlots = 7
	// preferredSpawnSlots bounds how eagerly a large forced progression is
	// allowed to consume spawn slots before its placement weight is
	// penalized (see chooseProgression's begrudgingly-used-slots term).
	preferredSpawnSlots = 3
	// reserveSlots, placeholderSlots and randomProgression are carried over
	// from the source table; no code in this package reads them.
	reserveSlots      = 1
	placeholderSlots  = 25
	randomProgression = 0.4
	// unsharedItems is how many items per world are guaranteed not to be
	// sent to another world.
	unsharedItems = 5
	// retries bounds how many full placement attempts generate_seed allows
	// before giving up.
	retries = 10
)

// KeystoneDoors returns a copy of the keystone-door table, for use by
// pkg/validation's keystone-safety self-check (spec.md §8 property 7).
func KeystoneDoors() map[string]int32 {
	doors := make(map[string]int32, len(keystoneDoors))
	for k, v := range keystoneDoors {
		doors[k] = v
	}
	return doors
}

// keystoneDoors maps a keystone-gated node's identifier to the number of
// keystones required to pass it, used by forceKeystones to guarantee enough
// keystones are placed before the doors they gate (spec.md §4.7.2).
var keystoneDoors = map[string]int32{
	"MarshSpawn.KeystoneDoor":         2,
	"HowlsDen.KeystoneDoor":           2,
	"MarshPastOpher.EyestoneDoor":     2,
	"MidnightBurrows.KeystoneDoor":    4,
	"WoodsEntry.KeystoneDoor":         2,
	"WoodsMain.KeystoneDoor":          4,
	"LowerReach.KeystoneDoor":         4,
	"UpperReach.KeystoneDoor":         4,
	"UpperDepths.EntryKeystoneDoor":   2,
	"UpperDepths.CentralKeystoneDoor": 2,
	"UpperPools.KeystoneDoor":         4,
	"UpperWastes.KeystoneDoor":        2,
}
