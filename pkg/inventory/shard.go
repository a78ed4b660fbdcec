package inventory

import (
	"fmt"

	"github.com/dshills/wotwseedgen/pkg/uberstate"
)

// Shard is an equippable modifier. The subset named explicitly by spec.md
// §4.1's damage_mod/energy_mod/defense_mod formulas is complete; other
// shards exist in the live game but do not change these formulas.
type Shard int

const (
	Wingclip Shard = iota
	Splinter
	SpiritSurge
	LastStand
	Reckless
	Lifeforce
	Finesse
	Resilience
	Overcharge
	Vitality
	Energy
)

var shardNames = [...]string{
	"Wingclip", "Splinter", "SpiritSurge", "LastStand", "Reckless",
	"Lifeforce", "Finesse", "Resilience", "Overcharge", "Vitality", "Energy",
}

func (s Shard) String() string {
	if int(s) < 0 || int(s) >= len(shardNames) {
		return fmt.Sprintf("Shard(%d)", int(s))
	}
	return shardNames[s]
}

func (s Shard) UberIdentifier() uberstate.Identifier {
	return uberstate.Identifier{Group: 15, Member: int32(s)}
}

// PoolCost is the shard pool cost (spec.md §4.6: "shards 1000").
func (s Shard) PoolCost() uint32 { return 1000 }
