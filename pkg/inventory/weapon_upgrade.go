package inventory

import (
	"fmt"

	"github.com/dshills/wotwseedgen/pkg/uberstate"
)

// WeaponUpgrade is a modifier attached to a specific weapon skill.
type WeaponUpgrade int

const (
	ExplodingSpear WeaponUpgrade = iota
	HammerShockwave
	ChargeBlaze
	RapidSentry
)

var weaponUpgradeNames = [...]string{
	"ExplodingSpear", "HammerShockwave", "ChargeBlaze", "RapidSentry",
}

func (w WeaponUpgrade) String() string {
	if int(w) < 0 || int(w) >= len(weaponUpgradeNames) {
		return fmt.Sprintf("WeaponUpgrade(%d)", int(w))
	}
	return weaponUpgradeNames[w]
}

func (w WeaponUpgrade) UberIdentifier() uberstate.Identifier {
	return uberstate.Identifier{Group: 19, Member: int32(w)}
}

// PoolCost matches the other one-off pool items; weapon upgrades are placed
// once each with the same weight as shards (spec.md §4.6 enumerates shards
// and weapon-upgrades together as "every skill and shard and weapon-upgrade
// once").
func (w WeaponUpgrade) PoolCost() uint32 { return 1000 }
