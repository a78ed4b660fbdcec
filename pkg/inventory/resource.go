package inventory

import (
	"fmt"

	"github.com/dshills/wotwseedgen/pkg/uberstate"
)

// Resource is a countable inventory quantity (spec.md §3 Inventory
// "resources: mapping Resource→i32").
type Resource int

const (
	HealthFragment Resource = iota
	EnergyFragment
	GorlekOre
	Keystone
	ShardSlot
)

var resourceNames = [...]string{"HealthFragment", "EnergyFragment", "GorlekOre", "Keystone", "ShardSlot"}

func (r Resource) String() string {
	if int(r) < 0 || int(r) >= len(resourceNames) {
		return fmt.Sprintf("Resource(%d)", int(r))
	}
	return resourceNames[r]
}

// UberIdentifier returns the uberState key this resource's running count is
// stored under, ported from original_source/wotw_seedgen_data/src/lib.rs.
func (r Resource) UberIdentifier() uberstate.Identifier {
	switch r {
	case HealthFragment:
		return uberstate.Identifier{Group: 3, Member: 10}
	case EnergyFragment:
		return uberstate.Identifier{Group: 3, Member: 11}
	case GorlekOre:
		return uberstate.Identifier{Group: 3, Member: 12}
	case Keystone:
		return uberstate.Identifier{Group: 3, Member: 13}
	case ShardSlot:
		return uberstate.Identifier{Group: 3, Member: 14}
	default:
		panic(fmt.Sprintf("inventory: unknown resource %d", r))
	}
}

// DefaultPoolCount is the count of this resource seeded into the default
// item pool (spec.md §4.6: "24/24/40/34/5").
func (r Resource) DefaultPoolCount() int {
	switch r {
	case HealthFragment:
		return 24
	case EnergyFragment:
		return 24
	case GorlekOre:
		return 40
	case Keystone:
		return 34
	case ShardSlot:
		return 5
	default:
		return 0
	}
}

// PoolCost is the per-unit cost used for pool-rejection and progression
// weighting (spec.md §4.6: "Gorlek Ore 20, Health/Energy Fragment 120,
// Keystone 320, Shard Slot 480").
func (r Resource) PoolCost() uint32 {
	switch r {
	case GorlekOre:
		return 20
	case HealthFragment, EnergyFragment:
		return 120
	case Keystone:
		return 320
	case ShardSlot:
		return 480
	default:
		return 0
	}
}
