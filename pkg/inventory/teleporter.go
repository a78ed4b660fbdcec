package inventory

import (
	"fmt"

	"github.com/dshills/wotwseedgen/pkg/uberstate"
)

// Teleporter is a fast-travel anchor unlock. Owned teleporters are treated
// as additional spawn-equivalent starting anchors by the reachability engine
// (spec.md §4.4 "reached_by_teleporter").
type Teleporter int

const (
	MarshTeleporter Teleporter = iota
	DenTeleporter
	HollowTeleporter
	GladesTeleporter
	WellspringTeleporter
	BurrowsTeleporter
	WoodsEntranceTeleporter
	WoodsExitTeleporter
	ReachTeleporter
	DepthsTeleporter
	CentralLumaTeleporter
	InkwaterTeleporter
)

var teleporterNames = [...]string{
	"MarshTeleporter", "DenTeleporter", "HollowTeleporter", "GladesTeleporter",
	"WellspringTeleporter", "BurrowsTeleporter", "WoodsEntranceTeleporter",
	"WoodsExitTeleporter", "ReachTeleporter", "DepthsTeleporter",
	"CentralLumaTeleporter", "InkwaterTeleporter",
}

func (t Teleporter) String() string {
	if int(t) < 0 || int(t) >= len(teleporterNames) {
		return fmt.Sprintf("Teleporter(%d)", int(t))
	}
	return teleporterNames[t]
}

func (t Teleporter) UberIdentifier() uberstate.Identifier {
	return uberstate.Identifier{Group: 16, Member: int32(t)}
}

// PoolCost: every teleporter costs 25000 except Inkwater, which costs 30000
// (spec.md §4.6).
func (t Teleporter) PoolCost() uint32 {
	if t == InkwaterTeleporter {
		return 30000
	}
	return 25000
}
