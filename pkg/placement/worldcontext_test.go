package placement

import (
	"testing"

	"github.com/dshills/wotwseedgen/pkg/command"
	"github.com/dshills/wotwseedgen/pkg/inventory"
	"github.com/dshills/wotwseedgen/pkg/logic"
	"github.com/dshills/wotwseedgen/pkg/rng"
	"github.com/dshills/wotwseedgen/pkg/uberstate"
	"github.com/dshills/wotwseedgen/pkg/world"
)

func buildSmallWorldContext(t *testing.T) (*worldContext, *logic.Graph) {
	t.Helper()
	g := logic.NewGraph()
	spawn := g.AddNode(logic.Node{ID: "spawn", Kind: logic.KindAnchor, CanSpawn: true})
	for i := 0; i < 3; i++ {
		id := string(rune('a' + i))
		idx := g.AddNode(logic.Node{
			ID: id, Kind: logic.KindPickup, CanPlace: true, Zone: "Zone1",
			UberIdentifier: &uberstate.Identifier{Group: 10, Member: int32(i)},
		})
		g.AddEdge(spawn, idx, logic.Free())
	}

	store := uberstate.NewStore(DefaultStoreValues())
	w := world.NewSpawnWorld(g, spawn, inventory.Settings{Difficulty: inventory.Moki}, store)
	output := command.NewCompilerOutput()
	r := rng.NewFromSeedString("worldcontext-test")
	return newWorldContext(0, r, w, output), g
}

func TestNewWorldContextCollectsNeedsPlacement(t *testing.T) {
	wc, _ := buildSmallWorldContext(t)
	if len(wc.needsPlacement) != 3 {
		t.Fatalf("expected 3 placeable locations, got %d", len(wc.needsPlacement))
	}
}

func TestHiSigmaConsumesOneSlot(t *testing.T) {
	wc, _ := buildSmallWorldContext(t)
	before := len(wc.needsPlacement)
	wc.hiSigma()
	if len(wc.needsPlacement) != before-1 {
		t.Fatalf("expected hiSigma to consume one slot, had %d now %d", before, len(wc.needsPlacement))
	}
	if len(wc.output.Events) == 0 {
		t.Fatalf("expected hiSigma to record an event")
	}
}

func TestUpdateReachedPopulatesReachedNeedsPlacement(t *testing.T) {
	wc, _ := buildSmallWorldContext(t)
	wc.updateReached()
	if len(wc.reachedNeedsPlacement) != 3 {
		t.Fatalf("expected all 3 locations reached, got %d", len(wc.reachedNeedsPlacement))
	}
}

func TestChoosePlacementNodeReservesAndShrinks(t *testing.T) {
	wc, _ := buildSmallWorldContext(t)
	wc.updateReached()

	action := command.CommandAction(command.GrantItem(command.SkillItem(inventory.Bash)))
	node, ok := wc.choosePlacementNode(action)
	if !ok || node == nil {
		t.Fatalf("expected a placement node")
	}
	if len(wc.reachedNeedsPlacement) != 2 {
		t.Fatalf("expected reachedNeedsPlacement to shrink to 2, got %d", len(wc.reachedNeedsPlacement))
	}
	if len(wc.receivedPlacement) != 1 {
		t.Fatalf("expected receivedPlacement to grow to 1, got %d", len(wc.receivedPlacement))
	}
}

func TestFillRemainingPlacesEveryLocation(t *testing.T) {
	wc, _ := buildSmallWorldContext(t)
	wc.updateReached()
	wc.fillRemaining()

	if len(wc.needsPlacement) != 0 {
		t.Fatalf("expected needsPlacement to be emptied, got %d remaining", len(wc.needsPlacement))
	}
	if len(wc.output.Events) != 3+1 { // 3 placements + the synthesized reload event
		t.Fatalf("expected 4 events (3 placements + reload), got %d", len(wc.output.Events))
	}
}

func TestShopPriceWithinNoiseBand(t *testing.T) {
	wc, _ := buildSmallWorldContext(t)
	item := command.ResourceItem(inventory.HealthFragment, 1)
	price := wc.shopPrice(item)
	if price < 150 || price > 250 {
		t.Fatalf("expected health fragment price within +/-25%% of base 200, got %d", price)
	}
}
