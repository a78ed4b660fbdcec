package placement

import (
	"testing"

	"github.com/dshills/wotwseedgen/pkg/command"
	"github.com/dshills/wotwseedgen/pkg/inventory"
	"github.com/dshills/wotwseedgen/pkg/logic"
	"github.com/dshills/wotwseedgen/pkg/settings"
	"github.com/dshills/wotwseedgen/pkg/uberstate"
)

// buildPlacementGraph builds a small single-world graph: a spawn anchor with
// five directly reachable pickups (one of them a shop slot) and a keystone
// door gating a sixth, exercising force_keystones alongside ordinary random
// placement.
func buildPlacementGraph() *logic.Graph {
	g := logic.NewGraph()
	spawn := g.AddNode(logic.Node{ID: "spawn", Kind: logic.KindAnchor, CanSpawn: true})

	for i := 0; i < 5; i++ {
		id := "pickup" + string(rune('A'+i))
		shop := i == 0
		group := int32(1)
		if !shop {
			group = 10
		}
		pickup := g.AddNode(logic.Node{
			ID: id, Kind: logic.KindPickup, CanPlace: true, Zone: "TestZone",
			UberIdentifier: &uberstate.Identifier{Group: group, Member: int32(i)},
		})
		g.AddEdge(spawn, pickup, logic.Free())
	}

	door := g.AddNode(logic.Node{
		ID: "MarshSpawn.KeystoneDoor", Kind: logic.KindPickup, CanPlace: true,
		UberIdentifier: &uberstate.Identifier{Group: 10, Member: 99},
	})
	g.AddEdge(spawn, door, logic.ResourceReq(inventory.Keystone, 2))

	return g
}

func testUniverseSettings(seed string) *settings.UniverseSettings {
	u := settings.NewUniverseSettings(seed)
	// The test graph's only spawn anchor is "spawn", not the vanilla default.
	u.WorldSettings[0].Spawn = settings.Spawn{Kind: settings.SpawnSet, Location: "spawn"}
	return &u
}

func TestGenerateSingleWorldPlacesEveryLocation(t *testing.T) {
	graph := buildPlacementGraph()
	universe := testUniverseSettings("test-seed-one")
	output := command.NewCompilerOutput()

	seed, err := Generate(graph, universe, []*command.CompilerOutput{output})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(seed.Worlds) != 1 {
		t.Fatalf("expected 1 world, got %d", len(seed.Worlds))
	}

	placedTriggers := map[uberstate.Identifier]bool{}
	for _, ev := range seed.Worlds[0].Events {
		if ev.Trigger.Kind == command.TriggerBinding {
			placedTriggers[ev.Trigger.UberIdentifier] = true
		}
	}

	for i := 0; i < 6; i++ {
		idx := graph.IndexOf(graph.Nodes[i+1].ID)
		node := graph.Node(idx)
		if node.UberIdentifier == nil || !node.CanPlace {
			continue
		}
		if !placedTriggers[*node.UberIdentifier] {
			t.Fatalf("expected node %q to receive a placement trigger", node.ID)
		}
	}
}

func TestGenerateDeterministicForSameSeed(t *testing.T) {
	graph := buildPlacementGraph()

	run := func() int {
		universe := testUniverseSettings("deterministic-seed")
		output := command.NewCompilerOutput()
		seed, err := Generate(graph, universe, []*command.CompilerOutput{output})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		return len(seed.Worlds[0].Events)
	}

	a := run()
	b := run()
	if a != b {
		t.Fatalf("expected deterministic event count for identical seeds, got %d and %d", a, b)
	}
}

func TestGenerateRecordsSpoilerForEveryPlacement(t *testing.T) {
	graph := buildPlacementGraph()
	universe := testUniverseSettings("spoiler-seed")
	output := command.NewCompilerOutput()

	seed, err := Generate(graph, universe, []*command.CompilerOutput{output})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(seed.Spoiler) == 0 {
		t.Fatalf("expected at least one spoiler entry")
	}
	for _, entry := range seed.Spoiler {
		if entry.OriginWorld != 0 || entry.TargetWorld != 0 {
			t.Fatalf("single-world seed should only ever place within world 0, got %+v", entry)
		}
		if entry.Location == "" {
			t.Fatalf("spoiler entry missing a location: %+v", entry)
		}
	}
}

func TestGenerateRejectsOutputCountMismatch(t *testing.T) {
	graph := buildPlacementGraph()
	universe := testUniverseSettings("seed")
	universe.WorldSettings = append(universe.WorldSettings, settings.DefaultWorldSettings())

	_, err := Generate(graph, universe, []*command.CompilerOutput{command.NewCompilerOutput()})
	if err == nil {
		t.Fatalf("expected an error for mismatched world/output counts")
	}
}
