package postprocess

import (
	"strings"
	"testing"

	"github.com/dshills/wotwseedgen/pkg/logic"
	"github.com/dshills/wotwseedgen/pkg/settings"
	"github.com/dshills/wotwseedgen/pkg/uberstate"
)

func buildZoneGraph() *logic.Graph {
	g := logic.NewGraph()
	g.AddNode(logic.Node{ID: "spawn", Kind: logic.KindAnchor, CanSpawn: true})
	g.AddNode(logic.Node{
		ID: "glades-pickup", Kind: logic.KindPickup, CanPlace: true, Zone: "Glades",
		UberIdentifier: &uberstate.Identifier{Group: 4, Member: 11},
	})
	g.AddNode(logic.Node{
		ID: "marsh-pickup", Kind: logic.KindPickup, CanPlace: true, Zone: "Marsh",
		UberIdentifier: &uberstate.Identifier{Group: 4, Member: 20},
	})
	return g
}

func TestReadArgsRespectsNestedParens(t *testing.T) {
	seed := "$WHEREIS(4|f(x, y))"
	end, ok := readArgs(seed, len("$WHEREIS("))
	if !ok {
		t.Fatalf("expected to find matching close paren")
	}
	if seed[end] != ')' || seed[:end] != "$WHEREIS(4|f(x, y)" {
		t.Fatalf("expected outer close paren, got index %d (%q)", end, seed[:end])
	}
}

func TestWhereIsResolvesZoneFromMatchingPickup(t *testing.T) {
	graph := buildZoneGraph()
	universe := settings.NewUniverseSettings("seed")
	seeds := []string{
		"Flags|whatever\n" +
			"4|11|6|23|1000 // a skill grant\n" +
			"4|20|6|45|500\n",
	}

	zone, err := whereIs(`6\|23.*`, 0, seeds, graph, &universe)
	if err != nil {
		t.Fatalf("whereIs failed: %v", err)
	}
	if zone != "Glades" {
		t.Fatalf("expected Glades, got %q", zone)
	}
}

func TestWhereIsReturnsSpawnForAnchor(t *testing.T) {
	graph := buildZoneGraph()
	universe := settings.NewUniverseSettings("seed")
	seeds := []string{"3|0|6|1|1\n"}

	zone, err := whereIs(`6\|1\|1`, 0, seeds, graph, &universe)
	if err != nil {
		t.Fatalf("whereIs failed: %v", err)
	}
	if zone != "Spawn" {
		t.Fatalf("expected Spawn, got %q", zone)
	}
}

func TestWhereIsReturnsUnknownWhenNoMatch(t *testing.T) {
	graph := buildZoneGraph()
	universe := settings.NewUniverseSettings("seed")
	seeds := []string{"4|11|6|23|1000\n"}

	zone, err := whereIs(`9\|99.*`, 0, seeds, graph, &universe)
	if err != nil {
		t.Fatalf("whereIs failed: %v", err)
	}
	if zone != "Unknown" {
		t.Fatalf("expected Unknown, got %q", zone)
	}
}

func TestWhereIsFollowsMultiworldShare(t *testing.T) {
	graph := buildZoneGraph()
	universe := settings.NewUniverseSettings("seed")
	universe.Players = []string{"Alice", "Bob"}

	seeds := []string{
		"12|7|notify|shared-grant\n", // world 0's handshake slot for the shared item
		"4|11|8|12|7|bool|true\n",    // world 1's actual location, writing the handshake true
	}

	zone, err := whereIs(`notify.*`, 0, seeds, graph, &universe)
	if err != nil {
		t.Fatalf("whereIs failed: %v", err)
	}
	if zone != "Bob's Glades" {
		t.Fatalf("expected \"Bob's Glades\", got %q", zone)
	}
}

func TestHowManyCollectsMatchesInZone(t *testing.T) {
	graph := buildZoneGraph()
	seeds := []string{
		"4|11|6|23|1000\n" +
			"4|20|6|45|500\n",
	}

	locations, err := howMany(`6\|23.*`, "Glades", 0, seeds, graph)
	if err != nil {
		t.Fatalf("howMany failed: %v", err)
	}
	if len(locations) != 1 || locations[0].Group != 4 || locations[0].Member != 11 {
		t.Fatalf("expected exactly the Glades location, got %+v", locations)
	}
}

func TestPostprocessSkipsFlagsAndSpawnLines(t *testing.T) {
	graph := buildZoneGraph()
	universe := settings.NewUniverseSettings("seed")
	seeds := []string{
		"Flags|Glitches\n" +
			"Spawn|MarshSpawn.Main\n" +
			"4|11|6|23|1000\n" +
			"7|1|$WHEREIS(6\\|23.*)\n",
	}

	out, err := Postprocess(seeds, graph, &universe)
	if err != nil {
		t.Fatalf("Postprocess failed: %v", err)
	}
	if !strings.Contains(out[0], "7|1|Glades") {
		t.Fatalf("expected substitution to resolve to Glades, got %q", out[0])
	}
	if !strings.Contains(out[0], "Flags|Glitches") || !strings.Contains(out[0], "Spawn|MarshSpawn.Main") {
		t.Fatalf("expected metadata lines to survive untouched, got %q", out[0])
	}
}

func TestPostprocessHowManyMessageFormat(t *testing.T) {
	graph := buildZoneGraph()
	universe := settings.NewUniverseSettings("seed")
	seeds := []string{
		"4|11|6|23|1000\n" +
			"4|20|6|45|500\n" +
			"7|1|$HOWMANY(Glades, 6\\|23.*)\n",
	}

	out, err := Postprocess(seeds, graph, &universe)
	if err != nil {
		t.Fatalf("Postprocess failed: %v", err)
	}
	if !strings.Contains(out[0], "$[15|4|4,11]") {
		t.Fatalf("expected system-message wire format, got %q", out[0])
	}
}
