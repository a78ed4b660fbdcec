package main

import (
	"github.com/dshills/wotwseedgen/pkg/inventory"
	"github.com/dshills/wotwseedgen/pkg/logic"
	"github.com/dshills/wotwseedgen/pkg/uberstate"
)

// buildDemoGraph constructs a small, representative logic graph covering a
// spawn anchor, a handful of pickups gated by skill/resource/combat
// requirements, a keystone door, and a refill node. The real graph is
// produced by the separate logic-language compiler; this stands in for it so
// the binary has something to generate against without that dependency.
func buildDemoGraph() *logic.Graph {
	g := logic.NewGraph()

	spawn := g.AddNode(logic.Node{ID: "MarshSpawn.Main", Kind: logic.KindAnchor, Zone: "Marsh", CanSpawn: true})

	pool := g.AddNode(logic.Node{
		ID: "MarshSpawn.RegenTree", Kind: logic.KindPickup, CanPlace: true, Zone: "Marsh",
		UberIdentifier: &uberstate.Identifier{Group: 23, Member: 1},
	})
	mustLink(g.AddEdge(spawn, pool, logic.Free()))

	shop := g.AddNode(logic.Node{
		ID: "MarshSpawn.TwillenShop1", Kind: logic.KindPickup, CanPlace: true, Zone: "Marsh",
		UberIdentifier: &uberstate.Identifier{Group: 1, Member: 5},
	})
	mustLink(g.AddEdge(spawn, shop, logic.Free()))

	refill := g.AddNode(logic.Node{
		ID: "MarshSpawn.Refill", Kind: logic.KindRefill, Zone: "Marsh",
		Refill: &inventory.Refill{Kind: inventory.RefillFull},
	})
	mustLink(g.AddEdge(spawn, refill, logic.Free()))

	bashGated := g.AddNode(logic.Node{
		ID: "HowlsDen.UpperPickup", Kind: logic.KindPickup, CanPlace: true, Zone: "Marsh",
		UberIdentifier: &uberstate.Identifier{Group: 23, Member: 2},
	})
	mustLink(g.AddEdge(refill, bashGated, logic.SkillReq(inventory.Bash)))

	combatGated := g.AddNode(logic.Node{
		ID: "HowlsDen.CombatPickup", Kind: logic.KindPickup, CanPlace: true, Zone: "Marsh",
		UberIdentifier: &uberstate.Identifier{Group: 23, Member: 3},
	})
	mustLink(g.AddEdge(bashGated, combatGated, logic.CombatReq(20, false)))

	doorAnchor := g.AddNode(logic.Node{ID: "HowlsDen.KeystoneDoor", Kind: logic.KindAnchor, Zone: "Marsh"})
	mustLink(g.AddEdge(bashGated, doorAnchor, logic.ResourceReq(inventory.Keystone, 2)))

	beyondDoor := g.AddNode(logic.Node{
		ID: "HowlsDen.BeyondDoor", Kind: logic.KindPickup, CanPlace: true, Zone: "Marsh",
		UberIdentifier: &uberstate.Identifier{Group: 23, Member: 4},
	})
	mustLink(g.AddEdge(doorAnchor, beyondDoor, logic.Free()))

	doubleJumpGated := g.AddNode(logic.Node{
		ID: "GladesTown.UpperPickup", Kind: logic.KindPickup, CanPlace: true, Zone: "Glades",
		UberIdentifier: &uberstate.Identifier{Group: 23, Member: 5},
	})
	mustLink(g.AddEdge(spawn, doubleJumpGated, logic.Or(
		logic.SkillReq(inventory.DoubleJump),
		logic.SkillReq(inventory.Launch),
	)))

	return g
}

func mustLink(err error) {
	if err != nil {
		panic(err)
	}
}
