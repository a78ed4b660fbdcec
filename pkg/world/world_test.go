package world

import (
	"testing"

	"github.com/dshills/wotwseedgen/pkg/command"
	"github.com/dshills/wotwseedgen/pkg/inventory"
	"github.com/dshills/wotwseedgen/pkg/logic"
	"github.com/dshills/wotwseedgen/pkg/uberstate"
)

func buildLineGraph() *logic.Graph {
	g := logic.NewGraph()
	spawn := g.AddNode(logic.Node{ID: "spawn", Kind: logic.KindAnchor, CanSpawn: true})
	gated := g.AddNode(logic.Node{ID: "gated_pickup", Kind: logic.KindPickup, CanPlace: true,
		UberIdentifier: &uberstate.Identifier{Group: 1, Member: 100}})
	g.AddEdge(spawn, gated, logic.SkillReq(inventory.Bash))
	return g
}

func TestReachedRequiresSkill(t *testing.T) {
	g := buildLineGraph()
	store := uberstate.NewStore(nil)
	w := New(g, g.IndexOf("spawn"), inventory.Settings{Difficulty: inventory.Moki}, store)

	reached := w.Reached()
	if contains(reached, g.IndexOf("gated_pickup")) {
		t.Fatalf("gated pickup should not be reachable without Bash")
	}

	w.Player.Inventory.Skills[inventory.Bash] = true
	reached = w.Reached()
	if !contains(reached, g.IndexOf("gated_pickup")) {
		t.Fatalf("gated pickup should be reachable with Bash")
	}
}

func TestSimulateGrantItemWritesStoreAndTrigger(t *testing.T) {
	g := logic.NewGraph()
	spawn := g.AddNode(logic.Node{ID: "spawn", Kind: logic.KindAnchor, CanSpawn: true})
	store := uberstate.NewStore(nil)
	w := New(g, spawn, inventory.Settings{}, store)

	output := command.NewCompilerOutput()
	bashID := inventory.Bash.UberIdentifier()
	fired := false
	target := command.StoreBoolean(uberstate.Identifier{Group: 99, Member: 1}, command.ConstantBoolean(true), false)
	_ = target

	idx := w.RegisterTrigger(command.BindingTrigger(bashID))
	output.AppendEvent(command.Event{
		Trigger: command.BindingTrigger(bashID),
		Action: command.CommandAction(command.StoreBoolean(uberstate.Identifier{Group: 42, Member: 7}, command.ConstantBoolean(true), false)),
	})
	_ = idx

	action := command.CommandAction(command.GrantItem(command.SkillItem(inventory.Bash)))
	w.Simulate(action, output)

	if !w.Player.Inventory.Skills[inventory.Bash] {
		t.Fatalf("expected Bash to be granted")
	}
	v := w.UberStates.Get(bashID)
	if v.Kind != uberstate.Boolean || !v.Boolean {
		t.Fatalf("expected bash uberstate true, got %v", v)
	}
	sideEffect := w.UberStates.Get(uberstate.Identifier{Group: 42, Member: 7})
	if sideEffect.Kind != uberstate.Boolean || !sideEffect.Boolean {
		t.Fatalf("expected triggered event to fire, fired=%v", fired)
	}
}

func TestPreventUberStateChangeBlocksRegression(t *testing.T) {
	store := uberstate.NewStore(map[uberstate.Identifier]uberstate.Value{
		uberstate.WellspringQuest: uberstate.IntValue(3),
	})
	g := logic.NewGraph()
	spawn := g.AddNode(logic.Node{ID: "spawn", Kind: logic.KindAnchor, CanSpawn: true})
	w := New(g, spawn, inventory.Settings{}, store)
	output := command.NewCompilerOutput()

	w.store(uberstate.WellspringQuest, uberstate.IntValue(1), false, output)
	if got := w.UberStates.Get(uberstate.WellspringQuest).Integer; got != 3 {
		t.Fatalf("expected regression to be blocked, quest state is now %d", got)
	}
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
