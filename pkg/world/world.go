package world

import (
	"log"

	"github.com/dshills/wotwseedgen/pkg/command"
	"github.com/dshills/wotwseedgen/pkg/inventory"
	"github.com/dshills/wotwseedgen/pkg/logic"
	"github.com/dshills/wotwseedgen/pkg/uberstate"
)

// variables are the small per-tick scratchpads a compiled snippet's Command
// tree reads/writes via SetBoolean/Integer/Float/StringVar (spec.md §4.5).
type variables struct {
	booleans map[int]bool
	integers map[int]int32
	floats   map[int]float64
	strings  map[int]string
}

func newVariables() *variables {
	return &variables{
		booleans: make(map[int]bool),
		integers: make(map[int]int32),
		floats:   make(map[int]float64),
		strings:  make(map[int]string),
	}
}

// World owns a Player, an UberStates store, a logic_states set, and
// per-snippet variable scratchpads; its graph and spawn anchor are fixed at
// construction (spec.md §3, §4.5).
type World struct {
	Graph  *logic.Graph
	Spawn  int
	Player Player

	UberStates  *uberstate.Store
	LogicStates map[int]bool

	vars *variables
}

// New creates a world with an empty starting inventory.
func New(graph *logic.Graph, spawn int, settings inventory.Settings, store *uberstate.Store) *World {
	return &World{
		Graph:       graph,
		Spawn:       spawn,
		Player:      NewPlayer(settings),
		UberStates:  store,
		LogicStates: make(map[int]bool),
		vars:        newVariables(),
	}
}

// NewSpawnWorld creates a world whose player starts with the vanilla spawn
// inventory.
func NewSpawnWorld(graph *logic.Graph, spawn int, settings inventory.Settings, store *uberstate.Store) *World {
	w := New(graph, spawn, settings, store)
	w.Player = NewSpawnPlayer(settings)
	return w
}

// RegisterTrigger walks t's condition (if any) collecting referenced
// uberIdentifiers and binds a fresh trigger index to each of them (Binding
// triggers bind directly to their identifier; Pseudo triggers bind nothing)
// (spec.md §4.2, §9).
func (w *World) RegisterTrigger(t command.Trigger) int {
	idx := w.UberStates.NewTriggerIndex()
	switch t.Kind {
	case command.TriggerBinding:
		w.UberStates.BindTrigger(t.UberIdentifier, idx)
	case command.TriggerCondition:
		for _, id := range command.ContainedUberIdentifiers(t.Condition) {
			w.UberStates.BindTrigger(id, idx)
		}
	}
	return idx
}

// --- simulate dispatch (spec.md §4.5) ---

// Simulate walks the action tree: a Multi executes its children in order; a
// Conditional evaluates its boolean guard and on true executes its nested
// action; a Command evaluates (Void commands mutate world state).
func (w *World) Simulate(a command.Action, output *command.CompilerOutput) {
	switch a.Kind {
	case command.ActionMultiKind:
		for _, child := range a.Multi {
			w.Simulate(child, output)
		}
	case command.ActionConditionalKind:
		if w.EvalBoolean(a.Condition, output) {
			w.Simulate(*a.Then, output)
		}
	case command.ActionCommandKind:
		w.ExecuteVoid(a.Command, output)
	}
}

// ExecuteVoid runs a CommandVoid against world state.
func (w *World) ExecuteVoid(c *command.CommandVoid, output *command.CompilerOutput) {
	if c == nil {
		return
	}
	switch c.Kind {
	case command.VoidStoreBoolean:
		w.store(c.UberIdentifier, uberstate.BoolValue(w.EvalBoolean(c.BoolValue, output)), c.CheckTriggers, output)
	case command.VoidStoreInteger:
		w.store(c.UberIdentifier, uberstate.IntValue(w.EvalInteger(c.IntValue, output)), c.CheckTriggers, output)
	case command.VoidStoreFloat:
		w.store(c.UberIdentifier, uberstate.FloatValue(w.EvalFloat(c.FloatValue, output)), c.CheckTriggers, output)
	case command.VoidSetBooleanVar:
		w.vars.booleans[c.VariableID] = w.EvalBoolean(c.BoolValue, output)
	case command.VoidSetIntegerVar:
		w.vars.integers[c.VariableID] = w.EvalInteger(c.IntValue, output)
	case command.VoidSetFloatVar:
		w.vars.floats[c.VariableID] = w.EvalFloat(c.FloatValue, output)
	case command.VoidSetStringVar:
		w.vars.strings[c.VariableID] = w.EvalString(c.StringValue, output)
	case command.VoidItemMessage, command.VoidSetSpoilerMapIcon,
		command.VoidSetShopItemPrice, command.VoidSetShopItemName,
		command.VoidSetShopItemDescription, command.VoidSetShopItemIcon:
		// Presentation-only commands: no world-state side effect to simulate,
		// they are interpreted client-side. They still live in the event
		// list the packager serializes (spec.md §3 CompilerOutput rationale).
	case command.VoidGrantItem:
		w.grantItem(c.Item, output)
	case command.VoidLookup:
		if c.LookupIndex >= 0 && c.LookupIndex < len(output.ActionLookup) {
			w.Simulate(output.ActionLookup[c.LookupIndex], output)
		}
	case command.VoidMulti:
		for _, child := range c.Multi {
			w.ExecuteVoid(child, output)
		}
	}
}

// store is the only path that changes uberState values (spec.md §4.5):
// 1. prevent_uber_state_change guard.
// 2. store.Set, collecting triggered event indices.
// 3. uber_state_side_effects propagation.
// 4. if checkTriggers, dispatch every triggered event whose trigger now
//    evaluates true.
func (w *World) store(id uberstate.Identifier, value uberstate.Value, checkTriggers bool, output *command.CompilerOutput) {
	if !preventUberStateChange(w.UberStates, id, value) {
		return
	}
	triggered := w.UberStates.Set(id, value)
	applyUberStateSideEffects(w.UberStates, id, value)

	if !checkTriggers || len(triggered) == 0 {
		return
	}
	for _, idx := range triggered {
		if idx < 0 || idx >= len(output.Events) {
			continue
		}
		ev := output.Events[idx]
		switch ev.Trigger.Kind {
		case command.TriggerBinding:
			w.Simulate(ev.Action, output)
		case command.TriggerCondition:
			if w.EvalBoolean(ev.Trigger.Condition, output) {
				w.Simulate(ev.Action, output)
			}
		}
	}
}

// grantItem mutates the player's inventory and writes through to the
// uberState store for the item's backing identifier, exactly as the
// World.set_skill/set_resource family of convenience methods do
// (original_source/wotw_seedgen/src/world/mod.rs).
func (w *World) grantItem(item command.CommonItem, output *command.CompilerOutput) {
	switch item.Kind {
	case command.ItemSpiritLight:
		w.Player.Inventory.AddSpiritLight(item.SpiritLight)
		w.store(uberstate.SpiritLight, uberstate.IntValue(w.Player.Inventory.SpiritLight), true, output)
	case command.ItemResource:
		w.Player.Inventory.Add(item.Resource, item.ResourceAmount)
		w.store(item.Resource.UberIdentifier(), uberstate.IntValue(w.Player.Inventory.Get(item.Resource)), true, output)
	case command.ItemSkill:
		w.Player.Inventory.Skills[item.Skill] = true
		w.store(item.Skill.UberIdentifier(), uberstate.BoolValue(true), true, output)
	case command.ItemShard:
		w.Player.Inventory.Shards[item.Shard] = true
		w.store(item.Shard.UberIdentifier(), uberstate.BoolValue(true), true, output)
	case command.ItemTeleporter:
		w.Player.Inventory.Teleporters[item.Teleporter] = true
		w.store(item.Teleporter.UberIdentifier(), uberstate.BoolValue(true), true, output)
	case command.ItemWeaponUpgrade:
		w.Player.Inventory.WeaponUpgrades[item.WeaponUpgrade] = true
		w.store(item.WeaponUpgrade.UberIdentifier(), uberstate.BoolValue(true), true, output)
	case command.ItemCleanWater:
		w.Player.Inventory.CleanWater = true
		w.store(uberstate.CleanWater, uberstate.BoolValue(true), true, output)
	default:
		log.Printf("world: unknown item kind %d granted, ignoring", item.Kind)
	}
}
