package validation

import (
	"fmt"

	"github.com/dshills/wotwseedgen/pkg/command"
	"github.com/dshills/wotwseedgen/pkg/inventory"
	"github.com/dshills/wotwseedgen/pkg/itempool"
	"github.com/dshills/wotwseedgen/pkg/logic"
	"github.com/dshills/wotwseedgen/pkg/placement"
	"github.com/dshills/wotwseedgen/pkg/settings"
	"github.com/dshills/wotwseedgen/pkg/uberstate"
	"github.com/dshills/wotwseedgen/pkg/world"
)

// Result is the outcome of one checked property.
type Result struct {
	Name      string
	Satisfied bool
	Details   string
}

// Report aggregates every check run against a generated seed (spec.md §8).
type Report struct {
	Results []Result
	Passed  bool
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
	if !res.Satisfied {
		r.Passed = false
	}
}

// Validate runs every check this package knows about against seed and
// returns the aggregate report. graph is shared by every world (spec.md §3,
// a single logic graph compiled once); universeSettings supplies the
// per-world difficulty/hard-mode settings needed to replay events.
func Validate(graph *logic.Graph, universeSettings *settings.UniverseSettings, seed *placement.Seed) *Report {
	report := &Report{Passed: true}

	finalWorlds := replay(graph, universeSettings, seed)

	report.add(checkSolvability(graph, finalWorlds))
	report.add(checkKeystoneSafety(graph, finalWorlds))
	report.add(checkNoShopSpiritLight(graph, seed))
	report.add(checkPoolConservation(seed))

	return report
}

// replay reconstructs one fresh World per world index (same spawn, same
// difficulty settings the generator used) and simulates every event in its
// finished CompilerOutput in order, mirroring a client loading the seed from
// scratch (spec.md §8 property 9, "simulating all events... leaves
// inventory and uberStates identical").
func replay(graph *logic.Graph, universeSettings *settings.UniverseSettings, seed *placement.Seed) []*world.World {
	worlds := make([]*world.World, len(seed.Worlds))
	for i, output := range seed.Worlds {
		var ws settings.WorldSettings
		if i < len(universeSettings.WorldSettings) {
			ws = universeSettings.WorldSettings[i]
		} else {
			ws = settings.DefaultWorldSettings()
		}
		spawn := 0
		if i < len(seed.Spawns) {
			spawn = seed.Spawns[i]
		}
		store := uberstate.NewStore(placement.DefaultStoreValues())
		w := world.NewSpawnWorld(graph, spawn, ws.ToInventorySettings(), store)
		for _, ev := range output.Events {
			if ev.Trigger.Kind == command.TriggerPseudo && ev.Trigger.Pseudo == command.PseudoSpawn {
				w.Simulate(ev.Action, output)
			}
		}
		for _, ev := range output.Events {
			if ev.Trigger.Kind == command.TriggerPseudo && ev.Trigger.Pseudo == command.PseudoReload {
				w.Simulate(ev.Action, output)
			}
		}
		for _, ev := range output.Events {
			if ev.Trigger.Kind == command.TriggerBinding {
				w.Simulate(ev.Action, output)
			}
		}
		worlds[i] = w
	}
	return worlds
}

// checkSolvability is spec.md §8 property 2: simulating the events on a
// fresh World starting at the chosen spawn must reach every CanPlace node.
func checkSolvability(graph *logic.Graph, worlds []*world.World) Result {
	var unreached []string
	for _, w := range worlds {
		reachedSet := map[int]bool{}
		for _, idx := range w.Reached() {
			reachedSet[idx] = true
		}
		for i, node := range graph.Nodes {
			if node.CanPlace && !reachedSet[i] {
				unreached = append(unreached, node.ID)
			}
		}
	}
	if len(unreached) > 0 {
		return Result{Name: "solvability", Satisfied: false,
			Details: fmt.Sprintf("%d placeable node(s) unreachable after replay: %v", len(unreached), unreached)}
	}
	return Result{Name: "solvability", Satisfied: true, Details: "every placeable node reached"}
}

// checkKeystoneSafety is spec.md §8 property 7: for every reached keystone
// door, the player's keystone count must be at least the door's
// requirement.
func checkKeystoneSafety(graph *logic.Graph, worlds []*world.World) Result {
	doors := placement.KeystoneDoors()
	var violations []string
	for _, w := range worlds {
		owned := w.Player.Inventory.Get(inventory.Keystone)
		for _, idx := range w.Reached() {
			node := graph.Node(idx)
			if required, ok := doors[node.ID]; ok && owned < required {
				violations = append(violations, fmt.Sprintf("%s needs %d keystones, player has %d", node.ID, required, owned))
			}
		}
	}
	if len(violations) > 0 {
		return Result{Name: "keystone-safety", Satisfied: false, Details: fmt.Sprintf("%v", violations)}
	}
	return Result{Name: "keystone-safety", Satisfied: true, Details: "every reached keystone door's requirement is met"}
}

// checkNoShopSpiritLight is spec.md §8 property 6: no shop-uberIdentifier
// node may be assigned a spirit-light action during random placement (it
// may still receive Gorlek Ore during fillRemaining's backfill pass).
func checkNoShopSpiritLight(graph *logic.Graph, seed *placement.Seed) Result {
	var violations []string
	for _, entry := range seed.Spoiler {
		if entry.Item.Kind != command.ItemSpiritLight {
			continue
		}
		idx := graph.IndexOf(entry.Location)
		if idx < 0 {
			continue
		}
		node := graph.Node(idx)
		if node.UberIdentifier != nil && node.UberIdentifier.IsShop() {
			violations = append(violations, entry.Location)
		}
	}
	if len(violations) > 0 {
		return Result{Name: "no-shop-spirit-light", Satisfied: false,
			Details: fmt.Sprintf("spirit light placed in shop slot(s): %v", violations)}
	}
	return Result{Name: "no-shop-spirit-light", Satisfied: true, Details: "no shop slot received spirit light"}
}

// checkPoolConservation is a best-effort check of spec.md §8 property 3.
// It reconstructs each world's starting pool (default pool plus the
// snippet's item_pool_changes) and verifies that every non-resource item
// (skills, shards, teleporters, weapon upgrades, clean water) granted by the
// seed's events was actually drawn from that pool — i.e. nothing was
// invented or duplicated beyond what the pool could supply.
//
// Keystones are excluded from this check: forceKeystones places Keystone
// actions that originate outside the pool by design (spec.md §4.7.2), so a
// literal multiset comparison for that one resource would always appear to
// over-grant. Spirit light and Gorlek Ore are excluded for the same reason
// the spec's own invariant does: both are also emitted by fillRemaining's
// default-fill backfill, not only drawn from the pool.
func checkPoolConservation(seed *placement.Seed) Result {
	var violations []string
	for i, output := range seed.Worlds {
		expected := itempool.Default()
		for key, delta := range output.ItemPoolChanges {
			if item, ok := output.ItemPoolItems[key]; ok {
				expected.Change(item, delta)
			}
		}
		expectedCounts := expected.Counts()

		granted := map[string]int32{}
		for _, ev := range output.Events {
			countGrants(ev.Action, granted)
		}

		for key, count := range granted {
			entry, ok := expectedCounts[key]
			if !ok {
				continue // not in this pool-conservation scope (e.g. keystone/spirit light/gorlek ore, see above)
			}
			if count > entry.Count {
				violations = append(violations, fmt.Sprintf("world %d: %s granted %d times, pool only had %d", i, entry.Item.Name(), count, entry.Count))
			}
		}
	}
	if len(violations) > 0 {
		return Result{Name: "pool-conservation", Satisfied: false, Details: fmt.Sprintf("%v", violations)}
	}
	return Result{Name: "pool-conservation", Satisfied: true, Details: "no item granted more often than the pool could supply"}
}

func countGrants(a command.Action, into map[string]int32) {
	switch a.Kind {
	case command.ActionMultiKind:
		for _, child := range a.Multi {
			countGrants(child, into)
		}
	case command.ActionConditionalKind:
		if a.Then != nil {
			countGrants(*a.Then, into)
		}
	case command.ActionCommandKind:
		if a.Command == nil || a.Command.Kind != command.VoidGrantItem {
			return
		}
		item := a.Command.Item
		switch item.Kind {
		case command.ItemResource, command.ItemSpiritLight:
			return // excluded from conservation scope, see checkPoolConservation
		}
		into[item.Key()]++
	}
}
