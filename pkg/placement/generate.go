// Package placement is the seed generator's core orchestrator: it turns a
// logic graph plus one compiled output per world into a fully placed,
// reachability-verified seed (spec.md §4.7), ported from
// original_source/wotw_seedgen/src/generator/{mod,placement}.rs.
package placement

import (
	"fmt"
	"log"

	"github.com/dshills/wotwseedgen/pkg/command"
	"github.com/dshills/wotwseedgen/pkg/inventory"
	"github.com/dshills/wotwseedgen/pkg/logic"
	"github.com/dshills/wotwseedgen/pkg/rng"
	"github.com/dshills/wotwseedgen/pkg/settings"
	"github.com/dshills/wotwseedgen/pkg/uberstate"
	"github.com/dshills/wotwseedgen/pkg/world"
)

// Seed is the placed result of generation: one populated CompilerOutput per
// world, ready for the export packager, plus the spoiler log recording how
// each placement was made (spec.md §6).
type Seed struct {
	Worlds  []*command.CompilerOutput
	Spoiler []SpoilerEntry
	// Spawns is the chosen spawn node index per world, needed by
	// pkg/validation to replay the seed's events from the same starting
	// point the generator used (spec.md §8 property 2, solvability).
	Spawns []int
}

// Generate runs the full placement algorithm for universeSettings against
// graph, retrying up to retries times on an unsatisfiable attempt before
// giving up (spec.md §4.7, "generate_seed").
func Generate(graph *logic.Graph, universeSettings *settings.UniverseSettings, outputs []*command.CompilerOutput) (*Seed, error) {
	if len(outputs) != universeSettings.WorldCount() {
		return nil, fmt.Errorf("placement: got %d compiler outputs for %d worlds", len(outputs), universeSettings.WorldCount())
	}

	seedRNG := rng.NewFromSeedString(universeSettings.Seed)

	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		inputs := make([]worldInput, len(outputs))
		for i, ws := range universeSettings.WorldSettings {
			spawn, err := chooseSpawn(graph, ws, seedRNG.Child(fmt.Sprintf("spawn-%d-%d", attempt, i)))
			if err != nil {
				return nil, err
			}
			store := uberstate.NewStore(DefaultStoreValues())
			w := world.NewSpawnWorld(graph, spawn, ws.ToInventorySettings(), store)
			inputs[i] = worldInput{World: w, Output: outputs[i]}
		}

		seed, err := generatePlacements(seedRNG.Child(fmt.Sprintf("attempt-%d", attempt)), inputs)
		if err == nil {
			if attempt > 1 {
				log.Printf("placement: generated seed after %d attempts", attempt)
			}
			return seed, nil
		}
		lastErr = err
		log.Printf("placement: attempt %d failed: %v", attempt, err)
	}

	return nil, fmt.Errorf("placement: all %d attempts failed: %w", retries, lastErr)
}

// generatePlacements runs one full placement attempt to completion: forced
// preplacements, then the reached/keystones/random/forced loop until every
// world has placed every reachable location, then a final pool drain and
// fill pass (spec.md §4.7).
func generatePlacements(r *rng.RNG, inputs []worldInput) (*Seed, error) {
	ctx := newContext(r, inputs)
	ctx.preplacements()

	for {
		ctx.updateReached()
		if ctx.everythingReached() {
			ctx.placeRemaining()
			break
		}
		ctx.forceKeystones()
		if !ctx.placeRandom() {
			targetWorldIndex, progression, err := ctx.chooseProgression()
			if err != nil {
				return nil, err
			}
			ctx.placeForced(targetWorldIndex, progression)
		}
	}

	seed := &Seed{Spoiler: ctx.spoiler}
	for _, w := range ctx.worlds {
		seed.Worlds = append(seed.Worlds, w.output)
		seed.Spawns = append(seed.Spawns, w.world.Spawn)
	}
	return seed, nil
}

// chooseSpawn resolves a world's Spawn setting to a concrete graph node
// index (spec.md §4.7, "choose_spawn").
func chooseSpawn(graph *logic.Graph, ws settings.WorldSettings, r *rng.RNG) (int, error) {
	switch ws.Spawn.Kind {
	case settings.SpawnSet:
		idx := graph.IndexOf(ws.Spawn.Location)
		if idx < 0 {
			return 0, fmt.Errorf("placement: spawn location %q not found", ws.Spawn.Location)
		}
		if !graph.Node(idx).CanSpawn {
			return 0, fmt.Errorf("placement: %q is not a valid spawn", ws.Spawn.Location)
		}
		return idx, nil
	case settings.SpawnRandom, settings.SpawnFullyRandom:
		candidates := graph.SpawnCandidates()
		if len(candidates) == 0 {
			return 0, errNoSpawnLocation
		}
		return candidates[r.Intn(len(candidates))], nil
	default:
		return 0, errNoSpawnLocation
	}
}

// DefaultStoreValues seeds every uberState identifier the placement core
// itself writes to (resources, skills, shards, teleporters, weapon
// upgrades, clean water, spirit light) with its zero value, so ordinary
// item grants never hit the store's unknown-identifier fallback warning.
// Everything else (pickup/shop location identifiers from the graph) is left
// to that fallback by design (spec.md §4.2, DESIGN.md Open Question
// decision #2). Exported so pkg/validation can replay a seed against a
// freshly constructed World built the same way generatePlacements built it.
func DefaultStoreValues() map[uberstate.Identifier]uberstate.Value {
	defaults := map[uberstate.Identifier]uberstate.Value{
		uberstate.SpiritLight: uberstate.IntValue(0),
		uberstate.CleanWater:  uberstate.BoolValue(false),
	}
	for r := inventory.HealthFragment; r <= inventory.ShardSlot; r++ {
		defaults[r.UberIdentifier()] = uberstate.IntValue(0)
	}
	for s := inventory.Bash; s <= inventory.AncestralLight2; s++ {
		defaults[s.UberIdentifier()] = uberstate.BoolValue(false)
	}
	for s := inventory.Wingclip; s <= inventory.Energy; s++ {
		defaults[s.UberIdentifier()] = uberstate.BoolValue(false)
	}
	for t := inventory.MarshTeleporter; t <= inventory.InkwaterTeleporter; t++ {
		defaults[t.UberIdentifier()] = uberstate.BoolValue(false)
	}
	for w := inventory.ExplodingSpear; w <= inventory.RapidSentry; w++ {
		defaults[w.UberIdentifier()] = uberstate.BoolValue(false)
	}
	return defaults
}
