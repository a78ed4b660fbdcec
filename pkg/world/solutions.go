package world

import (
	"github.com/dshills/wotwseedgen/pkg/inventory"
	"github.com/dshills/wotwseedgen/pkg/logic"
)

// maxCombinations bounds the cartesian product solutions() builds for an
// And node, to keep the candidate set tractable for deeply nested
// requirement trees (spec.md §9 calls this kind of source-level tradeoff
// out explicitly for the Command/Action trees; the same bound applies here).
const maxCombinations = 16

// Solutions enumerates inventory-delta candidates that would satisfy req,
// given the player's current inventory and the reached logic-state set
// (spec.md §4.3). Deltas are inventories to be added to the player's
// current inventory, not absolute inventories. totalSlots/worldSlots are
// accepted but not used: candidates are not filtered by any slot budget, and
// the placement caller only uses each candidate's ItemCount to lower its
// weight, never to reject it.
func (p Player) Solutions(req *logic.Requirement, logicStates map[int]bool, totalSlots, worldSlots int) []inventory.Inventory {
	if req == nil {
		return []inventory.Inventory{inventory.New()}
	}
	sols := p.solve(req, logicStates)
	return FilterRedundancies(sols)
}

func (p Player) solve(req *logic.Requirement, logicStates map[int]bool) []inventory.Inventory {
	switch req.Kind {
	case logic.ReqFree:
		return []inventory.Inventory{inventory.New()}
	case logic.ReqImpossible:
		return nil
	case logic.ReqSkill:
		if p.Inventory.Skills[req.Skill] {
			return []inventory.Inventory{inventory.New()}
		}
		delta := inventory.New()
		delta.Skills[req.Skill] = true
		return []inventory.Inventory{delta}
	case logic.ReqShard:
		if p.Inventory.Shards[req.Shard] {
			return []inventory.Inventory{inventory.New()}
		}
		delta := inventory.New()
		delta.Shards[req.Shard] = true
		return []inventory.Inventory{delta}
	case logic.ReqResource:
		deficit := req.Count - p.Inventory.Get(req.Resource)
		if deficit <= 0 {
			return []inventory.Inventory{inventory.New()}
		}
		delta := inventory.New()
		delta.Add(req.Resource, deficit)
		return []inventory.Inventory{delta}
	case logic.ReqDifficulty, logic.ReqLogicState:
		// Neither is solvable by acquiring an item; either already holds or
		// this branch is a dead end.
		ctx := logic.EvalContext{Settings: p.Settings, LogicStates: logicStates}
		if out := req.Evaluate(p.Inventory, []inventory.Orbs{p.MaxOrbs()}, ctx); len(out) > 0 {
			return []inventory.Inventory{inventory.New()}
		}
		return nil
	case logic.ReqDamage, logic.ReqEnergyCost, logic.ReqCombat:
		ctx := logic.EvalContext{Settings: p.Settings, LogicStates: logicStates}
		if out := req.Evaluate(p.Inventory, []inventory.Orbs{p.MaxOrbs()}, ctx); len(out) > 0 {
			return []inventory.Inventory{inventory.New()}
		}
		// Approximate a solution by proposing additional fragments; a
		// precise combinatorial weapon/shard search is outside this core's
		// reach given the combinatorial blow-up such a search invites.
		delta := inventory.New()
		if req.Kind == logic.ReqEnergyCost || req.Kind == logic.ReqCombat {
			delta.Add(inventory.EnergyFragment, 2)
		} else {
			delta.Add(inventory.HealthFragment, 2)
		}
		return []inventory.Inventory{delta}
	case logic.ReqAnd:
		combos := []inventory.Inventory{inventory.New()}
		for _, child := range req.Children {
			childSols := p.solve(child, logicStates)
			if len(childSols) == 0 {
				return nil
			}
			var next []inventory.Inventory
			for _, base := range combos {
				for _, add := range childSols {
					next = append(next, inventory.Sum(base, add))
					if len(next) >= maxCombinations {
						break
					}
				}
				if len(next) >= maxCombinations {
					break
				}
			}
			combos = next
		}
		return combos
	case logic.ReqOr:
		var out []inventory.Inventory
		for _, child := range req.Children {
			out = append(out, p.solve(child, logicStates)...)
		}
		return out
	default:
		return nil
	}
}

// FilterRedundancies removes any solution strictly dominated by another:
// if solution A contains (is a superset of) solution B, A is redundant
// because B already suffices and costs no more (spec.md §4.3, §9).
func FilterRedundancies(solutions []inventory.Inventory) []inventory.Inventory {
	var out []inventory.Inventory
	for i, a := range solutions {
		dominated := false
		for j, b := range solutions {
			if i == j {
				continue
			}
			if a.Contains(b) && !b.Contains(a) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, a)
		}
	}
	return out
}
