// Package itempool models the multiset of actions a seed draws placements
// from: a default composition of resources/skills/shards/teleporters/
// weapon-upgrades/clean-water, plus whatever a snippet's item_pool_changes
// add or remove (spec.md §3, §4.6).
//
// Grounded on original_source/wotw_seedgen/src/generator/item_pool.rs,
// using pkg/rng for the randomized operations the way the teacher's
// pkg/graph/constraint.go idiom keeps randomized choices behind a narrow,
// testable API.
package itempool

import (
	"github.com/dshills/wotwseedgen/pkg/command"
	"github.com/dshills/wotwseedgen/pkg/inventory"
	"github.com/dshills/wotwseedgen/pkg/rng"
)

// rerollCostThreshold is the cost above which choose_random applies
// rejection sampling (spec.md §4.6): "if the chosen action's cost exceeds
// 10 000, re-rolls with rejection probability 1 − 10 000/cost".
const rerollCostThreshold = 10000

// ItemPool is a multiset of item indices backed by a deduplicated lookup
// table, plus an aggregated Inventory mirror used for containment tests
// (spec.md §3).
type ItemPool struct {
	items      []int
	lookup     []command.CommonItem
	indexOf    map[string]int
	Aggregated inventory.Inventory
}

// New returns an empty item pool.
func New() *ItemPool {
	return &ItemPool{indexOf: make(map[string]int), Aggregated: inventory.New()}
}

// Default returns the default item pool: fixed resource counts, every
// skill/shard/weapon-upgrade once, clean water once, and no spirit light or
// teleporters (spec.md §4.6).
func Default() *ItemPool {
	p := New()

	for _, r := range []inventory.Resource{inventory.HealthFragment, inventory.EnergyFragment, inventory.GorlekOre, inventory.Keystone, inventory.ShardSlot} {
		p.Change(command.ResourceItem(r, 1), int32(r.DefaultPoolCount()))
	}
	for s := inventory.Bash; s <= inventory.AncestralLight2; s++ {
		p.Change(command.SkillItem(s), 1)
	}
	for s := inventory.Wingclip; s <= inventory.Energy; s++ {
		p.Change(command.ShardItem(s), 1)
	}
	for w := inventory.ExplodingSpear; w <= inventory.RapidSentry; w++ {
		p.Change(command.WeaponUpgradeItem(w), 1)
	}
	p.Change(command.CleanWaterItem(), 1)

	return p
}

// Change applies delta to action's count in the pool: positive appends
// indices (introducing a new lookup entry if unseen), negative removes up
// to |delta| matching indices (spec.md §4.6).
func (p *ItemPool) Change(item command.CommonItem, delta int32) {
	key := item.Key()
	idx, ok := p.indexOf[key]
	if !ok {
		idx = len(p.lookup)
		p.lookup = append(p.lookup, item)
		p.indexOf[key] = idx
	}

	if delta > 0 {
		for i := int32(0); i < delta; i++ {
			p.items = append(p.items, idx)
		}
		p.aggregate(item, delta)
		return
	}

	remaining := -delta
	kept := p.items[:0]
	for _, existing := range p.items {
		if existing == idx && remaining > 0 {
			remaining--
			continue
		}
		kept = append(kept, existing)
	}
	p.items = kept
	p.aggregate(item, delta+remaining) // only the actually-removed count
}

func (p *ItemPool) aggregate(item command.CommonItem, delta int32) {
	// A set-valued item stays owned while any copy of it is left in the pool.
	present := delta > 0
	if idx, ok := p.indexOf[item.Key()]; ok && !present {
		for _, existing := range p.items {
			if existing == idx {
				present = true
				break
			}
		}
	}
	switch item.Kind {
	case command.ItemSpiritLight:
		p.Aggregated.AddSpiritLight(item.SpiritLight * delta)
	case command.ItemResource:
		p.Aggregated.Add(item.Resource, item.ResourceAmount*delta)
	case command.ItemSkill:
		p.Aggregated.Skills[item.Skill] = present
	case command.ItemShard:
		p.Aggregated.Shards[item.Shard] = present
	case command.ItemTeleporter:
		p.Aggregated.Teleporters[item.Teleporter] = present
	case command.ItemWeaponUpgrade:
		p.Aggregated.WeaponUpgrades[item.WeaponUpgrade] = present
	case command.ItemCleanWater:
		p.Aggregated.CleanWater = present
	}
}

// Len returns the number of items remaining in the pool.
func (p *ItemPool) Len() int { return len(p.items) }

// IsEmpty reports whether the pool has no items left.
func (p *ItemPool) IsEmpty() bool { return len(p.items) == 0 }

// Contains reports whether item is present in the pool's aggregated
// inventory (used by choose_progression to filter candidates, spec.md
// §4.7.5).
func (p *ItemPool) Contains(delta inventory.Inventory) bool {
	return p.Aggregated.Contains(delta)
}

// ChooseRandom picks a uniformly random index and removes it. If the chosen
// item's cost exceeds rerollCostThreshold, it re-rolls with rejection
// probability 1 − threshold/cost (spec.md §4.6): high-cost items (Launch,
// teleporters) are placed less eagerly.
func (p *ItemPool) ChooseRandom(r *rng.RNG) (command.CommonItem, bool) {
	for {
		if len(p.items) == 0 {
			return command.CommonItem{}, false
		}
		pos := r.Intn(len(p.items))
		idx := p.items[pos]
		item := p.lookup[idx]
		cost := item.Cost()

		if cost > rerollCostThreshold {
			rejectProb := 1 - float64(rerollCostThreshold)/float64(cost)
			if r.Float64() < rejectProb {
				continue
			}
		}

		p.items = append(p.items[:pos], p.items[pos+1:]...)
		p.aggregate(item, -1)
		return item, true
	}
}

// Counts returns the current contents of the pool as a multiset keyed by
// each item's CommonItem.Key(), alongside the item itself. Used by
// pkg/validation's pool-conservation check (spec.md §8 property 3), which
// needs to compare an expected pool snapshot against what was actually
// granted.
func (p *ItemPool) Counts() map[string]struct {
	Item  command.CommonItem
	Count int32
} {
	counts := make(map[string]struct {
		Item  command.CommonItem
		Count int32
	})
	for _, idx := range p.items {
		item := p.lookup[idx]
		key := item.Key()
		entry := counts[key]
		entry.Item = item
		entry.Count++
		counts[key] = entry
	}
	return counts
}

// Drain shuffles the remaining indices and returns them in that order,
// removing them all from the pool (spec.md §4.6).
func (p *ItemPool) Drain(r *rng.RNG) []command.CommonItem {
	r.Shuffle(len(p.items), func(i, j int) { p.items[i], p.items[j] = p.items[j], p.items[i] })
	items := p.items
	p.items = nil
	out := make([]command.CommonItem, len(items))
	for i, idx := range items {
		item := p.lookup[idx]
		out[i] = item
		p.aggregate(item, -1)
	}
	return out
}
