// Package command models the action/command/trigger/event tree a compiled
// snippet produces and the placement engine emits into: the wire-level
// boundary types shared with the game client's event simulator.
package command

import (
	"fmt"

	"github.com/dshills/wotwseedgen/pkg/inventory"
)

// CommonItemKind tags which concrete game item a CommonItem grants.
type CommonItemKind int

const (
	ItemSpiritLight CommonItemKind = iota
	ItemResource
	ItemSkill
	ItemShard
	ItemTeleporter
	ItemWeaponUpgrade
	ItemCleanWater
)

// CommonItem is the concrete item-grant payload carried by a Void command
// (the Rust SnippetLiteralTypes::CustomCommand associated type).
type CommonItem struct {
	Kind           CommonItemKind
	SpiritLight    int32
	Resource       inventory.Resource
	ResourceAmount int32
	Skill          inventory.Skill
	Shard          inventory.Shard
	Teleporter     inventory.Teleporter
	WeaponUpgrade  inventory.WeaponUpgrade
}

func SpiritLightItem(amount int32) CommonItem {
	return CommonItem{Kind: ItemSpiritLight, SpiritLight: amount}
}
func ResourceItem(r inventory.Resource, amount int32) CommonItem {
	return CommonItem{Kind: ItemResource, Resource: r, ResourceAmount: amount}
}
func SkillItem(s inventory.Skill) CommonItem { return CommonItem{Kind: ItemSkill, Skill: s} }
func ShardItem(s inventory.Shard) CommonItem { return CommonItem{Kind: ItemShard, Shard: s} }
func TeleporterItem(t inventory.Teleporter) CommonItem {
	return CommonItem{Kind: ItemTeleporter, Teleporter: t}
}
func WeaponUpgradeItem(w inventory.WeaponUpgrade) CommonItem {
	return CommonItem{Kind: ItemWeaponUpgrade, WeaponUpgrade: w}
}
func CleanWaterItem() CommonItem { return CommonItem{Kind: ItemCleanWater} }

// Cost is the pool-rejection/progression-weighting cost of this item.
func (c CommonItem) Cost() uint32 {
	switch c.Kind {
	case ItemSpiritLight:
		if c.SpiritLight < 0 {
			return 0
		}
		return uint32(c.SpiritLight)
	case ItemResource:
		return c.Resource.PoolCost() * uint32(max32(c.ResourceAmount, 0))
	case ItemSkill:
		return c.Skill.PoolCost()
	case ItemShard:
		return c.Shard.PoolCost()
	case ItemTeleporter:
		return c.Teleporter.PoolCost()
	case ItemWeaponUpgrade:
		return c.WeaponUpgrade.PoolCost()
	case ItemCleanWater:
		return 1800
	default:
		return 0
	}
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// Name is the canonical display string, used when no item metadata override
// was set.
func (c CommonItem) Name() string {
	switch c.Kind {
	case ItemSpiritLight:
		return fmt.Sprintf("%d Spirit Light", c.SpiritLight)
	case ItemResource:
		return fmt.Sprintf("%d %s", c.ResourceAmount, c.Resource)
	case ItemSkill:
		return c.Skill.String()
	case ItemShard:
		return c.Shard.String()
	case ItemTeleporter:
		return c.Teleporter.String()
	case ItemWeaponUpgrade:
		return c.WeaponUpgrade.String()
	case ItemCleanWater:
		return "Clean Water"
	default:
		return "Unknown Item"
	}
}

// Key returns a canonical, comparable string identifying this item for use
// as a map key (item_pool_changes, item_metadata) — the Go analogue of the
// Rust Action's derived Eq/Hash.
func (c CommonItem) Key() string {
	return fmt.Sprintf("%d:%d:%d:%d:%d:%d:%d:%d", c.Kind, c.SpiritLight, c.Resource, c.ResourceAmount, c.Skill, c.Shard, c.Teleporter, c.WeaponUpgrade)
}
