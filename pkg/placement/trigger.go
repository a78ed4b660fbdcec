package placement

import (
	"github.com/dshills/wotwseedgen/pkg/command"
	"github.com/dshills/wotwseedgen/pkg/data"
	"github.com/dshills/wotwseedgen/pkg/inventory"
	"github.com/dshills/wotwseedgen/pkg/logic"
)

// nodeTrigger returns the Trigger that fires when node's placement is
// collected: a Binding trigger on its uberState, the way every placeable
// node in the original source resolves via node.trigger() (spec.md §4.2).
func nodeTrigger(node *logic.Node) command.Trigger {
	return command.BindingTrigger(*node.UberIdentifier)
}

// defaultMapIcon picks the spoiler map icon for an item when no snippet
// metadata overrides it, ported from placement.rs's map_icon match (spec.md
// §4.7.7).
func defaultMapIcon(item command.CommonItem) data.MapIcon {
	switch item.Kind {
	case command.ItemSpiritLight:
		return data.IconExperience
	case command.ItemResource:
		switch item.Resource {
		case inventory.HealthFragment:
			return data.IconHealthFragment
		case inventory.EnergyFragment:
			return data.IconEnergyFragment
		case inventory.GorlekOre:
			return data.IconGorlekOre
		case inventory.Keystone:
			return data.IconKeystone
		case inventory.ShardSlot:
			return data.IconShardSlot
		}
	case command.ItemSkill:
		return data.IconAbilityPedestal
	case command.ItemShard:
		return data.IconSpiritShard
	case command.ItemTeleporter:
		return data.IconTeleporter
	case command.ItemCleanWater:
		return data.IconCleanWater
	}
	return data.IconQuestItem
}

// defaultIcon picks the asset icon path shown in shops/pedestals when no
// snippet metadata overrides it, ported from placement.rs's default_icon
// match (spec.md §4.7.7). Weapon upgrades get no icon.
func defaultIcon(item command.CommonItem) (command.Icon, bool) {
	switch item.Kind {
	case command.ItemSpiritLight:
		return command.Icon{Path: "assets/icons/game/experience.png"}, true
	case command.ItemResource:
		return command.Icon{Path: "assets/icons/game/" + resourceFilename(item.Resource) + ".png"}, true
	case command.ItemShard:
		return command.Icon{Path: "assets/icons/game/shards/" + item.Shard.String() + ".png"}, true
	case command.ItemTeleporter:
		return command.Icon{Path: "assets/icons/game/teleporter.png"}, true
	case command.ItemCleanWater:
		return command.Icon{Path: "assets/icons/game/water.png"}, true
	case command.ItemSkill:
		return command.Icon{Path: "assets/icons/game/skills/" + item.Skill.String() + ".png"}, true
	}
	return command.Icon{}, false
}

func resourceFilename(r inventory.Resource) string {
	switch r {
	case inventory.HealthFragment:
		return "healthfragment"
	case inventory.EnergyFragment:
		return "energyfragment"
	case inventory.GorlekOre:
		return "gorlekore"
	case inventory.Keystone:
		return "keystone"
	case inventory.ShardSlot:
		return "shardslotupgrade"
	default:
		return "unknown"
	}
}
