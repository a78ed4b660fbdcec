package placement

import (
	"fmt"

	"github.com/dshills/wotwseedgen/pkg/command"
	"github.com/dshills/wotwseedgen/pkg/inventory"
	"github.com/dshills/wotwseedgen/pkg/logic"
	"github.com/dshills/wotwseedgen/pkg/rng"
	"github.com/dshills/wotwseedgen/pkg/uberstate"
	"github.com/dshills/wotwseedgen/pkg/world"
)

// Context drives placement across every world of a multiworld generation
// attempt: it owns the cross-world decisions (which world an item lands in,
// cross-world naming, the group-12 handshake uberStates) while delegating
// single-world bookkeeping to worldContext (spec.md §4.7, ported from
// original_source/wotw_seedgen/src/generator/placement.rs's Context).
type Context struct {
	rng    *rng.RNG
	worlds []*worldContext

	multiworldStateNext int32
	spoiler             []SpoilerEntry
}

// SpoilerEntry records one placement for the spoiler object spec.md §6
// requires the core to produce: origin world, target world, pickup
// location, zone, and the action granted there.
type SpoilerEntry struct {
	OriginWorld int
	TargetWorld int
	Location    string
	Zone        string
	Item        command.CommonItem
}

// newContext builds a Context from one (World, CompilerOutput) pair per
// world, each seeded with its own child RNG stream derived from r.
func newContext(r *rng.RNG, worldsAndOutputs []worldInput) *Context {
	ctx := &Context{rng: r.Child("placement")}
	for i, wo := range worldsAndOutputs {
		ctx.worlds = append(ctx.worlds, newWorldContext(i, r.Child(fmt.Sprintf("world-%d", i)), wo.World, wo.Output))
	}
	return ctx
}

// worldInput pairs a simulation-ready World with the compiled output it
// should place items against (spec.md §3 CompilerOutput, §4.7).
type worldInput struct {
	World  *world.World
	Output *command.CompilerOutput
}

func (c *Context) preplacements() {
	for _, w := range c.worlds {
		w.preplacements(w.output.Preplacements)
	}
}

func (c *Context) updateReached() {
	for _, w := range c.worlds {
		w.updateReached()
	}
}

func (c *Context) everythingReached() bool {
	for _, w := range c.worlds {
		if len(w.reachedNeedsPlacement) != len(w.needsPlacement) {
			return false
		}
	}
	return true
}

// forceKeystones guarantees a world never strands itself behind keystone
// doors: once a world owns at least two keystones, the requirements of every
// reached keystone door are summed, and any shortfall against the owned count
// is placed immediately as forced keystone items (spec.md §4.7.2). Nothing is
// forced while a world owns fewer than two keystones.
func (c *Context) forceKeystones() {
	for worldIndex, w := range c.worlds {
		owned := w.world.Player.Inventory.Get(inventory.Keystone)
		if owned < 2 {
			continue
		}

		var required int32
		for _, nodeIndex := range w.reached {
			node := w.world.Graph.Node(nodeIndex)
			if amount, ok := keystoneDoors[node.ID]; ok {
				required += amount
			}
		}
		if required <= owned {
			continue
		}

		for i := owned; i < required; i++ {
			c.placeAction(command.CommandAction(command.GrantItem(command.ResourceItem(inventory.Keystone, 1))), worldIndex)
		}
	}
}

// placeRemaining drains every world's item pool into forced placements, then
// fills whatever locations are still unplaced with spirit light, or gorlek
// ore for shop slots (spec.md
// §4.7.8; DESIGN.md Open Question decision #3: the trailing todo! becomes a
// plain return once this completes, not an error).
func (c *Context) placeRemaining() {
	for targetWorldIndex, w := range c.worlds {
		for _, item := range w.itemPool.Drain(c.rng) {
			c.placeAction(command.CommandAction(command.GrantItem(item)), targetWorldIndex)
		}
	}
	for _, w := range c.worlds {
		// Drop the locations the drain just placed so only unplaced ones are filled.
		w.updateReached()
		w.fillRemaining()
	}
}

// placeRandom places every newly reached location with either a batch of
// spirit light or a random pool draw from some world, weighted by how
// depleted the origin world's pool already is (spec.md §4.7.4). It reports
// whether anything was placed.
func (c *Context) placeRandom() bool {
	anyPlaced := false
	for originWorldIndex, origin := range c.worlds {
		reachedNeedsPlacement := origin.reachedNeedsPlacement
		origin.reachedNeedsPlacement = nil

		for _, needsIndex := range reachedNeedsPlacement {
			anyPlaced = true
			slotsRemaining := origin.slotsRemaining()

			placeSpiritLight := false
			if slotsRemaining > 0 {
				p := 1.0 - float64(origin.itemPool.Len())/float64(slotsRemaining)
				if p < 0 {
					p = 0
				}
				placeSpiritLight = c.rng.Float64() < p
			}

			var targetWorldIndex int
			var action command.Action
			if placeSpiritLight {
				targetWorldIndex = originWorldIndex
				batch := origin.spiritLightProvider.Take(slotsRemaining)
				action = command.CommandAction(command.GrantItem(command.SpiritLightItem(batch)))
			} else {
				targetWorldIndex = c.chooseTargetWorld(originWorldIndex)
				item, ok := c.worlds[targetWorldIndex].itemPool.ChooseRandom(c.rng)
				if !ok {
					continue
				}
				action = command.CommandAction(command.GrantItem(item))
			}

			nodeIndex := origin.needsPlacement[needsIndex]
			node := origin.world.Graph.Node(nodeIndex)
			name := c.name(action, originWorldIndex, targetWorldIndex)
			c.placeActionAt(action, name, node, originWorldIndex, targetWorldIndex)
		}
		origin.receivedPlacement = append(origin.receivedPlacement, reachedNeedsPlacement...)
	}
	return anyPlaced
}

// chooseProgression asks every world (smallest remaining slot budget first)
// for a viable progression candidate, returning the first one found (spec.md
// §4.7.5).
func (c *Context) chooseProgression() (int, inventory.Inventory, error) {
	slots := 0
	for _, w := range c.worlds {
		slots += len(w.reachedNeedsPlacement)
	}

	worldIndices := make([]int, len(c.worlds))
	for i := range worldIndices {
		worldIndices[i] = i
	}
	sortBySlotsRemaining(worldIndices, c.worlds)

	for _, targetWorldIndex := range worldIndices {
		if progression, ok := c.worlds[targetWorldIndex].chooseProgression(slots); ok {
			return targetWorldIndex, progression, nil
		}
	}
	return 0, inventory.Inventory{}, errNoProgressionCandidate
}

func sortBySlotsRemaining(indices []int, worlds []*worldContext) {
	for i := 1; i < len(indices); i++ {
		for j := i; j > 0 && worlds[indices[j]].slotsRemaining() < worlds[indices[j-1]].slotsRemaining(); j-- {
			indices[j], indices[j-1] = indices[j-1], indices[j]
		}
	}
}

// placeForced decomposes a chosen progression delta into individual item
// grants and places each one (spec.md §4.7.5).
func (c *Context) placeForced(targetWorldIndex int, progression inventory.Inventory) {
	if progression.SpiritLight > 0 {
		c.worlds[targetWorldIndex].placeSpiritLight(progression.SpiritLight)
	}
	for resource, amount := range progression.Resources {
		for i := int32(0); i < amount; i++ {
			c.placeAction(command.CommandAction(command.GrantItem(command.ResourceItem(resource, 1))), targetWorldIndex)
		}
	}
	for skill, owned := range progression.Skills {
		if owned {
			c.placeAction(command.CommandAction(command.GrantItem(command.SkillItem(skill))), targetWorldIndex)
		}
	}
	for shard, owned := range progression.Shards {
		if owned {
			c.placeAction(command.CommandAction(command.GrantItem(command.ShardItem(shard))), targetWorldIndex)
		}
	}
	for teleporter, owned := range progression.Teleporters {
		if owned {
			c.placeAction(command.CommandAction(command.GrantItem(command.TeleporterItem(teleporter))), targetWorldIndex)
		}
	}
	if progression.CleanWater {
		c.placeAction(command.CommandAction(command.GrantItem(command.CleanWaterItem())), targetWorldIndex)
	}
	for weaponUpgrade, owned := range progression.WeaponUpgrades {
		if owned {
			c.placeAction(command.CommandAction(command.GrantItem(command.WeaponUpgradeItem(weaponUpgrade))), targetWorldIndex)
		}
	}
}

// placeAction places a single action for targetWorldIndex at a reached
// location of the chosen origin world, falling back to that world's spawn (if
// it still has spawn slots left) when no reached location can take it
// (spec.md §4.7.6).
func (c *Context) placeAction(action command.Action, targetWorldIndex int) {
	originWorldIndex := c.chooseOriginWorld(action, targetWorldIndex)
	name := c.name(action, originWorldIndex, targetWorldIndex)
	origin := c.worlds[originWorldIndex]

	node, ok := origin.choosePlacementNode(action)
	if !ok {
		if origin.spawnSlots > 0 {
			origin.spawnSlots--
			c.recordSpoiler(commonItemOf(action), "Spawn", "", originWorldIndex, targetWorldIndex)
			c.pushAction(command.PseudoTriggerOf(command.PseudoSpawn), action, name, originWorldIndex, targetWorldIndex)
			return
		}
		// No space anywhere for this world to absorb the action: this is a
		// malformed-pool condition the outer retry loop should surface as a
		// failed attempt rather than crash the generator.
		return
	}
	c.placeActionAt(action, name, node, originWorldIndex, targetWorldIndex)
}

// chooseOriginWorld picks which world's graph actually holds the placement
// location for action, honoring each world's budget of guaranteed
// not-sent-elsewhere items (spec.md §4.7.6, "unshared_items").
func (c *Context) chooseOriginWorld(action command.Action, targetWorldIndex int) int {
	if isSpiritLightGrant(action) {
		return targetWorldIndex
	}

	target := c.worlds[targetWorldIndex]
	if target.unsharedItems > 0 {
		target.unsharedItems--
		return targetWorldIndex
	}

	worldIndices := make([]int, len(c.worlds))
	for i := range worldIndices {
		worldIndices[i] = i
	}
	c.rng.Shuffle(len(worldIndices), func(i, j int) { worldIndices[i], worldIndices[j] = worldIndices[j], worldIndices[i] })

	for _, idx := range worldIndices {
		if len(c.worlds[idx].reachedNeedsPlacement) > 0 {
			return idx
		}
	}
	for _, idx := range worldIndices {
		if c.worlds[idx].spawnSlots > 0 {
			return idx
		}
	}
	return targetWorldIndex
}

// chooseTargetWorld picks which world's item pool a random-placement draw
// should come from, preferring origin's own pool while its unshared-items
// budget lasts (spec.md §4.7.4).
func (c *Context) chooseTargetWorld(originWorldIndex int) int {
	origin := c.worlds[originWorldIndex]
	if origin.unsharedItems > 0 {
		origin.unsharedItems--
		return originWorldIndex
	}

	worldIndices := make([]int, len(c.worlds))
	for i := range worldIndices {
		worldIndices[i] = i
	}
	c.rng.Shuffle(len(worldIndices), func(i, j int) { worldIndices[i], worldIndices[j] = worldIndices[j], worldIndices[i] })

	last := worldIndices[len(worldIndices)-1]
	for _, idx := range worldIndices {
		if !c.worlds[idx].itemPool.IsEmpty() {
			return idx
		}
	}
	return last
}

// name resolves the display string an action gets when recorded, prefixing
// a cross-world grant with the target world's name so the spoiler message
// reads naturally in the origin world's message box (spec.md §4.7.7, §6).
func (c *Context) name(action command.Action, originWorldIndex, targetWorldIndex int) string {
	item := commonItemOf(action)
	label := c.worlds[targetWorldIndex].name(item)
	if originWorldIndex == targetWorldIndex {
		return label
	}
	return fmt.Sprintf("World %d's %s", targetWorldIndex+1, label)
}

// placeActionAt finalizes a single placement at node: records its spoiler
// map icon, its shop metadata if node is a shop slot, then pushes the
// resulting trigger/action pair (spec.md §4.7.6, §4.7.7).
func (c *Context) placeActionAt(action command.Action, name string, node *logic.Node, originWorldIndex, targetWorldIndex int) {
	item := commonItemOf(action)
	origin := c.worlds[originWorldIndex]

	origin.mapIcon(node, item, name)
	if node.UberIdentifier != nil && node.UberIdentifier.IsShop() {
		origin.shopItemData(item, node, name)
	}

	c.recordSpoiler(item, node.ID, node.Zone, originWorldIndex, targetWorldIndex)
	c.pushAction(nodeTrigger(node), action, name, originWorldIndex, targetWorldIndex)
}

// recordSpoiler appends one placement to the spoiler log (spec.md §6
// Outputs: "a spoiler object recording, per placement, the origin world,
// target world, pickup identifier, zone, and action").
func (c *Context) recordSpoiler(item command.CommonItem, location, zone string, originWorldIndex, targetWorldIndex int) {
	c.spoiler = append(c.spoiler, SpoilerEntry{
		OriginWorld: originWorldIndex,
		TargetWorld: targetWorldIndex,
		Location:    location,
		Zone:        zone,
		Item:        item,
	})
}

// pushAction records action under trigger in originWorldIndex, synthesizing
// a group-12 cross-world handshake uberState when the origin and target
// worlds differ (spec.md §6 wire conventions: origin world gets a
// notification message plus a boolean flip; target world's grant is bound
// to the same identifier so it can never be collected before being sent)
// (spec.md §4.7.6).
func (c *Context) pushAction(trigger command.Trigger, action command.Action, name string, originWorldIndex, targetWorldIndex int) {
	if originWorldIndex == targetWorldIndex {
		c.worlds[originWorldIndex].pushAction(trigger, action)
		return
	}

	id := c.multiworldState()

	c.worlds[originWorldIndex].pushAction(trigger, command.MultiAction(
		command.CommandAction(command.ItemMessage(name)),
		command.CommandAction(command.StoreBoolean(id, command.ConstantBoolean(true), true)),
	))
	c.worlds[targetWorldIndex].pushAction(command.BindingTrigger(id), action)
}

func (c *Context) multiworldState() uberstate.Identifier {
	id := uberstate.Identifier{Group: uberstate.MultiworldGroup, Member: c.multiworldStateNext}
	c.multiworldStateNext++
	return id
}

func isSpiritLightGrant(action command.Action) bool {
	return action.Kind == command.ActionCommandKind &&
		action.Command != nil && action.Command.Kind == command.VoidGrantItem &&
		action.Command.Item.Kind == command.ItemSpiritLight
}

func commonItemOf(action command.Action) command.CommonItem {
	if action.Kind == command.ActionCommandKind && action.Command != nil && action.Command.Kind == command.VoidGrantItem {
		return action.Command.Item
	}
	return command.CommonItem{}
}
