package placement

import (
	"github.com/dshills/wotwseedgen/pkg/command"
	"github.com/dshills/wotwseedgen/pkg/inventory"
	"github.com/dshills/wotwseedgen/pkg/itempool"
	"github.com/dshills/wotwseedgen/pkg/logic"
	"github.com/dshills/wotwseedgen/pkg/rng"
	"github.com/dshills/wotwseedgen/pkg/spiritlight"
	"github.com/dshills/wotwseedgen/pkg/world"
)

// worldContext is the per-world placement state: everything Context.place*
// needs to track one world's remaining slots, item pool, and reached set
// (spec.md §4.7, ported from placement.rs's WorldContext).
type worldContext struct {
	index int
	rng   *rng.RNG

	world  *world.World
	output *command.CompilerOutput

	itemPool            *itempool.ItemPool
	spiritLightProvider *spiritlight.Provider

	// needsPlacement holds the graph node index of every placeable location
	// still awaiting an item.
	needsPlacement []int
	// receivedPlacement holds indices into needsPlacement (not graph node
	// indices) that were assigned an item this round and are pending removal
	// from needsPlacement at the next updateReached.
	receivedPlacement []int

	reached               []int
	progressions          []world.ProgressionRecord
	reachedNeedsPlacement []int // indices into needsPlacement
	reachedItemLocations  int

	spawnSlots    int
	unsharedItems int

	onLoadIndex int
}

func newWorldContext(index int, r *rng.RNG, w *world.World, output *command.CompilerOutput) *worldContext {
	pool := itempool.Default()
	for key, delta := range output.ItemPoolChanges {
		if item, ok := output.ItemPoolItems[key]; ok {
			pool.Change(item, delta)
		}
	}

	var needsPlacement []int
	for i, node := range w.Graph.Nodes {
		if !node.CanPlace {
			continue
		}
		alreadyTriggered := false
		for _, ev := range output.Events {
			if ev.Trigger.Kind == command.TriggerBinding && node.UberIdentifier != nil && ev.Trigger.UberIdentifier == *node.UberIdentifier {
				alreadyTriggered = true
				break
			}
		}
		if alreadyTriggered {
			continue
		}
		needsPlacement = append(needsPlacement, i)
	}

	onLoadIndex := -1
	for i, ev := range output.Events {
		if ev.Trigger.Kind == command.TriggerPseudo && ev.Trigger.Pseudo == command.PseudoReload {
			onLoadIndex = i
			break
		}
	}
	if onLoadIndex == -1 {
		onLoadIndex = output.AppendEvent(command.Event{
			Trigger: command.PseudoTriggerOf(command.PseudoReload),
			Action:  command.MultiAction(),
		})
	}

	return &worldContext{
		index:               index,
		rng:                 r,
		world:               w,
		output:              output,
		itemPool:            pool,
		spiritLightProvider: spiritlight.New(20000, r.Child("spirit-light")),
		needsPlacement:      needsPlacement,
		spawnSlots:          spawnSlots,
		unsharedItems:       unsharedItems,
		onLoadIndex:         onLoadIndex,
	}
}

// preplacements applies the snippet's forced (item, zone) preplacements plus
// the hi_sigma preplacement, both consuming a needs-placement slot before
// the normal placement loop begins (spec.md §4.7.1).
func (wc *worldContext) preplacements(preplacements []command.Preplacement) {
	wc.hiSigma()

	zoneCandidates := map[string][]int{}
	for _, p := range preplacements {
		nodes, ok := zoneCandidates[p.Zone]
		if !ok {
			for idx, nodeIndex := range wc.needsPlacement {
				if wc.world.Graph.Node(nodeIndex).Zone == p.Zone {
					nodes = append(nodes, idx)
				}
			}
		}
		if len(nodes) == 0 {
			panic("placement: preplacement zone " + p.Zone + " has no location left to place into")
		}
		pick := wc.rng.Intn(len(nodes))
		needsIndex := nodes[pick]
		nodes[pick] = nodes[len(nodes)-1]
		zoneCandidates[p.Zone] = nodes[:len(nodes)-1]

		node := wc.world.Graph.Node(wc.needsPlacement[needsIndex])
		wc.pushAction(nodeTrigger(node), command.CommandAction(command.GrantItem(p.Item)))
		wc.receivedPlacement = append(wc.receivedPlacement, needsIndex)
	}
}

// hiSigma consumes one random needs-placement slot with a single spirit
// light, shifting the RNG stream the same way the original source's
// hi_sigma does (DESIGN.md Open Question decision #4: preserved literally).
func (wc *worldContext) hiSigma() {
	if len(wc.needsPlacement) == 0 {
		return
	}
	pick := wc.rng.Intn(len(wc.needsPlacement))
	nodeIndex := wc.needsPlacement[pick]
	wc.needsPlacement[pick] = wc.needsPlacement[len(wc.needsPlacement)-1]
	wc.needsPlacement = wc.needsPlacement[:len(wc.needsPlacement)-1]

	node := wc.world.Graph.Node(nodeIndex)
	wc.pushAction(nodeTrigger(node), command.CommandAction(command.GrantItem(command.SpiritLightItem(1))))
}

// updateReached removes every already-placed node from needsPlacement, then
// re-runs the world's reachability traversal to refresh reached/progressions
// (spec.md §4.7.3).
func (wc *worldContext) updateReached() {
	received := wc.receivedPlacement
	wc.receivedPlacement = nil

	keep := make([]bool, len(wc.needsPlacement))
	for i := range keep {
		keep[i] = true
	}
	for _, idx := range received {
		if idx >= 0 && idx < len(keep) {
			keep[idx] = false
		}
	}
	var remaining []int
	for i, nodeIndex := range wc.needsPlacement {
		if keep[i] {
			remaining = append(remaining, nodeIndex)
		}
	}
	wc.needsPlacement = remaining

	result := wc.world.ReachedAndProgressions()
	wc.reached = result.Reached
	wc.progressions = result.Progressions

	needsSet := map[int]bool{}
	for _, n := range wc.needsPlacement {
		needsSet[n] = true
	}
	reachedSet := map[int]bool{}
	reachedCount := 0
	for _, nodeIndex := range wc.reached {
		reachedSet[nodeIndex] = true
		if wc.world.Graph.Node(nodeIndex).CanPlace {
			reachedCount++
		}
	}
	wc.reachedNeedsPlacement = nil
	for needsIndex, nodeIndex := range wc.needsPlacement {
		if needsSet[nodeIndex] && reachedSet[nodeIndex] {
			wc.reachedNeedsPlacement = append(wc.reachedNeedsPlacement, needsIndex)
		}
	}
	wc.reachedItemLocations = reachedCount
}

// slotsRemaining is how many needs-placement locations have not yet been
// assigned an item this round.
func (wc *worldContext) slotsRemaining() int {
	return len(wc.needsPlacement) - len(wc.receivedPlacement)
}

// chooseProgression searches this world's recorded progressions for a
// viable inventory-delta candidate, weighting candidates by lookahead newly-
// reached locations and cost (spec.md §4.7.5).
func (wc *worldContext) chooseProgression(slots int) (inventory.Inventory, bool) {
	worldSlots := len(wc.reachedNeedsPlacement)
	progressions := wc.progressions
	wc.progressions = nil

	var candidates []inventory.Inventory
	for _, p := range progressions {
		sols := wc.world.Player.Solutions(p.Req, wc.world.LogicStates, slots, worldSlots)
		for _, s := range sols {
			if wc.itemPool.Contains(s) {
				candidates = append(candidates, s)
			}
		}
	}
	candidates = world.FilterRedundancies(candidates)
	if len(candidates) == 0 {
		return inventory.Inventory{}, false
	}

	weights := make([]float64, len(candidates))
	for i, delta := range candidates {
		base := wc.world.Player.Inventory
		wc.world.Player.Inventory = inventory.Sum(base, delta)
		lookaheadReachable := wc.world.Reached()
		wc.world.Player.Inventory = base

		newlyReached := 0
		for _, nodeIndex := range lookaheadReachable {
			if wc.world.Graph.Node(nodeIndex).CanPlace {
				newlyReached++
			}
		}
		newlyReached -= wc.reachedItemLocations
		if newlyReached < 0 {
			newlyReached = 0
		}

		cost := delta.Cost()
		if cost == 0 {
			cost = 1
		}
		weight := 1.0 / float64(cost) * float64(newlyReached+1)

		begrudgingly := delta.ItemCount() + (spawnSlots - preferredSpawnSlots) - slots
		if begrudgingly > 0 {
			weight *= pow03(begrudgingly)
		}
		weights[i] = weight
	}

	idx := wc.rng.WeightedChoice(weights)
	if idx < 0 {
		return inventory.Inventory{}, false
	}
	return candidates[idx], true
}

func pow03(n int) float64 {
	v := 1.0
	for i := 0; i < n; i++ {
		v *= 0.3
	}
	return v
}

// placeSpiritLight places amount total spirit light across one or more
// placement nodes, batched by the spirit light provider (spec.md §4.8).
func (wc *worldContext) placeSpiritLight(amount int32) {
	for amount > 0 {
		batch := wc.spiritLightProvider.Take(wc.slotsRemaining())
		if batch <= 0 {
			batch = 1
		}
		amount -= batch
		action := command.CommandAction(command.GrantItem(command.SpiritLightItem(batch)))
		node, ok := wc.choosePlacementNode(action)
		if !ok {
			return
		}
		wc.pushAction(nodeTrigger(node), action)
	}
}

// choosePlacementNode picks and reserves a reached-needs-placement node for
// action: spirit light avoids shop slots (so shop prices stay meaningful),
// everything else picks uniformly (spec.md §4.7.6).
func (wc *worldContext) choosePlacementNode(action command.Action) (*logic.Node, bool) {
	isSpiritLight := action.Kind == command.ActionCommandKind &&
		action.Command != nil && action.Command.Kind == command.VoidGrantItem &&
		action.Command.Item.Kind == command.ItemSpiritLight

	pick := -1
	if isSpiritLight {
		var candidates []int
		for i, needsIndex := range wc.reachedNeedsPlacement {
			nodeIndex := wc.needsPlacement[needsIndex]
			id := wc.world.Graph.Node(nodeIndex).UberIdentifier
			if id != nil && id.IsShop() {
				continue
			}
			candidates = append(candidates, i)
		}
		if len(candidates) > 0 {
			pick = candidates[wc.rng.Intn(len(candidates))]
		}
	} else if len(wc.reachedNeedsPlacement) > 0 {
		pick = wc.rng.Intn(len(wc.reachedNeedsPlacement))
	}
	if pick < 0 {
		return nil, false
	}

	needsIndex := wc.reachedNeedsPlacement[pick]
	wc.reachedNeedsPlacement[pick] = wc.reachedNeedsPlacement[len(wc.reachedNeedsPlacement)-1]
	wc.reachedNeedsPlacement = wc.reachedNeedsPlacement[:len(wc.reachedNeedsPlacement)-1]
	wc.receivedPlacement = append(wc.receivedPlacement, needsIndex)

	return wc.world.Graph.Node(wc.needsPlacement[needsIndex]), true
}

// mapIcon records the spoiler-map icon/label for a placed item, applied on
// the world's next reload event (spec.md §4.7.7).
func (wc *worldContext) mapIcon(node *logic.Node, item command.CommonItem, label string) {
	icon := defaultMapIcon(item)
	if meta, ok := wc.output.ItemMetadata[item.Key()]; ok && meta.MapIcon != nil {
		icon = *meta.MapIcon
	}
	wc.onLoad(command.CommandAction(command.SetSpoilerMapIcon(*node.UberIdentifier, icon, label)))
}

// name resolves an item's display name, preferring snippet metadata over the
// default name (spec.md §4.7.7).
func (wc *worldContext) name(item command.CommonItem) string {
	if meta, ok := wc.output.ItemMetadata[item.Key()]; ok && meta.Name != nil {
		return *meta.Name
	}
	return item.Name()
}

func (wc *worldContext) onLoad(action command.Action) {
	ev := &wc.output.Events[wc.onLoadIndex]
	ev.Action.Multi = append(ev.Action.Multi, action)
}

// shopPrice assigns a cost to a shop item using the per-item base table with
// ±25% noise. Blaze is a hard-coded exception: its price is always exactly
// 420, never jittered.
func (wc *worldContext) shopPrice(item command.CommonItem) int32 {
	if item.Kind == command.ItemSkill && item.Skill == inventory.Blaze {
		return 420
	}
	base := baseShopPrice(item)
	return int32(base*wc.rng.Float64Range(0.75, 1.25) + 0.5)
}

func baseShopPrice(item command.CommonItem) float64 {
	switch item.Kind {
	case command.ItemResource:
		switch item.Resource {
		case inventory.HealthFragment:
			return 200
		case inventory.EnergyFragment:
			return 150
		case inventory.GorlekOre, inventory.Keystone:
			return 100
		case inventory.ShardSlot:
			return 250
		}
	case command.ItemSkill:
		switch item.Skill {
		case inventory.WaterBreath, inventory.Regenerate:
			return 200
		case inventory.AncestralLight1, inventory.AncestralLight2:
			return 300
		case inventory.Blaze:
			return 420
		case inventory.Launch:
			return 800
		default:
			return 500
		}
	case command.ItemCleanWater:
		return 500
	case command.ItemTeleporter, command.ItemShard:
		return 250
	}
	return 200
}

// shopItemData emits the price/name/icon events a shop slot needs, firing on
// the world's next reload (spec.md §4.7.7).
func (wc *worldContext) shopItemData(item command.CommonItem, node *logic.Node, name string) {
	priceCmd := command.ConstantInteger(wc.shopPrice(item))
	if meta, ok := wc.output.ItemMetadata[item.Key()]; ok && meta.Price != nil {
		priceCmd = meta.Price
	}

	wc.onLoad(command.CommandAction(&command.CommandVoid{
		Kind:           command.VoidSetShopItemPrice,
		UberIdentifier: *node.UberIdentifier,
		ShopPrice:      priceCmd,
	}))
	wc.onLoad(command.CommandAction(&command.CommandVoid{
		Kind:           command.VoidSetShopItemName,
		UberIdentifier: *node.UberIdentifier,
		ShopName:       command.ConstantString(name),
	}))

	if meta, ok := wc.output.ItemMetadata[item.Key()]; ok && meta.Description != nil {
		wc.onLoad(command.CommandAction(&command.CommandVoid{
			Kind:            command.VoidSetShopItemDescription,
			UberIdentifier:  *node.UberIdentifier,
			ShopDescription: meta.Description,
		}))
	}

	shopIcon := metadataIcon(wc.output, item)
	if shopIcon == nil {
		if icon, ok := defaultIcon(item); ok {
			shopIcon = &command.CommandIcon{Value: icon}
		}
	}
	if shopIcon != nil {
		wc.onLoad(command.CommandAction(&command.CommandVoid{
			Kind:           command.VoidSetShopItemIcon,
			UberIdentifier: *node.UberIdentifier,
			ShopIcon:       shopIcon,
		}))
	}
}

func metadataIcon(output *command.CompilerOutput, item command.CommonItem) *command.CommandIcon {
	if meta, ok := output.ItemMetadata[item.Key()]; ok {
		return meta.Icon
	}
	return nil
}

// fillRemaining assigns a final item (spirit light, or gorlek ore for shops
// with no reachable placement) to every location still left in
// needsPlacement once no more progressions can be found (spec.md §4.7.8).
func (wc *worldContext) fillRemaining() {
	remaining := wc.needsPlacement
	wc.needsPlacement = nil
	wc.rng.Shuffle(len(remaining), func(i, j int) { remaining[i], remaining[j] = remaining[j], remaining[i] })

	for slotsLeft := len(remaining) - 1; slotsLeft >= 0; slotsLeft-- {
		nodeIndex := remaining[slotsLeft]
		node := wc.world.Graph.Node(nodeIndex)
		var item command.CommonItem
		if node.UberIdentifier != nil && node.UberIdentifier.IsShop() {
			item = command.ResourceItem(inventory.GorlekOre, 1)
		} else {
			item = command.SpiritLightItem(wc.spiritLightProvider.Take(slotsLeft + 1))
		}
		name := wc.name(item)
		wc.shopItemData(item, node, name)
		wc.pushAction(nodeTrigger(node), command.CommandAction(command.GrantItem(item)))
	}
}

// pushAction registers action's trigger, simulates it immediately against
// this world's state (so later placement decisions see its effect), and
// records it as a permanent event (spec.md §4.5, §4.7).
func (wc *worldContext) pushAction(trigger command.Trigger, action command.Action) {
	wc.world.RegisterTrigger(trigger)
	wc.world.Simulate(action, wc.output)
	wc.output.AppendEvent(command.Event{Trigger: trigger, Action: action})
}
