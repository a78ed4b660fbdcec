package inventory

// Inventory is a typed bag of everything a player can own: resources,
// skills, shards, teleporters, the clean-water flag, weapon upgrades, and
// spirit light.
type Inventory struct {
	SpiritLight    int32
	Resources      map[Resource]int32
	Skills         map[Skill]bool
	Shards         map[Shard]bool
	Teleporters    map[Teleporter]bool
	WeaponUpgrades map[WeaponUpgrade]bool
	CleanWater     bool
}

// New returns an empty Inventory with all maps initialized.
func New() Inventory {
	return Inventory{
		Resources:      make(map[Resource]int32),
		Skills:         make(map[Skill]bool),
		Shards:         make(map[Shard]bool),
		Teleporters:    make(map[Teleporter]bool),
		WeaponUpgrades: make(map[WeaponUpgrade]bool),
	}
}

// NewSpawn returns the vanilla spawn inventory: 30 health (6 health
// fragments), 3 energy (6 energy fragments), and 3 shard slots.
func NewSpawn() Inventory {
	inv := New()
	inv.Resources[HealthFragment] = 6
	inv.Resources[EnergyFragment] = 6
	inv.Resources[ShardSlot] = 3
	return inv
}

// Clone returns a deep copy safe for independent mutation.
func (inv Inventory) Clone() Inventory {
	out := New()
	out.SpiritLight = inv.SpiritLight
	out.CleanWater = inv.CleanWater
	for k, v := range inv.Resources {
		out.Resources[k] = v
	}
	for k, v := range inv.Skills {
		out.Skills[k] = v
	}
	for k, v := range inv.Shards {
		out.Shards[k] = v
	}
	for k, v := range inv.Teleporters {
		out.Teleporters[k] = v
	}
	for k, v := range inv.WeaponUpgrades {
		out.WeaponUpgrades[k] = v
	}
	return out
}

// Get returns the current count of a resource (0 if absent).
func (inv Inventory) Get(r Resource) int32 {
	return inv.Resources[r]
}

// Add increments a resource count with no floor: negative deltas can drive
// the count below zero.
func (inv *Inventory) Add(r Resource, delta int32) {
	inv.Resources[r] += delta
}

// AddSpiritLight adds to the spirit light total, saturating at zero on
// subtraction.
func (inv *Inventory) AddSpiritLight(delta int32) {
	inv.SpiritLight += delta
	if inv.SpiritLight < 0 {
		inv.SpiritLight = 0
	}
}

// hasShard is a small helper used by MaxHealth/MaxEnergy.
func (inv Inventory) hasShard(s Shard) bool { return inv.Shards[s] }

// MaxHealth: 5 * HealthFragment count, +10 if the Vitality shard is owned and
// difficulty >= Gorlek.
func (inv Inventory) MaxHealth(difficulty Difficulty) float64 {
	health := 5.0 * float64(inv.Get(HealthFragment))
	if inv.hasShard(Vitality) && difficulty.AtLeast(Gorlek) {
		health += 10
	}
	return health
}

// MaxEnergy: 0.5 per EnergyFragment, +1 for the Energy shard at Gorlek+.
func (inv Inventory) MaxEnergy(difficulty Difficulty) float64 {
	energy := 0.5 * float64(inv.Get(EnergyFragment))
	if inv.hasShard(Energy) && difficulty.AtLeast(Gorlek) {
		energy += 1
	}
	return energy
}

// Contains reports whether inv dominates other: every scalar ≥ and every set
// a superset.
func (inv Inventory) Contains(other Inventory) bool {
	if inv.SpiritLight < other.SpiritLight {
		return false
	}
	for r, v := range other.Resources {
		if inv.Get(r) < v {
			return false
		}
	}
	for s, owned := range other.Skills {
		if owned && !inv.Skills[s] {
			return false
		}
	}
	for s, owned := range other.Shards {
		if owned && !inv.Shards[s] {
			return false
		}
	}
	for t, owned := range other.Teleporters {
		if owned && !inv.Teleporters[t] {
			return false
		}
	}
	for w, owned := range other.WeaponUpgrades {
		if owned && !inv.WeaponUpgrades[w] {
			return false
		}
	}
	if other.CleanWater && !inv.CleanWater {
		return false
	}
	return true
}

// Sum combines two inventories component-wise.
func Sum(a, b Inventory) Inventory {
	out := a.Clone()
	out.SpiritLight += b.SpiritLight
	for r, v := range b.Resources {
		out.Resources[r] += v
	}
	for s := range b.Skills {
		out.Skills[s] = out.Skills[s] || b.Skills[s]
	}
	for s := range b.Shards {
		out.Shards[s] = out.Shards[s] || b.Shards[s]
	}
	for t := range b.Teleporters {
		out.Teleporters[t] = out.Teleporters[t] || b.Teleporters[t]
	}
	for w := range b.WeaponUpgrades {
		out.WeaponUpgrades[w] = out.WeaponUpgrades[w] || b.WeaponUpgrades[w]
	}
	out.CleanWater = out.CleanWater || b.CleanWater
	return out
}

// Sub subtracts b's spirit light and resources from a; spirit light saturates
// at zero, resources are allowed to go negative (used internally to compute
// deltas, not to represent an actual held inventory). Skills, shards,
// teleporters, weapon upgrades and clean water are copied from a unchanged.
func Sub(a, b Inventory) Inventory {
	out := a.Clone()
	out.SpiritLight -= b.SpiritLight
	if out.SpiritLight < 0 {
		out.SpiritLight = 0
	}
	for r, v := range b.Resources {
		out.Resources[r] -= v
	}
	return out
}

// ItemCount is the number of discrete items this inventory (treated as a
// delta) represents: every resource unit, plus one per owned skill/shard/
// teleporter/weapon-upgrade, plus one if clean water is set, plus one if any
// spirit light is held. Used by the
// forced-placement spawn-slot overflow check.
func (inv Inventory) ItemCount() int {
	count := 0
	for _, v := range inv.Resources {
		if v > 0 {
			count += int(v)
		}
	}
	for _, owned := range inv.Skills {
		if owned {
			count++
		}
	}
	for _, owned := range inv.Shards {
		if owned {
			count++
		}
	}
	for _, owned := range inv.Teleporters {
		if owned {
			count++
		}
	}
	for _, owned := range inv.WeaponUpgrades {
		if owned {
			count++
		}
	}
	if inv.CleanWater {
		count++
	}
	if inv.SpiritLight > 0 {
		count++
	}
	return count
}

// Cost is the aggregate pool cost of this inventory treated as a candidate
// delta: sum over every held unit's PoolCost.
func (inv Inventory) Cost() uint32 {
	var total uint32
	for r, v := range inv.Resources {
		if v > 0 {
			total += r.PoolCost() * uint32(v)
		}
	}
	for s, owned := range inv.Skills {
		if owned {
			total += s.PoolCost()
		}
	}
	for s, owned := range inv.Shards {
		if owned {
			total += s.PoolCost()
		}
	}
	for t, owned := range inv.Teleporters {
		if owned {
			total += t.PoolCost()
		}
	}
	for w, owned := range inv.WeaponUpgrades {
		if owned {
			total += w.PoolCost()
		}
	}
	if inv.CleanWater {
		total += 1800
	}
	if inv.SpiritLight > 0 {
		total += uint32(inv.SpiritLight)
	}
	return total
}
