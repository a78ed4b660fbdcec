package inventory

// Orbs is a (health, energy) pair representing an alternative resource state
// reachable after traversing a requirement (spec.md §3, §4.3).
type Orbs struct {
	Health float64
	Energy float64
}

// MaxOrbs returns the inventory's maximum orb state for difficulty.
func (inv Inventory) MaxOrbs(difficulty Difficulty) Orbs {
	return Orbs{Health: inv.MaxHealth(difficulty), Energy: inv.MaxEnergy(difficulty)}
}

// CheckpointOrbs returns the orb state granted by a checkpoint refill:
// health refilled to 30% of max (minimum 40), energy to 20% of max
// (minimum 1) (spec.md §4.3).
func (inv Inventory) CheckpointOrbs(difficulty Difficulty) Orbs {
	maxHealth := inv.MaxHealth(difficulty)
	maxEnergy := inv.MaxEnergy(difficulty)
	health := maxHealth * 0.3
	if health < 40 {
		health = 40
	}
	if health > maxHealth {
		health = maxHealth
	}
	energy := maxEnergy * 0.2
	if energy < 1 {
		energy = 1
	}
	if energy > maxEnergy {
		energy = maxEnergy
	}
	return Orbs{Health: health, Energy: energy}
}

// RefillKind tags the shape of a Refill node/action (spec.md §3 Node Refill
// variant, §4.3 refill contract).
type RefillKind int

const (
	RefillFull RefillKind = iota
	RefillCheckpoint
	RefillHealth
	RefillEnergy
)

// Refill is a concrete refill instruction: kind plus, for Health/Energy,
// the flat amount granted.
type Refill struct {
	Kind   RefillKind
	Amount float64
}

// Apply applies a refill to a set of orb variants, per spec.md §4.3:
//   - Full replaces variants with a single max-orbs entry.
//   - Checkpoint takes the pointwise max with checkpoint_orbs and caps at max.
//   - Health(amount)/Energy(amount) heal/recharge each variant up to max.
func (r Refill) Apply(variants []Orbs, inv Inventory, difficulty Difficulty) []Orbs {
	maxOrbs := inv.MaxOrbs(difficulty)

	switch r.Kind {
	case RefillFull:
		return []Orbs{maxOrbs}
	case RefillCheckpoint:
		cp := inv.CheckpointOrbs(difficulty)
		out := make([]Orbs, len(variants))
		for i, v := range variants {
			h := v.Health
			if cp.Health > h {
				h = cp.Health
			}
			e := v.Energy
			if cp.Energy > e {
				e = cp.Energy
			}
			if h > maxOrbs.Health {
				h = maxOrbs.Health
			}
			if e > maxOrbs.Energy {
				e = maxOrbs.Energy
			}
			out[i] = Orbs{Health: h, Energy: e}
		}
		return out
	case RefillHealth:
		out := make([]Orbs, len(variants))
		for i, v := range variants {
			h := v.Health + r.Amount
			if h > maxOrbs.Health {
				h = maxOrbs.Health
			}
			out[i] = Orbs{Health: h, Energy: v.Energy}
		}
		return out
	case RefillEnergy:
		out := make([]Orbs, len(variants))
		for i, v := range variants {
			e := v.Energy + r.Amount
			if e > maxOrbs.Energy {
				e = maxOrbs.Energy
			}
			out[i] = Orbs{Health: v.Health, Energy: e}
		}
		return out
	default:
		return variants
	}
}
