package inventory

import "math"

// DamageMod computes the multiplicative/additive damage modifier stack for
// the current inventory.
//
// At difficulty >= Unsafe, 0.25 is added for each owned Ancestral Light
// skill. Then up to ShardSlot count shards are consumed in the fixed order
// Wingclip, Splinter, SpiritSurge, LastStand, Reckless, Lifeforce, Finesse;
// Splinter applies multiplicatively (after all additive stacking), the rest
// additively.
func (inv Inventory) DamageMod(flyingTarget, isBow bool, settings Settings) float64 {
	mod := 1.0
	if settings.Difficulty.AtLeast(Unsafe) {
		if inv.Skills[AncestralLight1] {
			mod += 0.25
		}
		if inv.Skills[AncestralLight2] {
			mod += 0.25
		}
	}

	slots := int(inv.Get(ShardSlot))
	splinterActive := false
	additive := 0.0
	for _, s := range []Shard{Wingclip, Splinter, SpiritSurge, LastStand, Reckless, Lifeforce, Finesse} {
		if slots <= 0 {
			break
		}
		if !inv.Shards[s] {
			continue
		}
		switch s {
		case Wingclip:
			if flyingTarget {
				additive += 1.0
				slots--
			}
		case Splinter:
			if isBow {
				splinterActive = true
				slots--
			}
		case SpiritSurge:
			additive += float64(inv.SpiritLight) / 10000
			slots--
		case LastStand:
			additive += 0.2
			slots--
		case Reckless:
			additive += 0.15
			slots--
		case Lifeforce:
			additive += 0.1
			slots--
		case Finesse:
			additive += 0.05
			slots--
		}
	}
	mod += additive
	if splinterActive {
		mod *= 1.5
	}
	return mod
}

// EnergyMod: x2 below Unsafe; x0.5 at Unsafe with Overcharge owned; else x1.
func (inv Inventory) EnergyMod(settings Settings) float64 {
	if !settings.Difficulty.AtLeast(Unsafe) {
		return 2.0
	}
	if inv.Shards[Overcharge] {
		return 0.5
	}
	return 1.0
}

// DefenseMod: x0.9 at Gorlek+ with Resilience; then x2 if hard mode.
func (inv Inventory) DefenseMod(settings Settings) float64 {
	mod := 1.0
	if settings.Difficulty.AtLeast(Gorlek) && inv.Shards[Resilience] {
		mod *= 0.9
	}
	if settings.Hard {
		mod *= 2.0
	}
	return mod
}

// WeaponStats returns (damage, cost) for using skill against a possibly
// flying target, where damage = base_damage(skill, unsafe)*damage_mod +
// burn_damage(skill) and cost = energy_cost(skill)*energy_mod.
func (inv Inventory) WeaponStats(skill Skill, flyingTarget bool, settings Settings) (damage, cost float64) {
	unsafeDifficulty := settings.Difficulty.AtLeast(Unsafe)
	isBow := skill == Bow
	damage = skill.baseDamage(unsafeDifficulty)*inv.DamageMod(flyingTarget, isBow, settings) + skill.burnDamage()
	cost = skill.energyCost() * inv.EnergyMod(settings)
	return damage, cost
}

// OwnedWeapons returns every weapon skill this inventory owns.
func (inv Inventory) OwnedWeapons() []Skill {
	var out []Skill
	for s, owned := range inv.Skills {
		if owned && s.IsWeapon() {
			out = append(out, s)
		}
	}
	return out
}

// DestroyCost computes the minimum energy cost to deal health damage to a
// possibly-flying target using any owned weapon: greedily uses the
// highest damage-per-energy weapon for the integer part of the hit count,
// then chooses the weapon minimising the final partial-hit cost. Zero-cost
// weapons short-circuit to 0.
func (inv Inventory) DestroyCost(health float64, flyingTarget bool, settings Settings) (float64, bool) {
	weapons := inv.OwnedWeapons()
	if len(weapons) == 0 {
		return 0, false
	}

	type stats struct {
		skill       Skill
		damage      float64
		cost        float64
		perEnergy   float64
	}
	var candidates []stats
	for _, w := range weapons {
		dmg, cost := inv.WeaponStats(w, flyingTarget, settings)
		if dmg <= 0 {
			continue
		}
		if cost == 0 {
			return 0, true
		}
		candidates = append(candidates, stats{w, dmg, cost, dmg / cost})
	}
	if len(candidates) == 0 {
		return 0, false
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.perEnergy > best.perEnergy {
			best = c
		}
	}

	fullHits := math.Floor(health / best.damage)
	remaining := health - fullHits*best.damage
	totalCost := fullHits * best.cost

	if remaining <= 0 {
		return totalCost, true
	}

	bestPartial := math.Inf(1)
	for _, c := range candidates {
		hitsNeeded := math.Ceil(remaining / c.damage)
		partialCost := hitsNeeded * c.cost
		if partialCost < bestPartial {
			bestPartial = partialCost
		}
	}
	return totalCost + bestPartial, true
}
