package inventory

import (
	"fmt"

	"github.com/dshills/wotwseedgen/pkg/uberstate"
)

// Skill is a learnable ability, including the weapon skills used by the
// damage/energy-cost formulas in spec.md §4.1.
type Skill int

const (
	Bash Skill = iota
	DoubleJump
	Launch
	Glide
	WaterBreath
	Grapple
	Dash
	WaterDash
	Burrow
	Flap
	Regenerate
	Sword
	Hammer
	Bow
	Spear
	Sentry
	Blaze
	Flash
	Grenade
	Shuriken
	AncestralLight1
	AncestralLight2
)

var skillNames = [...]string{
	"Bash", "DoubleJump", "Launch", "Glide", "WaterBreath", "Grapple", "Dash",
	"WaterDash", "Burrow", "Flap", "Regenerate", "Sword", "Hammer", "Bow",
	"Spear", "Sentry", "Blaze", "Flash", "Grenade", "Shuriken",
	"AncestralLight1", "AncestralLight2",
}

func (s Skill) String() string {
	if int(s) < 0 || int(s) >= len(skillNames) {
		return fmt.Sprintf("Skill(%d)", int(s))
	}
	return skillNames[s]
}

// IsWeapon reports whether this skill is one of the weapons destroy_cost and
// weapon_stats iterate over (spec.md §4.1).
func (s Skill) IsWeapon() bool {
	switch s {
	case Sword, Hammer, Bow, Spear, Sentry, Blaze, Flash, Grenade, Shuriken:
		return true
	default:
		return false
	}
}

// UberIdentifier returns the uberState this skill's ownership flag is stored
// under.
func (s Skill) UberIdentifier() uberstate.Identifier {
	return uberstate.Identifier{Group: 5, Member: int32(s)}
}

// PoolCost is the cost used for pool-rejection and progression weighting
// (spec.md §4.6), ported from original_source/wotw_seedgen/src/generator/cost.rs.
func (s Skill) PoolCost() uint32 {
	switch s {
	case Bash:
		return 200
	case DoubleJump:
		return 750
	case Launch:
		return 40000
	case Glide:
		return 1250
	case WaterBreath:
		return 200
	case Grapple:
		return 1250
	case Dash:
		return 500
	case WaterDash:
		return 500
	case Burrow:
		return 1500
	case Flap:
		return 200
	case Regenerate:
		return 200
	case Sword:
		return 250
	case Hammer:
		return 750
	case Bow:
		return 300
	case Spear:
		return 4000
	case Sentry:
		return 2500
	case Blaze:
		return 1800
	case Flash:
		return 400
	case Grenade:
		return 600
	case Shuriken:
		return 800
	case AncestralLight1, AncestralLight2:
		return 1000
	default:
		return 1000
	}
}

// baseDamage is the base hit damage of a weapon skill at the given
// difficulty (spec.md §4.1 damage_mod/weapon_stats), ported from
// original_source/wotw_seedgen_data/src/lib.rs Skill::damage.
func (s Skill) baseDamage(unsafeDifficulty bool) float64 {
	switch s {
	case Sword:
		return 17.25
	case Hammer:
		if unsafeDifficulty {
			return 288
		}
		return 240
	case Bow:
		return 25
	case Spear:
		if unsafeDifficulty {
			return 65
		}
		return 52
	case Sentry:
		return 17.25
	case Blaze:
		return 9
	case Flash:
		return 24
	case Grenade:
		if unsafeDifficulty {
			return 200
		}
		return 130
	case Shuriken:
		return 25
	default:
		return 0
	}
}

// burnDamage is additional damage-over-time a weapon deals (only Grenade and
// Blaze carry burn in the original tables); added after damage_mod in
// weapon_stats (spec.md §4.1).
func (s Skill) burnDamage() float64 {
	switch s {
	case Grenade:
		return 90
	case Blaze:
		return 40.5
	default:
		return 0
	}
}

// energyCost is the base energy cost per use of a weapon skill, ported from
// original_source/wotw_seedgen_data/src/lib.rs Skill::energy_cost.
func (s Skill) energyCost() float64 {
	switch s {
	case Sword:
		return 0
	case Hammer:
		return 0
	case Bow:
		return 0.25
	case Spear:
		return 1
	case Sentry:
		return 1
	case Blaze:
		return 1
	case Flash:
		return 1
	case Grenade:
		return 1
	case Shuriken:
		return 0.5
	default:
		return 0
	}
}
