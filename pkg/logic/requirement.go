package logic

import (
	"fmt"

	"github.com/dshills/wotwseedgen/pkg/inventory"
)

// ReqKind tags the variant of a Requirement expression tree (spec.md §3:
// "the recursive logic-expression tree").
type ReqKind int

const (
	ReqFree ReqKind = iota
	ReqImpossible
	ReqSkill
	ReqShard
	ReqResource
	ReqDifficulty
	ReqDamage
	ReqEnergyCost
	ReqCombat
	ReqLogicState
	ReqAnd
	ReqOr
)

// Requirement is the recursive logic-expression tree evaluated against an
// inventory and a set of input orb states, producing the set of orb-sets
// that remain after satisfying the requirement — an empty result means
// unsatisfiable (spec.md §3, §4.4).
type Requirement struct {
	Kind ReqKind

	Skill      inventory.Skill
	Shard      inventory.Shard
	Resource   inventory.Resource
	Count      int32
	Difficulty inventory.Difficulty

	Amount float64 // Damage / EnergyCost / Combat health amount
	Flying bool    // Damage / Combat target-is-flying flag

	LogicState int // index into World.logic_states

	Children []*Requirement // And / Or
}

func Free() *Requirement      { return &Requirement{Kind: ReqFree} }
func Impossible() *Requirement { return &Requirement{Kind: ReqImpossible} }

func SkillReq(s inventory.Skill) *Requirement { return &Requirement{Kind: ReqSkill, Skill: s} }
func ShardReq(s inventory.Shard) *Requirement { return &Requirement{Kind: ReqShard, Shard: s} }
func ResourceReq(r inventory.Resource, count int32) *Requirement {
	return &Requirement{Kind: ReqResource, Resource: r, Count: count}
}
func DifficultyReq(d inventory.Difficulty) *Requirement {
	return &Requirement{Kind: ReqDifficulty, Difficulty: d}
}
func DamageReq(amount float64) *Requirement { return &Requirement{Kind: ReqDamage, Amount: amount} }
func EnergyCostReq(amount float64) *Requirement {
	return &Requirement{Kind: ReqEnergyCost, Amount: amount}
}
func CombatReq(health float64, flying bool) *Requirement {
	return &Requirement{Kind: ReqCombat, Amount: health, Flying: flying}
}
func LogicStateReq(idx int) *Requirement { return &Requirement{Kind: ReqLogicState, LogicState: idx} }
func And(children ...*Requirement) *Requirement {
	return &Requirement{Kind: ReqAnd, Children: children}
}
func Or(children ...*Requirement) *Requirement {
	return &Requirement{Kind: ReqOr, Children: children}
}

// EvalContext bundles everything Requirement.Evaluate needs beyond the
// inventory: world settings and the set of currently-reached logic states.
type EvalContext struct {
	Settings    inventory.Settings
	LogicStates map[int]bool
}

// Evaluate returns the orb-set variants that remain after satisfying r,
// given inv and the incoming variants. An empty (nil) result means r is
// unsatisfiable with every incoming variant (spec.md §4.4).
func (r *Requirement) Evaluate(inv inventory.Inventory, variants []inventory.Orbs, ctx EvalContext) []inventory.Orbs {
	if r == nil || len(variants) == 0 {
		return variants
	}
	switch r.Kind {
	case ReqFree:
		return variants
	case ReqImpossible:
		return nil
	case ReqSkill:
		if inv.Skills[r.Skill] {
			return variants
		}
		return nil
	case ReqShard:
		if inv.Shards[r.Shard] {
			return variants
		}
		return nil
	case ReqResource:
		if inv.Get(r.Resource) >= r.Count {
			return variants
		}
		return nil
	case ReqDifficulty:
		if ctx.Settings.Difficulty.AtLeast(r.Difficulty) {
			return variants
		}
		return nil
	case ReqLogicState:
		if ctx.LogicStates[r.LogicState] {
			return variants
		}
		return nil
	case ReqDamage:
		return r.evaluateDamage(inv, variants, ctx)
	case ReqEnergyCost:
		return r.evaluateEnergyCost(inv, variants, ctx)
	case ReqCombat:
		return r.evaluateCombat(inv, variants, ctx)
	case ReqAnd:
		out := variants
		for _, child := range r.Children {
			out = child.Evaluate(inv, out, ctx)
			if len(out) == 0 {
				return nil
			}
		}
		return out
	case ReqOr:
		var out []inventory.Orbs
		for _, child := range r.Children {
			out = append(out, child.Evaluate(inv, variants, ctx)...)
		}
		return out
	default:
		panic(fmt.Sprintf("logic: unknown requirement kind %d", r.Kind))
	}
}

func (r *Requirement) evaluateDamage(inv inventory.Inventory, variants []inventory.Orbs, ctx EvalContext) []inventory.Orbs {
	mod := inv.DefenseMod(ctx.Settings)
	cost := r.Amount * mod
	var out []inventory.Orbs
	for _, v := range variants {
		if v.Health > cost {
			out = append(out, inventory.Orbs{Health: v.Health - cost, Energy: v.Energy})
		}
	}
	return out
}

func (r *Requirement) evaluateEnergyCost(inv inventory.Inventory, variants []inventory.Orbs, ctx EvalContext) []inventory.Orbs {
	cost := r.Amount * inv.EnergyMod(ctx.Settings)
	var out []inventory.Orbs
	for _, v := range variants {
		if v.Energy >= cost {
			out = append(out, inventory.Orbs{Health: v.Health, Energy: v.Energy - cost})
		}
	}
	return out
}

func (r *Requirement) evaluateCombat(inv inventory.Inventory, variants []inventory.Orbs, ctx EvalContext) []inventory.Orbs {
	cost, ok := inv.DestroyCost(r.Amount, r.Flying, ctx.Settings)
	if !ok {
		return nil
	}
	var out []inventory.Orbs
	for _, v := range variants {
		if v.Energy >= cost {
			out = append(out, inventory.Orbs{Health: v.Health, Energy: v.Energy - cost})
		}
	}
	return out
}
