package logic

import (
	"testing"

	"github.com/dshills/wotwseedgen/pkg/inventory"
)

func TestAddEdgeOutOfRange(t *testing.T) {
	g := NewGraph()
	g.AddNode(Node{ID: "spawn", Kind: KindAnchor, CanSpawn: true})
	if err := g.AddEdge(0, 5, nil); err == nil {
		t.Fatalf("expected error for out-of-range destination")
	}
}

func TestRequirementAndShortCircuits(t *testing.T) {
	inv := inventory.New()
	req := And(SkillReq(inventory.Bash), SkillReq(inventory.DoubleJump))
	ctx := EvalContext{Settings: inventory.Settings{Difficulty: inventory.Moki}}
	variants := []inventory.Orbs{{Health: 20, Energy: 0}}

	if out := req.Evaluate(inv, variants, ctx); len(out) != 0 {
		t.Fatalf("expected no solutions without either skill")
	}

	inv.Skills[inventory.Bash] = true
	inv.Skills[inventory.DoubleJump] = true
	if out := req.Evaluate(inv, variants, ctx); len(out) != 1 {
		t.Fatalf("expected one surviving variant, got %d", len(out))
	}
}

func TestRequirementDamageConsumesHealth(t *testing.T) {
	inv := inventory.New()
	req := DamageReq(10)
	ctx := EvalContext{Settings: inventory.Settings{Difficulty: inventory.Moki}}

	out := req.Evaluate(inv, []inventory.Orbs{{Health: 20, Energy: 0}}, ctx)
	if len(out) != 1 || out[0].Health != 10 {
		t.Fatalf("expected 10 health remaining, got %+v", out)
	}

	out = req.Evaluate(inv, []inventory.Orbs{{Health: 5, Energy: 0}}, ctx)
	if len(out) != 0 {
		t.Fatalf("insufficient health must yield no solutions, got %+v", out)
	}
}

func TestRequirementOrUnion(t *testing.T) {
	inv := inventory.New()
	inv.Skills[inventory.Bash] = true
	req := Or(SkillReq(inventory.Bash), SkillReq(inventory.DoubleJump))
	ctx := EvalContext{Settings: inventory.Settings{Difficulty: inventory.Moki}}
	out := req.Evaluate(inv, []inventory.Orbs{{Health: 10}}, ctx)
	if len(out) != 1 {
		t.Fatalf("expected the Bash branch to satisfy the Or, got %d", len(out))
	}
}
