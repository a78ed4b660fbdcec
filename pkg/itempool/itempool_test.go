package itempool

import (
	"testing"

	"github.com/dshills/wotwseedgen/pkg/command"
	"github.com/dshills/wotwseedgen/pkg/inventory"
	"github.com/dshills/wotwseedgen/pkg/rng"
)

func TestDefaultPoolCounts(t *testing.T) {
	p := Default()
	// 24 + 24 + 40 + 34 + 5 resources, 22 skills, 11 shards, 4 weapon upgrades, 1 clean water.
	want := 24 + 24 + 40 + 34 + 5 + 22 + 11 + 4 + 1
	if p.Len() != want {
		t.Fatalf("expected %d items in default pool, got %d", want, p.Len())
	}
	if !p.Aggregated.Skills[inventory.Bash] {
		t.Fatalf("expected aggregated inventory to contain Bash")
	}
}

func TestChangeNegativeRemoves(t *testing.T) {
	p := New()
	p.Change(command.SkillItem(inventory.Bash), 3)
	if p.Len() != 3 {
		t.Fatalf("expected 3 items, got %d", p.Len())
	}
	p.Change(command.SkillItem(inventory.Bash), -2)
	if p.Len() != 1 {
		t.Fatalf("expected 1 item after removal, got %d", p.Len())
	}
	if !p.Aggregated.Skills[inventory.Bash] {
		t.Fatalf("one copy should remain, aggregated should still reflect ownership")
	}
}

func TestChooseRandomDrainsPool(t *testing.T) {
	p := New()
	p.Change(command.SkillItem(inventory.Bash), 1)
	p.Change(command.SkillItem(inventory.DoubleJump), 1)

	r := rng.NewFromSeedString("itempool-test")
	seen := map[string]bool{}
	for p.Len() > 0 {
		item, ok := p.ChooseRandom(r)
		if !ok {
			t.Fatalf("expected an item")
		}
		seen[item.Key()] = true
	}
	if len(seen) != 2 {
		t.Fatalf("expected both items drawn, got %d distinct", len(seen))
	}
}

func TestDrainReturnsAllAndEmpties(t *testing.T) {
	p := New()
	for i := 0; i < 5; i++ {
		p.Change(command.ResourceItem(inventory.GorlekOre, 1), 1)
	}
	r := rng.NewFromSeedString("drain-test")
	out := p.Drain(r)
	if len(out) != 5 {
		t.Fatalf("expected 5 drained items, got %d", len(out))
	}
	if !p.IsEmpty() {
		t.Fatalf("expected pool to be empty after drain")
	}
}
