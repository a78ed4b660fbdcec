package inventory

import (
	"testing"

	"pgregory.net/rapid"
)

// genInventory builds a small random Inventory of gorlek ore + spirit light,
// enough to exercise Sum/Sub/Contains without dragging in every field.
func genInventory(t *rapid.T, label string) Inventory {
	inv := New()
	inv.Add(GorlekOre, int32(rapid.IntRange(0, 100).Draw(t, label+"_ore")))
	inv.SpiritLight = int32(rapid.IntRange(0, 1000).Draw(t, label+"_sl"))
	return inv
}

// TestContainsAfterSum is spec.md §8 property 10: Sum(a, delta) must
// dominate both a and delta.
func TestContainsAfterSum(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genInventory(t, "a")
		b := genInventory(t, "b")
		summed := Sum(a, b)
		if !summed.Contains(a) {
			t.Fatalf("sum must dominate left operand")
		}
		if !summed.Contains(b) {
			t.Fatalf("sum must dominate right operand")
		}
	})
}

// TestSpiritLightNeverNegative: spec.md §3 invariant — spirit light is never
// negative after any sequence of additions/subtractions.
func TestSpiritLightNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		inv := New()
		steps := rapid.IntRange(0, 20).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			delta := int32(rapid.IntRange(-500, 500).Draw(t, "delta"))
			inv.AddSpiritLight(delta)
			if inv.SpiritLight < 0 {
				t.Fatalf("spirit light went negative: %d", inv.SpiritLight)
			}
		}
	})
}
