package uberstate

import "testing"

func TestStore_GetDefault(t *testing.T) {
	s := NewStore(map[Identifier]Value{
		SpiritLight: IntValue(0),
		CleanWater:  BoolValue(false),
	})
	if v := s.Get(SpiritLight); !v.Equal(IntValue(0)) {
		t.Fatalf("expected default 0, got %v", v)
	}
}

func TestStore_UnknownFallback(t *testing.T) {
	s := NewStore(nil)
	unknown := Identifier{Group: 99, Member: 99}
	if s.Contains(unknown) {
		t.Fatalf("unknown identifier must not be registered before first access")
	}
	v := s.Get(unknown)
	if !v.Equal(BoolValue(false)) {
		t.Fatalf("unknown identifier must fall back to Boolean(false), got %v", v)
	}
	if !s.Contains(unknown) {
		t.Fatalf("fallback access must register the entry")
	}
}

func TestStore_SetUnchangedYieldsNoTriggers(t *testing.T) {
	s := NewStore(map[Identifier]Value{SpiritLight: IntValue(5)})
	idx := s.NewTriggerIndex()
	s.BindTrigger(SpiritLight, idx)

	if triggers := s.Set(SpiritLight, IntValue(5)); triggers != nil {
		t.Fatalf("setting the same value must yield no triggers, got %v", triggers)
	}
}

func TestStore_SetChangedYieldsTriggersInRegistrationOrder(t *testing.T) {
	s := NewStore(map[Identifier]Value{SpiritLight: IntValue(0)})
	first := s.NewTriggerIndex()
	s.BindTrigger(SpiritLight, first)
	second := s.NewTriggerIndex()
	s.BindTrigger(SpiritLight, second)

	triggers := s.Set(SpiritLight, IntValue(1))
	if len(triggers) != 2 || triggers[0] != first || triggers[1] != second {
		t.Fatalf("expected [%d %d], got %v", first, second, triggers)
	}
	if v := s.Get(SpiritLight); !v.Equal(IntValue(1)) {
		t.Fatalf("value not updated: %v", v)
	}
}

func TestStore_SetDifferingKindAlwaysCounts(t *testing.T) {
	s := NewStore(map[Identifier]Value{SpiritLight: IntValue(0)})
	idx := s.NewTriggerIndex()
	s.BindTrigger(SpiritLight, idx)

	triggers := s.Set(SpiritLight, BoolValue(false))
	if len(triggers) != 1 {
		t.Fatalf("a differing-kind write must always count as a change, got %v", triggers)
	}
}

func TestStore_TriggerIndicesMonotonic(t *testing.T) {
	s := NewStore(nil)
	seen := map[int]bool{}
	prev := -1
	for i := 0; i < 10; i++ {
		idx := s.NewTriggerIndex()
		if idx <= prev {
			t.Fatalf("trigger indices must be strictly increasing: %d after %d", idx, prev)
		}
		if seen[idx] {
			t.Fatalf("trigger index %d reused", idx)
		}
		seen[idx] = true
		prev = idx
	}
}

func TestValue_EqualAndLess(t *testing.T) {
	if !IntValue(3).Equal(IntValue(3)) {
		t.Fatalf("equal integers must compare equal")
	}
	if IntValue(3).Equal(FloatValue(3)) {
		t.Fatalf("differing kinds must never be equal")
	}
	if !IntValue(2).Less(IntValue(3)) {
		t.Fatalf("2 < 3 expected")
	}
	if !BoolValue(false).Less(BoolValue(true)) {
		t.Fatalf("false < true expected")
	}
	if BoolValue(true).Less(BoolValue(false)) {
		t.Fatalf("true < false must be false")
	}
}

func TestIdentifier_IsShop(t *testing.T) {
	for _, group := range []int32{1, 2, 15} {
		if !(Identifier{Group: group}).IsShop() {
			t.Fatalf("group %d must be a shop identifier", group)
		}
	}
	if (Identifier{Group: 3}).IsShop() {
		t.Fatalf("group 3 must not be a shop identifier")
	}
}

func TestIsSpawnAnchor(t *testing.T) {
	if !IsSpawnAnchor(Identifier{Group: 3, Member: 0}) {
		t.Fatalf("3|0 must be a spawn anchor")
	}
	if !IsSpawnAnchor(Identifier{Group: 3, Member: 1}) {
		t.Fatalf("3|1 must be a spawn anchor")
	}
	if IsSpawnAnchor(Identifier{Group: 3, Member: 2}) {
		t.Fatalf("3|2 must not be a spawn anchor")
	}
}
