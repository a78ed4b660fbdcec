package command

import (
	"testing"

	"github.com/dshills/wotwseedgen/pkg/uberstate"
)

func TestContainedUberIdentifiersCondition(t *testing.T) {
	a := uberstate.Identifier{Group: 1, Member: 2}
	b := uberstate.Identifier{Group: 3, Member: 4}
	cond := &CommandBoolean{
		Kind: BoolLogic,
		Operator: LogicAnd,
		Children: []*CommandBoolean{
			FetchBoolean(a),
			{Kind: BoolCompareInteger, Left: FetchInteger(b), Right: ConstantInteger(1), Comparator: Equal},
		},
	}
	ids := ContainedUberIdentifiers(cond)
	if len(ids) != 2 {
		t.Fatalf("expected 2 contained identifiers, got %d: %v", len(ids), ids)
	}
}

func TestCommonItemCost(t *testing.T) {
	item := SpiritLightItem(250)
	if item.Cost() != 250 {
		t.Fatalf("spirit light cost should equal its amount, got %d", item.Cost())
	}
}
