package world

import "github.com/dshills/wotwseedgen/pkg/uberstate"

// preventUberStateChange is the monotone-quest guard table (spec.md §4.5,
// §8 property 8): writes that would regress Wellspring-quest or Ku-quest
// below their current value are dropped. Ported from the hard-coded match
// arms in original_source/wotw_seedgen/src/world/simulate.rs.
func preventUberStateChange(store *uberstate.Store, id uberstate.Identifier, next uberstate.Value) bool {
	switch id {
	case uberstate.WellspringQuest, uberstate.KuQuest:
		current := store.Get(id)
		if current.Kind == next.Kind && next.Less(current) {
			return false
		}
	}
	return true
}

// applyUberStateSideEffects propagates game-engine-equivalent effects that
// the client applies automatically alongside a state write (spec.md §4.5).
// Ported from the hard-coded table in simulate.rs: marking Luma arena 2
// complete also marks arena 1 complete; completing the Wellspring escape
// advances its quest state to 3.
func applyUberStateSideEffects(store *uberstate.Store, id uberstate.Identifier, value uberstate.Value) {
	switch id {
	case uberstate.LumaPoolsArena2:
		if value.Kind == uberstate.Boolean && value.Boolean {
			store.Set(uberstate.LumaPoolsArena1, uberstate.BoolValue(true))
		}
	case uberstate.WellspringEscape:
		if value.Kind == uberstate.Boolean && value.Boolean {
			store.Set(uberstate.WellspringQuest, uberstate.IntValue(3))
		}
	}
}
