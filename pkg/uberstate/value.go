package uberstate

import "fmt"

// Kind tags the type a Value carries.
type Kind int

const (
	Boolean Kind = iota
	Integer
	Float
)

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "Boolean"
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Value is a tagged union of Boolean, Integer, Float — the three scalar
// types an uberState may hold (spec.md §3).
type Value struct {
	Kind    Kind
	Boolean bool
	Integer int32
	Float   float64
}

func BoolValue(v bool) Value    { return Value{Kind: Boolean, Boolean: v} }
func IntValue(v int32) Value    { return Value{Kind: Integer, Integer: v} }
func FloatValue(v float64) Value { return Value{Kind: Float, Float: v} }

// Equal compares two values of the same Kind. Values of differing Kind are
// never equal; no type coercion is performed (spec.md §4.2).
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case Boolean:
		return v.Boolean == other.Boolean
	case Integer:
		return v.Integer == other.Integer
	case Float:
		return v.Float == other.Float
	default:
		return false
	}
}

// Less reports whether v is strictly less than other, used by the
// monotonicity guard (prevent_uber_state_change, spec.md §4.5/§8 property 8).
// Only meaningful between values of the same Kind.
func (v Value) Less(other Value) bool {
	switch v.Kind {
	case Boolean:
		return !v.Boolean && other.Boolean
	case Integer:
		return v.Integer < other.Integer
	case Float:
		return v.Float < other.Float
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.Kind {
	case Boolean:
		return fmt.Sprintf("%t", v.Boolean)
	case Integer:
		return fmt.Sprintf("%d", v.Integer)
	case Float:
		return fmt.Sprintf("%g", v.Float)
	default:
		return "?"
	}
}
