package command

import (
	"github.com/dshills/wotwseedgen/pkg/data"
	"github.com/dshills/wotwseedgen/pkg/uberstate"
)

// ArithmeticOperator / Comparator / LogicOperator mirror the small operator
// enums carried alongside the Command tree in the original source.
type ArithmeticOperator int

const (
	Add ArithmeticOperator = iota
	Subtract
	Multiply
	Divide
)

type Comparator int

const (
	Equal Comparator = iota
	NotEqual
	Less
	LessOrEqual
	Greater
	GreaterOrEqual
)

type LogicOperator int

const (
	LogicAnd LogicOperator = iota
	LogicOr
)

// BooleanKind tags a CommandBoolean variant.
type BooleanKind int

const (
	BoolConstant BooleanKind = iota
	BoolFetch
	BoolCompareInteger
	BoolCompareFloat
	BoolLogic
	BoolGetVariable
)

// CommandBoolean is the boolean-typed command expression tree.
type CommandBoolean struct {
	Kind BooleanKind

	Value          bool
	UberIdentifier uberstate.Identifier

	Left, Right *CommandInteger
	LeftF, RightF *CommandFloat
	Comparator  Comparator

	Operator LogicOperator
	Children []*CommandBoolean

	VariableID int
}

// IntegerKind tags a CommandInteger variant.
type IntegerKind int

const (
	IntConstant IntegerKind = iota
	IntFetch
	IntArithmetic
	IntGetVariable
)

// CommandInteger is the integer-typed command expression tree.
type CommandInteger struct {
	Kind IntegerKind

	Value          int32
	UberIdentifier uberstate.Identifier

	Left, Right *CommandInteger
	Operator    ArithmeticOperator

	VariableID int
}

// FloatKind tags a CommandFloat variant.
type FloatKind int

const (
	FloatConstant FloatKind = iota
	FloatFetch
	FloatArithmetic
	FloatGetVariable
)

// CommandFloat is the float-typed command expression tree.
type CommandFloat struct {
	Kind FloatKind

	Value          float64
	UberIdentifier uberstate.Identifier

	Left, Right *CommandFloat
	Operator    ArithmeticOperator

	VariableID int
}

// StringKind tags a CommandString variant.
type StringKind int

const (
	StringConstant StringKind = iota
	StringConcat
	StringGetVariable
)

// CommandString is the string-typed command expression tree.
type CommandString struct {
	Kind       StringKind
	Value      string
	Children   []*CommandString
	VariableID int
}

func ConstantString(v string) *CommandString { return &CommandString{Kind: StringConstant, Value: v} }

// Icon tags a displayable icon reference (map icon / shop icon / wheel).
type Icon struct {
	Path string
}

// CommandIcon wraps a constant icon (the tree never needs to compute one).
type CommandIcon struct {
	Value Icon
}

// VoidKind tags a CommandVoid (statement) variant.
type VoidKind int

const (
	VoidStoreBoolean VoidKind = iota
	VoidStoreInteger
	VoidStoreFloat
	VoidSetBooleanVar
	VoidSetIntegerVar
	VoidSetFloatVar
	VoidSetStringVar
	VoidItemMessage
	VoidSetSpoilerMapIcon
	VoidSetShopItemPrice
	VoidSetShopItemName
	VoidSetShopItemDescription
	VoidSetShopItemIcon
	VoidGrantItem
	VoidLookup
	VoidMulti
)

// CommandVoid is the statement-typed command tree: the only node kinds that
// mutate world state.
type CommandVoid struct {
	Kind VoidKind

	UberIdentifier uberstate.Identifier
	BoolValue      *CommandBoolean
	IntValue       *CommandInteger
	FloatValue     *CommandFloat
	CheckTriggers  bool

	VariableID  int
	StringValue *CommandString

	Message string // ItemMessage payload (used for cross-world notification text)

	SpoilerMapIcon data.MapIcon
	Label          string

	ShopPrice       *CommandInteger
	ShopName        *CommandString
	ShopDescription *CommandString
	ShopIcon        *CommandIcon

	Item CommonItem

	LookupIndex int
	Multi       []*CommandVoid
}

func StoreBoolean(id uberstate.Identifier, value *CommandBoolean, checkTriggers bool) *CommandVoid {
	return &CommandVoid{Kind: VoidStoreBoolean, UberIdentifier: id, BoolValue: value, CheckTriggers: checkTriggers}
}
func StoreInteger(id uberstate.Identifier, value *CommandInteger, checkTriggers bool) *CommandVoid {
	return &CommandVoid{Kind: VoidStoreInteger, UberIdentifier: id, IntValue: value, CheckTriggers: checkTriggers}
}
func StoreFloat(id uberstate.Identifier, value *CommandFloat, checkTriggers bool) *CommandVoid {
	return &CommandVoid{Kind: VoidStoreFloat, UberIdentifier: id, FloatValue: value, CheckTriggers: checkTriggers}
}
func GrantItem(item CommonItem) *CommandVoid {
	return &CommandVoid{Kind: VoidGrantItem, Item: item}
}
func ItemMessage(text string) *CommandVoid {
	return &CommandVoid{Kind: VoidItemMessage, Message: text}
}
func MultiVoid(children ...*CommandVoid) *CommandVoid {
	return &CommandVoid{Kind: VoidMulti, Multi: children}
}
func SetSpoilerMapIcon(id uberstate.Identifier, icon data.MapIcon, label string) *CommandVoid {
	return &CommandVoid{Kind: VoidSetSpoilerMapIcon, UberIdentifier: id, SpoilerMapIcon: icon, Label: label}
}

// ConstantBoolean / ConstantInteger are small constructors used pervasively
// by the placement engine and tests.
func ConstantBoolean(v bool) *CommandBoolean { return &CommandBoolean{Kind: BoolConstant, Value: v} }
func FetchBoolean(id uberstate.Identifier) *CommandBoolean {
	return &CommandBoolean{Kind: BoolFetch, UberIdentifier: id}
}
func ConstantInteger(v int32) *CommandInteger { return &CommandInteger{Kind: IntConstant, Value: v} }
func FetchInteger(id uberstate.Identifier) *CommandInteger {
	return &CommandInteger{Kind: IntFetch, UberIdentifier: id}
}

// ContainedUberIdentifiers walks a CommandBoolean tree and returns every
// UberIdentifier appearing in a Fetch* node, used once at trigger
// registration time for Condition triggers.
func ContainedUberIdentifiers(b *CommandBoolean) []uberstate.Identifier {
	if b == nil {
		return nil
	}
	var out []uberstate.Identifier
	switch b.Kind {
	case BoolFetch:
		out = append(out, b.UberIdentifier)
	case BoolCompareInteger:
		out = append(out, containedInInteger(b.Left)...)
		out = append(out, containedInInteger(b.Right)...)
	case BoolCompareFloat:
		out = append(out, containedInFloat(b.LeftF)...)
		out = append(out, containedInFloat(b.RightF)...)
	case BoolLogic:
		for _, c := range b.Children {
			out = append(out, ContainedUberIdentifiers(c)...)
		}
	}
	return out
}

func containedInInteger(i *CommandInteger) []uberstate.Identifier {
	if i == nil {
		return nil
	}
	switch i.Kind {
	case IntFetch:
		return []uberstate.Identifier{i.UberIdentifier}
	case IntArithmetic:
		return append(containedInInteger(i.Left), containedInInteger(i.Right)...)
	default:
		return nil
	}
}

func containedInFloat(f *CommandFloat) []uberstate.Identifier {
	if f == nil {
		return nil
	}
	switch f.Kind {
	case FloatFetch:
		return []uberstate.Identifier{f.UberIdentifier}
	case FloatArithmetic:
		return append(containedInFloat(f.Left), containedInFloat(f.Right)...)
	default:
		return nil
	}
}
