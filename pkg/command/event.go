package command

import "github.com/dshills/wotwseedgen/pkg/uberstate"

// PseudoTrigger is a lifecycle event not tied to an uberState change.
type PseudoTrigger int

const (
	PseudoSpawn PseudoTrigger = iota
	PseudoReload
)

func (p PseudoTrigger) String() string {
	switch p {
	case PseudoSpawn:
		return "Spawn"
	case PseudoReload:
		return "Reload"
	default:
		return "Unknown"
	}
}

// TriggerKind tags a Trigger variant.
type TriggerKind int

const (
	TriggerPseudo TriggerKind = iota
	TriggerBinding
	TriggerCondition
)

// Trigger defines when an Event's Action fires.
type Trigger struct {
	Kind           TriggerKind
	Pseudo         PseudoTrigger
	UberIdentifier uberstate.Identifier
	Condition      *CommandBoolean
}

func PseudoTriggerOf(p PseudoTrigger) Trigger { return Trigger{Kind: TriggerPseudo, Pseudo: p} }
func BindingTrigger(id uberstate.Identifier) Trigger {
	return Trigger{Kind: TriggerBinding, UberIdentifier: id}
}
func ConditionTrigger(cond *CommandBoolean) Trigger {
	return Trigger{Kind: TriggerCondition, Condition: cond}
}

// ActionKind tags an Action variant.
type ActionKind int

const (
	ActionCommandKind ActionKind = iota
	ActionConditionalKind
	ActionMultiKind
)

// Action is what an Event does: execute a command, guard a nested action, or
// run a sequence of actions.
type Action struct {
	Kind ActionKind

	Command *CommandVoid // ActionCommandKind

	Condition *CommandBoolean // ActionConditionalKind guard
	Then      *Action         // ActionConditionalKind nested action

	Multi []Action // ActionMultiKind
}

func CommandAction(c *CommandVoid) Action { return Action{Kind: ActionCommandKind, Command: c} }
func ConditionalAction(cond *CommandBoolean, then Action) Action {
	return Action{Kind: ActionConditionalKind, Condition: cond, Then: &then}
}
func MultiAction(actions ...Action) Action { return Action{Kind: ActionMultiKind, Multi: actions} }

// Event pairs a Trigger with the Action it performs.
type Event struct {
	Trigger Trigger
	Action  Action
}
