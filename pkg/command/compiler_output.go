package command

import "github.com/dshills/wotwseedgen/pkg/data"

// ItemMetadata carries the optional presentation overrides a snippet may
// attach to an item.
type ItemMetadata struct {
	Name        *string
	Price       *CommandInteger
	Description *CommandString
	Icon        *CommandIcon
	MapIcon     *data.MapIcon
}

// Preplacement is a (item, zone) forced placement from the snippet's
// preplacements list.
type Preplacement struct {
	Item CommonItem
	Zone string
}

// CompilerOutput is the per-world result of compiling a set of snippets: the
// boundary type the placement core consumes and augments. The core requires
// Success == true.
type CompilerOutput struct {
	Spawn            *string
	Events           []Event
	ActionLookup     []Action
	Flags            map[string]bool
	ItemPoolChanges  map[string]int32 // keyed by CommonItem.Key()
	ItemPoolItems    map[string]CommonItem
	ItemMetadata     map[string]ItemMetadata
	LogicalStateSets map[string]bool
	Preplacements    []Preplacement
	Success          bool
}

// NewCompilerOutput returns an empty, successful CompilerOutput — the
// default a core-only caller (e.g. tests, or a no-snippet generation) uses.
func NewCompilerOutput() *CompilerOutput {
	return &CompilerOutput{
		Flags:            make(map[string]bool),
		ItemPoolChanges:  make(map[string]int32),
		ItemPoolItems:    make(map[string]CommonItem),
		ItemMetadata:     make(map[string]ItemMetadata),
		LogicalStateSets: make(map[string]bool),
		Success:          true,
	}
}

// AddItemPoolChange records a delta (positive = add, negative = remove) for
// an item in the world's starting pool.
func (o *CompilerOutput) AddItemPoolChange(item CommonItem, delta int32) {
	key := item.Key()
	o.ItemPoolItems[key] = item
	o.ItemPoolChanges[key] += delta
}

// AppendEvent appends an event and returns its index in Events.
func (o *CompilerOutput) AppendEvent(e Event) int {
	o.Events = append(o.Events, e)
	return len(o.Events) - 1
}
