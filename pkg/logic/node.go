// Package logic models the world graph the reachability engine traverses:
// an index-addressed set of Nodes connected by Edges guarded by
// Requirements (spec.md §3, §9 — "Graph + node back-references... Keep
// this: nodes are borrowed by index").
//
// Grounded on the teacher's pkg/graph.Graph (map-keyed rooms/connectors/
// adjacency, BFS/DFS traversal idiom), re-keyed to the spec's index-based
// representation.
package logic

import (
	"fmt"

	"github.com/dshills/wotwseedgen/pkg/inventory"
	"github.com/dshills/wotwseedgen/pkg/uberstate"
)

// NodeKind tags the variant of a graph Node (spec.md §3).
type NodeKind int

const (
	KindAnchor NodeKind = iota
	KindPickup
	KindState
	KindLogicalState
	KindRefill
)

func (k NodeKind) String() string {
	switch k {
	case KindAnchor:
		return "Anchor"
	case KindPickup:
		return "Pickup"
	case KindState:
		return "State"
	case KindLogicalState:
		return "LogicalState"
	case KindRefill:
		return "Refill"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Node is one vertex of the world graph.
type Node struct {
	Kind NodeKind
	// ID is a stable string identifier, unique within the graph.
	ID string
	// UberIdentifier is set for nodes that read/write uberState (Pickup,
	// State nodes almost always; Anchor/LogicalState/Refill rarely).
	UberIdentifier *uberstate.Identifier
	// Zone is an optional area tag used for preplacement and naming.
	Zone string
	// CanPlace is true only for Pickup nodes.
	CanPlace bool
	// CanSpawn is true for anchors valid as a randomized spawn point.
	CanSpawn bool
	// Condition derives this node's reachability beyond edge traversal
	// (used by State/LogicalState nodes that are "reached" purely by a
	// boolean expression over uberStates rather than graph connectivity).
	Condition *Requirement
	// Refill is set for Refill nodes.
	Refill *inventory.Refill
}

// Edge connects a source node (implicit, by Graph.Edges index) to a
// destination node, guarded by a Requirement.
type Edge struct {
	To  int
	Req *Requirement
}
