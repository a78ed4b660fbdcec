package world

import (
	"github.com/dshills/wotwseedgen/pkg/inventory"
	"github.com/dshills/wotwseedgen/pkg/logic"
)

// ProgressionRecord pairs an unmet requirement with the best orbs available
// at the anchor where it was encountered (spec.md §4.4).
type ProgressionRecord struct {
	Req      *logic.Requirement
	BestOrbs inventory.Orbs
}

// ReachedLocations is the result of a reached_and_progressions traversal.
type ReachedLocations struct {
	Reached      []int
	Progressions []ProgressionRecord
}

// Reached expands the graph from the spawn anchor with initial orb set
// {max_orbs}, returning every reached node index (spec.md §4.4). Nodes are
// expanded breadth-first from a FIFO work queue, not depth-first. The
// traversal never fails: unreachable nodes are simply absent.
func (w *World) Reached() []int {
	return w.traverse(false).Reached
}

// ReachedAndProgressions runs the same traversal in progression mode,
// additionally recording every unsatisfied edge requirement along with the
// best orbs available there (spec.md §4.4).
func (w *World) ReachedAndProgressions() ReachedLocations {
	return w.traverse(true)
}

func (w *World) traverse(progressionMode bool) ReachedLocations {
	visited := map[int][]inventory.Orbs{}
	reachedSet := map[int]bool{}
	var progressions []ProgressionRecord

	evalCtx := logic.EvalContext{Settings: w.Player.Settings, LogicStates: w.LogicStates}

	queue := []int{w.Spawn}
	visited[w.Spawn] = []inventory.Orbs{w.Player.MaxOrbs()}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		reachedSet[n] = true

		variants := visited[n]
		node := w.Graph.Node(n)
		if node.Kind == logic.KindRefill && node.Refill != nil {
			variants = node.Refill.Apply(variants, w.Player.Inventory, w.Player.Settings.Difficulty)
			visited[n] = variants
		}

		for _, edge := range w.Graph.Edges[n] {
			out := edge.Req.Evaluate(w.Player.Inventory, variants, evalCtx)
			if len(out) == 0 {
				if progressionMode {
					progressions = append(progressions, ProgressionRecord{
						Req:      edge.Req,
						BestOrbs: bestOrbs(variants),
					})
				}
				continue
			}
			merged, changed := mergeOrbVariants(visited[edge.To], out)
			if changed {
				visited[edge.To] = merged
				queue = append(queue, edge.To)
			}
		}
	}

	w.reachedByTeleporter(reachedSet, &queue, visited, progressionMode, &progressions, evalCtx)

	reached := make([]int, 0, len(reachedSet))
	for idx := range reachedSet {
		reached = append(reached, idx)
	}
	return ReachedLocations{Reached: reached, Progressions: progressions}
}

// reachedByTeleporter treats every owned teleporter as an additional
// spawn-equivalent starting anchor in a second pass, so acquired fast-travel
// points expand reach (spec.md §4.4). Teleporter anchors are located by
// matching a node's UberIdentifier to the teleporter's identifier.
func (w *World) reachedByTeleporter(reachedSet map[int]bool, queue *[]int, visited map[int][]inventory.Orbs, progressionMode bool, progressions *[]ProgressionRecord, evalCtx logic.EvalContext) {
	for t, owned := range w.Player.Inventory.Teleporters {
		if !owned {
			continue
		}
		id := t.UberIdentifier()
		for i, node := range w.Graph.Nodes {
			if node.Kind != logic.KindAnchor || node.UberIdentifier == nil || *node.UberIdentifier != id {
				continue
			}
			if _, ok := visited[i]; !ok {
				visited[i] = []inventory.Orbs{w.Player.MaxOrbs()}
				*queue = append(*queue, i)
			}
		}
	}

	for len(*queue) > 0 {
		n := (*queue)[0]
		*queue = (*queue)[1:]
		reachedSet[n] = true
		variants := visited[n]
		node := w.Graph.Node(n)
		if node.Kind == logic.KindRefill && node.Refill != nil {
			variants = node.Refill.Apply(variants, w.Player.Inventory, w.Player.Settings.Difficulty)
			visited[n] = variants
		}
		for _, edge := range w.Graph.Edges[n] {
			out := edge.Req.Evaluate(w.Player.Inventory, variants, evalCtx)
			if len(out) == 0 {
				if progressionMode {
					*progressions = append(*progressions, ProgressionRecord{Req: edge.Req, BestOrbs: bestOrbs(variants)})
				}
				continue
			}
			merged, changed := mergeOrbVariants(visited[edge.To], out)
			if changed {
				visited[edge.To] = merged
				*queue = append(*queue, edge.To)
			}
		}
	}
}

// bestOrbs returns the variant with the highest health (tie-broken by
// energy), used to report the orbs available when a progression candidate
// is recorded.
func bestOrbs(variants []inventory.Orbs) inventory.Orbs {
	if len(variants) == 0 {
		return inventory.Orbs{}
	}
	best := variants[0]
	for _, v := range variants[1:] {
		if v.Health > best.Health || (v.Health == best.Health && v.Energy > best.Energy) {
			best = v
		}
	}
	return best
}

// mergeOrbVariants merges new variants into existing, keeping only the
// Pareto-optimal front (a variant dominated by another — both health and
// energy no greater — is dropped) so the per-node variant set stays
// bounded across repeated traversal (spec.md §9's discussion of keeping the
// representation tractable, applied here to orb-set propagation).
func mergeOrbVariants(existing, add []inventory.Orbs) ([]inventory.Orbs, bool) {
	all := append(append([]inventory.Orbs{}, existing...), add...)
	var front []inventory.Orbs
	for i, v := range all {
		dominated := false
		for j, w := range all {
			if i == j {
				continue
			}
			if (w.Health > v.Health || (w.Health == v.Health && w.Energy > v.Energy)) && w.Energy >= v.Energy {
				dominated = true
				break
			}
			if w.Health >= v.Health && w.Energy > v.Energy {
				dominated = true
				break
			}
		}
		if !dominated {
			front = append(front, v)
		}
	}
	changed := len(front) != len(existing)
	if !changed {
		for i := range front {
			if front[i] != existing[i] {
				changed = true
				break
			}
		}
	}
	return dedupOrbs(front), changed
}

func dedupOrbs(variants []inventory.Orbs) []inventory.Orbs {
	seen := map[inventory.Orbs]bool{}
	var out []inventory.Orbs
	for _, v := range variants {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
