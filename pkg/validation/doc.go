// Package validation re-checks a generated seed against the testable
// properties spec.md §8 requires of it: solvability (every placed location
// is reachable by simulating the seed's own events from a fresh state),
// keystone safety (every keystone door's requirement is met wherever it was
// reached), no-shop-spirit-light, and item pool conservation.
//
// This is a post-generation self-test, not part of the placement algorithm
// itself — the core never calls into this package. Grounded on the
// teacher's pkg/validation (hard/soft constraint checker + report +
// metrics), re-targeted from dungeon-layout constraints to this spec's own
// invariants.
package validation
