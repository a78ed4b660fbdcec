// Package spiritlight provides the linear-ramp integral-matching spirit
// light amount generator used when a placement slot is filled with raw
// spirit light instead of an item from the pool (spec.md §4.8).
//
// Grounded on original_source/wotw_seedgen/src/generator/spirit_light.rs,
// using pkg/rng's derivation-tree RNG in place of the original's
// rand::Rng/Uniform sampling.
package spiritlight

import "github.com/dshills/wotwseedgen/pkg/rng"

// minSpiritLight is the amount the very last slot settles toward.
const minSpiritLight = 50.0

// Provider hands out decreasing-variance spirit light amounts such that the
// total given out across every remaining slot integrates to the configured
// budget, with ±25% per-draw noise (spec.md §4.8).
type Provider struct {
	rng        *rng.RNG
	amount     float64
	nextAmount float64
}

// New creates a provider that will, over the course of repeated Take calls,
// distribute roughly amount total spirit light.
func New(amount int32, r *rng.RNG) *Provider {
	return &Provider{
		rng:        r,
		amount:     float64(amount),
		nextAmount: minSpiritLight,
	}
}

// Take returns the next spirit light batch, given that slotsRemaining slots
// (including this one) are left to fill. It fits a line through the curve
// spirit_light(slotsRemaining) such that its integral over [1, slotsRemaining]
// equals the amount left to distribute and spirit_light(slotsRemaining)
// equals the previous call's result, then samples the next point with
// ±25% uniform noise.
func (p *Provider) Take(slotsRemaining int) int32 {
	sr := float64(slotsRemaining)
	if sr <= 1 {
		batch := p.nextAmount
		p.amount -= p.nextAmount
		p.nextAmount = minSpiritLight
		return round32(batch)
	}

	a := (2*p.amount/(sr-1) - 2*p.nextAmount) / (sr + 1 - 2*sr)
	b := p.nextAmount - a*sr
	next := (a*(sr-1) + b) * p.rng.Float64Range(0.75, 1.25)

	batch := p.nextAmount
	p.amount -= p.nextAmount
	p.nextAmount = next
	return round32(batch)
}

func round32(f float64) int32 {
	if f < 0 {
		return int32(f - 0.5)
	}
	return int32(f + 0.5)
}
