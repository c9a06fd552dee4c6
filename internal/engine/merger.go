package engine

import (
	"fmt"

	"github.com/BraedonM/bundle-optimization/internal/model"
)

// bundleContent returns everything packed into b except filler and
// packaging, the actual customer stock a merge attempt needs to
// re-pack from scratch.
func bundleContent(b *model.Bundle) []model.SKU {
	var out []model.SKU
	for _, p := range b.Content() {
		if p.IsFiller() {
			continue
		}
		out = append(out, p.SKU)
	}
	return out
}

func bundleKey(b *model.Bundle) string {
	return fmt.Sprintf("%p", b)
}

func pairKey(a, b *model.Bundle) [2]string {
	ka, kb := bundleKey(a), bundleKey(b)
	if ka > kb {
		ka, kb = kb, ka
	}
	return [2]string{ka, kb}
}

// mergeFeasible is the cheap pre-check tryMergePair runs before paying
// for a full scratch re-pack: two bundles whose combined footprint
// already exceeds the allowed cross-section, or whose combined weight
// already exceeds MaxWeight, can never collapse into one bundle no
// matter how the trial pack arranges them.
func mergeFeasible(a, b *model.Bundle, bundleWidth, bundleHeight float64, cfg model.PackConfig) bool {
	if a.Width*a.Height+b.Width*b.Height > bundleWidth*bundleHeight {
		return false
	}
	if a.NonPackagingWeight()+b.NonPackagingWeight() > cfg.MaxWeight {
		return false
	}
	return true
}

// tryMergePair attempts to re-pack two bundles' combined content into
// one. It runs the trial against a scratch context so a failed attempt
// never pollutes the caller's removed-SKU ledger or memoization.
func tryMergePair(a, b *model.Bundle, bundleWidth, bundleHeight float64, ctx *packContext) (*model.Bundle, bool) {
	if !mergeFeasible(a, b, bundleWidth, bundleHeight, ctx.cfg) {
		return nil, false
	}
	combined := append(bundleContent(a), bundleContent(b)...)
	scratch := newPackContext(ctx.cfg)
	result := packSkusWithPattern(combined, bundleWidth, bundleHeight, scratch)
	if len(result) == 1 && len(scratch.removed) == 0 {
		return result[0], true
	}
	return nil, false
}

func replacePair(bundles []*model.Bundle, i, j int, merged *model.Bundle) []*model.Bundle {
	out := make([]*model.Bundle, 0, len(bundles)-1)
	for k, b := range bundles {
		if k == i || k == j {
			continue
		}
		out = append(out, b)
	}
	out = append(out, merged)
	return out
}

// bundleHasFullLengthStock reports whether any non-filler piece in b is
// both bottom-eligible and runs the bundle's full length, the signal the
// original tiering used to decide how promising a bundle is to merge.
func bundleHasFullLengthStock(b *model.Bundle) bool {
	for _, p := range b.Content() {
		if p.IsFiller() {
			continue
		}
		if p.CanBeBottom && nearFullLength(p.Length, b.MaxLength) {
			return true
		}
	}
	return false
}

// tierBundles buckets bundles into best (full-length stock present, long
// run), mid (full-length stock present, short run) and bad (no
// full-length stock) tiers, merge candidates always drawn from within a
// tier first.
func tierBundles(bundles []*model.Bundle, cfg model.PackConfig) (best, mid, bad []*model.Bundle) {
	for _, b := range bundles {
		switch {
		case bundleHasFullLengthStock(b) && b.MaxLength >= cfg.LongLength:
			best = append(best, b)
		case bundleHasFullLengthStock(b):
			mid = append(mid, b)
		default:
			bad = append(bad, b)
		}
	}
	return best, mid, bad
}

// mergeTier repeatedly looks for a pair in tier that can be re-packed
// into a single bundle, replacing the pair whenever one is found, until
// no pair in the tier merges. When crossMachine is false, only pairs
// tagged with the same PackingMachine are attempted; when true, every
// pair is eligible and a successful merge across differing machines
// tags the result "MIXED".
func mergeTier(tier []*model.Bundle, bundleWidth, bundleHeight float64, ctx *packContext, crossMachine bool) []*model.Bundle {
	for {
		merged := false
		for i := 0; i < len(tier) && !merged; i++ {
			for j := i + 1; j < len(tier); j++ {
				sameMachine := tier[i].PackingMachine == tier[j].PackingMachine
				if !crossMachine && !sameMachine {
					continue
				}
				key := pairKey(tier[i], tier[j])
				if ctx.nonMergeable[key] {
					continue
				}
				if result, ok := tryMergePair(tier[i], tier[j], bundleWidth, bundleHeight, ctx); ok {
					if sameMachine {
						result.PackingMachine = tier[i].PackingMachine
					} else {
						result.PackingMachine = "MIXED"
					}
					tier = replacePair(tier, i, j, result)
					merged = true
					break
				}
				ctx.nonMergeable[key] = true
			}
		}
		if !merged {
			return tier
		}
	}
}

// mergeBundles tiers bundles by how promising they are to combine, folds
// each tier down to fewer bundles among same-machine pairs first, then
// attempts a cross-machine pass over whatever remains (per spec.md
// §4.12, tagging any cross-machine merge "MIXED"), and finally
// re-flattens any bundle that ended up taller than it is wide.
func mergeBundles(bundles []*model.Bundle, bundleWidth, bundleHeight float64, ctx *packContext) []*model.Bundle {
	best, mid, bad := tierBundles(bundles, ctx.cfg)

	best = mergeTier(best, bundleWidth, bundleHeight, ctx, false)
	mid = mergeTier(mid, bundleWidth, bundleHeight, ctx, false)
	bad = mergeTier(bad, bundleWidth, bundleHeight, ctx, false)

	merged := append(append(best, mid...), bad...)
	merged = mergeTier(merged, bundleWidth, bundleHeight, ctx, true)

	for _, b := range merged {
		if b.Height > b.Width {
			stackSkusFlat(b, ctx)
		}
	}
	return merged
}
