package engine

import (
	"sort"

	"github.com/BraedonM/bundle-optimization/internal/model"
)

// stackSkusFlat discards a bundle's current layout and re-lays its
// non-filler content as flat, un-rotated horizontal rows sorted by
// length then width. It is the fallback used when a bundle has come out
// taller than it is wide.
func stackSkusFlat(bundle *model.Bundle, ctx *packContext) {
	var skus []model.SKU
	for _, p := range bundle.Content() {
		if p.IsFiller() {
			continue
		}
		skus = append(skus, p.SKU)
	}
	if len(skus) == 0 {
		return
	}

	sort.Slice(skus, func(i, j int) bool {
		if skus[i].Length != skus[j].Length {
			return skus[i].Length > skus[j].Length
		}
		return skus[i].Width > skus[j].Width
	})

	bundle.Placed = nil
	ctx.bottomRowLength = bundle.Width

	currentX, currentY, rowHeight := 0.0, 0.0, 0.0
	for _, sku := range skus {
		w, h := OrientedDims(sku, false)
		if currentX+w > bundle.Width {
			currentY += rowHeight
			currentX, rowHeight = 0, 0
		}
		placement := sku
		placement.Width, placement.Height = w, h
		bundle.Add(model.PlacedSKU{SKU: placement, X: currentX, Y: currentY, Rotated: false})
		currentX += w
		if h > rowHeight {
			rowHeight = h
		}
	}
	bundle.ResizeToContent()
}

// largestBySurfaceArea returns the index of the pool entry with the
// greatest width*height footprint, used to pick what to give up on when
// a packing pass makes no progress.
func largestBySurfaceArea(pool []model.SKU) int {
	best := 0
	bestArea := -1.0
	for i, sku := range pool {
		area := sku.Width * sku.Height
		if area > bestArea {
			bestArea = area
			best = i
		}
	}
	return best
}

// cloneBundle returns a value copy of bundle with its own Placed slice,
// so a caller can probe filler insertion or a reshape candidate without
// mutating the original.
func cloneBundle(b *model.Bundle) *model.Bundle {
	clone := *b
	clone.Placed = append([]model.PlacedSKU(nil), b.Placed...)
	return &clone
}

// probeCeilingCoverage measures ceiling coverage the way §4.1's
// sufficient_ceiling_coverage prescribes: on a disposable copy, resized
// to content and with filler inserted, never on the live bundle.
func probeCeilingCoverage(bundle *model.Bundle, ctx *packContext) float64 {
	probe := cloneBundle(bundle)
	probe.ResizeToContent()
	insertFillerMaterial(probe, ctx)
	return ceilingCoverage(probe, ctx.cfg)
}

// topmostPlacementHeight returns the Height of whichever content item's
// top edge reaches highest in the bundle.
func topmostPlacementHeight(bundle *model.Bundle) float64 {
	var top, topHeight float64
	for _, p := range bundle.Content() {
		if t := p.Y + p.Height; t > top {
			top = t
			topHeight = p.Height
		}
	}
	return topHeight
}

// widestPlacementWidth returns the greatest Width among a bundle's
// content items.
func widestPlacementWidth(bundle *model.Bundle) float64 {
	var widest float64
	for _, p := range bundle.Content() {
		if p.Width > widest {
			widest = p.Width
		}
	}
	return widest
}

// allOnBottomRow reports whether every content item in bundle sits at
// y == 0.
func allOnBottomRow(bundle *model.Bundle) bool {
	for _, p := range bundle.Content() {
		if p.Y != 0 {
			return false
		}
	}
	return true
}

// wedgeFillerBetweenWidest splits the bottom row between its two widest
// distinct items by inserting a filler and shifting everything from the
// split point rightwards, per spec.md §4.9 step 4 — a bundle that came
// out taller than wide with all its content crammed along y=0 is
// stabilised by giving the row some breathing room instead.
func wedgeFillerBetweenWidest(bundle *model.Bundle, ctx *packContext) {
	content := append([]model.PlacedSKU(nil), bundle.Content()...)
	if len(content) < 2 {
		return
	}
	sort.Slice(content, func(i, j int) bool { return content[i].Width > content[j].Width })
	first, second := content[0], content[1]
	if first.X > second.X {
		first, second = second, first
	}
	insertX := first.X + first.Width

	variant := model.FillerCatalog[0]
	fillerWidth := variant.Width
	if fillerWidth > variant.Height {
		fillerWidth = variant.Height
	}

	for i := range bundle.Placed {
		if bundle.Placed[i].X >= insertX {
			bundle.Placed[i].X += fillerWidth
		}
	}
	bundle.Add(model.NewFillerPlacement(variant, insertX, 0, true))
	bundle.Width += fillerWidth
	ctx.bottomRowLength = bundle.Width
}

// reshapeBundle runs the single-bundle packer with feedback, per
// spec.md §4.9: an initial pack at the requested cross-section, a
// width-narrowing retry when the result is far wider than tall, a
// height-vs-width re-pack comparison when ceiling coverage is weak or
// the bundle came out taller than wide, a stabilising filler wedge for
// an all-bottom-row result that is still top-heavy, and a final
// lay-flat fallback if nothing above fixed the shape.
func reshapeBundle(pool []model.SKU, bundleWidth, bundleHeight float64, ctx *packContext) (*model.Bundle, []model.SKU) {
	bundle, leftover := packSingleBundle(pool, bundleWidth, bundleHeight, ctx)
	if bundle.IsEmpty() {
		return bundle, leftover
	}
	placedCount := len(bundle.Content())

	if bundle.Width > 0 && bundle.Height/bundle.Width < ctx.cfg.MinHeightWidthRatio && placedCount > 2 {
		narrowWidth := bundleWidth - 20
		if narrowWidth > 0 {
			candidate, candidateLeftover := packSingleBundle(pool, narrowWidth, bundleHeight, ctx)
			if len(candidate.Content()) >= placedCount {
				bundle, leftover = candidate, candidateLeftover
				placedCount = len(bundle.Content())
			}
		}
	}

	if !hasSufficientCeilingCoverage(bundle, ctx.cfg) || bundle.Height > bundle.Width {
		heightDrop := min64(20, topmostPlacementHeight(bundle))
		widthDrop := min64(20, widestPlacementWidth(bundle))

		bestBundle, bestLeftover := bundle, leftover
		bestCount := placedCount
		bestCeiling := probeCeilingCoverage(bundle, ctx)

		consider := func(cand *model.Bundle, candLeftover []model.SKU) {
			if cand == nil || cand.IsEmpty() {
				return
			}
			count := len(cand.Content())
			ceiling := probeCeilingCoverage(cand, ctx)
			if count > bestCount || (count == bestCount && ceiling > bestCeiling) {
				bestBundle, bestLeftover, bestCount, bestCeiling = cand, candLeftover, count, ceiling
			}
		}

		if heightDrop > 0 && bundleHeight-heightDrop > 0 {
			hCand, hLeftover := packSingleBundle(pool, bundleWidth, bundleHeight-heightDrop, ctx)
			consider(hCand, hLeftover)
		}
		if widthDrop > 0 && bundleWidth-widthDrop > 0 {
			wCand, wLeftover := packSingleBundle(pool, bundleWidth-widthDrop, bundleHeight, ctx)
			consider(wCand, wLeftover)
		}

		bundle, leftover = bestBundle, bestLeftover
	}

	if bundle.Height > bundle.Width && len(bundle.Content()) > 1 && allOnBottomRow(bundle) {
		wedgeFillerBetweenWidest(bundle, ctx)
	}

	if bundle.Height > bundle.Width {
		stackSkusFlat(bundle, ctx)
	}

	return bundle, leftover
}

// degenerateBundle builds a one-SKU bundle, plus any stack companions it
// can carry, for an item the ordinary layout passes could never place.
// Per spec.md §4.9 step 6 / §4.15, this SKU is always registered as
// removed as well — it still needed a special-cased bundle of its own,
// so a caller inspecting the removed registry should not be surprised
// to also find it shipped.
func degenerateBundle(sku model.SKU, pool []model.SKU, bundleWidth, bundleHeight float64, ctx *packContext) (*model.Bundle, map[int]bool) {
	consumed := map[int]bool{sku.Seq(): true}
	bundle := model.NewBundle(bundleWidth, bundleHeight, chooseMaxLength([]model.SKU{sku}, ctx.cfg))
	ctx.bottomRowLength = bundle.Width
	ctx.removeSKU(sku, "does not fit bundle cross-section")

	vertical := true
	w, h := OrientedDims(sku, vertical)
	if w > bundle.Width || h > bundle.Height {
		vertical = false
		w, h = OrientedDims(sku, vertical)
	}
	if w > bundle.Width || h > bundle.Height {
		// Too large either way: the bundle takes the SKU's own cross-section.
		bundle.Width, bundle.Height = max64(bundle.Width, w), max64(bundle.Height, h)
	}

	placement := sku
	placement.Width, placement.Height = w, h
	bundle.Add(model.PlacedSKU{SKU: placement, X: 0, Y: 0, Rotated: vertical})

	stackable := findStackableSKUs(sku, pool, consumed, bundle.MaxLength, ctx.cfg.MaxWeight-bundle.NonPackagingWeight(), ctx.cfg)
	for _, s := range stackable {
		consumed[s.Seq()] = true
		sw, sh := OrientedDims(s, vertical)
		stackPlacement := s
		stackPlacement.Width, stackPlacement.Height = sw, sh
		bundle.Add(model.PlacedSKU{SKU: stackPlacement, X: 0, Y: 0, Rotated: vertical})
	}

	bundle.ResizeToContent()
	insertFillerMaterial(bundle, ctx)
	return bundle, consumed
}

// packSkusWithPattern repeatedly carves single bundles out of pool via
// reshapeBundle until it is exhausted. A pass that places nothing at all
// pops the largest remaining SKU into its own degenerate bundle (with
// stack companions) so the loop always makes progress and terminates.
func packSkusWithPattern(pool []model.SKU, bundleWidth, bundleHeight float64, ctx *packContext) []*model.Bundle {
	var bundles []*model.Bundle

	for len(pool) > 0 {
		bundle, leftover := reshapeBundle(pool, bundleWidth, bundleHeight, ctx)

		if bundle.IsEmpty() {
			idx := largestBySurfaceArea(pool)
			degenerate, consumed := degenerateBundle(pool[idx], pool, bundleWidth, bundleHeight, ctx)
			if !degenerate.IsEmpty() {
				bundles = append(bundles, degenerate)
			}
			pool = removeConsumed(pool, consumed)
			continue
		}

		insertFillerMaterial(bundle, ctx)
		bundles = append(bundles, bundle)

		if len(leftover) == len(pool) {
			idx := largestBySurfaceArea(leftover)
			degenerate, consumed := degenerateBundle(leftover[idx], leftover, bundleWidth, bundleHeight, ctx)
			if !degenerate.IsEmpty() {
				bundles = append(bundles, degenerate)
			}
			leftover = removeConsumed(leftover, consumed)
		}
		pool = leftover
	}

	return bundles
}
