package engine

import (
	"sort"

	"github.com/BraedonM/bundle-optimization/internal/model"
)

type point struct{ x, y float64 }

// candidatePoints returns the corner points of existing content plus a
// coarse grid, the same two-source candidate set the original greedy
// fillers probe before trying to slot another SKU in.
func candidatePoints(bundle *model.Bundle, yBound float64, gridSize float64) []point {
	seen := make(map[point]bool)
	var pts []point
	add := func(p point) {
		if !seen[p] {
			seen[p] = true
			pts = append(pts, p)
		}
	}
	for _, p := range bundle.Placed {
		add(point{p.X + p.Width, p.Y})
		add(point{p.X, p.Y + p.Height})
	}
	for x := 0.0; x < bundle.Width; x += gridSize {
		for y := 0.0; y < yBound; y += gridSize {
			add(point{x, y})
		}
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].y != pts[j].y {
			return pts[i].y < pts[j].y
		}
		return pts[i].x < pts[j].x
	})
	return pts
}

func maxExistingTop(bundle *model.Bundle) float64 {
	var top float64
	for _, p := range bundle.Content() {
		if t := p.Y + p.Height; t > top {
			top = t
		}
	}
	return top
}

// fillRemainingGreedy repeatedly slots the largest-area remaining SKU
// (trying both orientations) into the best open candidate point it can
// find, chaining any length-compatible stock behind it, until nothing
// more fits.
func fillRemainingGreedy(bundle *model.Bundle, pool []model.SKU, ctx *packContext) []model.SKU {
	remaining := append([]model.SKU(nil), pool...)

	for {
		if len(remaining) == 0 {
			return remaining
		}
		sort.Slice(remaining, func(i, j int) bool {
			return remaining[i].Width*remaining[i].Height > remaining[j].Width*remaining[j].Height
		})
		points := candidatePoints(bundle, bundle.Height, 25)
		considered := make(map[int]bool)
		placedThisPass := false

		for _, sku := range remaining {
			if considered[sku.Seq()] {
				continue
			}
			for _, vertical := range []bool{false, true} {
				w, h := OrientedDims(sku, vertical)
				if w > bundle.Width || h > bundle.Height {
					continue
				}
				for _, p := range points {
					if p.x+w > bundle.Width || p.y+h > bundle.Height || p.y+h > ctx.bottomRowLength {
						continue
					}
					if !canPlaceAt(sku, p.x, p.y, w, h, bundle, ctx.cfg) {
						continue
					}
					if p.y > 0 && !hasSufficientSupport(p.x, p.y, w, bundle, ctx.cfg) {
						continue
					}
					if p.y == 0 && (!nearFullLength(sku.Length, bundle.MaxLength) || !sku.CanBeBottom) {
						continue
					}
					if p.y == 0 && !vertical {
						continue
					}
					if vertical && p.y+h > 10+maxExistingTop(bundle) {
						continue
					}

					stackable := findStackableSKUs(sku, remaining, considered, bundle.MaxLength, ctx.cfg.MaxWeight-bundle.NonPackagingWeight(), ctx.cfg)
					considered[sku.Seq()] = true
					for _, s := range stackable {
						considered[s.Seq()] = true
					}

					placement := sku
					placement.Width, placement.Height = w, h
					bundle.Add(model.PlacedSKU{SKU: placement, X: p.x, Y: p.y, Rotated: vertical})
					for _, stackSKU := range stackable {
						sw, sh := OrientedDims(stackSKU, vertical)
						stackPlacement := stackSKU
						stackPlacement.Width, stackPlacement.Height = sw, sh
						bundle.Add(model.PlacedSKU{SKU: stackPlacement, X: p.x, Y: p.y, Rotated: vertical})
					}

					consumedSet := map[int]bool{sku.Seq(): true}
					for _, s := range stackable {
						consumedSet[s.Seq()] = true
					}
					remaining = removeConsumed(remaining, consumedSet)
					placedThisPass = true
					break
				}
				if placedThisPass {
					break
				}
			}
			if placedThisPass {
				break
			}
		}

		if !placedThisPass {
			return remaining
		}
	}
}

// fillRowGreedy is fillRemainingGreedy restricted to y in [0, yLimit): it
// never places anything whose footprint would cross yLimit, so the
// caller can use it to top up a row without disturbing rows above it.
func fillRowGreedy(bundle *model.Bundle, pool []model.SKU, yLimit float64, ctx *packContext) []model.SKU {
	remaining := append([]model.SKU(nil), pool...)

	for {
		if len(remaining) == 0 {
			return remaining
		}
		points := candidatePoints(bundle, yLimit, 50)
		sorted := append([]model.SKU(nil), remaining...)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Width*sorted[i].Height > sorted[j].Width*sorted[j].Height
		})
		considered := make(map[int]bool)
		placedThisPass := false

		for _, sku := range sorted {
			if considered[sku.Seq()] {
				continue
			}
			for _, vertical := range []bool{false, true} {
				w, h := OrientedDims(sku, vertical)
				if w > bundle.Width || h > bundle.Height || h > yLimit {
					continue
				}
				for _, p := range points {
					if p.x+w > bundle.Width || p.y+h > yLimit {
						continue
					}
					if p.y == 0 && !nearFullLength(sku.Length, bundle.MaxLength) {
						continue
					}
					if p.y == 0 && !vertical {
						continue
					}
					if !canPlaceAt(sku, p.x, p.y, w, h, bundle, ctx.cfg) {
						continue
					}
					if !((p.y == 0 && sku.CanBeBottom) || hasSufficientSupport(p.x, p.y, w, bundle, ctx.cfg)) {
						continue
					}

					stackable := findStackableSKUs(sku, remaining, considered, bundle.MaxLength, ctx.cfg.MaxWeight-bundle.NonPackagingWeight(), ctx.cfg)
					considered[sku.Seq()] = true
					for _, s := range stackable {
						considered[s.Seq()] = true
					}

					rotated := vertical
					placement := sku
					placement.Width, placement.Height = w, h
					bundle.Add(model.PlacedSKU{SKU: placement, X: p.x, Y: p.y, Rotated: rotated})
					for _, stackSKU := range stackable {
						sw, sh := OrientedDims(stackSKU, vertical)
						stackPlacement := stackSKU
						stackPlacement.Width, stackPlacement.Height = sw, sh
						bundle.Add(model.PlacedSKU{SKU: stackPlacement, X: p.x, Y: p.y, Rotated: rotated})
					}

					consumedSet := map[int]bool{sku.Seq(): true}
					for _, s := range stackable {
						consumedSet[s.Seq()] = true
					}
					remaining = removeConsumed(remaining, consumedSet)
					placedThisPass = true
					break
				}
				if placedThisPass {
					break
				}
			}
			if placedThisPass {
				break
			}
		}

		if !placedThisPass {
			return remaining
		}
	}
}

// findBestFiller tries every filler variant in both orientations at
// (x, y) and returns the one that lands farthest from every bundle edge,
// breaking ties by area.
func findBestFiller(x, y float64, bundle *model.Bundle, ctx *packContext) (model.FillerVariant, float64, float64, bool, bool) {
	var bestFiller model.FillerVariant
	var bestW, bestH float64
	var bestRotated bool
	found := false
	bestArea := 0.0
	bestEdgeDist := 0.0

	probe := model.SKU{CanBeBottom: true, Length: 0}

	for _, variant := range model.FillerCatalog {
		for _, rotated := range []bool{false, true} {
			w, h := variant.Width, variant.Height
			if rotated {
				w, h = h, w
			}
			probeWithLength := probe
			probeWithLength.Length = variant.Length
			if !canPlaceAt(probeWithLength, x, y, w, h, bundle, ctx.cfg) {
				continue
			}
			if y != 0 && !hasSufficientSupport(x, y, w, bundle, ctx.cfg) {
				continue
			}

			distLeft := x
			distRight := bundle.Width - (x + w)
			distTop := bundle.Height - (y + h)
			distBottom := y
			edgeDist := min64(min64(distLeft, distRight), min64(distTop, distBottom))

			area := w * h
			if edgeDist > bestEdgeDist || (edgeDist == bestEdgeDist && area > bestArea) {
				bestArea = area
				bestFiller = variant
				bestW, bestH, bestRotated = w, h, rotated
				bestEdgeDist = edgeDist
				found = true
			}
		}
	}

	return bestFiller, bestW, bestH, bestRotated, found
}

// insertFillerMaterial packs filler into leftover void space once an SKU
// layout is otherwise final, scanning candidate points ranked by
// potential free area with a bonus for interior (non-edge) points. The
// bottom row (y == 0) is never filled.
func insertFillerMaterial(bundle *model.Bundle, ctx *packContext) {
	if bundle.IsEmpty() {
		return
	}

	for {
		placedAny := false

		type ranked struct {
			priority float64
			edgeDist float64
			x, y     float64
		}
		pointSet := map[point]bool{{0, 0}: true}
		for _, p := range bundle.Placed {
			pointSet[point{p.X + p.Width, p.Y}] = true
			pointSet[point{p.X, p.Y + p.Height}] = true
		}
		const gridSize = 5
		for x := 0.0; x < bundle.Width; x += gridSize {
			for y := 0.0; y < bundle.Height; y += gridSize {
				pointSet[point{x, y}] = true
			}
		}

		var ranks []ranked
		for p := range pointSet {
			area := potentialArea(p.x, p.y, bundle)
			distLeft := p.x
			distRight := bundle.Width - p.x
			distTop := bundle.Height - p.y
			distBottom := p.y
			minDist := min64(min64(distLeft, distRight), min64(distTop, distBottom))
			bonus := 1.0
			if minDist > 50 {
				bonus = 2.0
			}
			ranks = append(ranks, ranked{area * bonus, minDist, p.x, p.y})
		}
		sort.Slice(ranks, func(i, j int) bool {
			if ranks[i].priority != ranks[j].priority {
				return ranks[i].priority > ranks[j].priority
			}
			return ranks[i].edgeDist > ranks[j].edgeDist
		})

		for _, r := range ranks {
			if r.y == 0 {
				continue
			}
			variant, w, h, rotated, found := findBestFiller(r.x, r.y, bundle, ctx)
			if !found {
				continue
			}
			bundle.Add(model.NewFillerPlacement(variant, r.x, r.y, rotated))
			if bundle.MaxLength >= ctx.cfg.LongLength {
				bundle.Add(model.NewFillerPlacement(variant, r.x, r.y, rotated))
			}
			_ = w
			_ = h
			placedAny = true
			break
		}

		if !placedAny {
			return
		}
	}
}
