package engine

import (
	"sort"

	"github.com/BraedonM/bundle-optimization/internal/model"
)

// placeBottomRow lays out the full-length-eligible SKUs across the
// bottom of a bundle, tallest-first (by oriented height). It returns the resulting row height
// and the set of SKU seqs it consumed from the pool.
func placeBottomRow(bundle *model.Bundle, bottomEligible []model.SKU, ctx *packContext) (rowHeight float64, consumed map[int]bool) {
	type oriented struct {
		sku  model.SKU
		w, h float64
	}
	items := make([]oriented, 0, len(bottomEligible))
	for _, sku := range bottomEligible {
		w, h := OrientedDims(sku, true)
		items = append(items, oriented{sku, w, h})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].h > items[j].h })

	consumed = make(map[int]bool)
	var rowHeights []float64
	currentX := 0.0

	for _, it := range items {
		if consumed[it.sku.Seq()] {
			continue
		}
		if currentX+it.w > bundle.Width {
			continue
		}
		if rowHeight != 0 && it.h > rowHeight {
			continue
		}
		if !canPlaceAt(it.sku, currentX, 0, it.w, it.h, bundle, ctx.cfg) {
			continue
		}
		if !skuWithinHeightRange(it.h, rowHeights, ctx.cfg) {
			continue
		}

		rotated := shouldRotate(it.sku.Width, it.sku.Height, true)
		placement := it.sku
		placement.Width, placement.Height = it.w, it.h
		bundle.Add(model.PlacedSKU{SKU: placement, X: currentX, Y: 0, Rotated: rotated})

		consumed[it.sku.Seq()] = true
		rowHeights = append(rowHeights, it.h)
		currentX += it.w
		if it.h > rowHeight {
			rowHeight = it.h
		}
		ctx.bottomRowLength = currentX
	}

	return rowHeight, consumed
}

type rowEntry struct {
	sku        model.SKU
	x, y, w, h float64
	stackable  []model.SKU
}

// packRow greedily fills a single row starting at currentY, trying the
// tallest-oriented SKUs first and chaining length-compatible stock
// behind each one via findStackableSKUs. It returns the row height and
// the set of SKU seqs it consumed.
func packRow(bundle *model.Bundle, pool []model.SKU, currentY float64, isVerticalRow bool, maxLength float64, ctx *packContext) (rowHeight float64, consumed map[int]bool) {
	type oriented struct {
		sku  model.SKU
		w, h float64
	}
	sorted := make([]oriented, 0, len(pool))
	for _, sku := range pool {
		w, h := OrientedDims(sku, isVerticalRow)
		sorted = append(sorted, oriented{sku, w, h})
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].h > sorted[j].h })

	considered := make(map[int]bool)
	var rowHeights []float64
	var entries []rowEntry
	currentX := 0.0

	for _, it := range sorted {
		if considered[it.sku.Seq()] {
			continue
		}
		if it.w <= 0 || it.h <= 0 {
			continue
		}
		if !skuWithinHeightRange(it.h, rowHeights, ctx.cfg) {
			continue
		}
		if currentX+it.w > bundle.Width || currentY+it.h > bundle.Height {
			continue
		}
		if currentY != 0 && currentY+it.h > ctx.bottomRowLength {
			continue
		}
		if !canPlaceAt(it.sku, currentX, currentY, it.w, it.h, bundle, ctx.cfg) {
			continue
		}
		if currentY != 0 && !hasSufficientSupport(currentX, currentY, it.w, bundle, ctx.cfg) {
			continue
		}

		stackable := findStackableSKUs(it.sku, pool, considered, maxLength, ctx.cfg.MaxWeight-bundle.NonPackagingWeight(), ctx.cfg)
		considered[it.sku.Seq()] = true
		for _, s := range stackable {
			considered[s.Seq()] = true
		}

		entries = append(entries, rowEntry{it.sku, currentX, currentY, it.w, it.h, stackable})
		rowHeights = append(rowHeights, it.h)
		currentX += it.w
	}

	if len(entries) == 0 {
		return 0, nil
	}

	consumed = make(map[int]bool)
	for _, e := range entries {
		rotated := shouldRotate(e.sku.Width, e.sku.Height, isVerticalRow)
		placement := e.sku
		placement.Width, placement.Height = e.w, e.h
		bundle.Add(model.PlacedSKU{SKU: placement, X: e.x, Y: e.y, Rotated: rotated})
		consumed[e.sku.Seq()] = true
		colMaxHeight := e.h

		stackSorted := append([]model.SKU(nil), e.stackable...)
		sort.Slice(stackSorted, func(i, j int) bool { return stackSorted[i].Length > stackSorted[j].Length })
		for _, stackSKU := range stackSorted {
			sw, sh := OrientedDims(stackSKU, isVerticalRow)
			stackRotated := shouldRotate(stackSKU.Width, stackSKU.Height, isVerticalRow)
			stackPlacement := stackSKU
			stackPlacement.Width, stackPlacement.Height = sw, sh
			bundle.Add(model.PlacedSKU{SKU: stackPlacement, X: e.x, Y: e.y, Rotated: stackRotated})
			consumed[stackSKU.Seq()] = true
			if sh > colMaxHeight {
				colMaxHeight = sh
			}
		}
		if colMaxHeight > rowHeight {
			rowHeight = colMaxHeight
		}
	}

	return rowHeight, consumed
}

// removeConsumed returns the subset of pool whose SKU seqs are not in
// consumed.
func removeConsumed(pool []model.SKU, consumed map[int]bool) []model.SKU {
	if len(consumed) == 0 {
		return pool
	}
	out := pool[:0:0]
	for _, sku := range pool {
		if !consumed[sku.Seq()] {
			out = append(out, sku)
		}
	}
	return out
}
