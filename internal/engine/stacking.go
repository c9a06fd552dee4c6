package engine

import (
	"sort"

	"github.com/BraedonM/bundle-optimization/internal/model"
)

// skusCompatibleForStacking reports whether two SKUs are close enough in
// cross-section to be chained end-to-end along the length axis.
func skusCompatibleForStacking(a, b model.SKU, cfg model.PackConfig) bool {
	dw := a.Width - b.Width
	if dw < 0 {
		dw = -dw
	}
	dh := a.Height - b.Height
	if dh < 0 {
		dh = -dh
	}
	return dw <= cfg.StackingMaxDiff && dh <= cfg.StackingMaxDiff
}

// skuWithinHeightRange reports whether height is within
// cfg.SKUMaxHeightDiff of the height of the last SKU already placed in
// the row. An empty row accepts anything.
func skuWithinHeightRange(height float64, rowHeights []float64, cfg model.PackConfig) bool {
	if len(rowHeights) == 0 {
		return true
	}
	last := rowHeights[len(rowHeights)-1]
	diff := last - height
	if diff < 0 {
		diff = -diff
	}
	return diff <= cfg.SKUMaxHeightDiff
}

// findStackableSKUs finds SKUs in the pool, other than targetSeq, that
// are compatible for stacking with target and whose cumulative length
// (target first) stays within maxLength and whose cumulative weight
// (target first) stays within availableWeight. considered excludes SKUs
// already claimed by another stack in this pass. Candidates are greedily
// added largest-length-first so long SKUs anchor the back of the stack.
func findStackableSKUs(target model.SKU, pool []model.SKU, considered map[int]bool, maxLength, availableWeight float64, cfg model.PackConfig) []model.SKU {
	type candidate struct {
		sku model.SKU
	}
	var candidates []candidate
	for _, sku := range pool {
		if considered[sku.Seq()] || sku.Seq() == target.Seq() {
			continue
		}
		if skusCompatibleForStacking(sku, target, cfg) {
			candidates = append(candidates, candidate{sku})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].sku.Length > candidates[j].sku.Length
	})

	var stackable []model.SKU
	total := target.Length
	weight := target.Weight
	for _, c := range candidates {
		if total+c.sku.Length <= maxLength && weight+c.sku.Weight <= availableWeight {
			stackable = append(stackable, c.sku)
			total += c.sku.Length
			weight += c.sku.Weight
		}
		if total >= maxLength {
			break
		}
	}
	return stackable
}
