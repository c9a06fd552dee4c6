package engine

import "github.com/BraedonM/bundle-optimization/internal/model"

// OrientedDims returns an SKU's width/height for the requested
// orientation without mutating the SKU. When vertical is true the
// smaller side becomes the width and the larger side the height
// (tall/narrow); when false the larger side becomes the width.
func OrientedDims(sku model.SKU, vertical bool) (width, height float64) {
	lo, hi := sku.Width, sku.Height
	if lo > hi {
		lo, hi = hi, lo
	}
	if vertical {
		return lo, hi
	}
	return hi, lo
}

// nearFullLength reports whether length is close enough to the bundle's
// canonical length to count as a full-length SKU, mirroring the
// original's "abs(length - max_length) <= 100" bottom-row eligibility
// check.
func nearFullLength(length, maxLength float64) bool {
	diff := length - maxLength
	if diff < 0 {
		diff = -diff
	}
	return diff <= 100
}

// canPlaceAt reports whether a rectangle of the given width/height can be
// placed at (x, y) in bundle without exceeding its bounds, violating the
// bottom-row eligibility rule, or overlapping existing content.
func canPlaceAt(sku model.SKU, x, y, width, height float64, bundle *model.Bundle, cfg model.PackConfig) bool {
	if x+width > bundle.Width || y+height > bundle.Height {
		return false
	}
	if y == 0 {
		if !sku.CanBeBottom {
			return false
		}
		if bundle.MaxLength >= cfg.LongLength && sku.Length < cfg.ShortLength+20 {
			return false
		}
	}
	if bundle.NonPackagingWeight()+sku.Weight > cfg.MaxWeight {
		return false
	}
	for _, placed := range bundle.Content() {
		if x < placed.X+placed.Width && x+width > placed.X &&
			y < placed.Y+placed.Height && y+height > placed.Y {
			return false
		}
	}
	return true
}

// canFitOriented checks canPlaceAt after deriving width/height for the
// requested orientation.
func canFitOriented(sku model.SKU, x, y float64, vertical bool, bundle *model.Bundle, cfg model.PackConfig) bool {
	w, h := OrientedDims(sku, vertical)
	return canPlaceAt(sku, x, y, w, h, bundle, cfg)
}

// canAnySKUFit reports whether at least one SKU in the pool fits inside
// a bundle of the given cross-section in either orientation.
func canAnySKUFit(skus []model.SKU, bundleWidth, bundleHeight float64) bool {
	for _, sku := range skus {
		vw, vh := OrientedDims(sku, true)
		hw, hh := OrientedDims(sku, false)
		if (vw <= bundleWidth && vh <= bundleHeight) || (hw <= bundleWidth && hh <= bundleHeight) {
			return true
		}
	}
	return false
}

// hasSufficientSupport reports whether a rectangle of the given width
// starting at (x, y) rests on at least cfg.SupportThreshold of its
// footprint atop existing content. Placed items with Length at or below
// cfg.ShortSKUMax are too short to count as support, matching the
// original's "too short to support weight" rule.
func hasSufficientSupport(x, y, width float64, bundle *model.Bundle, cfg model.PackConfig) bool {
	return supportCoverage(x, y, width, bundle, cfg) >= cfg.SupportThreshold
}

// supportCoverage returns the fraction (0-1) of [x, x+width) that is
// backed by placed content whose top edge falls within
// cfg.SKUCoverageHeightBuffer of y, merging overlapping support
// intervals before measuring total covered length.
func supportCoverage(x, y, width float64, bundle *model.Bundle, cfg model.PackConfig) float64 {
	buffer := cfg.SKUCoverageHeightBuffer
	type interval = struct{ lo, hi float64 }
	var segments []interval

	for _, placed := range bundle.Placed {
		if placed.Length <= cfg.ShortSKUMax {
			continue
		}
		top := placed.Y + placed.Height
		if top < y-buffer || top > y+buffer {
			continue
		}
		start := max64(x, placed.X)
		end := min64(x+width, placed.X+placed.Width)
		if end > start {
			segments = append(segments, interval{start, end})
		}
	}
	if len(segments) == 0 || width <= 0 {
		return 0
	}

	sortIntervals(segments)
	var covered float64
	curStart, curEnd := segments[0].lo, segments[0].hi
	for _, seg := range segments[1:] {
		if seg.lo <= curEnd {
			if seg.hi > curEnd {
				curEnd = seg.hi
			}
			continue
		}
		covered += curEnd - curStart
		curStart, curEnd = seg.lo, seg.hi
	}
	covered += curEnd - curStart
	return covered / width
}

// hasSufficientCeilingCoverage reports whether the given bundle's top
// band is covered by at least cfg.MinCeilingCoverage of its width, the
// reshaper's signal that a bundle's upper rows are substantial enough
// to not look like a spindly stub.
func hasSufficientCeilingCoverage(bundle *model.Bundle, cfg model.PackConfig) bool {
	return ceilingCoverage(bundle, cfg) >= cfg.MinCeilingCoverage
}

// ceilingCoverage returns the fraction (0-1) of bundle.Width covered
// along x by PlacedSKUs whose top edge lies within cfg.MaxDistFromCeiling
// of bundle.Height, merging overlapping intervals the same way
// supportCoverage does for the bottom side.
func ceilingCoverage(bundle *model.Bundle, cfg model.PackConfig) float64 {
	threshold := bundle.Height - cfg.MaxDistFromCeiling
	type interval = struct{ lo, hi float64 }
	var segments []interval

	for _, placed := range bundle.Content() {
		if placed.Y+placed.Height < threshold {
			continue
		}
		segments = append(segments, interval{placed.X, placed.X + placed.Width})
	}
	if len(segments) == 0 || bundle.Width <= 0 {
		return 0
	}

	sortIntervals(segments)
	var covered float64
	curStart, curEnd := segments[0].lo, segments[0].hi
	for _, seg := range segments[1:] {
		if seg.lo <= curEnd {
			if seg.hi > curEnd {
				curEnd = seg.hi
			}
			continue
		}
		covered += curEnd - curStart
		curStart, curEnd = seg.lo, seg.hi
	}
	covered += curEnd - curStart
	return covered / bundle.Width
}

func sortIntervals(segs []struct{ lo, hi float64 }) {
	for i := 1; i < len(segs); i++ {
		for j := i; j > 0 && segs[j].lo < segs[j-1].lo; j-- {
			segs[j], segs[j-1] = segs[j-1], segs[j]
		}
	}
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// shouldRotate decides whether an SKU of the given width/height needs a
// 90-degree rotation to fit the row's orientation: vertical rows want
// the narrow side leading, horizontal rows want the wide side leading.
func shouldRotate(width, height float64, isVerticalRow bool) bool {
	if isVerticalRow {
		return width > height
	}
	return width < height
}

// potentialArea returns the area of free space above and to the right of
// (x, y), bounded by the nearest placed content, used by the filler inserter to
// rank candidate points.
func potentialArea(x, y float64, bundle *model.Bundle) float64 {
	maxWidth := bundle.Width - x
	maxHeight := bundle.Height - y

	for _, placed := range bundle.Content() {
		if placed.X >= x && placed.Y >= y {
			if placed.X < x+maxWidth {
				maxWidth = min64(maxWidth, placed.X-x)
			}
			if placed.Y < y+maxHeight {
				maxHeight = min64(maxHeight, placed.Y-y)
			}
		}
	}
	if maxWidth < 0 {
		maxWidth = 0
	}
	if maxHeight < 0 {
		maxHeight = 0
	}
	return maxWidth * maxHeight
}
