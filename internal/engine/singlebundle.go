package engine

import "github.com/BraedonM/bundle-optimization/internal/model"

// chooseMaxLength picks the bundle's canonical running length: the long
// preset if anything in the pool is long enough to need it, the short
// preset otherwise.
func chooseMaxLength(pool []model.SKU, cfg model.PackConfig) float64 {
	maxLength := cfg.ShortLength
	for _, sku := range pool {
		if sku.Length > cfg.ShortLength+20 {
			maxLength = cfg.LongLength
			break
		}
	}
	return maxLength
}

// packSingleBundle lays a single bundle out of pool: a bottom row of
// full-length stock, then row after row of the remaining "long" SKUs
// (length > cfg.ShortSKUMax), greedily topped up, then a second pass for
// "short" SKUs, then a final greedy sweep for whatever is left. It
// returns the packed bundle and the SKUs that did not fit.
func packSingleBundle(pool []model.SKU, bundleWidth, bundleHeight float64, ctx *packContext) (*model.Bundle, []model.SKU) {
	maxLength := chooseMaxLength(pool, ctx.cfg)
	bundle := model.NewBundle(bundleWidth, bundleHeight, maxLength)
	ctx.bottomRowLength = bundleWidth

	var bottomEligible []model.SKU
	var rest []model.SKU
	for _, sku := range pool {
		if sku.CanBeBottom && nearFullLength(sku.Length, maxLength) {
			bottomEligible = append(bottomEligible, sku)
		} else {
			rest = append(rest, sku)
		}
	}

	rowHeight, consumed := placeBottomRow(bundle, bottomEligible, ctx)
	bottomEligible = removeConsumed(bottomEligible, consumed)
	rest = append(rest, bottomEligible...)

	currentY := rowHeight

	var long, short []model.SKU
	for _, sku := range rest {
		if sku.Length > ctx.cfg.ShortSKUMax {
			long = append(long, sku)
		} else {
			short = append(short, sku)
		}
	}

	for len(long) > 0 {
		h, consumed := packRow(bundle, long, currentY, false, maxLength, ctx)
		if h == 0 {
			break
		}
		long = removeConsumed(long, consumed)
		long = fillRowGreedy(bundle, long, currentY+h, ctx)
		currentY += h
	}

	for len(short) > 0 {
		h, consumed := packRow(bundle, short, currentY, false, maxLength, ctx)
		if h == 0 {
			break
		}
		short = removeConsumed(short, consumed)
		short = fillRowGreedy(bundle, short, currentY+h, ctx)
		currentY += h
	}

	leftover := append(long, short...)
	leftover = fillRemainingGreedy(bundle, leftover, ctx)

	bundle.ResizeToContent()
	return bundle, leftover
}
