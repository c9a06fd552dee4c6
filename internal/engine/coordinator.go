package engine

import "github.com/BraedonM/bundle-optimization/internal/model"

// expandQuantities flattens each SKU's BundleQty into that many
// individual copies so the rest of the engine never has to reason about
// quantity — only about individual pieces of stock.
func expandQuantities(skus []model.SKU) []model.SKU {
	var out []model.SKU
	for _, sku := range skus {
		qty := sku.BundleQty
		if qty < 1 {
			qty = 1
		}
		for i := 0; i < qty; i++ {
			out = append(out, sku)
		}
	}
	return out
}

// groupByColor partitions skus by their Color(), preserving first-seen
// order of the color keys so packing results stay stable across calls.
func groupByColor(skus []model.SKU) ([]string, map[string][]model.SKU) {
	groups := make(map[string][]model.SKU)
	var order []string
	for _, sku := range skus {
		c := sku.Color()
		if _, ok := groups[c]; !ok {
			order = append(order, c)
		}
		groups[c] = append(groups[c], sku)
	}
	return order, groups
}

// classifyMachine returns the packing machine a color code runs on:
// "MACH1" if it is a member of lookup, "MACH5" otherwise.
func classifyMachine(color string, lookup model.MachineLookup) string {
	if lookup.IsMach1(color) {
		return "MACH1"
	}
	return "MACH5"
}

// groupMachineTag classifies a whole group of SKUs by color, returning
// the single machine every member shares, or "MIXED" when the group
// spans both (the tag Component bundles get per spec.md §4.11 step 3).
func groupMachineTag(skus []model.SKU, lookup model.MachineLookup) string {
	machine := ""
	for _, sku := range skus {
		m := classifyMachine(sku.Color(), lookup)
		if machine == "" {
			machine = m
		} else if machine != m {
			return "MIXED"
		}
	}
	if machine == "" {
		return "MACH5"
	}
	return machine
}

// tryPourIntoOpenBundle attempts to pour a subsequent color group's stock
// directly into the most recently finalized bundle via a trial greedy
// fill, before that group gets its own fresh bundles. This lets a color
// boundary share a bundle's leftover cross-section instead of always
// starting a new one, at the cost of being a best-effort attempt: most of
// the void is usually already consumed by that bundle's own filler pass.
func tryPourIntoOpenBundle(bundles []*model.Bundle, group []model.SKU, ctx *packContext) []model.SKU {
	if len(bundles) == 0 {
		return group
	}
	last := bundles[len(bundles)-1]
	if last.IsEmpty() {
		return group
	}
	trial := cloneBundle(last)
	leftover := fillRemainingGreedy(trial, group, ctx)
	if len(leftover) > 0 {
		return group
	}
	*last = *trial
	return leftover
}

// processOverrideBundles groups override-tagged SKUs by their
// Bdl_Override value and, per spec.md §4.11 step 2, rejects any tag
// whose colors span both machine classes before packing anything —
// such a tag has no local recovery. Each surviving tag-group is packed
// via packOverrideGroup and merged on its own.
func processOverrideBundles(skus []model.SKU, bundleWidth, bundleHeight float64, lookup model.MachineLookup, ctx *packContext) ([]*model.Bundle, error) {
	if len(skus) == 0 {
		return nil, nil
	}

	var tagOrder []string
	byTag := make(map[string][]model.SKU)
	for _, sku := range skus {
		tag, _ := sku.BdlOverride()
		if _, ok := byTag[tag]; !ok {
			tagOrder = append(tagOrder, tag)
		}
		byTag[tag] = append(byTag[tag], sku)
	}

	var bundles []*model.Bundle
	for _, tag := range tagOrder {
		group := byTag[tag]
		machine := ""
		for _, sku := range group {
			m := classifyMachine(sku.Color(), lookup)
			if machine == "" {
				machine = m
			} else if machine != m {
				return nil, &OverrideMachineMismatchError{OverrideTag: tag}
			}
		}

		tagBundles := packOverrideGroup(group, bundleWidth, bundleHeight, ctx)
		for _, b := range tagBundles {
			b.PackingMachine = machine
		}
		tagBundles = mergeBundles(tagBundles, bundleWidth, bundleHeight, ctx)
		bundles = append(bundles, tagBundles...)
	}
	return bundles, nil
}

// packOverrideGroup places one override tag's SKUs by brute-force
// scanning candidate positions in 10mm steps, spilling into a fresh
// bundle whenever the current one has no room left for the next piece.
func packOverrideGroup(skus []model.SKU, bundleWidth, bundleHeight float64, ctx *packContext) []*model.Bundle {
	var bundles []*model.Bundle
	current := model.NewBundle(bundleWidth, bundleHeight, chooseMaxLength(skus, ctx.cfg))
	ctx.bottomRowLength = bundleWidth

	for _, sku := range skus {
		placed := false
		for _, vertical := range []bool{true, false} {
			w, h := OrientedDims(sku, vertical)
			if w > current.Width || h > current.Height {
				continue
			}
			for y := 0.0; y+h <= current.Height && !placed; y += 10 {
				for x := 0.0; x+w <= current.Width && !placed; x += 10 {
					if !canPlaceAt(sku, x, y, w, h, current, ctx.cfg) {
						continue
					}
					if y > 0 && !hasSufficientSupport(x, y, w, current, ctx.cfg) {
						continue
					}
					placement := sku
					placement.Width, placement.Height = w, h
					current.Add(model.PlacedSKU{SKU: placement, X: x, Y: y, Rotated: vertical})
					placed = true
				}
			}
			if placed {
				break
			}
		}

		if !placed {
			if !current.IsEmpty() {
				current.ResizeToContent()
				bundles = append(bundles, current)
			}
			current = model.NewBundle(bundleWidth, bundleHeight, chooseMaxLength(skus, ctx.cfg))
			ctx.bottomRowLength = bundleWidth

			w, h := OrientedDims(sku, true)
			if w <= current.Width && h <= current.Height {
				placement := sku
				placement.Width, placement.Height = w, h
				current.Add(model.PlacedSKU{SKU: placement, X: 0, Y: 0, Rotated: true})
			} else {
				ctx.removeSKU(sku, "does not fit bundle cross-section even alone")
			}
		}
	}

	if !current.IsEmpty() {
		current.ResizeToContent()
		bundles = append(bundles, current)
	}
	return bundles
}

// PackOrder is the top-level entry point: it expands quantities, assigns
// stable identity to every piece, partitions it into override-tagged,
// Component-tagged, and regular stock (spec.md §4.11 step 1), packs
// each partition on its classified machine, merges what it can within
// and then across machines, and finally attaches packaging to every
// non-empty bundle. machineLookup names the color codes that belong to
// MACH1; every other color runs on MACH5. The only error PackOrder ever
// returns is *OverrideMachineMismatchError — everything else is
// recorded in the returned OrderResult instead of failing the call.
func PackOrder(skus []model.SKU, bundleWidth, bundleHeight float64, machineLookup model.MachineLookup, cfg model.PackConfig) (model.OrderResult, error) {
	ctx := newPackContext(cfg)
	expanded := assignSeqs(expandQuantities(skus))

	var overrides, components, regular []model.SKU
	for _, sku := range expanded {
		if _, ok := sku.BdlOverride(); ok {
			overrides = append(overrides, sku)
			continue
		}
		if sku.IsComponent() {
			components = append(components, sku)
			continue
		}
		regular = append(regular, sku)
	}

	var bundles []*model.Bundle
	colors, groups := groupByColor(regular)
	for _, color := range colors {
		group := tryPourIntoOpenBundle(bundles, groups[color], ctx)
		machine := classifyMachine(color, machineLookup)
		colorBundles := packSkusWithPattern(group, bundleWidth, bundleHeight, ctx)
		for _, b := range colorBundles {
			b.PackingMachine = machine
		}
		bundles = append(bundles, colorBundles...)
	}

	if len(components) > 0 {
		componentMachine := groupMachineTag(components, machineLookup)
		componentBundles := packSkusWithPattern(components, bundleWidth, bundleHeight, ctx)
		for _, b := range componentBundles {
			b.PackingMachine = componentMachine
		}
		bundles = append(bundles, componentBundles...)
	}

	bundles = mergeBundles(bundles, bundleWidth, bundleHeight, ctx)

	overrideBundles, err := processOverrideBundles(overrides, bundleWidth, bundleHeight, machineLookup, ctx)
	if err != nil {
		return model.OrderResult{}, err
	}
	bundles = append(bundles, overrideBundles...)

	var final []*model.Bundle
	for _, b := range bundles {
		if b.IsEmpty() {
			continue
		}
		allUnrotated := true
		for _, p := range b.Content() {
			if p.IsFiller() {
				continue
			}
			if p.Rotated {
				allUnrotated = false
				break
			}
		}
		for _, pkg := range cfg.BuildPackaging(b, allUnrotated) {
			b.Add(pkg)
		}
		final = append(final, b)
	}

	return model.OrderResult{Bundles: final, Removed: ctx.removed}, nil
}
