package engine

import (
	"testing"

	"github.com/BraedonM/bundle-optimization/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandQuantitiesFlattensCopies(t *testing.T) {
	sku := model.NewSKU("A.Red", 1, 1, 1, 1, 3, true, "")
	out := expandQuantities([]model.SKU{sku})
	assert.Len(t, out, 3)
}

func TestExpandQuantitiesTreatsZeroAsOne(t *testing.T) {
	sku := model.NewSKU("A.Red", 1, 1, 1, 1, 0, true, "")
	out := expandQuantities([]model.SKU{sku})
	assert.Len(t, out, 1)
}

func TestGroupByColorPreservesFirstSeenOrder(t *testing.T) {
	a := model.NewSKU("Part.Red", 1, 1, 1, 1, 1, true, "")
	b := model.NewSKU("Part.Blue", 1, 1, 1, 1, 1, true, "")
	c := model.NewSKU("Other.Red", 1, 1, 1, 1, 1, true, "")

	order, groups := groupByColor([]model.SKU{a, b, c})
	require.Equal(t, []string{"Red", "Blue"}, order)
	assert.Len(t, groups["Red"], 2)
	assert.Len(t, groups["Blue"], 1)
}

func TestPackOrderPacksSimpleVector(t *testing.T) {
	cfg := model.DefaultPackConfig()
	skus := []model.SKU{
		model.NewSKU("A.Red", 300, 200, cfg.ShortLength, 10, 2, true, "board"),
		model.NewSKU("B.Red", 250, 150, 1500, 5, 1, false, "trim"),
	}

	result, err := PackOrder(skus, 1200, 1200, nil, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, result.Bundles)
	for _, b := range result.Bundles {
		assert.False(t, b.IsEmpty())
		assert.Contains(t, []string{"MACH1", "MACH5", "MIXED"}, b.PackingMachine)
	}
}

func TestPackOrderTagsBundlesByMachineLookup(t *testing.T) {
	cfg := model.DefaultPackConfig()
	skus := []model.SKU{
		model.NewSKU("A.Red", 300, 200, cfg.ShortLength, 10, 1, true, ""),
	}
	lookup := model.MachineLookup{"Red": true}

	result, err := PackOrder(skus, 1200, 1200, lookup, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, result.Bundles)
	assert.Equal(t, "MACH1", result.Bundles[0].PackingMachine)
}

func TestPackOrderRoutesOverrideTaggedStockSeparately(t *testing.T) {
	cfg := model.DefaultPackConfig()
	override := model.NewSKU("A.Red", 300, 200, cfg.ShortLength, 10, 1, true, "")
	override.OpaqueAttrs["Bdl_Override"] = "BUNDLE-42"
	regular := model.NewSKU("B.Red", 300, 200, cfg.ShortLength, 10, 1, true, "")

	result, err := PackOrder([]model.SKU{override, regular}, 1200, 1200, nil, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, result.Bundles)
}

func TestPackOrderRejectsOverrideTagMixingMachines(t *testing.T) {
	cfg := model.DefaultPackConfig()
	mach1 := model.NewSKU("A.Red", 300, 200, cfg.ShortLength, 10, 1, true, "")
	mach1.OpaqueAttrs["Bdl_Override"] = "BUNDLE-42"
	mach5 := model.NewSKU("B.Blue", 300, 200, cfg.ShortLength, 10, 1, true, "")
	mach5.OpaqueAttrs["Bdl_Override"] = "BUNDLE-42"
	lookup := model.MachineLookup{"Red": true}

	_, err := PackOrder([]model.SKU{mach1, mach5}, 1200, 1200, lookup, cfg)
	require.Error(t, err)
	var mismatch *OverrideMachineMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "BUNDLE-42", mismatch.OverrideTag)
}

func TestTryPourIntoOpenBundleFillsLeftoverVoid(t *testing.T) {
	ctx := newPackContext(model.DefaultPackConfig())
	bundle := model.NewBundle(600, 600, 3680)
	ctx.bottomRowLength = bundle.Width
	base := model.NewSKU("Base.Red", 300, 200, 3680, 4, 1, true, "")
	bundle.Add(model.PlacedSKU{SKU: base, X: 0, Y: 0, Rotated: false})
	bundles := []*model.Bundle{bundle}

	filler := model.NewSKU("Topper.Blue", 300, 200, 3680, 4, 1, true, "")
	leftover := tryPourIntoOpenBundle(bundles, []model.SKU{filler}, ctx)

	assert.Empty(t, leftover)
	assert.Len(t, bundle.Content(), 2)
}

func TestTryPourIntoOpenBundleNoOpWhenNoPriorBundles(t *testing.T) {
	ctx := newPackContext(model.DefaultPackConfig())
	sku := model.NewSKU("A.Red", 300, 200, 3680, 4, 1, true, "")

	leftover := tryPourIntoOpenBundle(nil, []model.SKU{sku}, ctx)
	assert.Equal(t, []model.SKU{sku}, leftover)
}

func TestPackOrderGivesUnplaceableStockItsOwnDegenerateBundle(t *testing.T) {
	cfg := model.DefaultPackConfig()
	// Fits the cross-section alone but CanBeBottom=false keeps it out of
	// every ordinary placement, so the packer never makes progress on it
	// and must fall back to a degenerate one-SKU bundle (spec.md §8 S5).
	neverFits := model.NewSKU("A.Red", 590, 590, 4000, 10, 1, false, "")

	result, err := PackOrder([]model.SKU{neverFits}, 600, 600, nil, cfg)
	require.NoError(t, err)
	require.Len(t, result.Removed, 1)
	require.Len(t, result.Bundles, 1)
	assert.Len(t, result.Bundles[0].Content(), 1)
}
