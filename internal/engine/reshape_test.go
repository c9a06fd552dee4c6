package engine

import (
	"testing"

	"github.com/BraedonM/bundle-optimization/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackSkusFlatRelaysUnrotated(t *testing.T) {
	cfg := model.DefaultPackConfig()
	ctx := newPackContext(cfg)
	bundle := model.NewBundle(300, 900, cfg.ShortLength)

	a := model.NewSKU("A.Red", 300, 200, 4000, 10, 1, true, "")
	a.AssignSeq(1)
	b := model.NewSKU("B.Red", 300, 200, 3000, 10, 1, true, "")
	b.AssignSeq(2)
	bundle.Add(model.PlacedSKU{SKU: a, X: 0, Y: 0, Rotated: true})
	bundle.Add(model.PlacedSKU{SKU: b, X: 0, Y: 300, Rotated: true})

	stackSkusFlat(bundle, ctx)

	require.Len(t, bundle.Content(), 2)
	for _, p := range bundle.Content() {
		assert.False(t, p.Rotated)
	}
	assert.Equal(t, "A.Red", bundle.Content()[0].ID)
}

func TestStackSkusFlatIgnoresFillers(t *testing.T) {
	cfg := model.DefaultPackConfig()
	ctx := newPackContext(cfg)
	bundle := model.NewBundle(300, 900, cfg.ShortLength)
	assert.NotPanics(t, func() { stackSkusFlat(bundle, ctx) })

	a := model.NewSKU("A.Red", 300, 200, 4000, 10, 1, true, "")
	a.AssignSeq(1)
	bundle.Add(model.PlacedSKU{SKU: a, X: 0, Y: 0})
	bundle.Add(model.NewFillerPlacement(model.FillerCatalog[0], 0, 200, false))

	stackSkusFlat(bundle, ctx)

	require.Len(t, bundle.Content(), 1)
	assert.Equal(t, "A.Red", bundle.Content()[0].ID)
}

func TestLargestBySurfaceArea(t *testing.T) {
	small := model.NewSKU("A.Red", 100, 100, 1000, 1, 1, true, "")
	big := model.NewSKU("B.Red", 500, 500, 1000, 1, 1, true, "")
	idx := largestBySurfaceArea([]model.SKU{small, big})
	assert.Equal(t, 1, idx)
}

func TestPackSkusWithPatternEmitsDegenerateBundleForUnfittableStock(t *testing.T) {
	cfg := model.DefaultPackConfig()
	ctx := newPackContext(cfg)

	tooBig := model.NewSKU("A.Red", 5000, 5000, cfg.ShortLength, 10, 1, true, "")
	pool := assignSeqs([]model.SKU{tooBig})

	bundles := packSkusWithPattern(pool, 600, 600, ctx)
	require.Len(t, ctx.removed, 1)
	require.Len(t, bundles, 1)
	assert.Len(t, bundles[0].Content(), 1)
}

func TestPackSkusWithPatternEmitsDegenerateBundleWhenItemFitsAloneButNeverMakesProgress(t *testing.T) {
	cfg := model.DefaultPackConfig()
	ctx := newPackContext(cfg)

	// Fits the cross-section, but CanBeBottom=false keeps it out of
	// every ordinary placement (y=0 is forbidden, and nothing is below
	// it at y>0 to supply support), so the ordinary packer never makes
	// progress on it.
	notBottomEligible := model.NewSKU("A.Red", 590, 590, 4000, 10, 1, false, "")
	pool := assignSeqs([]model.SKU{notBottomEligible})

	bundles := packSkusWithPattern(pool, 600, 600, ctx)
	require.Len(t, ctx.removed, 1)
	require.Len(t, bundles, 1)
	assert.Len(t, bundles[0].Content(), 1)
}
