package engine

import (
	"testing"

	"github.com/BraedonM/bundle-optimization/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrientedDimsVerticalPutsNarrowSideFirst(t *testing.T) {
	sku := model.NewSKU("A.Red", 300, 100, 2000, 5, 1, true, "")

	w, h := OrientedDims(sku, true)
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 300.0, h)

	w, h = OrientedDims(sku, false)
	assert.Equal(t, 300.0, w)
	assert.Equal(t, 100.0, h)
}

func TestNearFullLength(t *testing.T) {
	assert.True(t, nearFullLength(3680, 3680))
	assert.True(t, nearFullLength(3750, 3680))
	assert.False(t, nearFullLength(3900, 3680))
}

func TestCanPlaceAtRejectsOverlap(t *testing.T) {
	cfg := model.DefaultPackConfig()
	bundle := model.NewBundle(1200, 1200, cfg.ShortLength)
	sku := model.NewSKU("A.Red", 200, 200, 3680, 5, 1, true, "")
	sku.AssignSeq(1)
	bundle.Add(model.PlacedSKU{SKU: sku, X: 0, Y: 0})

	other := model.NewSKU("B.Red", 200, 200, 3680, 5, 1, true, "")
	other.AssignSeq(2)
	require.False(t, canPlaceAt(other, 100, 100, 200, 200, bundle, cfg))
	require.True(t, canPlaceAt(other, 200, 0, 200, 200, bundle, cfg))
}

func TestCanPlaceAtBottomRowRequiresCanBeBottomAndFullLength(t *testing.T) {
	cfg := model.DefaultPackConfig()
	bundle := model.NewBundle(1200, 1200, cfg.LongLength)

	notBottom := model.NewSKU("A.Red", 200, 200, cfg.LongLength, 5, 1, false, "")
	assert.False(t, canPlaceAt(notBottom, 0, 0, 200, 200, bundle, cfg))

	tooShort := model.NewSKU("B.Red", 200, 200, cfg.ShortLength, 5, 1, true, "")
	assert.False(t, canPlaceAt(tooShort, 0, 0, 200, 200, bundle, cfg))

	fullLength := model.NewSKU("C.Red", 200, 200, cfg.LongLength, 5, 1, true, "")
	assert.True(t, canPlaceAt(fullLength, 0, 0, 200, 200, bundle, cfg))
}

func TestSupportCoverageFullSupport(t *testing.T) {
	cfg := model.DefaultPackConfig()
	bundle := model.NewBundle(1000, 1000, cfg.ShortLength)
	base := model.NewSKU("A.Red", 500, 100, 4000, 10, 1, true, "")
	base.AssignSeq(1)
	bundle.Add(model.PlacedSKU{SKU: base, X: 0, Y: 0})

	assert.Equal(t, 1.0, supportCoverage(0, 100, 500, bundle, cfg))
	assert.True(t, hasSufficientSupport(0, 100, 500, bundle, cfg))
}

func TestSupportCoveragePartialSupportBelowThreshold(t *testing.T) {
	cfg := model.DefaultPackConfig()
	bundle := model.NewBundle(1000, 1000, cfg.ShortLength)
	base := model.NewSKU("A.Red", 100, 100, 4000, 10, 1, true, "")
	base.AssignSeq(1)
	bundle.Add(model.PlacedSKU{SKU: base, X: 0, Y: 0})

	coverage := supportCoverage(0, 100, 500, bundle, cfg)
	assert.InDelta(t, 0.2, coverage, 0.001)
	assert.False(t, hasSufficientSupport(0, 100, 500, bundle, cfg))
}

func TestSupportCoverageIgnoresShortSKUs(t *testing.T) {
	cfg := model.DefaultPackConfig()
	bundle := model.NewBundle(1000, 1000, cfg.ShortLength)
	short := model.NewSKU("A.Red", 500, 100, cfg.ShortSKUMax, 10, 1, true, "")
	short.AssignSeq(1)
	bundle.Add(model.PlacedSKU{SKU: short, X: 0, Y: 0})

	assert.Equal(t, 0.0, supportCoverage(0, 100, 500, bundle, cfg))
}

func TestShouldRotate(t *testing.T) {
	assert.True(t, shouldRotate(300, 100, true))
	assert.False(t, shouldRotate(100, 300, true))
	assert.True(t, shouldRotate(100, 300, false))
	assert.False(t, shouldRotate(300, 100, false))
}

func TestCanAnySKUFit(t *testing.T) {
	skus := []model.SKU{
		model.NewSKU("A.Red", 2000, 2000, 3680, 5, 1, true, ""),
	}
	assert.False(t, canAnySKUFit(skus, 1200, 1200))

	skus = append(skus, model.NewSKU("B.Red", 300, 100, 3680, 5, 1, true, ""))
	assert.True(t, canAnySKUFit(skus, 1200, 1200))
}
